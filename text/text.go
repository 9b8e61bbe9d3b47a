// Package text provides character and string parsers for use with comb.
package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/parsec/comb"
)

// Satisfy parses one rune for which pred returns true.
func Satisfy(label string, pred func(rune) bool) comb.Parser[comb.Text] {
	return comb.New(label, func(s comb.Stream) comb.Result[comb.Text] {
		r, rest, err := s.TakeOne()
		if err != nil || !pred(r) {
			return comb.Failure[comb.Text](label, s)
		}
		return comb.Success(comb.Text(string(r)), rest)
	})
}

// Char parses the rune c.
func Char(c rune) comb.Parser[comb.Text] {
	return Satisfy(quoteRune(c), func(r rune) bool { return r == c })
}

// CharFold parses c, ignoring case.
func CharFold(c rune) comb.Parser[comb.Text] {
	return Satisfy(quoteRune(c)+" (any case)", func(r rune) bool {
		return strings.EqualFold(string(r), string(c))
	})
}

// OneOf parses any rune in set.
func OneOf(set string) comb.Parser[comb.Text] {
	return Satisfy(fmt.Sprintf("one of %q", set), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// NoneOf parses any rune not in set.
func NoneOf(set string) comb.Parser[comb.Text] {
	return Satisfy(fmt.Sprintf("none of %q", set), func(r rune) bool {
		return !strings.ContainsRune(set, r)
	})
}

// Digit parses an ASCII decimal digit.
func Digit() comb.Parser[comb.Text] {
	return Satisfy("digit", func(r rune) bool { return r >= '0' && r <= '9' })
}

func Letter() comb.Parser[comb.Text] {
	return Satisfy("letter", unicode.IsLetter)
}

func Space() comb.Parser[comb.Text] {
	return Satisfy("whitespace", unicode.IsSpace)
}

// Spaces skips zero or more whitespace runes.
func Spaces() comb.Parser[comb.Text] {
	return comb.Many(Space()).Ignore()
}

// Literal parses the string lit.
func Literal(lit string) comb.Parser[comb.Text] {
	return literal(fmt.Sprintf("%q", lit), lit, func(got string) bool { return got == lit })
}

// LiteralFold parses lit, ignoring case. The value is the input as written.
func LiteralFold(lit string) comb.Parser[comb.Text] {
	return literal(fmt.Sprintf("%q (any case)", lit), lit, func(got string) bool {
		return strings.EqualFold(got, lit)
	})
}

func literal(label, lit string, match func(string) bool) comb.Parser[comb.Text] {
	n := utf8.RuneCountInString(lit)
	return comb.New(label, func(s comb.Stream) comb.Result[comb.Text] {
		rest := s.Tail(n)
		got := s.Remaining()[:rest.Position().Offset-s.Position().Offset]
		if utf8.RuneCountInString(got) != n || !match(got) {
			return comb.Failure[comb.Text](label, s)
		}
		return comb.Success(comb.Text(got), rest)
	})
}

// EOF succeeds with "" only at end of input.
func EOF() comb.Parser[comb.Text] {
	return comb.New("end of input", func(s comb.Stream) comb.Result[comb.Text] {
		if !s.AtEOF() {
			return comb.Failure[comb.Text]("end of input", s)
		}
		return comb.Success[comb.Text]("", s)
	})
}

// Token parses p and skips the whitespace after it.
func Token[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.Skip(p, Spaces())
}

func quoteRune(r rune) string {
	return fmt.Sprintf("%q", r)
}
