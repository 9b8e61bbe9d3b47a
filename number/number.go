// Package number parses numeric literals.
package number

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/parsec/comb"
	"github.com/dhamidi/parsec/text"
)

var errOverflow = errors.New("value out of range")

func digits() comb.Parser[comb.Text] {
	return comb.AtLeastOne(text.Digit())
}

func sign() comb.Parser[comb.Text] {
	return text.OneOf("+-").Optional()
}

// Integer parses an optionally signed decimal integer.
func Integer[T constraints.Signed]() comb.Parser[T] {
	lit := comb.Assemble(sign(), digits()).Label("integer")
	return comb.TryMap(lit, func(s comb.Text) (T, error) {
		v, err := strconv.ParseInt(string(s), 10, 64)
		if err != nil {
			return 0, err
		}
		if int64(T(v)) != v {
			return 0, errOverflow
		}
		return T(v), nil
	})
}

// Unsigned parses an unsigned decimal integer.
func Unsigned[T constraints.Unsigned]() comb.Parser[T] {
	lit := digits().Label("unsigned integer")
	return comb.TryMap(lit, func(s comb.Text) (T, error) {
		v, err := strconv.ParseUint(string(s), 10, 64)
		if err != nil {
			return 0, err
		}
		if uint64(T(v)) != v {
			return 0, errOverflow
		}
		return T(v), nil
	})
}

// Float parses a decimal floating point literal such as 3, -0.5 or 1.2e-3.
func Float[T constraints.Float]() comb.Parser[T] {
	return floatLiteral[T](comb.Assemble(sign(), unsignedFloat()).Label("number"))
}

// Decimal is like Float but does not accept a sign, leaving it to a
// prefix operator of the grammar.
func Decimal[T constraints.Float]() comb.Parser[T] {
	return floatLiteral[T](unsignedFloat().Label("number"))
}

func unsignedFloat() comb.Parser[comb.Text] {
	fraction := comb.Mappend(text.Char('.'), digits()).Optional()
	exponent := comb.Assemble(text.OneOf("eE"), sign(), digits()).Optional()
	return comb.Assemble(digits(), fraction, exponent)
}

func floatLiteral[T constraints.Float](lit comb.Parser[comb.Text]) comb.Parser[T] {
	return comb.TryMap(lit, func(s comb.Text) (T, error) {
		v, err := strconv.ParseFloat(string(s), 64)
		if err != nil {
			return 0, err
		}
		if math.IsInf(float64(T(v)), 0) && !math.IsInf(v, 0) {
			return 0, errOverflow
		}
		return T(v), nil
	})
}
