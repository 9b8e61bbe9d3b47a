// Package expr builds expression parsers from tables of binary operators
// grouped into precedence levels.
package expr

import (
	"fmt"

	"github.com/dhamidi/parsec/comb"
)

// Assoc is the associativity of a precedence level.
type Assoc int

const (
	// Left groups a op b op c as (a op b) op c.
	Left Assoc = iota
	// Right groups a op b op c as a op (b op c).
	Right
	// NonAssoc accepts at most one operator: a op b.
	NonAssoc
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case NonAssoc:
		return "nonassoc"
	default:
		return fmt.Sprintf("Assoc(%d)", int(a))
	}
}

// Operator is a binary operator producing values of type E.
type Operator[E any] struct {
	symbol    comb.Parser[struct{}]
	transform func(left, right E) E
	label     string
}

// NewOperator creates an operator recognised by symbol. Transform builds
// the result of applying the operator to its operands. The operator's
// label defaults to the symbol's name followed by "operator".
func NewOperator[S, E any](symbol comb.Parser[S], transform func(left, right E) E) Operator[E] {
	return Operator[E]{
		symbol:    comb.Map(symbol, func(S) struct{} { return struct{}{} }),
		transform: transform,
		label:     symbol.Name() + " operator",
	}
}

// WithLabel returns a copy of op reported as label in failures.
func (op Operator[E]) WithLabel(label string) Operator[E] {
	op.label = label
	return op
}

func (op Operator[E]) Label() string {
	return op.label
}

// Level is a set of operators sharing one precedence and associativity.
// When several symbols match, the first operator in Operators wins.
type Level[E any] struct {
	Assoc     Assoc
	Operators []Operator[E]
}

func LeftLevel[E any](ops ...Operator[E]) Level[E] {
	return Level[E]{Assoc: Left, Operators: ops}
}

func RightLevel[E any](ops ...Operator[E]) Level[E] {
	return Level[E]{Assoc: Right, Operators: ops}
}

func NonAssocLevel[E any](ops ...Operator[E]) Level[E] {
	return Level[E]{Assoc: NonAssoc, Operators: ops}
}

// Build returns a parser for expressions over atom. Levels are ordered
// from lowest precedence (binds loosest) to highest. Build panics if a
// level has no operators.
func Build[E any](atom comb.Parser[E], levels ...Level[E]) comb.Parser[E] {
	p := atom
	for i := len(levels) - 1; i >= 0; i-- {
		p = buildLevel(p, levels[i])
	}
	return p
}

// step is an operator bound to its right operand, waiting for its left.
type step[E any] struct {
	transform func(left, right E) E
	right     E
}

func buildLevel[E any](operand comb.Parser[E], level Level[E]) comb.Parser[E] {
	if len(level.Operators) == 0 {
		panic(fmt.Sprintf("expr: %s precedence level has no operators", level.Assoc))
	}

	alts := make([]comb.Parser[comb.List[step[E]]], len(level.Operators))
	for i, op := range level.Operators {
		alts[i] = comb.Map(comb.FollowedBy(op.symbol, operand), func(right E) comb.List[step[E]] {
			return comb.List[step[E]]{{transform: op.transform, right: right}}
		}).Label(op.label)
	}
	operators := comb.Choice(alts...)

	switch level.Assoc {
	case Right:
		return comb.Apply(comb.Map(operand, foldRight[E]), comb.Many(operators))
	case NonAssoc:
		return comb.Apply(comb.Map(operand, foldLeft[E]), operators.Optional())
	default:
		return comb.Apply(comb.Map(operand, foldLeft[E]), comb.Many(operators))
	}
}

func foldLeft[E any](first E) func(comb.List[step[E]]) E {
	return func(rest comb.List[step[E]]) E {
		acc := first
		for _, s := range rest {
			acc = s.transform(acc, s.right)
		}
		return acc
	}
}

func foldRight[E any](first E) func(comb.List[step[E]]) E {
	return func(rest comb.List[step[E]]) E {
		if len(rest) == 0 {
			return first
		}
		acc := rest[len(rest)-1].right
		for i := len(rest) - 1; i >= 0; i-- {
			left := first
			if i > 0 {
				left = rest[i-1].right
			}
			acc = rest[i].transform(left, acc)
		}
		return acc
	}
}
