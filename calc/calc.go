// Package calc evaluates arithmetic expressions over float64 using an
// operator table that assigns precedence and associativity.
//
// Numbers, parenthesized sub-expressions and unary minus are atoms; unary
// minus binds tighter than every binary operator, so -2^2 is 4.
package calc

import (
	"errors"
	"math"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/comb"
	"github.com/dhamidi/parsec/expr"
	"github.com/dhamidi/parsec/number"
	"github.com/dhamidi/parsec/text"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("parsec.calc")
}

var operators = map[string]func(a, b float64) float64{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
	"%": math.Mod,
	"^": math.Pow,
}

// Calculator parses and evaluates expressions.
type Calculator struct {
	table  Table
	parser comb.Parser[float64]
}

// New builds a calculator for table.
func New(table Table) (*Calculator, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	levels := make([]expr.Level[float64], len(table.Levels))
	for i, level := range table.Levels {
		assoc, _ := parseAssoc(level.Assoc)
		ops := make([]expr.Operator[float64], len(level.Operators))
		for j, sym := range level.Operators {
			ops[j] = expr.NewOperator(text.Token(text.Literal(sym)), operators[sym])
		}
		levels[i] = expr.Level[float64]{Assoc: assoc, Operators: ops}
	}

	var expression, atom comb.Parser[float64]
	negate := func(v float64) float64 { return -v }
	atom = comb.Choice(
		text.Token(number.Decimal[float64]()),
		comb.Between(
			text.Token(text.Char('(')),
			comb.Lazy(func() comb.Parser[float64] { return expression }),
			text.Token(text.Char(')')),
		),
		comb.Map(comb.FollowedBy(text.Token(text.Char('-')), comb.Lazy(func() comb.Parser[float64] { return atom })), negate),
	).Label("operand")
	expression = expr.Build(atom, levels...).Label("expression")

	return &Calculator{
		table:  table,
		parser: comb.FollowedBy(text.Spaces(), expression),
	}, nil
}

// Parser returns the expression parser. It skips leading whitespace and
// does not require end of input.
func (c *Calculator) Parser() comb.Parser[float64] {
	return c.parser
}

func (c *Calculator) Table() Table {
	return c.table
}

// Evaluate parses all of input and returns its value. Failures are
// returned as *comb.ParseError.
func (c *Calculator) Evaluate(input string, opts ...comb.Option) (float64, error) {
	r := comb.RunAll(c.parser, input, opts...)
	if err := r.Err(); err != nil {
		return 0, err
	}
	return r.Value(), nil
}

// Line is the outcome of evaluating one line of a document.
type Line struct {
	Number int
	Text   string
	Value  float64
	Err    error
}

// EvaluateLines evaluates every line of input that is neither blank nor
// a comment starting with '#'. Error positions refer to input as a whole;
// columns count runes.
func (c *Calculator) EvaluateLines(file, input string, opts ...comb.Option) []Line {
	var lines []Line
	offset := 0
	for i, raw := range strings.Split(input, "\n") {
		lineOffset := offset
		offset += len(raw) + 1

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		line := Line{Number: i + 1, Text: raw}
		line.Value, line.Err = c.Evaluate(raw, append([]comb.Option{comb.WithFile(file)}, opts...)...)
		var perr *comb.ParseError
		if errors.As(line.Err, &perr) {
			shifted := *perr
			shifted.Pos.Line = i + 1
			shifted.Pos.Offset += lineOffset
			line.Err = &shifted
			logger().Debugf("%s", line.Err)
		}
		lines = append(lines, line)
	}
	return lines
}

var defaultCalculator, _ = New(DefaultTable())

// Evaluate evaluates input with the default table.
func Evaluate(input string) (float64, error) {
	return defaultCalculator.Evaluate(input)
}
