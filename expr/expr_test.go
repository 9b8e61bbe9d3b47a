package expr

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/parsec/comb"
	"github.com/dhamidi/parsec/number"
	"github.com/dhamidi/parsec/text"
)

func integer() comb.Parser[int] {
	return text.Token(number.Integer[int]())
}

func op(sym string) comb.Parser[comb.Text] {
	return text.Token(text.Literal(sym))
}

// tree renders operator applications with explicit parentheses.
func tree(sym string) func(l, r string) string {
	return func(l, r string) string { return "(" + l + sym + r + ")" }
}

func atoms() comb.Parser[string] {
	return comb.Map(integer(), strconv.Itoa)
}

func TestLeftAssociativity(t *testing.T) {
	p := Build(integer(),
		LeftLevel(
			NewOperator(op("+"), func(a, b int) int { return a + b }),
			NewOperator(op("-"), func(a, b int) int { return a - b }),
		),
		LeftLevel(
			NewOperator(op("*"), func(a, b int) int { return a * b }),
		),
	)

	tests := []struct {
		input string
		want  int
	}{
		{"2+3*4", 14},
		{"2*3+4", 10},
		{"2+3+4", 9},
		{"10-3-2", 5},
		{"2 * 3 * 4 - 1", 23},
		{"7", 7},
	}
	for _, tt := range tests {
		r := comb.RunAll(p, tt.input)
		require.True(t, r.IsSuccess(), "%q: %v", tt.input, r.Err())
		if r.Value() != tt.want {
			t.Errorf("%q: got %d, want %d", tt.input, r.Value(), tt.want)
		}
	}
}

func TestTreeShape(t *testing.T) {
	p := Build(atoms(),
		LeftLevel(NewOperator(op("+"), tree("+"))),
		LeftLevel(NewOperator(op("*"), tree("*"))),
		RightLevel(NewOperator(op("^"), tree("^"))),
	)

	tests := []struct {
		input string
		want  string
	}{
		{"2+3+4", "((2+3)+4)"},
		{"2+3*4", "(2+(3*4))"},
		{"2^3^2", "(2^(3^2))"},
		{"1^2^3^4", "(1^(2^(3^4)))"},
		{"2*3^2*4", "((2*(3^2))*4)"},
		{"1+2*3^4^5+6", "((1+(2*(3^(4^5))))+6)"},
	}
	for _, tt := range tests {
		r := comb.RunAll(p, tt.input)
		require.True(t, r.IsSuccess(), "%q: %v", tt.input, r.Err())
		if r.Value() != tt.want {
			t.Errorf("%q: got %s, want %s", tt.input, r.Value(), tt.want)
		}
	}
}

func TestNonAssociativeLevel(t *testing.T) {
	p := Build(atoms(),
		NonAssocLevel(NewOperator(op("<"), tree("<"))),
		LeftLevel(NewOperator(op("+"), tree("+"))),
	)

	r := comb.RunAll(p, "1+2<3")
	require.True(t, r.IsSuccess(), "%v", r.Err())
	if r.Value() != "((1+2)<3)" {
		t.Errorf("got %s", r.Value())
	}

	r = comb.Run(p, "1<2<3")
	if r.Value() != "(1<2)" || r.Rest().Remaining() != "<3" {
		t.Errorf("got %s, rest %q", r.Value(), r.Rest().Remaining())
	}

	r = comb.RunAll(p, "1<2<3")
	if !r.IsFailure() || r.Position().Offset != 3 {
		t.Errorf("chained comparison should fail at offset 3, got %s", r.Describe())
	}
}

func TestFirstOperatorWins(t *testing.T) {
	p := Build(atoms(), LeftLevel(
		NewOperator(op("+"), tree("A")),
		NewOperator(op("+"), tree("B")),
	))

	r := comb.RunAll(p, "1+2")
	if r.Value() != "(1A2)" {
		t.Errorf("got %s", r.Value())
	}
}

func TestOperatorFallsBackWhenOperandFails(t *testing.T) {
	p := Build(atoms(), LeftLevel(
		NewOperator(op("<"), tree("<")),
		NewOperator(op("<="), tree("<=")),
	))

	r := comb.RunAll(p, "1<=2")
	require.True(t, r.IsSuccess(), "%v", r.Err())
	if r.Value() != "(1<=2)" {
		t.Errorf("got %s", r.Value())
	}
}

func TestOperatorLabel(t *testing.T) {
	plus := NewOperator(op("+"), tree("+"))
	if got := plus.Label(); got != `"+" operator` {
		t.Errorf("got %q", got)
	}
	if got := plus.WithLabel("addition").Label(); got != "addition" {
		t.Errorf("got %q", got)
	}
	if plus.Label() != `"+" operator` {
		t.Error("WithLabel modified the original operator")
	}
}

func TestBuildWithoutLevels(t *testing.T) {
	r := comb.RunAll(Build(integer()), "12")
	if r.Value() != 12 {
		t.Errorf("got %s", r.Describe())
	}
}

func TestEmptyLevelPanics(t *testing.T) {
	require.Panics(t, func() {
		Build(integer(), LeftLevel[int]())
	})
}

func TestMissingOperandLeavesOperator(t *testing.T) {
	p := Build(integer(), LeftLevel(NewOperator(op("+"), func(a, b int) int { return a + b })))

	r := comb.Run(p, "1 + ")
	if r.Value() != 1 || r.Rest().Remaining() != "+ " {
		t.Errorf("got %s, rest %q", r.Describe(), r.Rest().Remaining())
	}
}

func TestAssocString(t *testing.T) {
	for assoc, want := range map[Assoc]string{Left: "left", Right: "right", NonAssoc: "nonassoc", Assoc(9): "Assoc(9)"} {
		if got := assoc.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
