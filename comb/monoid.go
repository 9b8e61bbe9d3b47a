package comb

// Monoid is the capability required by combinators that merge the outputs
// of consecutive parses (Mappend, Assemble, Many, AtLeastOne).
// Combine must be associative and Empty must be its identity.
type Monoid[T any] interface {
	Empty() T
	Combine(T) T
}

// Text is a string output that combines by concatenation.
type Text string

func (t Text) Empty() Text             { return "" }
func (t Text) Combine(other Text) Text { return t + other }
func (t Text) String() string          { return string(t) }

// List is a sequence output that combines by appending.
type List[E any] []E

func (l List[E]) Empty() List[E] { return nil }

// Combine returns a new list; neither operand is modified.
func (l List[E]) Combine(other List[E]) List[E] {
	if len(l) == 0 {
		return other
	}
	if len(other) == 0 {
		return l
	}
	out := make(List[E], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// empty returns the identity element of T.
func empty[T Monoid[T]]() T {
	var zero T
	return zero.Empty()
}
