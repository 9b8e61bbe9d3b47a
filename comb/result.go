package comb

import "fmt"

// Result is the outcome of running a parser at a position: either a
// Success carrying a value, or a Failure carrying an expected label.
type Result[T any] struct {
	ok       bool
	value    T
	rest     Stream
	span     Span
	expected string
	at       Position
}

// Success creates a successful result whose remainder is rest.
// The span is empty at rest; Parser.Parse widens it to the consumed input.
func Success[T any](value T, rest Stream) Result[T] {
	return Result[T]{
		ok:    true,
		value: value,
		rest:  rest,
		span:  Span{Start: rest.Position(), End: rest.Position()},
	}
}

// Failure creates a failed result at the position of s.
func Failure[T any](expected string, s Stream) Result[T] {
	return Result[T]{
		expected: expected,
		rest:     s,
		at:       s.Position(),
	}
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the parsed value. It is the zero value for a Failure.
func (r Result[T]) Value() T { return r.value }

// Rest returns the remaining input.
func (r Result[T]) Rest() Stream { return r.rest }

// Span returns the consumed input of a Success.
func (r Result[T]) Span() Span { return r.span }

// Expected returns the expected label of a Failure, or "" for a Success.
func (r Result[T]) Expected() string { return r.expected }

// Position returns where a Failure occurred, or where a Success ended.
func (r Result[T]) Position() Position {
	if r.ok {
		return r.span.End
	}
	return r.at
}

// Err returns a *ParseError for a Failure and nil for a Success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &ParseError{Pos: r.at, Expected: r.expected, Found: r.rest.found()}
}

// Describe renders the result on one line.
func (r Result[T]) Describe() string {
	if r.ok {
		return fmt.Sprintf("%s: ok %v", r.span.Start, r.value)
	}
	return r.Err().Error()
}

// relabel replaces the expected label of a Failure.
func (r Result[T]) relabel(expected string) Result[T] {
	if r.ok {
		return r
	}
	r.expected = expected
	return r
}

// MapResult replaces the value of a Success with f(value).
// A Failure is carried over unchanged.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return failed[U](r)
	}
	return Result[U]{ok: true, value: f(r.value), rest: r.rest, span: r.span}
}

// Combine merges two consecutive successes with the Monoid contract.
// The remainder and span end come from b. If either side failed, the first
// failure is returned.
func Combine[T Monoid[T]](a, b Result[T]) Result[T] {
	if !a.ok {
		return a
	}
	if !b.ok {
		return b
	}
	return Result[T]{
		ok:    true,
		value: a.value.Combine(b.value),
		rest:  b.rest,
		span:  Span{Start: a.span.Start, End: b.span.End},
	}
}

// failed converts a Failure to another value type.
func failed[U, T any](r Result[T]) Result[U] {
	return Result[U]{expected: r.expected, rest: r.rest, at: r.at}
}
