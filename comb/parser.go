package comb

// Parser is a function from a Stream to a Result, together with a display
// name that serves as its default expected label.
//
// Parsers hold no mutable state: the same Parser may run concurrently on
// independent streams.
type Parser[T any] struct {
	name string
	run  func(Stream) Result[T]
}

// New wraps run into a Parser named name.
func New[T any](name string, run func(Stream) Result[T]) Parser[T] {
	return Parser[T]{name: name, run: run}
}

// Name returns the parser's display name.
func (p Parser[T]) Name() string {
	return p.name
}

// Parse runs the parser on s. A Success records the span it consumed.
func (p Parser[T]) Parse(s Stream) Result[T] {
	if s.trace {
		return p.traced(s)
	}
	r := p.run(s)
	if r.ok {
		r.span = Span{Start: s.Position(), End: r.rest.Position()}
	}
	return r
}

// Or runs p and, if it fails, runs alt from the same starting stream.
// Any input p consumed before failing is discarded.
func (p Parser[T]) Or(alt Parser[T]) Parser[T] {
	return New(p.name+" or "+alt.name, func(s Stream) Result[T] {
		if r := p.Parse(s); r.ok {
			return r
		}
		return alt.Parse(s)
	})
}

// Optional never fails: when p fails it succeeds with the zero value
// without consuming input.
func (p Parser[T]) Optional() Parser[T] {
	return New("optional "+p.name, func(s Stream) Result[T] {
		if r := p.Parse(s); r.ok {
			return r
		}
		var zero T
		return Success(zero, s)
	})
}

// Label names the parser. When p fails, the failure's expected label is
// replaced by description; its position and remainder are kept.
func (p Parser[T]) Label(description string) Parser[T] {
	return New(description, func(s Stream) Result[T] {
		return p.Parse(s).relabel(description)
	})
}

// Ignore runs p and discards its value, replacing it with the zero value.
// For Text and List the zero value is the identity, so an ignored parser
// contributes nothing to Assemble.
func (p Parser[T]) Ignore() Parser[T] {
	return New(p.name, func(s Stream) Result[T] {
		r := p.Parse(s)
		if !r.ok {
			return r
		}
		var zero T
		return Success(zero, r.rest)
	})
}

// Pure succeeds with value without consuming input.
func Pure[T any](value T) Parser[T] {
	return New("pure", func(s Stream) Result[T] {
		return Success(value, s)
	})
}

// Map applies f to the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New(p.name, func(s Stream) Result[U] {
		return MapResult(p.Parse(s), f)
	})
}

// Apply runs fn and then arg, and applies the parsed function to the parsed
// argument. The first failure is returned.
func Apply[T, U any](fn Parser[func(T) U], arg Parser[T]) Parser[U] {
	return New(fn.name, func(s Stream) Result[U] {
		f := fn.Parse(s)
		if !f.ok {
			return failed[U](f)
		}
		a := arg.Parse(f.rest)
		if !a.ok {
			return failed[U](a)
		}
		return Success(f.value(a.value), a.rest)
	})
}

// FollowedBy runs p, then next from where p stopped, and keeps next's
// value. Either failure is returned as is.
func FollowedBy[T, U any](p Parser[T], next Parser[U]) Parser[U] {
	return New(p.name+" "+next.name, func(s Stream) Result[U] {
		r := p.Parse(s)
		if !r.ok {
			return failed[U](r)
		}
		return next.Parse(r.rest)
	})
}

// Mappend runs p, then other from where p stopped, and combines both
// values. Either failure is returned verbatim.
func Mappend[T Monoid[T]](p, other Parser[T]) Parser[T] {
	return New(p.name+" "+other.name, func(s Stream) Result[T] {
		a := p.Parse(s)
		if !a.ok {
			return a
		}
		return Combine(a, other.Parse(a.rest))
	})
}
