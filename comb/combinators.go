package comb

import "strings"

// Choice tries each parser in order from the same starting stream and
// returns the first success. If all fail, the failure lists every
// alternative's expected label and is reported at the starting position.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	names := make([]string, len(parsers))
	for i, p := range parsers {
		names[i] = p.name
	}
	return New("one of "+strings.Join(names, ", "), func(s Stream) Result[T] {
		expected := make([]string, 0, len(parsers))
		for _, p := range parsers {
			r := p.Parse(s)
			if r.ok {
				return r
			}
			expected = append(expected, r.expected)
		}
		if len(expected) == 0 {
			return Failure[T]("nothing", s)
		}
		return Failure[T](strings.Join(expected, ", "), s)
	})
}

// AtLeastOne runs p one or more times and combines the values.
// The first repetition must succeed. Later repetitions run until one
// fails or stops consuming input; that final attempt is dropped and the
// accumulated success is returned.
func AtLeastOne[T Monoid[T]](p Parser[T]) Parser[T] {
	return New(p.name, func(s Stream) Result[T] {
		first := p.Parse(s)
		if !first.ok {
			return first
		}
		values := []T{first.value}
		rest := first.rest
		for {
			next := p.Parse(rest)
			if !next.ok || next.rest.pos.Offset == rest.pos.Offset {
				break
			}
			values = append(values, next.value)
			rest = next.rest
		}
		return Success(reduce(values), rest)
	})
}

// reduce combines values in order. Neighbours are combined pairwise, so
// each value takes part in O(log n) combines rather than O(n).
func reduce[T Monoid[T]](values []T) T {
	for len(values) > 1 {
		n := 0
		for i := 0; i < len(values); i += 2 {
			if i+1 < len(values) {
				values[n] = values[i].Combine(values[i+1])
			} else {
				values[n] = values[i]
			}
			n++
		}
		values = values[:n]
	}
	return values[0]
}

// Many runs p zero or more times and combines the values. It never fails.
func Many[T Monoid[T]](p Parser[T]) Parser[T] {
	some := AtLeastOne(p)
	return New("zero or more "+p.name, func(s Stream) Result[T] {
		if r := some.Parse(s); r.ok {
			return r
		}
		return Success(empty[T](), s)
	})
}

// Assemble runs parsers in sequence and combines their values.
func Assemble[T Monoid[T]](parsers ...Parser[T]) Parser[T] {
	acc := Pure(empty[T]())
	for _, p := range parsers {
		acc = Mappend(acc, p)
	}
	return acc.Label("assemble()")
}

// Collect runs parsers in sequence and returns their values in order.
// Use Erase to collect parsers of different value types.
func Collect[T any](parsers ...Parser[T]) Parser[List[T]] {
	wrapped := make([]Parser[List[T]], len(parsers))
	for i, p := range parsers {
		wrapped[i] = single(p)
	}
	return Assemble(wrapped...)
}

// Erase converts a parser's value to any.
func Erase[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Skip runs p then q and keeps p's value.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return New(p.name, func(s Stream) Result[T] {
		r := p.Parse(s)
		if !r.ok {
			return r
		}
		next := q.Parse(r.rest)
		if !next.ok {
			return failed[T](next)
		}
		return Success(r.value, next.rest)
	})
}

// Between parses open, p and close in sequence and keeps p's value.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Skip(FollowedBy(open, p), close)
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[List[T]] {
	one := single(p)
	return Mappend(one, Many(FollowedBy(sep, one)))
}

// Lazy defers building a parser until it runs, for recursive grammars.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return New("lazy", func(s Stream) Result[T] {
		return build().Parse(s)
	})
}

func single[T any](p Parser[T]) Parser[List[T]] {
	return Map(p, func(v T) List[T] { return List[T]{v} })
}

// TryMap is like Map for conversions that can fail. When f returns an
// error the parse fails at the start of p, expecting p's name.
func TryMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return New(p.name, func(s Stream) Result[U] {
		r := p.Parse(s)
		if !r.ok {
			return failed[U](r)
		}
		v, err := f(r.value)
		if err != nil {
			return Failure[U](p.name, s)
		}
		return Success(v, r.rest)
	})
}
