package comb

import (
	"github.com/tliron/commonlog"
)

// logger is looked up on use: a package-level logger would be fixed
// before the program registers a commonlog backend.
func logger() commonlog.Logger {
	return commonlog.GetLogger("parsec.comb")
}

// tracing reports whether trace output would be logged at all.
func tracing() bool {
	return logger().AllowLevel(commonlog.Debug)
}

// Trace logs every attempt of p, and of the parsers p runs, at debug level.
// The parse itself is unaffected. When debug logging is off, p runs
// untraced.
func Trace[T any](p Parser[T]) Parser[T] {
	return New(p.name, func(s Stream) Result[T] {
		if s.trace || !tracing() {
			return p.Parse(s)
		}
		s.trace = true
		r := p.Parse(s)
		r.rest.trace = false
		return r
	})
}

func (p Parser[T]) traced(s Stream) Result[T] {
	log := logger()
	log.Debugf("%s: try %s", s.pos, p.name)
	r := p.run(s)
	if r.ok {
		r.span = Span{Start: s.Position(), End: r.rest.Position()}
		log.Debugf("%s: %s matched %q", s.pos, p.name, s.input[s.pos.Offset:r.rest.pos.Offset])
	} else {
		log.Debugf("%s: %s failed at %s, expected %s", s.pos, p.name, r.at, r.expected)
	}
	return r
}
