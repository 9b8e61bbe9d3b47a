package comb

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	file  string
	trace bool
}

// WithFile sets the file name reported in positions.
func WithFile(name string) Option {
	return func(c *runConfig) {
		c.file = name
	}
}

// WithTrace logs every parser attempt at debug level. Whether debug
// logging is enabled is checked once, when Run starts.
func WithTrace() Option {
	return func(c *runConfig) {
		c.trace = true
	}
}

// Run parses input with p. Input left over after a success is available
// through Result.Rest.
func Run[T any](p Parser[T], input string, opts ...Option) Result[T] {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	s := NewFileStream(cfg.file, input)
	s.trace = cfg.trace && tracing()
	return p.Parse(s)
}

// RunAll is like Run but fails unless p consumes the whole input.
func RunAll[T any](p Parser[T], input string, opts ...Option) Result[T] {
	return Run(Skip(p, endOfInput), input, opts...)
}

var endOfInput = New("end of input", func(s Stream) Result[struct{}] {
	if !s.AtEOF() {
		return Failure[struct{}]("end of input", s)
	}
	return Success(struct{}{}, s)
})
