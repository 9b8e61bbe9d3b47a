// Package format renders evaluation reports for terminals and tools.
package format

import (
	"encoding"
	"errors"

	"github.com/dhamidi/parsec/comb"
)

// Report is the outcome of evaluating one input.
type Report struct {
	File  string
	Input string
	Value float64
	Err   error
}

// Failed reports whether the evaluation failed.
func (r Report) Failed() bool {
	return r.Err != nil
}

// parseError returns the report's parse failure, if any.
func (r Report) parseError() (*comb.ParseError, bool) {
	var perr *comb.ParseError
	if errors.As(r.Err, &perr) {
		return perr, true
	}
	return nil, false
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(report Report) error
}
