package comb

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNoMoreInput is returned by Stream.TakeOne at end of input.
var ErrNoMoreInput = errors.New("no more input")

// Position represents a location in the input.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in the input.
type Span struct {
	Start Position
	End   Position
}

// Stream is an immutable view over the remaining input.
// Advancing a Stream returns a new value; the receiver is never modified.
type Stream struct {
	input string
	pos   Position
	trace bool
}

// NewStream creates a stream positioned at the start of input.
func NewStream(input string) Stream {
	return NewFileStream("", input)
}

// NewFileStream creates a stream whose positions carry the given file name.
func NewFileStream(file, input string) Stream {
	return Stream{
		input: input,
		pos:   Position{File: file, Offset: 0, Line: 1, Column: 1},
	}
}

func (s Stream) Position() Position {
	return s.pos
}

// Remaining returns the unconsumed input.
func (s Stream) Remaining() string {
	return s.input[s.pos.Offset:]
}

func (s Stream) AtEOF() bool {
	return s.pos.Offset >= len(s.input)
}

func (s Stream) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Remaining(), prefix)
}

// Peek returns the next rune without consuming it.
func (s Stream) Peek() (rune, bool) {
	if s.AtEOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.Remaining())
	return r, true
}

// TakeOne returns the next rune and the stream following it.
func (s Stream) TakeOne() (rune, Stream, error) {
	r, ok := s.Peek()
	if !ok {
		return 0, s, ErrNoMoreInput
	}
	return r, s.Tail(1), nil
}

// Tail returns the stream advanced past n runes.
// It stops at end of input.
func (s Stream) Tail(n int) Stream {
	pos := s.pos
	for i := 0; i < n && pos.Offset < len(s.input); i++ {
		r, size := utf8.DecodeRuneInString(s.input[pos.Offset:])
		pos.Offset += size
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return Stream{input: s.input, pos: pos, trace: s.trace}
}

// found describes the next rune for diagnostics.
func (s Stream) found() string {
	r, ok := s.Peek()
	if !ok {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}
