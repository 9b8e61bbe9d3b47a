package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TextEncoder writes values as plain numbers and failures as a message
// followed by the offending source line and a caret under the failure.
type TextEncoder struct {
	w      io.Writer
	report Report

	errColor   *color.Color
	caretColor *color.Color
	posColor   *color.Color
}

func NewTextEncoder(w io.Writer, colored bool) *TextEncoder {
	e := &TextEncoder{
		w:          w,
		errColor:   color.New(color.FgRed, color.Bold),
		caretColor: color.New(color.FgGreen, color.Bold),
		posColor:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{e.errColor, e.caretColor, e.posColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *TextEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	if !r.Failed() {
		sb.WriteString(formatValue(r.Value))
		sb.WriteByte('\n')
		return []byte(sb.String()), nil
	}

	perr, ok := r.parseError()
	if !ok {
		if r.File != "" {
			sb.WriteString(e.posColor.Sprint(r.File + ": "))
		}
		sb.WriteString(e.errColor.Sprint("error: "))
		fmt.Fprintf(&sb, "%s\n", r.Err)
		return []byte(sb.String()), nil
	}

	sb.WriteString(e.posColor.Sprintf("%s: ", perr.Pos))
	sb.WriteString(e.errColor.Sprint("error: "))
	fmt.Fprintf(&sb, "expected %s, found %s\n", perr.Expected, perr.Found)

	line := sourceLine(r.Input, perr.Pos.Line)
	fmt.Fprintf(&sb, "    %s\n", line)
	fmt.Fprintf(&sb, "    %s%s\n", caretIndent(line, perr.Pos.Column), e.caretColor.Sprint("^"))
	return []byte(sb.String()), nil
}

// sourceLine returns the line of input containing the failure. Single-line
// input is returned as is, since its line numbers may refer to a larger
// document.
func sourceLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if len(lines) == 1 {
		return lines[0]
	}
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// caretIndent returns padding reaching column, keeping tabs aligned.
func caretIndent(line string, column int) string {
	var sb strings.Builder
	n := 0
	for _, r := range line {
		if n >= column-1 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		n++
	}
	for ; n < column-1; n++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}
