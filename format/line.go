package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEncoder writes one tab-separated line per report:
// status, position and value or message.
type LineEncoder struct {
	w      io.Writer
	report Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	if !r.Failed() {
		fmt.Fprintf(&sb, "ok\t%s\t%s\n", r.File, formatValue(r.Value))
		return []byte(sb.String()), nil
	}

	if perr, ok := r.parseError(); ok {
		fmt.Fprintf(&sb, "error\t%s\texpected %s, found %s\n", perr.Pos, perr.Expected, perr.Found)
	} else {
		fmt.Fprintf(&sb, "error\t%s\t%s\n", r.File, r.Err)
	}
	return []byte(sb.String()), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
