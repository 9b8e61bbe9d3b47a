package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/parsec/comb"
)

func parseFailure(file string, line, column, offset int, expected, found string) error {
	return &comb.ParseError{
		Pos:      comb.Position{File: file, Line: line, Column: column, Offset: offset},
		Expected: expected,
		Found:    found,
	}
}

func TestTextEncoder(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name:     "value",
			report:   Report{Input: "1 + 2", Value: 3},
			expected: "3\n",
		},
		{
			name:     "fraction",
			report:   Report{Input: "7 / 2", Value: 3.5},
			expected: "3.5\n",
		},
		{
			name:   "parse error",
			report: Report{Input: "1 +", Err: parseFailure("", 1, 3, 2, "end of input", "'+'")},
			expected: "1:3: error: expected end of input, found '+'\n" +
				"    1 +\n" +
				"      ^\n",
		},
		{
			name: "parse error in document",
			report: Report{
				File:  "doc.calc",
				Input: "1\n\t2 *",
				Err:   parseFailure("doc.calc", 2, 4, 5, "end of input", "'*'"),
			},
			expected: "doc.calc:2:4: error: expected end of input, found '*'\n" +
				"    \t2 *\n" +
				"    \t  ^\n",
		},
		{
			name:     "other error",
			report:   Report{File: "ops.toml", Err: errors.New("boom")},
			expected: "ops.toml: error: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextEncoder(&buf, false).Encode(tt.report); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf)

	reports := []Report{
		{File: "a.calc", Input: "2^10", Value: 1024},
		{Input: "1 +", Err: parseFailure("", 1, 3, 2, "end of input", "'+'")},
		{File: "b.calc", Err: errors.New("boom")},
	}
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			t.Fatal(err)
		}
	}

	expected := "ok\ta.calc\t1024\n" +
		"error\t1:3\texpected end of input, found '+'\n" +
		"error\tb.calc\tboom\n"
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEncoder(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected map[string]any
	}{
		{
			name:   "value",
			report: Report{File: "a.calc", Input: "0 * 5", Value: 0},
			expected: map[string]any{
				"file":  "a.calc",
				"input": "0 * 5",
				"value": 0.0,
			},
		},
		{
			name:   "parse error",
			report: Report{Input: "1 +", Err: parseFailure("", 1, 3, 2, "end of input", "'+'")},
			expected: map[string]any{
				"input": "1 +",
				"error": map[string]any{
					"message":  "1:3: expected end of input, found '+'",
					"line":     1.0,
					"column":   3.0,
					"offset":   2.0,
					"expected": "end of input",
					"found":    "'+'",
				},
			},
		},
		{
			name:   "other error",
			report: Report{Input: "", Err: errors.New("boom")},
			expected: map[string]any{
				"input": "",
				"error": map[string]any{"message": "boom"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewJSONEncoder(&buf).Encode(tt.report); err != nil {
				t.Fatal(err)
			}
			if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
				t.Error("missing trailing newline")
			}

			var got map[string]any
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodersImplementEncoder(t *testing.T) {
	var buf bytes.Buffer
	for _, enc := range []Encoder{NewTextEncoder(&buf, true), NewJSONEncoder(&buf), NewLineEncoder(&buf)} {
		if _, err := enc.MarshalText(); err != nil {
			t.Errorf("%T: %v", enc, err)
		}
	}
}
