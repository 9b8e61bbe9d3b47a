package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w      io.Writer
	report Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.Marshal(e.buildReportData())
}

type jsonReport struct {
	File  string     `json:"file,omitempty"`
	Input string     `json:"input"`
	Value *float64   `json:"value,omitempty"`
	Error *jsonError `json:"error,omitempty"`
}

type jsonError struct {
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Expected string `json:"expected,omitempty"`
	Found    string `json:"found,omitempty"`
}

func (e *JSONEncoder) buildReportData() jsonReport {
	r := e.report
	data := jsonReport{
		File:  r.File,
		Input: r.Input,
	}
	if !r.Failed() {
		v := r.Value
		data.Value = &v
		return data
	}

	data.Error = &jsonError{Message: r.Err.Error()}
	if perr, ok := r.parseError(); ok {
		data.Error.Line = perr.Pos.Line
		data.Error.Column = perr.Pos.Column
		data.Error.Offset = perr.Pos.Offset
		data.Error.Expected = perr.Expected
		data.Error.Found = perr.Found
	}
	return data
}
