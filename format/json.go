package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tagcheck/lint"
	"github.com/dhamidi/tagcheck/markup"
)

type JSONEncoder struct {
	w       io.Writer
	results []lint.FileResult
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(results []lint.FileResult) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]lint.FileResult, 0, len(e.results))
	for _, r := range e.results {
		if r.Errors == nil {
			r.Errors = []markup.ValidationError{}
		}
		data = append(data, r)
	}
	return json.MarshalIndent(data, "", "  ")
}
