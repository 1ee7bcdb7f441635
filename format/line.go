package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tagcheck/lint"
)

// LineEncoder writes one tab-separated record per finding:
//
//	source	line	column	rule	text
//
// Files without findings produce no output.
type LineEncoder struct {
	w       io.Writer
	results []lint.FileResult
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(results []lint.FileResult) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, r := range e.results {
		for _, err := range r.Errors {
			fmt.Fprintf(&sb, "%s\t%d\t%d\t%s\t%s\n", r.Source, err.Line, err.Column, err.Rule, err.Text)
		}
	}
	return []byte(sb.String()), nil
}
