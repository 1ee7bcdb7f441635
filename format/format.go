// Package format renders lint results: JSON or tab-separated lines for
// programs, an aligned table for people.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/tagcheck/lint"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(results []lint.FileResult) error
}

// New returns the encoder registered under name: "json", "line" or "string".
func New(name string, w io.Writer, opts ...TableOption) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "string":
		return NewTableEncoder(w, opts...), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
