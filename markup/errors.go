package markup

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoProgress is wrapped by the error Validate returns when the scanner
// stops moving forward.
var ErrNoProgress = errors.New("markup: scanner made no progress")

// Rule names the kind of a ValidationError.
type Rule string

const (
	// UnexpectedClosingTag marks a close tag with no matching open tag.
	UnexpectedClosingTag Rule = "UnexpectedClosingTag"
	// UnclosedTag marks a start tag or raw-text element that is never closed.
	UnclosedTag Rule = "UnclosedTag"
	// UnclosedComment marks a "<!--" with no "-->" after it.
	UnclosedComment Rule = "UnclosedComment"
)

// ValidationError is a finding about the input. Line and Column are one-based.
type ValidationError struct {
	Rule   Rule   `json:"rule"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%d:%d %s (%s)", e.Line, e.Column, e.Text, e.Rule)
}

func newError(rule Rule, name string, at Cursor) ValidationError {
	var text string
	switch rule {
	case UnclosedTag:
		text = fmt.Sprintf("Unclosed %s tag", name)
	case UnclosedComment:
		text = "Unclosed comment"
	default:
		text = fmt.Sprintf("Unexpected %s closing tag", name)
	}

	return ValidationError{
		Rule:   rule,
		Text:   text,
		Line:   at.Line + 1,
		Column: at.Col + 1,
	}
}

func sortErrors(errs []ValidationError) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Line != errs[j].Line {
			return errs[i].Line < errs[j].Line
		}
		return errs[i].Column < errs[j].Column
	})
}

func checkProgress(prev, next Cursor) error {
	if prev.Before(next) {
		return nil
	}
	return fmt.Errorf("%w at line %d, column %d", ErrNoProgress, prev.Line+1, prev.Col+1)
}

// ValidationList is an error holding every finding for one input.
type ValidationList []ValidationError

func (l ValidationList) Error() string {
	switch len(l) {
	case 0:
		return "no validation errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// AsValidationList reports whether err carries a ValidationList and returns it.
func AsValidationList(err error) (ValidationList, bool) {
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}
