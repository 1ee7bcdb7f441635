package format

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhamidi/tagcheck/lint"
	"github.com/dhamidi/tagcheck/markup"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	errorSymbol = "✖"
	minWidth    = 80
	minMessage  = 20
)

// TableEncoder prints one block per source with findings: an underlined
// header followed by "line:column  ✖  message" rows.
type TableEncoder struct {
	w       io.Writer
	out     *termenv.Output
	color   bool
	width   int
	workDir string
	results []lint.FileResult
}

type TableOption func(*TableEncoder)

// WithColor forces colour on or off. By default colour is used when w is a
// terminal.
func WithColor(on bool) TableOption {
	return func(e *TableEncoder) {
		e.color = on
	}
}

// WithWidth sets the width messages are wrapped to. Zero disables wrapping.
func WithWidth(width int) TableOption {
	return func(e *TableEncoder) {
		e.width = width
	}
}

// WithWorkDir sets the directory headers are made relative to.
func WithWorkDir(dir string) TableOption {
	return func(e *TableEncoder) {
		e.workDir = dir
	}
}

func NewTableEncoder(w io.Writer, opts ...TableOption) *TableEncoder {
	e := &TableEncoder{w: w}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		e.color = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			e.width = max(width, minWidth)
		}
	}
	e.workDir, _ = os.Getwd()

	for _, opt := range opts {
		opt(e)
	}

	profile := termenv.Ascii
	if e.color {
		profile = termenv.ANSI
	}
	e.out = termenv.NewOutput(w, termenv.WithProfile(profile))
	return e
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (e *TableEncoder) Encode(results []lint.FileResult) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TableEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	for _, r := range e.results {
		e.writeSource(&b, r)
	}

	output := strings.TrimSpace(b.String())
	if output == "" {
		return nil, nil
	}
	return []byte("\n" + output + "\n\n"), nil
}

func (e *TableEncoder) writeSource(b *strings.Builder, r lint.FileResult) {
	if len(r.Errors) == 0 {
		return
	}

	errs := slices.Clone(r.Errors)
	slices.SortStableFunc(errs, func(a, b markup.ValidationError) int {
		return cmp.Or(
			cmp.Compare(hasPosition(a), hasPosition(b)),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})

	lineWidth, colWidth, msgWidth := 1, 1, 1
	for _, err := range errs {
		lineWidth = max(lineWidth, len(fmt.Sprint(err.Line)))
		colWidth = max(colWidth, len(fmt.Sprint(err.Column)))
		msgWidth = max(msgWidth, runewidth.StringWidth(err.Text))
	}
	// "  " line ":" column "  " symbol "  "
	prefixWidth := 2 + lineWidth + 1 + colWidth + 2 + runewidth.StringWidth(errorSymbol) + 2
	wrapAt := 0
	if e.width > 0 && prefixWidth+msgWidth > e.width {
		wrapAt = max(e.width-prefixWidth, minMessage)
	}

	symbol := e.out.String(errorSymbol).Foreground(e.out.Color("1")).String()
	indent := strings.Repeat(" ", prefixWidth)

	b.WriteString("\n")
	b.WriteString(e.out.String(e.source(r.Source)).Underline().String())
	b.WriteString("\n")
	for _, err := range errs {
		position := fmt.Sprintf("%*d:%-*d", lineWidth, err.Line, colWidth, err.Column)
		lines := wrapWords(err.Text, wrapAt)
		fmt.Fprintf(b, "  %s  %s  %s\n", e.out.String(position).Faint().String(), symbol, lines[0])
		for _, line := range lines[1:] {
			b.WriteString(indent + line + "\n")
		}
	}
}

// source renders a path relative to the work directory with forward
// slashes. Pseudo sources such as "<stdin>" are kept as they are.
func (e *TableEncoder) source(source string) string {
	if strings.HasPrefix(source, "<") {
		return source
	}
	path := source
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.workDir, path)
	}
	rel, err := filepath.Rel(e.workDir, path)
	if err != nil {
		return filepath.ToSlash(source)
	}
	return filepath.ToSlash(rel)
}

func hasPosition(err markup.ValidationError) int {
	if err.Line > 0 {
		return 1
	}
	return 0
}

// wrapWords breaks text into lines no wider than width, splitting on
// spaces. A single word wider than width gets a line of its own.
func wrapWords(text string, width int) []string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}
