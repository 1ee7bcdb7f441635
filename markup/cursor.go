package markup

import "strings"

// Cursor is a zero-based position in input split on '\n'. Col may equal the
// length of its line.
type Cursor struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Before reports whether c comes strictly before o.
func (c Cursor) Before(o Cursor) bool {
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Col < o.Col
}

// FindNext scans forward from start for the next position with content left
// on its line. With a non-empty term it instead returns the position of the
// next occurrence of term. Lines after the first are searched from column 0.
// When nothing is found the result is Cursor{Line: len(lines)}.
func FindNext(lines []string, start Cursor, term string) Cursor {
	for i := max(start.Line, 0); i < len(lines); i++ {
		line := lines[i]
		if len(line) == 0 {
			continue
		}

		col := 0
		if i == start.Line {
			col = start.Col
		}
		if col >= len(line) {
			continue
		}

		if term == "" {
			return Cursor{Line: i, Col: col}
		}
		if idx := strings.Index(line[col:], term); idx != -1 {
			return Cursor{Line: i, Col: col + idx}
		}
	}
	return Cursor{Line: len(lines)}
}

// document keeps both the split lines and the original text so a match can
// run against "the rest of the input" without joining lines again.
type document struct {
	src    string
	lines  []string
	starts []int
}

func newDocument(src string) *document {
	lines := strings.Split(src, "\n")
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}
	return &document{src: src, lines: lines, starts: starts}
}

func (d *document) end() Cursor {
	return Cursor{Line: len(d.lines)}
}

func (d *document) inBounds(c Cursor) bool {
	return c.Line < len(d.lines)
}

// rest returns the input from c to the end, lines joined by '\n'.
func (d *document) rest(c Cursor) string {
	return d.src[d.starts[c.Line]+c.Col:]
}

// restOfLine returns the input from c to the end of its line.
func (d *document) restOfLine(c Cursor) string {
	return d.lines[c.Line][c.Col:]
}

// advance moves c past consumed, which must be a prefix of d.rest(c).
func (d *document) advance(c Cursor, consumed string) Cursor {
	nl := strings.LastIndexByte(consumed, '\n')
	if nl == -1 {
		return Cursor{Line: c.Line, Col: c.Col + len(consumed)}
	}
	return Cursor{
		Line: c.Line + strings.Count(consumed, "\n"),
		Col:  len(consumed) - nl - 1,
	}
}
