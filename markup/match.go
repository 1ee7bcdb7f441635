package markup

import (
	"regexp"
	"strings"
)

// space is the whitespace accepted between attributes: ASCII space plus
// vertical tab and the Unicode space separators.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	startTagPattern = regexp.MustCompile(`^<([-A-Za-z0-9_]+)((?:[` + space + `]+[\w@:.-]+(?:[` + space + `]*=[` + space + `]*(?:"[^"]*"|'[^']*'|[^>` + space + `]+))?)*)[` + space + `]*(/?)>`)
	endTagPattern   = regexp.MustCompile(`^</([-A-Za-z0-9_]+)[^>]*>`)
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	endTagOpen   = "</"
)

// step is the outcome of one matcher: at most one token, at most one error,
// and where scanning resumes.
type step struct {
	tag  *Token
	err  *ValidationError
	next Cursor

	// rawText is set instead of tag when a start tag opens a raw-text
	// element whose body still has to be skipped.
	rawText *Token
}

// matchComment skips a comment whose "<!--" starts at marker.
func matchComment(doc *document, marker Cursor) step {
	from := Cursor{Line: marker.Line, Col: marker.Col + len(commentOpen)}
	found := FindNext(doc.lines, from, commentClose)
	if doc.inBounds(found) {
		return step{next: Cursor{Line: found.Line, Col: found.Col + len(commentClose)}}
	}

	err := newError(UnclosedComment, "", marker)
	return step{err: &err, next: doc.end()}
}

// matchEndTag matches "</name ...>" on the line at at. A "</" that is not an
// end tag is stepped over.
func matchEndTag(doc *document, at Cursor) step {
	var s step
	col := at.Col + len(endTagOpen)
	if m := endTagPattern.FindStringSubmatch(doc.restOfLine(at)); m != nil {
		s.tag = &Token{Kind: Close, Name: m[1], Line: at.Line, Col: at.Col}
		col = at.Col + len(m[0])
	}
	s.next = FindNext(doc.lines, Cursor{Line: at.Line, Col: col}, "")
	return s
}

// matchStartTag matches a start tag at at, which may run over several lines.
func matchStartTag(doc *document, at Cursor, rules ElementRules) step {
	m := startTagPattern.FindStringSubmatch(doc.rest(at))
	if m == nil {
		return step{next: FindNext(doc.lines, Cursor{Line: at.Line, Col: at.Col + 1}, "")}
	}

	tag := Token{Kind: Open, Name: m[1], Line: at.Line, Col: at.Col}
	next := doc.advance(at, m[0])

	switch {
	case m[3] == "/":
		tag.Kind = SelfClosing
	case rules.Behavior(tag.Name) == RawText:
		return step{rawText: &tag, next: next}
	case rules.Behavior(tag.Name) == Void:
		tag.Kind = SelfClosing
	}
	return step{tag: &tag, next: next}
}

// matchRawText skips the body of the raw-text element opened by open,
// starting at from, up to and including the first "</name...>".
func matchRawText(doc *document, from Cursor, open Token) step {
	body := doc.rest(from)
	closer := endTagOpen + open.Name
	if i := strings.Index(body, closer); i != -1 {
		end := i + len(closer)
		if j := strings.IndexByte(body[end:], '>'); j != -1 {
			return step{next: doc.advance(from, body[:end+j+1])}
		}
	}

	err := newError(UnclosedTag, open.Name, open.Cursor())
	return step{err: &err, next: doc.end()}
}
