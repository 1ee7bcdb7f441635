package markup

import "strings"

type state int

const (
	stateDefault   state = iota // between constructs, looking for '<'
	stateInTag                  // at a '<' that is not a comment
	stateInComment              // at "<!--"
	stateInRawText              // just past a raw-text element's start tag
)

func (s state) String() string {
	switch s {
	case stateDefault:
		return "Default"
	case stateInTag:
		return "InTag"
	case stateInComment:
		return "InComment"
	case stateInRawText:
		return "InRawText"
	default:
		return "Unknown"
	}
}

// Scanner turns markup into tokens and scan-time errors. A Scanner is used
// for one input and is not safe for concurrent use.
type Scanner struct {
	doc    *document
	rules  ElementRules
	state  state
	cursor Cursor

	// mark is where the construct being scanned started.
	mark Cursor
	// raw is the start tag of the raw-text element being skipped.
	raw Token

	tags []Token
	errs []ValidationError
}

func NewScanner(input string, opts ...Option) *Scanner {
	s := &Scanner{
		doc:   newDocument(input),
		rules: DefaultRules(),
		tags:  []Token{},
		errs:  []ValidationError{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan runs the scanner to the end of the input.
func (s *Scanner) Scan() error {
	for s.doc.inBounds(FindNext(s.doc.lines, s.cursor, "")) {
		prev := s.cursor
		s.next()
		if err := checkProgress(prev, s.cursor); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) Tags() []Token {
	return s.tags
}

func (s *Scanner) Errors() []ValidationError {
	return s.errs
}

// next consumes one construct, running from stateDefault until the scanner
// is back in stateDefault.
func (s *Scanner) next() {
	s.state = s.scanDefault()
	for s.state != stateDefault {
		switch s.state {
		case stateInTag:
			s.state = s.scanTag()
		case stateInComment:
			s.state = s.scanComment()
		case stateInRawText:
			s.state = s.scanRawText()
		}
	}
}

func (s *Scanner) scanDefault() state {
	at := FindNext(s.doc.lines, s.cursor, "<")
	if !s.doc.inBounds(at) {
		s.cursor = at
		return stateDefault
	}

	s.mark = at
	s.cursor = at
	if strings.HasPrefix(s.doc.restOfLine(at), commentOpen) {
		return stateInComment
	}
	return stateInTag
}

func (s *Scanner) scanComment() state {
	s.apply(matchComment(s.doc, s.mark))
	return stateDefault
}

func (s *Scanner) scanTag() state {
	if strings.HasPrefix(s.doc.restOfLine(s.cursor), endTagOpen) {
		s.apply(matchEndTag(s.doc, s.cursor))
		return stateDefault
	}

	st := matchStartTag(s.doc, s.cursor, s.rules)
	s.apply(st)
	if st.rawText != nil {
		s.raw = *st.rawText
		return stateInRawText
	}
	return stateDefault
}

func (s *Scanner) scanRawText() state {
	s.apply(matchRawText(s.doc, s.cursor, s.raw))
	return stateDefault
}

func (s *Scanner) apply(st step) {
	if st.tag != nil {
		s.tags = append(s.tags, *st.tag)
	}
	if st.err != nil {
		s.errs = append(s.errs, *st.err)
	}
	s.cursor = st.next
}
