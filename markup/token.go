package markup

import "fmt"

type TokenKind int

const (
	Open TokenKind = iota
	Close
	SelfClosing
)

func (k TokenKind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	case SelfClosing:
		return "self-closing"
	default:
		return "unknown"
	}
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TokenKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*k = Open
	case "close":
		*k = Close
	case "self-closing":
		*k = SelfClosing
	default:
		return fmt.Errorf("unknown token kind %q", text)
	}
	return nil
}

// Token is a tag found in the input. Line and Col are zero-based and point
// at the tag's '<'. Name is kept exactly as written.
type Token struct {
	Kind TokenKind `json:"type"`
	Name string    `json:"name"`
	Line int       `json:"line"`
	Col  int       `json:"col"`
}

func (t Token) Cursor() Cursor {
	return Cursor{Line: t.Line, Col: t.Col}
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %s", t.Line+1, t.Col+1, t.Kind, t.Name)
}
