package markup

import "maps"

// Behavior says how the scanner treats an element.
type Behavior int

const (
	Normal Behavior = iota
	// RawText elements have their body skipped up to the matching end tag.
	RawText
	// Void elements are self-closing even without a trailing slash.
	Void
)

func (b Behavior) String() string {
	switch b {
	case RawText:
		return "raw-text"
	case Void:
		return "void"
	default:
		return "normal"
	}
}

// ElementRules maps tag names to their behaviour. Names are case-sensitive.
// Missing names are Normal.
type ElementRules map[string]Behavior

// DefaultRules returns a fresh copy of the built-in rules.
func DefaultRules() ElementRules {
	return ElementRules{
		"script": RawText,
		"style":  RawText,
		"meta":   Void,
	}
}

func (r ElementRules) Behavior(name string) Behavior {
	return r[name]
}

type Option func(*Scanner)

// WithRules replaces the element rules entirely.
func WithRules(rules ElementRules) Option {
	return func(s *Scanner) {
		s.rules = maps.Clone(rules)
		if s.rules == nil {
			s.rules = ElementRules{}
		}
	}
}

// WithRawText adds names whose body is not tokenized.
func WithRawText(names ...string) Option {
	return func(s *Scanner) {
		for _, name := range names {
			s.rules[name] = RawText
		}
	}
}

// WithVoid adds names that never need a close tag.
func WithVoid(names ...string) Option {
	return func(s *Scanner) {
		for _, name := range names {
			s.rules[name] = Void
		}
	}
}
