// Package markup checks that the tags in a piece of markup balance.
//
// # Overview
//
// Validate scans raw text for start tags, end tags, self-closing tags and
// comments, then runs two structural checks over the resulting token stream.
// It does not build a tree, look at attribute values or decode entities.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Scanner   │────▶│  Validator  │
//	│  (string)   │     │  (tokens)   │     │  (errors)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// # Scanning
//
// The scanner walks the input split into lines, keeping a zero-based
// (line, column) Cursor. Each iteration jumps to the next '<' and dispatches
// on what follows:
//
//	<!--   comment, skipped up to the next -->
//	</     end tag
//	<      start tag, possibly spanning several lines
//
// Elements whose behaviour is RawText (script and style by default) have
// their body skipped up to the first matching end tag; no token is emitted
// for them. Elements whose behaviour is Void (meta by default) are reported
// as self-closing even without a trailing slash.
//
// A '<' or '</' that does not form a tag is skipped silently, since plain
// text may contain a literal '<'.
//
// # Validation
//
// Two independent passes run over the tokens:
//
//   - adjacency: a close tag directly after an open tag of another name is
//     unexpected.
//   - balance: per tag name, closes pop opens like a stack. A close with no
//     pending open is unexpected, an open left on the stack is unclosed.
//
// Errors from scanning and both passes are sorted by position. Errors at the
// same position keep the order scan, adjacency, balance.
//
// # Positions
//
// Token positions are zero-based and point at the tag's '<'. ValidationError
// positions are one-based. Columns count bytes, not runes.
//
// # Failure
//
// If the scanner ever fails to move forward, Validate returns an error
// wrapping ErrNoProgress. That is a bug in the scanner, not a finding about
// the input, and it is never reported as a ValidationError.
package markup
