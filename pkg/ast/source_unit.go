package ast

import "github.com/alextrs/oestandards/pkg/token"

// SourceUnit is one analyzed file: its path, raw text for snippet
// extraction, and the root of the node tree. Immutable after creation.
type SourceUnit struct {
	path string
	text string
	root Node
}

// NewSourceUnit creates a source unit. The root's tree is expected to be
// well-formed (single root, parent wiring set, child spans nested within
// parent spans); use Validate to fail fast on malformed input.
func NewSourceUnit(path, text string, root Node) *SourceUnit {
	return &SourceUnit{path: path, text: text, root: root}
}

// Path returns the source file path.
func (u *SourceUnit) Path() string { return u.path }

// Text returns the raw source text.
func (u *SourceUnit) Text() string { return u.text }

// Root returns the root node of the tree.
func (u *SourceUnit) Root() Node { return u.root }

// Snippet extracts the source text covered by the span, clamped to the
// bounds of the unit's text.
func (u *SourceUnit) Snippet(s token.Span) string {
	start, end := s.Start.Offset, s.End.Offset
	if start < 0 {
		start = 0
	}
	if end > len(u.text) {
		end = len(u.text)
	}
	if start >= end {
		return ""
	}
	return u.text[start:end]
}
