package ast

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/token"
)

// StructuralError reports a node tree that violates the well-formedness
// contract of the parser collaborator: a span escaping its parent's span, a
// broken parent back-reference, or a cycle. It is fatal for the affected
// source unit only.
type StructuralError struct {
	Path   string
	Span   token.Span
	Reason string
}

// Error implements error.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("ast: malformed tree in %s at %s: %s", e.Path, e.Span, e.Reason)
}

// Validate checks the structural preconditions of the unit's node tree:
// every non-root node has its parent back-reference set to its actual
// parent, child spans nest within parent spans, and the tree is acyclic.
// Returns a *StructuralError on the first violation found.
func Validate(u *SourceUnit) error {
	root := u.Root()
	if root == nil {
		return &StructuralError{Path: u.Path(), Reason: "missing root node"}
	}
	if root.Parent() != nil {
		return &StructuralError{Path: u.Path(), Span: root.Span(), Reason: "root node has a parent"}
	}

	seen := make(map[*NodeInfo]bool)
	return validateNode(u.Path(), root, seen)
}

func validateNode(path string, n Node, seen map[*NodeInfo]bool) error {
	ni := n.info()
	if seen[ni] {
		return &StructuralError{Path: path, Span: n.Span(), Reason: "cycle detected"}
	}
	seen[ni] = true

	if err := validateAttributeSpans(path, n); err != nil {
		return err
	}

	for _, c := range n.Children() {
		if c.Parent() != n {
			return &StructuralError{Path: path, Span: c.Span(), Reason: "parent back-reference does not match tree"}
		}
		if !n.Span().Covers(c.Span()) {
			return &StructuralError{
				Path: path,
				Span: c.Span(),
				Reason: fmt.Sprintf("%s span escapes parent %s span %s", c.Kind(), n.Kind(), n.Span()),
			}
		}
		if err := validateNode(path, c, seen); err != nil {
			return err
		}
	}
	return nil
}

// validateAttributeSpans checks the spans a node carries outside its child
// list. BlockStatement branches, buffer-state checks, and handle operations
// each have their own span that rules copy into findings, so they must nest
// within the block's span like any child node.
func validateAttributeSpans(path string, n Node) error {
	b, ok := n.(*BlockStatement)
	if !ok {
		return nil
	}
	for _, br := range b.Branches {
		if !b.Span().Covers(br.Span) {
			return &StructuralError{
				Path:   path,
				Span:   br.Span,
				Reason: fmt.Sprintf("%s branch span escapes its BlockStatement span %s", br.Kind, b.Span()),
			}
		}
	}
	for _, c := range b.Checks {
		if !b.Span().Covers(c.Span) {
			return &StructuralError{
				Path:   path,
				Span:   c.Span,
				Reason: fmt.Sprintf("%s check span escapes its BlockStatement span %s", c.Attr, b.Span()),
			}
		}
	}
	for _, op := range b.HandleOps {
		if !b.Span().Covers(op.Span) {
			return &StructuralError{
				Path:   path,
				Span:   op.Span,
				Reason: fmt.Sprintf("handle %s span escapes its BlockStatement span %s", op.Op, b.Span()),
			}
		}
	}
	return nil
}
