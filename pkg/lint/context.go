package lint

import "github.com/alextrs/oestandards/pkg/ast"

// RuleContext exposes read-only surrounding context to a rule's check
// function: the source unit, the ancestor chain of the current node, and
// its sibling position. The analyzer builds one per visited node.
type RuleContext struct {
	unit      *ast.SourceUnit
	ancestors []ast.Node // outermost first, innermost last
	sibling   int
}

// Unit returns the source unit being analyzed.
func (c *RuleContext) Unit() *ast.SourceUnit { return c.unit }

// Ancestors returns the ancestor chain of the current node, outermost first.
// The slice must not be modified.
func (c *RuleContext) Ancestors() []ast.Node { return c.ancestors }

// SiblingIndex returns the node's position among its parent's children,
// or 0 for the root.
func (c *RuleContext) SiblingIndex() int { return c.sibling }

// Nearest returns the innermost ancestor of the given kind, or nil.
func (c *RuleContext) Nearest(kind ast.Kind) ast.Node {
	for i := len(c.ancestors) - 1; i >= 0; i-- {
		if c.ancestors[i].Kind() == kind {
			return c.ancestors[i]
		}
	}
	return nil
}

// EnclosingBlocks returns the BlockStatement ancestors, innermost first.
func (c *RuleContext) EnclosingBlocks() []*ast.BlockStatement {
	var blocks []*ast.BlockStatement
	for i := len(c.ancestors) - 1; i >= 0; i-- {
		if b, ok := c.ancestors[i].(*ast.BlockStatement); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// NearestBlock returns the innermost enclosing BlockStatement satisfying
// pred, or nil. A nil pred matches any block.
func (c *RuleContext) NearestBlock(pred func(*ast.BlockStatement) bool) *ast.BlockStatement {
	for _, b := range c.EnclosingBlocks() {
		if pred == nil || pred(b) {
			return b
		}
	}
	return nil
}
