// Package ast defines the abstract syntax representation of an OpenEdge
// ABL compilation unit that the lint engine analyzes.
//
// The tree is not produced here: an external parser materializes the salient
// constructs (record access, lock clauses, CATCH/THROW, declarations, block
// structure, comments) together with line/column spans, typically delivered
// as JSON and decoded by this package's codec. The engine only reads the
// tree; rule evaluation never mutates it.
package ast

import "github.com/alextrs/oestandards/pkg/token"

// Kind identifies the syntactic construct a Node represents.
type Kind string

// Node kinds produced by the parser collaborator.
const (
	KindLockClause          Kind = "LockClause"
	KindCatchBlock          Kind = "CatchBlock"
	KindThrowStatement      Kind = "ThrowStatement"
	KindVariableDeclaration Kind = "VariableDeclaration"
	KindBufferDeclaration   Kind = "BufferDeclaration"
	KindBlockStatement      Kind = "BlockStatement"
	KindFindStatement       Kind = "FindStatement"
	KindComment             Kind = "Comment"
	KindParameter           Kind = "Parameter"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// Kind returns the node's kind tag.
	Kind() Kind
	// Pos returns the position of the first character of the node.
	Pos() token.Position
	// End returns the position of the character immediately after the node.
	End() token.Position
	// Span returns the full source range of the node.
	Span() token.Span
	// Parent returns the enclosing node, or nil for the root.
	// The back-reference is non-owning and used for lookup only.
	Parent() Node
	// Children returns the ordered child nodes.
	Children() []Node

	info() *NodeInfo
}

// NodeInfo is the embedded base for all concrete node types. It carries the
// span, the ordered children, and the non-owning parent back-reference.
type NodeInfo struct {
	span     token.Span
	parent   Node
	children []Node
}

// Pos implements Node.
func (n *NodeInfo) Pos() token.Position { return n.span.Start }

// End implements Node.
func (n *NodeInfo) End() token.Position { return n.span.End }

// Span implements Node.
func (n *NodeInfo) Span() token.Span { return n.span }

// Parent implements Node.
func (n *NodeInfo) Parent() Node { return n.parent }

// Children implements Node.
func (n *NodeInfo) Children() []Node { return n.children }

// SetSpan records the node's source range. Called by tree builders.
func (n *NodeInfo) SetSpan(s token.Span) { n.span = s }

func (n *NodeInfo) info() *NodeInfo { return n }

// Append attaches children to parent in order, wiring the parent
// back-references. Builders and the codec use this; rules never do.
func Append(parent Node, children ...Node) {
	pi := parent.info()
	for _, c := range children {
		if c == nil {
			continue
		}
		c.info().parent = parent
		pi.children = append(pi.children, c)
	}
}

// Walk traverses the tree rooted at n in depth-first pre-order, calling fn
// for each node. If fn returns false the node's subtree is skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}
