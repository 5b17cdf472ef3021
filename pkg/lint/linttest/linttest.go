// Package linttest provides helpers for building node trees and running the
// analyzer in rule tests.
package linttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/lint"
	"github.com/alextrs/oestandards/pkg/token"
)

// spanNode is satisfied by every concrete AST node via the embedded
// NodeInfo.
type spanNode interface {
	ast.Node
	SetSpan(token.Span)
}

// Span builds a span from line/column pairs, deriving byte offsets so that
// nesting by line implies nesting by offset.
func Span(startLine, startCol, endLine, endCol int) token.Span {
	return token.Span{
		Start: token.Position{Line: startLine, Column: startCol, Offset: startLine*1000 + startCol},
		End:   token.Position{Line: endLine, Column: endCol, Offset: endLine*1000 + endCol},
	}
}

// At assigns the node a span derived from line/column pairs and returns it.
func At[N spanNode](n N, startLine, startCol, endLine, endCol int) N {
	n.SetSpan(Span(startLine, startCol, endLine, endCol))
	return n
}

// Unit wraps the children in a procedure root block spanning the whole file
// and returns a source unit for it.
func Unit(children ...ast.Node) *ast.SourceUnit {
	root := At(&ast.BlockStatement{Type: ast.BlockProcedure}, 1, 1, 999, 1)
	ast.Append(root, children...)
	return ast.NewSourceUnit("test.p", "", root)
}

// UnitWithRoot returns a source unit for a caller-built root.
func UnitWithRoot(root ast.Node) *ast.SourceUnit {
	return ast.NewSourceUnit("test.p", "", root)
}

// Analyze runs the analyzer over the unit with a clone of the default
// registry, failing the test on analysis errors.
func Analyze(t *testing.T, unit *ast.SourceUnit, cfg *lint.Config) []lint.Finding {
	t.Helper()
	analyzer := lint.NewAnalyzer(lint.Default().Clone(), cfg)
	res, err := analyzer.Analyze(context.Background(), unit)
	require.NoError(t, err)
	return res.Findings
}

// ByRule filters findings down to one rule ID.
func ByRule(findings []lint.Finding, ruleID string) []lint.Finding {
	var out []lint.Finding
	for _, f := range findings {
		if f.RuleID == ruleID {
			out = append(out, f)
		}
	}
	return out
}
