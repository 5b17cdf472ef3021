package errorhandling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
	"github.com/alextrs/oestandards/pkg/lint/linttest"
)

func catchBlock(children ...ast.Node) *ast.CatchBlock {
	c := linttest.At(&ast.CatchBlock{Variable: "e", ErrorType: "Progress.Lang.Error"}, 10, 1, 14, 10)
	ast.Append(c, children...)
	return c
}

func TestCatchRethrowBare(t *testing.T) {
	t.Run("bare rethrow", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.ThrowStatement{Expr: "e"}, 11, 5, 11, 20))
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/catch-rethrow-bare")
		require.Len(t, findings, 1)
		assert.Equal(t, core.SeverityInfo, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "e")
	})

	t.Run("wrapped rethrow is fine", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.ThrowStatement{Expr: "e", Wrapped: true}, 11, 5, 11, 50))
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/catch-rethrow-bare")
		assert.Empty(t, findings)
	})

	t.Run("rethrow of a different object is fine", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.ThrowStatement{Expr: "oErr"}, 11, 5, 11, 25))
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/catch-rethrow-bare")
		assert.Empty(t, findings)
	})

	t.Run("comment does not hide the bare rethrow", func(t *testing.T) {
		c := catchBlock(
			linttest.At(&ast.Comment{Text: "propagate"}, 11, 5, 11, 20),
			linttest.At(&ast.ThrowStatement{Expr: "e"}, 12, 5, 12, 20),
		)
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/catch-rethrow-bare")
		require.Len(t, findings, 1)
	})
}

func TestNoEmptyCatch(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(catchBlock()), nil), "errorhandling/no-empty-catch")
		require.Len(t, findings, 1)
		assert.Equal(t, core.SeverityWarning, findings[0].Severity)
	})

	t.Run("comment-only body still flagged by default", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.Comment{Text: "ignore stale locks"}, 11, 5, 11, 30))
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/no-empty-catch")
		require.Len(t, findings, 1)
	})

	t.Run("allow_commented accepts comment-only body", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.Comment{Text: "ignore stale locks"}, 11, 5, 11, 30))
		cfg := lint.NewConfig().SetRuleOptions("errorhandling/no-empty-catch", map[string]any{
			"allow_commented": true,
		})
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), cfg), "errorhandling/no-empty-catch")
		assert.Empty(t, findings)
	})

	t.Run("non-empty body is fine", func(t *testing.T) {
		c := catchBlock(linttest.At(&ast.ThrowStatement{Expr: "e", Wrapped: true}, 11, 5, 11, 40))
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(c), nil), "errorhandling/no-empty-catch")
		assert.Empty(t, findings)
	})
}

func TestNoSilentNoError(t *testing.T) {
	noErrorFind := func() *ast.FindStatement {
		return linttest.At(&ast.FindStatement{Verb: ast.VerbFind, Buffer: "customer", NoError: true}, 5, 1, 5, 60)
	}

	t.Run("unchecked no-error", func(t *testing.T) {
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(noErrorFind()), nil), "errorhandling/no-silent-no-error")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "customer")
	})

	t.Run("available check suppresses", func(t *testing.T) {
		block := linttest.At(&ast.BlockStatement{
			Type:   ast.BlockDo,
			Checks: []ast.BufferCheck{{Buffer: "customer", Attr: ast.CheckAvailable, Span: linttest.Span(6, 1, 6, 30)}},
		}, 3, 1, 12, 4)
		ast.Append(block, noErrorFind())
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(block), nil), "errorhandling/no-silent-no-error")
		assert.Empty(t, findings)
	})

	t.Run("error-status check suppresses", func(t *testing.T) {
		block := linttest.At(&ast.BlockStatement{
			Type:   ast.BlockDo,
			Checks: []ast.BufferCheck{{Attr: ast.CheckErrorStatus, Span: linttest.Span(6, 1, 6, 30)}},
		}, 3, 1, 12, 4)
		ast.Append(block, noErrorFind())
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(block), nil), "errorhandling/no-silent-no-error")
		assert.Empty(t, findings)
	})

	t.Run("plain find ignored", func(t *testing.T) {
		find := linttest.At(&ast.FindStatement{Verb: ast.VerbFind, Buffer: "customer"}, 5, 1, 5, 40)
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(find), nil), "errorhandling/no-silent-no-error")
		assert.Empty(t, findings)
	})
}
