package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/lint"
	"github.com/alextrs/oestandards/pkg/lint/linttest"
)

func TestBufferPrefix(t *testing.T) {
	decl := func(name string) *ast.BufferDeclaration {
		return linttest.At(&ast.BufferDeclaration{Name: name, Table: "customer"}, 3, 1, 3, 40)
	}

	t.Run("bad name flagged with pattern in message", func(t *testing.T) {
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("customerBuf")), nil), "naming/buffer-prefix")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "^b[A-Z]")
		assert.Contains(t, findings[0].Message, "customerBuf")
	})

	t.Run("conventional name passes", func(t *testing.T) {
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("bCustomer")), nil), "naming/buffer-prefix")
		assert.Empty(t, findings)
	})

	t.Run("custom pattern is applied and cited", func(t *testing.T) {
		cfg := lint.NewConfig().SetRuleOptions("naming/buffer-prefix", map[string]any{
			"pattern": "^buf_",
		})
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("bCustomer")), cfg), "naming/buffer-prefix")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "^buf_")

		findings = linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("buf_customer")), cfg), "naming/buffer-prefix")
		assert.Empty(t, findings)
	})
}

func TestVariablePrefix(t *testing.T) {
	decl := func(name, dataType string) *ast.VariableDeclaration {
		return linttest.At(&ast.VariableDeclaration{Name: name, DataType: dataType, NoUndo: true}, 3, 1, 3, 50)
	}

	tests := []struct {
		name     string
		variable string
		dataType string
		want     int
	}{
		{"unprefixed character", "name", "character", 1},
		{"prefixed character", "cName", "character", 0},
		{"unprefixed integer", "count", "integer", 1},
		{"prefixed integer", "iCount", "integer", 0},
		{"prefix without capital", "counter", "character", 1},
		{"unknown type skipped", "thing", "CLASS Progress.Lang.Object", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := linttest.Unit(decl(tt.variable, tt.dataType))
			findings := linttest.ByRule(linttest.Analyze(t, unit, nil), "naming/variable-prefix")
			assert.Len(t, findings, tt.want)
		})
	}

	t.Run("temp-table declarations skipped", func(t *testing.T) {
		d := decl("ttOrder", "")
		d.TempTable = true
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(d), nil), "naming/variable-prefix")
		assert.Empty(t, findings)
	})

	t.Run("prefixes option overrides one type", func(t *testing.T) {
		cfg := lint.NewConfig().SetRuleOptions("naming/variable-prefix", map[string]any{
			"prefixes": map[string]any{"character": "ch"},
		})
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("chName", "character")), cfg), "naming/variable-prefix")
		assert.Empty(t, findings)

		findings = linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("cName", "character")), cfg), "naming/variable-prefix")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, `"ch"`)
	})

	t.Run("malformed prefixes option falls back to defaults", func(t *testing.T) {
		cfg := lint.NewConfig().SetRuleOptions("naming/variable-prefix", map[string]any{
			"prefixes": "not-a-map",
		})
		findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("cName", "character")), cfg), "naming/variable-prefix")
		assert.Empty(t, findings)

		findings = linttest.ByRule(linttest.Analyze(t, linttest.Unit(decl("name", "character")), cfg), "naming/variable-prefix")
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, `"c"`)
	})
}

func TestParameterPrefix(t *testing.T) {
	param := func(name string, dir ast.Direction) *ast.Parameter {
		return linttest.At(&ast.Parameter{Name: name, DataType: "integer", Direction: dir}, 2, 1, 2, 60)
	}

	tests := []struct {
		name string
		node *ast.Parameter
		want int
	}{
		{"input without prefix", param("customerId", ast.DirInput), 1},
		{"input with prefix", param("ipCustomerId", ast.DirInput), 0},
		{"output with prefix", param("opName", ast.DirOutput), 0},
		{"input-output with prefix", param("iopTotal", ast.DirInputOutput), 0},
		{"output with wrong prefix", param("ipName", ast.DirOutput), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := linttest.ByRule(linttest.Analyze(t, linttest.Unit(tt.node), nil), "naming/parameter-prefix")
			assert.Len(t, findings, tt.want)
		})
	}
}
