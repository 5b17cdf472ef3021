package lint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
)

func TestRunnerPreservesInputOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(findCounter("testing/on", core.SeverityWarning)))
	runner := NewRunner(NewAnalyzer(reg, nil), 4)

	units := make([]*ast.SourceUnit, 6)
	for i := range units {
		u := threeFindUnit()
		units[i] = ast.NewSourceUnit(u.Path(), "", u.Root())
	}

	results := runner.Run(context.Background(), units)
	require.Len(t, results, len(units))
	for i, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Result)
		assert.Equal(t, units[i].Path(), r.Result.Path)
		assert.Len(t, r.Result.Findings, 3)
	}
}

func TestRunnerIsolatesStructuralErrors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(findCounter("testing/on", core.SeverityWarning)))
	runner := NewRunner(NewAnalyzer(reg, nil), 2)

	root := &ast.BlockStatement{Type: ast.BlockProcedure}
	root.SetSpan(span(1, 1, 5, 1))
	stray := &ast.FindStatement{Verb: ast.VerbFind, Buffer: "customer"}
	stray.SetSpan(span(50, 1, 55, 1))
	ast.Append(root, stray)
	broken := ast.NewSourceUnit("broken.p", "", root)

	results := runner.Run(context.Background(), []*ast.SourceUnit{threeFindUnit(), broken, threeFindUnit()})
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Result.Findings, 3)

	require.Error(t, results[1].Err)
	var serr *ast.StructuralError
	assert.ErrorAs(t, results[1].Err, &serr)

	assert.NoError(t, results[2].Err, "a malformed unit does not poison its neighbors")
	assert.Len(t, results[2].Result.Findings, 3)
}

func TestRunnerDefaultWorkers(t *testing.T) {
	runner := NewRunner(NewAnalyzer(NewRegistry(), nil), 0)
	results := runner.Run(context.Background(), []*ast.SourceUnit{threeFindUnit()})
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
