package lint

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alextrs/oestandards/pkg/ast"
)

// UnitResult pairs one source unit's result with the error that aborted it,
// if any. A structural error in one unit never affects the others.
type UnitResult struct {
	Result *Result
	Err    error
}

// Runner analyzes many source units concurrently. Units share no mutable
// state; the only shared data is the analyzer's registry and config, which
// are read-only during analysis, so workers need no locking.
type Runner struct {
	analyzer *Analyzer
	workers  int
}

// NewRunner creates a runner. workers <= 0 means one worker per CPU.
func NewRunner(analyzer *Analyzer, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{analyzer: analyzer, workers: workers}
}

// Run analyzes all units with a bounded worker pool and returns one
// UnitResult per unit, in input order. Cancellation propagates to each
// in-flight analysis, which returns its partial result flagged Incomplete.
func (r *Runner) Run(ctx context.Context, units []*ast.SourceUnit) []UnitResult {
	results := make([]UnitResult, len(units))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			res, err := r.analyzer.Analyze(ctx, unit)
			results[i] = UnitResult{Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers record per-unit errors instead of failing the group
	return results
}
