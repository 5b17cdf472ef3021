package errorhandling

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(CatchRethrowBare)
}

// CatchRethrowBare flags CATCH blocks whose only effect is rethrowing the
// caught error unchanged.
var CatchRethrowBare = lint.RuleDef{
	ID:          "errorhandling/catch-rethrow-bare",
	Name:        "errorhandling.catch_rethrow_bare",
	Group:       "errorhandling",
	Description: "A CATCH that only rethrows the caught object unchanged adds nothing.",
	Severity:    core.SeverityInfo,
	Kinds:       []ast.Kind{ast.KindCatchBlock},
	Check:       checkCatchRethrowBare,

	Rationale: `With ROUTINE-LEVEL ON ERROR UNDO, THROW in effect, an unhandled error
already propagates to the caller. A CATCH whose body is a single bare
UNDO, THROW of the caught object reproduces that default with extra code.
Either remove the block or make it add context.`,

	BadExample: `CATCH e AS Progress.Lang.Error:
    UNDO, THROW e.
END CATCH.`,

	GoodExample: `CATCH e AS Progress.Lang.Error:
    UNDO, THROW NEW OrderError("order update failed", e).
END CATCH.`,

	Fix: "Delete the CATCH block, or wrap the error with context before rethrowing.",
}

func checkCatchRethrowBare(node ast.Node, _ *lint.RuleContext, _ map[string]any) []lint.Finding {
	catch, ok := node.(*ast.CatchBlock)
	if !ok {
		return nil
	}

	body := catch.Body()
	if len(body) != 1 {
		return nil
	}
	throw, ok := body[0].(*ast.ThrowStatement)
	if !ok || throw.Wrapped || throw.Expr != catch.Variable {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "errorhandling/catch-rethrow-bare",
		Severity: core.SeverityInfo,
		Message:  fmt.Sprintf("CATCH only rethrows %s unchanged; remove it or add handling", catch.Variable),
		Span:     catch.Span(),
	}}
}
