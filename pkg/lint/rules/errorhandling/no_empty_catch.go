package errorhandling

import (
	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(NoEmptyCatch)
}

// NoEmptyCatch flags CATCH blocks with no body statements.
var NoEmptyCatch = lint.RuleDef{
	ID:          "errorhandling/no-empty-catch",
	Name:        "errorhandling.no_empty_catch",
	Group:       "errorhandling",
	Description: "A CATCH with an empty body swallows the error.",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindCatchBlock},
	ConfigKeys:  []string{"allow_commented"},
	Check:       checkNoEmptyCatch,

	Rationale: `An empty CATCH silently discards the error: the transaction is undone but
the caller never learns the operation failed. Errors must be handled, logged,
or rethrown.`,

	BadExample: `CATCH e AS Progress.Lang.Error:
END CATCH.`,

	GoodExample: `CATCH e AS Progress.Lang.Error:
    LOG-MANAGER:WRITE-MESSAGE(e:GetMessage(1), "ERROR").
    UNDO, THROW e.
END CATCH.`,

	Fix: "Handle the error, log it, or rethrow it. Set allow_commented to accept comment-only bodies.",
}

func checkNoEmptyCatch(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	catch, ok := node.(*ast.CatchBlock)
	if !ok || len(catch.Body()) > 0 {
		return nil
	}

	if lint.GetBoolOption(opts, "allow_commented", false) {
		for _, c := range catch.Children() {
			if c.Kind() == ast.KindComment {
				return nil
			}
		}
	}

	return []lint.Finding{{
		RuleID:   "errorhandling/no-empty-catch",
		Severity: core.SeverityWarning,
		Message:  "empty CATCH block swallows the error",
		Span:     catch.Span(),
	}}
}
