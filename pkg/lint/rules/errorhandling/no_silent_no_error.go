package errorhandling

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(NoSilentNoError)
}

// NoSilentNoError requires a follow-up check after NO-ERROR record access.
var NoSilentNoError = lint.RuleDef{
	ID:          "errorhandling/no-silent-no-error",
	Name:        "errorhandling.no_silent_no_error",
	Group:       "errorhandling",
	Description: "NO-ERROR record access must be followed by an AVAILABLE, LOCKED, or ERROR-STATUS check.",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindFindStatement},
	Check:       checkNoSilentNoError,

	Rationale: `NO-ERROR suppresses the runtime error and parks the condition on
ERROR-STATUS. Code that never inspects ERROR-STATUS or the buffer state
afterwards has silently ignored the failure and will operate on an
unavailable buffer.`,

	BadExample: `FIND FIRST customer WHERE customer.id = iId NO-LOCK NO-ERROR.
DISPLAY customer.name.`,

	GoodExample: `FIND FIRST customer WHERE customer.id = iId NO-LOCK NO-ERROR.
IF NOT AVAILABLE customer THEN
    RETURN ERROR "unknown customer".
DISPLAY customer.name.`,

	Fix: "Test AVAILABLE(buffer), LOCKED(buffer), or ERROR-STATUS:ERROR after the NO-ERROR access.",
}

func checkNoSilentNoError(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	find, ok := node.(*ast.FindStatement)
	if !ok || !find.NoError {
		return nil
	}

	for _, block := range rctx.EnclosingBlocks() {
		if len(block.ChecksFor(ast.CheckAvailable, find.Buffer)) > 0 ||
			len(block.ChecksFor(ast.CheckLocked, find.Buffer)) > 0 ||
			len(block.ChecksFor(ast.CheckErrorStatus, "")) > 0 {
			return nil
		}
	}

	return []lint.Finding{{
		RuleID:   "errorhandling/no-silent-no-error",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("NO-ERROR access on %s is never checked; test AVAILABLE or ERROR-STATUS", find.Buffer),
		Span:     find.Span(),
	}}
}
