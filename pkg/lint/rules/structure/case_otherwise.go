package structure

import (
	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(CaseOtherwise)
}

// CaseOtherwise requires an OTHERWISE branch on CASE blocks.
var CaseOtherwise = lint.RuleDef{
	ID:          "structure/case-otherwise",
	Name:        "structure.case_otherwise",
	Group:       "structure",
	Description: "CASE blocks must carry an OTHERWISE branch.",
	Severity:    core.SeverityInfo,
	Kinds:       []ast.Kind{ast.KindBlockStatement},
	Check:       checkCaseOtherwise,

	Rationale: `A CASE without OTHERWISE silently does nothing for unexpected values. New
status codes slip through unhandled, and the reader cannot tell whether
that silence is intended.`,

	BadExample: `CASE order.status:
    WHEN "open"   THEN RUN processOpen.
    WHEN "closed" THEN RUN processClosed.
END CASE.`,

	GoodExample: `CASE order.status:
    WHEN "open"   THEN RUN processOpen.
    WHEN "closed" THEN RUN processClosed.
    OTHERWISE UNDO, THROW NEW OrderError("unknown status: " + order.status).
END CASE.`,

	Fix: "Add an OTHERWISE branch, even if it only raises an error for unexpected values.",
}

func checkCaseOtherwise(node ast.Node, _ *lint.RuleContext, _ map[string]any) []lint.Finding {
	block, ok := node.(*ast.BlockStatement)
	if !ok || block.Type != ast.BlockCase || block.HasOtherwise {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "structure/case-otherwise",
		Severity: core.SeverityInfo,
		Message:  "CASE block has no OTHERWISE branch",
		Span:     block.Span(),
	}}
}
