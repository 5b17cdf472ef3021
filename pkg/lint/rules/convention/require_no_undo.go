package convention

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(RequireNoUndo)
}

// RequireNoUndo flags variable and temp-table declarations without NO-UNDO.
var RequireNoUndo = lint.RuleDef{
	ID:          "convention/require-no-undo",
	Name:        "convention.require_no_undo",
	Group:       "convention",
	Description: "Variable and temp-table definitions must state NO-UNDO.",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindVariableDeclaration},
	Check:       checkRequireNoUndo,

	Rationale: `Without NO-UNDO every assignment to the variable is journalled for
transaction rollback. Almost no variable needs its value undone, and the
journalling cost on temp-tables in particular is substantial.`,

	BadExample: `DEFINE VARIABLE cName AS CHARACTER.
DEFINE TEMP-TABLE ttOrder LIKE order.`,

	GoodExample: `DEFINE VARIABLE cName AS CHARACTER NO-UNDO.
DEFINE TEMP-TABLE ttOrder NO-UNDO LIKE order.`,

	Fix: "Append NO-UNDO to the definition.",
}

func checkRequireNoUndo(node ast.Node, _ *lint.RuleContext, _ map[string]any) []lint.Finding {
	decl, ok := node.(*ast.VariableDeclaration)
	if !ok || decl.NoUndo {
		return nil
	}

	what := "variable"
	if decl.TempTable {
		what = "temp-table"
	}
	return []lint.Finding{{
		RuleID:   "convention/require-no-undo",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("%s %q defined without NO-UNDO", what, decl.Name),
		Span:     decl.Span(),
	}}
}
