package convention

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(ScopedCleanup)
}

// ScopedCleanup requires dynamic handles to be deleted in a FINALLY block.
var ScopedCleanup = lint.RuleDef{
	ID:          "convention/scoped-cleanup",
	Name:        "convention.scoped_cleanup",
	Group:       "convention",
	Description: "Dynamically created handles must be deleted in a FINALLY block.",
	Severity:    core.SeverityError,
	Kinds:       []ast.Kind{ast.KindBlockStatement},
	Check:       checkScopedCleanup,

	Rationale: `CREATE BUFFER, CREATE QUERY, and RUN PERSISTENT allocate handles that
outlive the block on error paths. Only a FINALLY guarantees the DELETE
OBJECT runs when the block is left by an error, so cleanup anywhere else
leaks under exactly the conditions that matter.`,

	BadExample: `CREATE QUERY hQuery.
hQuery:QUERY-PREPARE("FOR EACH customer").
DELETE OBJECT hQuery.`,

	GoodExample: `CREATE QUERY hQuery.
hQuery:QUERY-PREPARE("FOR EACH customer").
FINALLY:
    IF VALID-HANDLE(hQuery) THEN DELETE OBJECT hQuery.
END FINALLY.`,

	Fix: "Move the DELETE OBJECT into a FINALLY block of the creating scope.",
}

func checkScopedCleanup(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	block, ok := node.(*ast.BlockStatement)
	if !ok || block.Type == ast.BlockFinally {
		return nil
	}

	var findings []lint.Finding
	for _, op := range block.HandleOps {
		if op.Op != ast.HandleCreate {
			continue
		}
		if deletedInFinally(block, rctx.Ancestors(), op.Handle) {
			continue
		}
		findings = append(findings, lint.Finding{
			RuleID:   "convention/scoped-cleanup",
			Severity: core.SeverityError,
			Message:  fmt.Sprintf("handle %s created without a DELETE in a FINALLY block", op.Handle),
			Span:     op.Span,
		})
	}
	return findings
}

// deletedInFinally reports whether a FINALLY block in the creating scope or
// any enclosing scope deletes the handle.
func deletedInFinally(block *ast.BlockStatement, ancestors []ast.Node, handle string) bool {
	scopes := []ast.Node{block}
	scopes = append(scopes, ancestors...)
	for _, scope := range scopes {
		for _, child := range scope.Children() {
			fin, ok := child.(*ast.BlockStatement)
			if !ok || fin.Type != ast.BlockFinally {
				continue
			}
			for _, op := range fin.HandleOps {
				if op.Op == ast.HandleDelete && op.Handle == handle {
					return true
				}
			}
		}
	}
	return false
}
