package structure

import (
	"fmt"
	"strings"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(BlockLabel)
}

// BlockLabel requires labels on UNDO/LEAVE/NEXT inside nested blocks.
var BlockLabel = lint.RuleDef{
	ID:          "structure/block-label",
	Name:        "structure.block_label",
	Group:       "structure",
	Description: "UNDO, LEAVE, and NEXT in nested iterating blocks must name the target label.",
	Severity:    core.SeverityError,
	Kinds:       []ast.Kind{ast.KindBlockStatement},
	Check:       checkBlockLabel,

	Rationale: `An unlabeled LEAVE or NEXT applies to the innermost enclosing block, and an
unlabeled UNDO to the nearest undoable one. Inside nested loops or a
transaction the target is ambiguous to the reader and fragile under
refactoring. A label pins the behavior.`,

	BadExample: `OUTER:
REPEAT:
    FOR EACH order:
        IF order.canceled THEN NEXT.
    END.
END.`,

	GoodExample: `OUTER:
REPEAT:
    ORDERS:
    FOR EACH order:
        IF order.canceled THEN NEXT ORDERS.
    END.
END.`,

	Fix: "Label the block and name that label on every UNDO, LEAVE, and NEXT.",
}

func checkBlockLabel(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	block, ok := node.(*ast.BlockStatement)
	if !ok || !block.Iterating {
		return nil
	}

	nested := rctx.NearestBlock(func(b *ast.BlockStatement) bool {
		return b.Iterating || b.Transaction
	})
	if nested == nil {
		return nil
	}

	var findings []lint.Finding
	for _, br := range block.Branches {
		if br.Label != "" {
			continue
		}
		findings = append(findings, lint.Finding{
			RuleID:   "structure/block-label",
			Severity: core.SeverityError,
			Message:  fmt.Sprintf("unlabeled %s in a nested %s block is ambiguous", strings.ToUpper(string(br.Kind)), strings.ToUpper(string(block.Type))),
			Span:     br.Span,
		})
	}
	return findings
}
