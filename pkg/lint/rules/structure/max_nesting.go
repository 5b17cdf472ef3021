package structure

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(MaxNesting)
}

const defaultMaxNesting = 4

// MaxNesting limits block nesting depth.
var MaxNesting = lint.RuleDef{
	ID:          "structure/max-nesting",
	Name:        "structure.max_nesting",
	Group:       "structure",
	Description: "Block nesting must not exceed a configurable depth (default 4).",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindBlockStatement},
	ConfigKeys:  []string{"max"},
	Check:       checkMaxNesting,

	Rationale: `Every nesting level multiplies the state a reader must hold. Deeply nested
DO/REPEAT/FOR pyramids usually hide a routine that wants extracting, and in
ABL they also widen buffer and transaction scope.`,

	BadExample: `FOR EACH customer:
    FOR EACH order OF customer:
        DO TRANSACTION:
            REPEAT:
                DO:
                    /* five levels deep */
                END.
            END.
        END.
    END.
END.`,

	GoodExample: `FOR EACH customer:
    RUN processOrders(BUFFER customer).
END.`,

	Fix: "Extract the inner levels into a procedure or function, or raise the max option where the depth is justified.",
}

func checkMaxNesting(node ast.Node, rctx *lint.RuleContext, opts map[string]any) []lint.Finding {
	block, ok := node.(*ast.BlockStatement)
	if !ok {
		return nil
	}
	max := lint.GetIntOption(opts, "max", defaultMaxNesting)

	depth := len(rctx.EnclosingBlocks()) + 1
	if depth != max+1 {
		// Report once, at the first block past the limit.
		return nil
	}
	return []lint.Finding{{
		RuleID:   "structure/max-nesting",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("block nesting depth %d exceeds the maximum of %d", depth, max),
		Span:     block.Span(),
	}}
}
