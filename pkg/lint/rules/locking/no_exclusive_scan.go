package locking

import (
	"fmt"
	"slices"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(NoExclusiveScan)
}

// NoExclusiveScan flags FOR EACH EXCLUSIVE-LOCK with no WHERE restriction.
var NoExclusiveScan = lint.RuleDef{
	ID:          "locking/no-exclusive-scan",
	Name:        "locking.no_exclusive_scan",
	Group:       "locking",
	Description: "FOR EACH with EXCLUSIVE-LOCK must restrict the scan with a WHERE clause.",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindFindStatement},
	ConfigKeys:  []string{"allow"},
	Check:       checkNoExclusiveScan,

	Rationale: `An unrestricted FOR EACH under EXCLUSIVE-LOCK locks every record of the
table in turn. On any table of real size this serializes all writers and can
escalate into lock-table overflow. Batch updates should be restricted, or
chunked into scoped transactions.`,

	BadExample: `FOR EACH order EXCLUSIVE-LOCK:
    ASSIGN order.status = "archived".
END.`,

	GoodExample: `FOR EACH order WHERE order.order-date < dCutoff EXCLUSIVE-LOCK:
    ASSIGN order.status = "archived".
END.`,

	Fix: "Add a WHERE restriction, or list intentionally whole-table buffers in the allow option.",
}

func checkNoExclusiveScan(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	find, ok := node.(*ast.FindStatement)
	if !ok || find.Verb != ast.VerbForEach || len(find.Where) > 0 {
		return nil
	}
	lock := find.Lock()
	if lock == nil || lock.Lock != ast.LockExclusive {
		return nil
	}

	allow := lint.GetStringSliceOption(opts, "allow", nil)
	if slices.Contains(allow, find.Buffer) {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "locking/no-exclusive-scan",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("FOR EACH %s EXCLUSIVE-LOCK scans the whole table under lock", find.Buffer),
		Span:     find.Span(),
	}}
}
