package locking

import (
	"fmt"
	"strings"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(PreferForFirst)
}

// PreferForFirst recommends FOR FIRST/LAST over FIND FIRST/LAST for reads.
var PreferForFirst = lint.RuleDef{
	ID:          "locking/prefer-for-first",
	Name:        "locking.prefer_for_first",
	Group:       "locking",
	Description: "Prefer FOR FIRST/LAST over FIND FIRST/LAST for read-only access.",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindFindStatement},
	Check:       checkPreferForFirst,

	Rationale: `FIND FIRST scopes the record to the enclosing procedure block, which widens
lock and buffer scope beyond the statement. FOR FIRST scopes the buffer to
its own block and releases it on exit. When the record is only read, FOR
FIRST expresses the intent and contains the scope.`,

	BadExample: `FIND FIRST customer WHERE customer.region = "EMEA" NO-LOCK NO-ERROR.
IF AVAILABLE customer THEN
    DISPLAY customer.name.`,

	GoodExample: `FOR FIRST customer WHERE customer.region = "EMEA" NO-LOCK:
    DISPLAY customer.name.
END.`,

	Fix: "Rewrite the FIND FIRST as a FOR FIRST block when the record is not updated.",
}

func checkPreferForFirst(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	find, ok := node.(*ast.FindStatement)
	if !ok || find.Verb != ast.VerbFind || find.Qualifier == "" {
		return nil
	}

	// A LOCKED test on the buffer signals update intent, where FIND is the
	// right tool.
	for _, block := range rctx.EnclosingBlocks() {
		if len(block.ChecksFor(ast.CheckLocked, find.Buffer)) > 0 {
			return nil
		}
	}
	if lock := find.Lock(); lock != nil && lock.Lock == ast.LockExclusive {
		return nil
	}

	q := strings.ToUpper(find.Qualifier)
	return []lint.Finding{{
		RuleID:   "locking/prefer-for-first",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("FIND %s %s widens buffer scope; use FOR %s for read-only access", q, find.Buffer, q),
		Span:     find.Span(),
	}}
}
