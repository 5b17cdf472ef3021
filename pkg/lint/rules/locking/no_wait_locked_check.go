package locking

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(NoWaitLockedCheck)
}

// NoWaitLockedCheck requires a LOCKED test after NO-WAIT record access.
var NoWaitLockedCheck = lint.RuleDef{
	ID:          "locking/no-wait-locked-check",
	Name:        "locking.no_wait_locked_check",
	Group:       "locking",
	Description: "NO-WAIT record access must test LOCKED on the buffer, before any AVAILABLE test.",
	Severity:    core.SeverityError,
	Kinds:       []ast.Kind{ast.KindLockClause},
	Check:       checkNoWaitLockedCheck,

	Rationale: `A FIND with NO-WAIT that hits a locked record fails silently: the buffer is
simply not available. Testing AVAILABLE alone cannot distinguish a locked
record from a missing one, so the lock conflict is misreported as not-found.
Only LOCKED(buffer) detects the conflict, and it must be tested first.`,

	BadExample: `FIND FIRST customer EXCLUSIVE-LOCK NO-WAIT NO-ERROR.
IF NOT AVAILABLE customer THEN
    RETURN ERROR "customer not found".`,

	GoodExample: `FIND FIRST customer EXCLUSIVE-LOCK NO-WAIT NO-ERROR.
IF LOCKED customer THEN
    RETURN ERROR "customer record is in use".
IF NOT AVAILABLE customer THEN
    RETURN ERROR "customer not found".`,

	Fix: "Test LOCKED(buffer) immediately after the NO-WAIT access, before testing AVAILABLE.",
}

func checkNoWaitLockedCheck(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	lock, ok := node.(*ast.LockClause)
	if !ok || !lock.NoWait {
		return nil
	}

	buffer := ""
	if find, ok := lock.Parent().(*ast.FindStatement); ok {
		buffer = find.Buffer
	}

	for _, block := range rctx.EnclosingBlocks() {
		locked := block.ChecksFor(ast.CheckLocked, buffer)
		if len(locked) == 0 {
			continue
		}
		// A LOCKED test exists; any AVAILABLE test on the same buffer
		// must come after it.
		first := locked[0].Span.Start
		for _, avail := range block.ChecksFor(ast.CheckAvailable, buffer) {
			if avail.Span.Start.Before(first) {
				return []lint.Finding{{
					RuleID:   "locking/no-wait-locked-check",
					Severity: core.SeverityError,
					Message:  fmt.Sprintf("AVAILABLE is tested before LOCKED after NO-WAIT access on %s", buffer),
					Span:     avail.Span,
				}}
			}
		}
		return nil
	}

	return []lint.Finding{{
		RuleID:   "locking/no-wait-locked-check",
		Severity: core.SeverityError,
		Message:  fmt.Sprintf("NO-WAIT access on %s without a LOCKED test in the enclosing block", buffer),
		Span:     lock.Span(),
	}}
}
