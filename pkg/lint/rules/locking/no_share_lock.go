package locking

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(NoShareLock)
}

// NoShareLock flags record access that acquires a SHARE-LOCK, whether
// written out or taken implicitly by omitting the lock keyword.
var NoShareLock = lint.RuleDef{
	ID:          "locking/no-share-lock",
	Name:        "locking.no_share_lock",
	Group:       "locking",
	Description: "Record access must state NO-LOCK or EXCLUSIVE-LOCK explicitly; SHARE-LOCK is never acceptable. CAN-FIND without a lock clause is exempt.",
	Severity:    core.SeverityError,
	Kinds:       []ast.Kind{ast.KindFindStatement},
	Check:       checkNoShareLock,

	Rationale: `SHARE-LOCK is the default lock for FIND and FOR EACH, which makes it easy to
hold unintended locks. Share locks block writers while giving no update
guarantee, so they cause contention without protecting anything. Readers
should take NO-LOCK and writers EXCLUSIVE-LOCK. CAN-FIND is the one
exception: it runs NO-LOCK at runtime, so omitting the keyword there is
harmless and is not flagged. An explicit SHARE-LOCK on CAN-FIND is still
an error.`,

	BadExample: `FIND FIRST customer WHERE customer.id = 42.
FOR EACH order OF customer SHARE-LOCK:
END.`,

	GoodExample: `FIND FIRST customer WHERE customer.id = 42 NO-LOCK.
FOR EACH order OF customer EXCLUSIVE-LOCK:
END.`,

	Fix: "Add NO-LOCK for read-only access, or EXCLUSIVE-LOCK inside a transaction when updating.",
}

func checkNoShareLock(node ast.Node, _ *lint.RuleContext, _ map[string]any) []lint.Finding {
	find, ok := node.(*ast.FindStatement)
	if !ok {
		return nil
	}

	lock := find.Lock()
	switch {
	case lock == nil:
		// CAN-FIND defaults to NO-LOCK at runtime and needs no keyword.
		if find.Verb == ast.VerbCanFind {
			return nil
		}
		return []lint.Finding{{
			RuleID:   "locking/no-share-lock",
			Severity: core.SeverityError,
			Message:  fmt.Sprintf("%s on %s takes an implicit SHARE-LOCK; state NO-LOCK or EXCLUSIVE-LOCK", verbKeyword(find.Verb), find.Buffer),
			Span:     find.Span(),
		}}
	case lock.Lock == ast.LockShare:
		return []lint.Finding{{
			RuleID:   "locking/no-share-lock",
			Severity: core.SeverityError,
			Message:  fmt.Sprintf("%s on %s uses SHARE-LOCK; use NO-LOCK or EXCLUSIVE-LOCK", verbKeyword(find.Verb), find.Buffer),
			Span:     lock.Span(),
		}}
	}
	return nil
}

func verbKeyword(v ast.FindVerb) string {
	switch v {
	case ast.VerbForEach:
		return "FOR EACH"
	case ast.VerbCanFind:
		return "CAN-FIND"
	default:
		return "FIND"
	}
}
