package locking

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(TransactionScope)
}

// TransactionScope requires exclusive record access inside an explicit
// transaction block.
var TransactionScope = lint.RuleDef{
	ID:          "locking/transaction-scope",
	Name:        "locking.transaction_scope",
	Group:       "locking",
	Description: "EXCLUSIVE-LOCK access must sit inside an explicit transaction block.",
	Severity:    core.SeverityError,
	Kinds:       []ast.Kind{ast.KindLockClause},
	Check:       checkTransactionScope,

	Rationale: `Without an explicit DO TRANSACTION the AVM scopes the transaction to the
nearest enclosing block that can carry one, often the whole procedure. Locks
are then held far longer than intended and partial updates roll back more
than expected. An explicit block makes the unit of work visible and minimal.`,

	BadExample: `FIND FIRST customer WHERE customer.id = 42 EXCLUSIVE-LOCK.
ASSIGN customer.status = "active".`,

	GoodExample: `DO TRANSACTION:
    FIND FIRST customer WHERE customer.id = 42 EXCLUSIVE-LOCK.
    ASSIGN customer.status = "active".
END.`,

	Fix: "Wrap the update in a DO TRANSACTION block scoped as tightly as possible.",
}

func checkTransactionScope(node ast.Node, rctx *lint.RuleContext, _ map[string]any) []lint.Finding {
	lock, ok := node.(*ast.LockClause)
	if !ok || lock.Lock != ast.LockExclusive {
		return nil
	}

	if rctx.NearestBlock(func(b *ast.BlockStatement) bool { return b.Transaction }) != nil {
		return nil
	}

	buffer := ""
	if find, ok := lock.Parent().(*ast.FindStatement); ok {
		buffer = find.Buffer
	}
	return []lint.Finding{{
		RuleID:   "locking/transaction-scope",
		Severity: core.SeverityError,
		Message:  fmt.Sprintf("EXCLUSIVE-LOCK on %s outside an explicit transaction block", buffer),
		Span:     lock.Span(),
	}}
}
