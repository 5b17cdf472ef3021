// Package locking provides lint rules for record locking discipline.
//
// Rules in this package:
//   - locking/no-share-lock: forbid implicit or explicit SHARE-LOCK
//   - locking/no-wait-locked-check: NO-WAIT requires a LOCKED test
//   - locking/prefer-for-first: prefer FOR FIRST over FIND FIRST for reads
//   - locking/transaction-scope: EXCLUSIVE-LOCK requires a transaction block
//   - locking/no-exclusive-scan: forbid unrestricted FOR EACH EXCLUSIVE-LOCK
package locking
