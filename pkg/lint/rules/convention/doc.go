// Package convention provides lint rules for general coding conventions.
//
// Rules in this package:
//   - convention/require-no-undo: declarations must state NO-UNDO
//   - convention/no-commented-code: comments must not hold disabled code
//   - convention/header-comment: units must open with a header comment
//   - convention/scoped-cleanup: dynamic handles must be deleted in FINALLY
package convention
