// Package errorhandling provides lint rules for structured error handling.
//
// Rules in this package:
//   - errorhandling/catch-rethrow-bare: CATCH that only rethrows unchanged
//   - errorhandling/no-empty-catch: CATCH with an empty body
//   - errorhandling/no-silent-no-error: NO-ERROR with no follow-up check
package errorhandling
