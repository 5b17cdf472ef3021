// Package naming provides lint rules for identifier naming conventions.
//
// Rules in this package:
//   - naming/buffer-prefix: buffer names match a configurable pattern
//   - naming/variable-prefix: variables carry the type prefix
//   - naming/parameter-prefix: parameters carry the direction prefix
package naming
