// Package structure provides lint rules for block structure.
//
// Rules in this package:
//   - structure/block-label: nested iterating blocks need labeled exits
//   - structure/max-nesting: block nesting depth limit
//   - structure/case-otherwise: CASE blocks need an OTHERWISE branch
package structure
