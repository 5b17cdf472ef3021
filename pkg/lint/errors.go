package lint

import "fmt"

// DuplicateRuleError reports an attempt to register a rule whose ID is
// already present in the registry.
type DuplicateRuleError struct {
	ID string
}

// Error implements error.
func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("lint: rule %q is already registered", e.ID)
}

// UnknownRuleError reports a rule ID that is not present in the registry.
// Configuration referring to unknown IDs fails with this error before any
// analysis begins; it is never silently ignored.
type UnknownRuleError struct {
	ID string
}

// Error implements error.
func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("lint: unknown rule %q", e.ID)
}
