package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/alextrs/oestandards/pkg/lint/rules/convention"
	_ "github.com/alextrs/oestandards/pkg/lint/rules/errorhandling"
	_ "github.com/alextrs/oestandards/pkg/lint/rules/locking"
	_ "github.com/alextrs/oestandards/pkg/lint/rules/naming"
	_ "github.com/alextrs/oestandards/pkg/lint/rules/structure"
)
