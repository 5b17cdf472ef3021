// Package lint provides the rule engine that checks OpenEdge ABL source
// units against the documented coding standards.
//
// # Architecture
//
// The package has three moving parts:
//
//  1. Rules: stateless checks over AST nodes, defined as data-driven RuleDef
//     values and registered from init() functions in the rule packages under
//     pkg/lint/rules/.
//  2. Registry: holds registered rules keyed by ID, preserving registration
//     order for deterministic iteration, with per-rule enable/disable state.
//  3. Analyzer: one depth-first traversal per source unit, dispatching every
//     active rule whose kind set matches the visited node, then sorting the
//     accumulated findings by (line, column, rule ID).
//
// # Rule Registration
//
// Rules register themselves when their packages are imported:
//
//	import _ "github.com/alextrs/oestandards/pkg/lint/rules"
//
// # Configuration
//
// Use Config to control which rules run and with what severity:
//
//	cfg := lint.NewConfig()
//	cfg.Disable("locking/prefer-for-first")
//	cfg.SetSeverity("naming/buffer-prefix", core.SeverityError)
//	cfg.SetRuleOptions("structure/max-nesting", map[string]any{"max_depth": 3})
//
// Unknown rule IDs in a Config surface an UnknownRuleError when the config
// is applied, before any analysis begins.
//
// # Creating Custom Rules
//
// Define a RuleDef and register it:
//
//	var ShortNames = lint.RuleDef{
//		ID:          "naming/short-names",
//		Name:        "naming.short_names",
//		Group:       "naming",
//		Description: "Identifiers shorter than three characters.",
//		Severity:    core.SeverityWarning,
//		Kinds:       []ast.Kind{ast.KindVariableDeclaration},
//		Check:       checkShortNames,
//	}
//
//	func init() {
//		lint.MustRegister(ShortNames)
//	}
//
// Check functions must be pure: they never mutate the node tree, and all
// context arrives through the parameters. A rule that panics is contained
// per node and reported as a synthetic internal/rule-failure finding rather
// than aborting the run.
package lint
