package lint

import (
	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/token"
)

// Finding is one reported rule violation. Findings are immutable once
// produced; the span is copied from the triggering node.
type Finding struct {
	RuleID   string        `json:"rule_id"`
	Severity core.Severity `json:"severity"`
	Message  string        `json:"message"`
	Span     token.Span    `json:"span"`
}

// CheckFunc analyzes one node and returns findings. The context exposes the
// read-only ancestor chain and sibling position; opts carries rule-specific
// options from configuration. Check functions must not mutate the tree and
// must complete in bounded time without blocking on external resources.
type CheckFunc func(node ast.Node, rctx *RuleContext, opts map[string]any) []Finding

// RuleDef is a data-driven rule definition. Rules are stateless - all
// context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g. "locking/no-share-lock"
	Name        string        // Human-readable name, e.g. "locking.no_share_lock"
	Group       string        // Category, e.g. "locking", "naming", "convention"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Kinds       []ast.Kind    // Node kinds the rule inspects
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g. "locking/no-share-lock"
	ID() string

	// Name returns the human-readable name, e.g. "locking.no_share_lock"
	Name() string

	// Group returns the category, e.g. "locking", "naming"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// Kinds returns the node kinds this rule inspects
	Kinds() []ast.Kind

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Check analyzes a node and returns findings
	Check(node ast.Node, rctx *RuleContext, opts map[string]any) []Finding

	// Documentation methods
	Rationale() string   // Why this rule exists
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations
}

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                    { return w.def.ID }
func (w *wrappedRuleDef) Name() string                  { return w.def.Name }
func (w *wrappedRuleDef) Group() string                 { return w.def.Group }
func (w *wrappedRuleDef) Description() string           { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) Kinds() []ast.Kind             { return w.def.Kinds }
func (w *wrappedRuleDef) ConfigKeys() []string          { return w.def.ConfigKeys }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) Check(node ast.Node, rctx *RuleContext, opts map[string]any) []Finding {
	return w.def.Check(node, rctx, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	kinds := make([]string, 0, len(r.Kinds()))
	for _, k := range r.Kinds() {
		kinds = append(kinds, string(k))
	}
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		Kinds:           kinds,
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}
