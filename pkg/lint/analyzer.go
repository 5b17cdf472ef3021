package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
)

// RuleFailureID is the synthetic rule identifier used when a rule's check
// function itself fails. The failure is contained per rule per node and
// reported as a finding so one broken rule never invalidates a run.
const RuleFailureID = "internal/rule-failure"

// Result is the outcome of analyzing one source unit: the findings sorted
// by (line, column, rule ID). Incomplete marks a run cut short by
// cancellation; such a result holds the findings accumulated so far.
type Result struct {
	Path       string    `json:"path"`
	Findings   []Finding `json:"findings"`
	Incomplete bool      `json:"incomplete,omitempty"`
}

// Analyzer runs the active rules of a registry against source units. It is
// stateless between runs and safe for concurrent use: the registry and
// config are read-only during analysis.
type Analyzer struct {
	registry *Registry
	config   *Config
}

// NewAnalyzer creates an analyzer. A nil registry means the global default
// registry; a nil config means all rules enabled at default severity.
func NewAnalyzer(registry *Registry, config *Config) *Analyzer {
	if registry == nil {
		registry = Default()
	}
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{registry: registry, config: config}
}

// Analyze performs one depth-first traversal of the unit's node tree,
// invoking every active rule whose kind set matches the visited node, and
// returns the findings sorted deterministically.
//
// The structural precondition is checked first; a malformed tree fails with
// a *ast.StructuralError and only this unit is affected. Cancellation is
// cooperative: the context is checked between top-level children of the
// root, and a canceled run returns the partial result flagged Incomplete
// rather than an error.
func (a *Analyzer) Analyze(ctx context.Context, unit *ast.SourceUnit) (*Result, error) {
	if unit == nil {
		return nil, fmt.Errorf("lint: nil source unit")
	}
	if err := ast.Validate(unit); err != nil {
		return nil, err
	}

	byKind := a.indexActiveRules()
	result := &Result{Path: unit.Path()}

	root := unit.Root()
	a.visit(root, nil, 0, unit, byKind, result)

	for i, child := range root.Children() {
		if ctx.Err() != nil {
			result.Incomplete = true
			break
		}
		a.visitSubtree(child, []ast.Node{root}, i, unit, byKind, result)
	}

	sortFindings(result.Findings)
	return result, nil
}

// indexActiveRules groups the active rules by node kind, preserving
// registration order within each kind.
func (a *Analyzer) indexActiveRules() map[ast.Kind][]Rule {
	byKind := make(map[ast.Kind][]Rule)
	for _, rule := range a.registry.ActiveRules() {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}
		for _, k := range rule.Kinds() {
			byKind[k] = append(byKind[k], rule)
		}
	}
	return byKind
}

// visitSubtree applies rules to node and recurses over its children.
// Ancestors is outermost first and must not be retained by rules.
func (a *Analyzer) visitSubtree(node ast.Node, ancestors []ast.Node, sibling int, unit *ast.SourceUnit, byKind map[ast.Kind][]Rule, result *Result) {
	a.visit(node, ancestors, sibling, unit, byKind, result)

	childAncestors := make([]ast.Node, len(ancestors)+1)
	copy(childAncestors, ancestors)
	childAncestors[len(ancestors)] = node
	for i, c := range node.Children() {
		a.visitSubtree(c, childAncestors, i, unit, byKind, result)
	}
}

func (a *Analyzer) visit(node ast.Node, ancestors []ast.Node, sibling int, unit *ast.SourceUnit, byKind map[ast.Kind][]Rule, result *Result) {
	rules := byKind[node.Kind()]
	if len(rules) == 0 {
		return
	}

	rctx := &RuleContext{unit: unit, ancestors: ancestors, sibling: sibling}
	for _, rule := range rules {
		findings := a.runRule(rule, node, rctx)
		for i := range findings {
			findings[i].Severity = a.config.GetSeverity(findings[i].RuleID, findings[i].Severity)
		}
		result.Findings = append(result.Findings, findings...)
	}
}

// runRule invokes one rule on one node, converting a panic into a single
// synthetic rule-failure finding. Remaining rules continue unaffected.
func (a *Analyzer) runRule(rule Rule, node ast.Node, rctx *RuleContext) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []Finding{{
				RuleID:   RuleFailureID,
				Severity: core.SeverityError,
				Message:  fmt.Sprintf("rule %s failed while evaluating %s: %v", rule.ID(), node.Kind(), r),
				Span:     node.Span(),
			}}
		}
	}()
	return rule.Check(node, rctx, a.config.GetRuleOptions(rule.ID()))
}

// sortFindings orders findings by (line, column, rule ID). Rule ID breaks
// ties lexicographically when multiple rules fire on the same location.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Span.Start.Line != b.Span.Start.Line {
			return a.Span.Start.Line < b.Span.Start.Line
		}
		if a.Span.Start.Column != b.Span.Start.Column {
			return a.Span.Start.Column < b.Span.Start.Column
		}
		return a.RuleID < b.RuleID
	})
}
