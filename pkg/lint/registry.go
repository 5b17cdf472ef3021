package lint

import "sync"

// Registry stores lint rules keyed by ID. Registration order is preserved so
// iteration is deterministic; each rule carries an enabled flag toggled via
// Enable/Disable. A Registry is safe for concurrent reads during analysis;
// registration and toggling happen up front, before any analysis begins.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	rules    map[string]Rule
	disabled map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:    make(map[string]Rule),
		disabled: make(map[string]bool),
	}
}

// Register adds a rule. Fails with *DuplicateRuleError if the ID is already
// present.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.ID()
	if _, ok := r.rules[id]; ok {
		return &DuplicateRuleError{ID: id}
	}
	r.rules[id] = rule
	r.order = append(r.order, id)
	return nil
}

// Enable re-enables a registered rule. Fails with *UnknownRuleError if the
// ID is absent.
func (r *Registry) Enable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[id]; !ok {
		return &UnknownRuleError{ID: id}
	}
	delete(r.disabled, id)
	return nil
}

// Disable excludes a registered rule from analysis runs. Fails with
// *UnknownRuleError if the ID is absent.
func (r *Registry) Disable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[id]; !ok {
		return &UnknownRuleError{ID: id}
	}
	r.disabled[id] = true
	return nil
}

// Get returns a rule by its ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns every registered rule in registration order.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		rules = append(rules, r.rules[id])
	}
	return rules
}

// ActiveRules returns the enabled subset in registration order. The stable
// order is the tie-breaker when multiple rules fire on the same node.
func (r *Registry) ActiveRules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		if !r.disabled[id] {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// ByGroup returns registered rules in the given group, in registration order.
func (r *Registry) ByGroup(group string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []Rule
	for _, id := range r.order {
		if r.rules[id].Group() == group {
			rules = append(rules, r.rules[id])
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Clone returns an independent copy sharing the rule values but not the
// enable/disable state. Commands clone the default registry so per-run
// configuration never mutates global state.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	c.order = append(c.order, r.order...)
	for id, rule := range r.rules {
		c.rules[id] = rule
	}
	for id, d := range r.disabled {
		c.disabled[id] = d
	}
	return c
}

// defaultRegistry is the global registry fed by init() functions in the
// rule packages.
var defaultRegistry = NewRegistry()

// Default returns the global registry.
func Default() *Registry {
	return defaultRegistry
}

// MustRegister adds a rule definition to the global registry, panicking on a
// duplicate ID. Call this from init() functions in rule packages.
func MustRegister(def RuleDef) {
	if err := defaultRegistry.Register(WrapRuleDef(def)); err != nil {
		panic(err)
	}
}

// GetRuleByID returns a rule from the global registry.
func GetRuleByID(id string) (Rule, bool) {
	return defaultRegistry.Get(id)
}

// AllRules returns metadata for every rule in the global registry, in
// registration order.
func AllRules() []Rule {
	return defaultRegistry.All()
}
