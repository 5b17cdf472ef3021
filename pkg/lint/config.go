package lint

import "github.com/alextrs/oestandards/pkg/core"

// Config controls which rules run and with what severity. The zero-value
// maps are created by NewConfig; the fluent setters return the Config for
// chaining.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions contains rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the rule-specific options for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options for a rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// Validate checks every rule ID the config refers to against the registry.
// The first unknown ID fails with *UnknownRuleError. Configuration errors
// surface here, before any analysis begins.
func (c *Config) Validate(reg *Registry) error {
	if c == nil {
		return nil
	}
	for id := range c.DisabledRules {
		if _, ok := reg.Get(id); !ok {
			return &UnknownRuleError{ID: id}
		}
	}
	for id := range c.SeverityOverrides {
		if _, ok := reg.Get(id); !ok {
			return &UnknownRuleError{ID: id}
		}
	}
	for id := range c.RuleOptions {
		if _, ok := reg.Get(id); !ok {
			return &UnknownRuleError{ID: id}
		}
	}
	return nil
}

// Apply validates the config against the registry and toggles the
// registry's enable state to match DisabledRules.
func (c *Config) Apply(reg *Registry) error {
	if err := c.Validate(reg); err != nil {
		return err
	}
	for id, off := range c.DisabledRules {
		if !off {
			continue
		}
		if err := reg.Disable(id); err != nil {
			return err
		}
	}
	return nil
}
