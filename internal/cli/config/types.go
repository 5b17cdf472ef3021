// Package config provides configuration management for the oestandards CLI.
//
// Configuration is loaded from oestandards.yaml, OESTANDARDS_* environment
// variables, and CLI flags, in increasing order of precedence.
package config

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// Config holds all CLI configuration options.
type Config struct {
	StatePath         string      `koanf:"state_path"`
	Workers           int         `koanf:"workers"`
	Verbose           bool        `koanf:"verbose"`
	OutputFormat      string      `koanf:"output"`
	SeverityThreshold string      `koanf:"severity"`
	DocsBaseURL       string      `koanf:"docs_base_url"`
	Lint              *LintConfig `koanf:"lint"`
}

// Default configuration values.
const (
	DefaultStateFile = ".oestandards/state.db"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultSeverity  = "info"
)
