package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alextrs/oestandards/internal/cli/config"
	"github.com/alextrs/oestandards/internal/cli/output"
	"github.com/alextrs/oestandards/internal/sarif"
	"github.com/alextrs/oestandards/internal/state"
	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
	_ "github.com/alextrs/oestandards/pkg/lint/rules" // register rules
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format         string   // Output format: text, json, sarif
	Disable        []string // Rule IDs to disable
	Severity       string   // Minimum severity: error, warning, info
	Rules          []string // Run only specific rules
	Baseline       bool     // Suppress findings recorded in the baseline
	UpdateBaseline bool     // Record current findings as the new baseline
	Watch          bool     // Re-lint input files on change
	NoState        bool     // Skip recording the run in the state database
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Run lint rules on ABL source units",
		Long: `Analyze ABL source units for violations of coding standards.

Input files are JSON-encoded syntax trees produced by the parser front end;
pass "-" to read a unit stream from stdin. Rules can be configured in
oestandards.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/SARIF: Machine-readable formats`,
		Example: `  # Lint parsed units
  oestandards lint build/orders.json build/invoices.json

  # Read units from stdin
  ablparse src/*.p | oestandards lint -

  # Output as SARIF for CI annotation
  oestandards lint build/*.json --format sarif

  # Disable specific rules
  oestandards lint build/*.json --disable locking/no-share-lock

  # Only report errors
  oestandards lint build/*.json --severity error

  # Suppress known findings and re-lint on change
  oestandards lint build/*.json --baseline --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, sarif")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.Baseline, "baseline", false, "Suppress findings recorded in the baseline")
	cmd.Flags().BoolVar(&opts.UpdateBaseline, "update-baseline", false, "Record current findings as the new baseline")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint input files when they change")
	cmd.Flags().BoolVar(&opts.NoState, "no-state", false, "Skip recording the run in the state database")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// Build lint config from project config + CLI flags and bind it to a
	// registry clone so concurrent invocations never share mutable state.
	lintCfg := buildLintConfig(cfg, opts)
	reg := lint.Default().Clone()
	if err := lintCfg.Validate(reg); err != nil {
		return err
	}
	if err := lintCfg.Apply(reg); err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(reg, lintCfg)
	runner := lint.NewRunner(analyzer, cfg.Workers)

	if opts.Watch {
		return watchAndLint(cmd, args, opts, cmdCtx, r, runner)
	}
	return lintOnce(cmd.Context(), args, opts, cmdCtx, r, runner)
}

func lintOnce(ctx context.Context, paths []string, opts *LintOptions, cmdCtx *CommandContext, r *output.Renderer, runner *lint.Runner) error {
	units, loadErrs := loadUnits(paths)

	results := runner.Run(ctx, units)
	results = filterBySeverity(results, severityThreshold(opts, cmdCtx.Cfg))

	// State: baseline suppression and run history.
	var store *state.SQLiteStore
	needStore := opts.Baseline || opts.UpdateBaseline || !opts.NoState
	if needStore {
		var err error
		store, err = openStateStore(cmdCtx.Cfg, cmdCtx.Logger)
		if err != nil {
			if opts.Baseline || opts.UpdateBaseline {
				return err
			}
			// Run history is best effort; lint output still matters.
			cmdCtx.Logger.Warn("state database unavailable", "error", err)
		} else {
			defer store.Close()
		}
	}

	if opts.UpdateBaseline && store != nil {
		entries := baselineEntries(results)
		if err := store.ReplaceBaseline(entries); err != nil {
			return fmt.Errorf("failed to update baseline: %w", err)
		}
		r.Success(fmt.Sprintf("Baseline updated with %d findings", len(entries)))
		return nil
	}

	if opts.Baseline && store != nil {
		known, err := store.LoadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}
		results = suppressBaselined(results, known)
	}

	counts := countFindings(results)
	if store != nil && !opts.NoState {
		recordRun(cmdCtx, store, len(units), counts, loadErrs)
	}

	hasIssues := renderLintResults(r, results, loadErrs, counts)
	if len(loadErrs) > 0 {
		return fmt.Errorf("failed to load %d input file(s)", len(loadErrs))
	}
	if hasIssues && counts.Errors > 0 {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// watchAndLint re-lints the input files whenever one of them changes. Stdin
// input cannot be watched.
func watchAndLint(cmd *cobra.Command, paths []string, opts *LintOptions, cmdCtx *CommandContext, r *output.Renderer, runner *lint.Runner) error {
	for _, p := range paths {
		if p == "-" {
			return fmt.Errorf("--watch cannot be combined with stdin input")
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	ctx := cmd.Context()
	// Initial pass; lint errors do not stop the watch loop.
	if err := lintOnce(ctx, paths, opts, cmdCtx, r, runner); err != nil {
		r.Error(err.Error())
	}

	r.Printf("Watching %d file(s) for changes...\n", len(paths))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.Printf("\nChange detected: %s\n", event.Name)
			if err := lintOnce(ctx, paths, opts, cmdCtx, r, runner); err != nil {
				r.Error(err.Error())
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watch error", "error", werr)
		}
	}
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		projectLint := cfg.Lint
		for _, id := range projectLint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range projectLint.Severity {
			if s, ok := core.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range projectLint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.AllRules() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// loadUnits reads every input file, collecting per-file errors rather than
// failing on the first.
func loadUnits(paths []string) ([]*ast.SourceUnit, map[string]error) {
	var units []*ast.SourceUnit
	loadErrs := make(map[string]error)
	for _, p := range paths {
		us, err := ast.ReadFile(p)
		if err != nil {
			loadErrs[p] = err
			continue
		}
		units = append(units, us...)
	}
	return units, loadErrs
}

func severityThreshold(opts *LintOptions, cfg *config.Config) core.Severity {
	raw := opts.Severity
	if raw == "" && cfg != nil {
		raw = cfg.SeverityThreshold
	}
	threshold, ok := core.ParseSeverity(raw)
	if !ok {
		threshold = core.SeverityInfo
	}
	return threshold
}

func filterBySeverity(results []lint.UnitResult, threshold core.Severity) []lint.UnitResult {
	filtered := make([]lint.UnitResult, 0, len(results))
	for _, res := range results {
		if res.Err != nil || res.Result == nil {
			filtered = append(filtered, res)
			continue
		}
		var findings []lint.Finding
		for _, f := range res.Result.Findings {
			if f.Severity <= threshold {
				findings = append(findings, f)
			}
		}
		filtered = append(filtered, lint.UnitResult{Result: &lint.Result{
			Path:       res.Result.Path,
			Findings:   findings,
			Incomplete: res.Result.Incomplete,
		}})
	}
	return filtered
}

func baselineEntries(results []lint.UnitResult) []state.BaselineEntry {
	var entries []state.BaselineEntry
	for _, res := range results {
		if res.Err != nil || res.Result == nil {
			continue
		}
		for _, f := range res.Result.Findings {
			entries = append(entries, state.BaselineEntry{
				Path:   res.Result.Path,
				RuleID: f.RuleID,
				Line:   f.Span.Start.Line,
				Column: f.Span.Start.Column,
			})
		}
	}
	return entries
}

func suppressBaselined(results []lint.UnitResult, known map[string]bool) []lint.UnitResult {
	filtered := make([]lint.UnitResult, 0, len(results))
	for _, res := range results {
		if res.Err != nil || res.Result == nil {
			filtered = append(filtered, res)
			continue
		}
		var findings []lint.Finding
		for _, f := range res.Result.Findings {
			key := state.BaselineEntry{
				Path:   res.Result.Path,
				RuleID: f.RuleID,
				Line:   f.Span.Start.Line,
				Column: f.Span.Start.Column,
			}.Key()
			if !known[key] {
				findings = append(findings, f)
			}
		}
		filtered = append(filtered, lint.UnitResult{Result: &lint.Result{
			Path:       res.Result.Path,
			Findings:   findings,
			Incomplete: res.Result.Incomplete,
		}})
	}
	return filtered
}

func countFindings(results []lint.UnitResult) state.RunCounts {
	var counts state.RunCounts
	for _, res := range results {
		if res.Err != nil || res.Result == nil {
			continue
		}
		for _, f := range res.Result.Findings {
			switch f.Severity {
			case core.SeverityError:
				counts.Errors++
			case core.SeverityWarning:
				counts.Warnings++
			case core.SeverityInfo:
				counts.Infos++
			}
		}
	}
	return counts
}

// recordRun persists the run in the state database. Failures are logged,
// never fatal.
func recordRun(cmdCtx *CommandContext, store *state.SQLiteStore, files int, counts state.RunCounts, loadErrs map[string]error) {
	run, err := store.CreateRun()
	if err != nil {
		cmdCtx.Logger.Warn("failed to record run", "error", err)
		return
	}
	status := state.RunStatusCompleted
	errMsg := ""
	if len(loadErrs) > 0 {
		status = state.RunStatusFailed
		errMsg = fmt.Sprintf("%d input file(s) failed to load", len(loadErrs))
	}
	counts.Files = files
	if err := store.CompleteRun(run.ID, status, counts, errMsg); err != nil {
		cmdCtx.Logger.Warn("failed to record run", "error", err)
	}
}

// lintJSONOutput is the JSON shape of a lint run.
type lintJSONOutput struct {
	Summary lintJSONSummary `json:"summary"`
	Files   []lintJSONFile  `json:"files,omitempty"`
	Errors  []lintJSONLoad  `json:"errors,omitempty"`
}

type lintJSONSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Infos         int `json:"infos"`
}

type lintJSONFile struct {
	Path       string            `json:"path"`
	Incomplete bool              `json:"incomplete,omitempty"`
	Findings   []lintJSONFinding `json:"findings"`
}

type lintJSONFinding struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

type lintJSONLoad struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func renderLintResults(r *output.Renderer, results []lint.UnitResult, loadErrs map[string]error, counts state.RunCounts) bool {
	mode := r.EffectiveMode()

	if mode == output.ModeSARIF {
		if err := sarif.Write(r.Writer(), results); err != nil {
			r.Error(err.Error())
		}
		return counts.Errors+counts.Warnings+counts.Infos > 0
	}

	if mode == output.ModeJSON {
		out := lintJSONOutput{
			Summary: lintJSONSummary{
				FilesAnalyzed: len(results),
				TotalIssues:   counts.Errors + counts.Warnings + counts.Infos,
				Errors:        counts.Errors,
				Warnings:      counts.Warnings,
				Infos:         counts.Infos,
			},
		}
		for _, res := range results {
			if res.Err != nil || res.Result == nil {
				continue
			}
			if len(res.Result.Findings) == 0 && !res.Result.Incomplete {
				continue
			}
			file := lintJSONFile{Path: res.Result.Path, Incomplete: res.Result.Incomplete}
			for _, f := range res.Result.Findings {
				file.Findings = append(file.Findings, lintJSONFinding{
					RuleID:   f.RuleID,
					Severity: f.Severity.String(),
					Message:  f.Message,
					Line:     f.Span.Start.Line,
					Column:   f.Span.Start.Column,
				})
			}
			out.Files = append(out.Files, file)
		}
		for path, err := range loadErrs {
			out.Errors = append(out.Errors, lintJSONLoad{Path: path, Error: err.Error()})
		}
		_ = r.JSON(out)
		return out.Summary.TotalIssues > 0
	}

	// Text/Markdown output
	hasIssues := false
	for _, res := range results {
		if res.Err != nil {
			path := "?"
			if res.Result != nil {
				path = res.Result.Path
			}
			r.Error(fmt.Sprintf("%s: %v", path, res.Err))
			hasIssues = true
			continue
		}
		if res.Result == nil || len(res.Result.Findings) == 0 {
			continue
		}
		hasIssues = true
		r.Println(r.Styles().FilePath.Render(res.Result.Path))
		for _, f := range res.Result.Findings {
			loc := fmt.Sprintf("%d:%d", f.Span.Start.Line, f.Span.Start.Column)
			if f.Span.Start.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, f.Severity),
				r.Styles().Bold.Render(f.RuleID),
				f.Message,
			)
		}
		if res.Result.Incomplete {
			r.Println(r.Styles().Muted.Render("  (analysis incomplete: cancelled before all rules ran)"))
		}
		r.Println("")
	}
	for path, err := range loadErrs {
		r.Error(fmt.Sprintf("%s: %v", path, err))
	}

	// Print summary
	total := counts.Errors + counts.Warnings + counts.Infos
	if total == 0 && len(loadErrs) == 0 {
		r.Success("No lint issues found")
		return hasIssues
	}
	summaryParts := []string{fmt.Sprintf("%d issues", total)}
	if counts.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", counts.Errors))
	}
	if counts.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", counts.Warnings))
	}
	if counts.Infos > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", counts.Infos))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), len(results))

	return hasIssues
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
