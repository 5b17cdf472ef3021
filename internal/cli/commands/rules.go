package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alextrs/oestandards/internal/cli/output"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
	_ "github.com/alextrs/oestandards/pkg/lint/rules" // register rules
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (locking, error-handling, naming, convention,
structure). Use --verbose to see full documentation including examples and
fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  oestandards rules

  # Show details for a specific rule
  oestandards rules locking/no-share-lock

  # List rules in the naming group
  oestandards rules --group naming

  # Show full documentation
  oestandards rules -V

  # Output as JSON
  oestandards rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	infos := collectRuleInfos(opts.Group)

	mode := r.EffectiveMode()
	switch mode {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, infos, opts.Verbose)
	default:
		return listRulesText(r, infos, opts.Verbose)
	}
}

// collectRuleInfos gathers rule metadata, sorted by group then ID.
func collectRuleInfos(group string) []core.RuleInfo {
	var infos []core.RuleInfo
	for _, rule := range lint.AllRules() {
		info := lint.GetRuleInfo(rule)
		if group != "" && info.Group != group {
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetRuleByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	mode := r.EffectiveMode()
	switch mode {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, info)
	default:
		return showRuleText(r, info)
	}
}

// listRulesText outputs rules as a styled table.
func listRulesText(r *output.Renderer, infos []core.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(infos))))
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = info.Group
			r.Println(styles.Header2.Render(capitalizeFirst(currentGroup)))

			t := table.NewWriter()
			t.SetOutputMirror(r.Writer())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Severity", "Description"})
			for _, gi := range infos {
				if gi.Group != currentGroup {
					continue
				}
				t.AppendRow(table.Row{gi.ID, gi.DefaultSeverity.String(), gi.Description})
			}
			t.Render()
		}
	}
	r.Println("")

	if verbose {
		for _, info := range infos {
			renderRuleDetailText(r, info)
		}
	} else {
		r.Println(styles.Muted.Render("Run 'oestandards rules <rule-id>' for full documentation."))
	}
	return nil
}

func listRulesMarkdown(r *output.Renderer, infos []core.RuleInfo, verbose bool) error {
	r.Printf("# Lint Rules (%d)\n\n", len(infos))

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			currentGroup = info.Group
			r.Printf("## %s\n\n", capitalizeFirst(currentGroup))
			r.Println("| ID | Severity | Description |")
			r.Println("|----|----------|-------------|")
			for _, gi := range infos {
				if gi.Group != currentGroup {
					continue
				}
				r.Printf("| `%s` | %s | %s |\n", gi.ID, gi.DefaultSeverity.String(), gi.Description)
			}
			r.Println("")
		}
	}

	if verbose {
		for _, info := range infos {
			showRuleMarkdown(r, info)
		}
	}
	return nil
}

func showRuleText(r *output.Renderer, info core.RuleInfo) error {
	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s: %s", info.ID, info.Name)))
	r.Println("")
	renderRuleDetailText(r, info)
	return nil
}

func renderRuleDetailText(r *output.Renderer, info core.RuleInfo) {
	styles := r.Styles()

	r.Println(styles.Bold.Render(info.ID))
	r.Printf("  %s %s\n", styles.Muted.Render("Group:"), info.Group)
	r.Printf("  %s %s\n", styles.Muted.Render("Severity:"), info.DefaultSeverity.String())
	r.Printf("  %s\n", info.Description)
	if info.Rationale != "" {
		r.Println("")
		r.Println("  " + strings.ReplaceAll(strings.TrimSpace(info.Rationale), "\n", "\n  "))
	}
	if info.BadExample != "" {
		r.Println("")
		r.Println(styles.Error.Render("  Bad:"))
		r.Println(indentBlock(info.BadExample, "    "))
	}
	if info.GoodExample != "" {
		r.Println(styles.Success.Render("  Good:"))
		r.Println(indentBlock(info.GoodExample, "    "))
	}
	if info.Fix != "" {
		r.Printf("  %s %s\n", styles.Muted.Render("Fix:"), strings.TrimSpace(info.Fix))
	}
	if len(info.ConfigKeys) > 0 {
		r.Printf("  %s %s\n", styles.Muted.Render("Options:"), strings.Join(info.ConfigKeys, ", "))
	}
	r.Printf("  %s %s\n", styles.Muted.Render("Docs:"), lint.BuildDocURL(info.ID))
	r.Println("")
}

func showRuleMarkdown(r *output.Renderer, info core.RuleInfo) error {
	r.Printf("## %s: %s\n\n", info.ID, info.Name)
	r.Printf("**Group:** %s | **Severity:** %s\n\n", info.Group, info.DefaultSeverity.String())
	r.Printf("%s\n\n", info.Description)
	if info.Rationale != "" {
		r.Printf("%s\n\n", strings.TrimSpace(info.Rationale))
	}
	if info.BadExample != "" {
		r.Printf("**Bad:**\n\n```\n%s\n```\n\n", strings.TrimSpace(info.BadExample))
	}
	if info.GoodExample != "" {
		r.Printf("**Good:**\n\n```\n%s\n```\n\n", strings.TrimSpace(info.GoodExample))
	}
	if info.Fix != "" {
		r.Printf("**Fix:** %s\n\n", strings.TrimSpace(info.Fix))
	}
	if len(info.ConfigKeys) > 0 {
		r.Printf("**Options:** `%s`\n\n", strings.Join(info.ConfigKeys, "`, `"))
	}
	r.Printf("[Documentation](%s)\n\n", lint.BuildDocURL(info.ID))
	return nil
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
