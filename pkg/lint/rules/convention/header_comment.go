package convention

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(HeaderComment)
}

var defaultHeaderFields = []string{"Purpose"}

// HeaderComment requires each unit to open with a structured header comment.
var HeaderComment = lint.RuleDef{
	ID:          "convention/header-comment",
	Name:        "convention.header_comment",
	Group:       "convention",
	Description: "Units must open with a header comment carrying the required fields.",
	Severity:    core.SeverityInfo,
	Kinds:       []ast.Kind{ast.KindBlockStatement},
	ConfigKeys:  []string{"required"},
	Check:       checkHeaderComment,

	Rationale: `A structured header is the one place a maintainer can read what a unit is
for without reverse-engineering it. Enforcing the field structure keeps the
headers honest instead of decorative.`,

	BadExample: `/* customer update */
FIND FIRST customer ...`,

	GoodExample: `/*------------------------------------------------------------
    Purpose: Apply pending address changes to customer records.
    Notes:   Run nightly from batch-update.p.
  ------------------------------------------------------------*/
FIND FIRST customer ...`,

	Fix: "Add a header comment with the required fields, configurable via the required option.",
}

func checkHeaderComment(node ast.Node, rctx *lint.RuleContext, opts map[string]any) []lint.Finding {
	block, ok := node.(*ast.BlockStatement)
	if !ok || len(rctx.Ancestors()) > 0 {
		return nil
	}

	required := lint.GetStringSliceOption(opts, "required", defaultHeaderFields)

	var header *ast.Comment
	if children := block.Children(); len(children) > 0 {
		header, _ = children[0].(*ast.Comment)
	}
	if header == nil {
		return []lint.Finding{{
			RuleID:   "convention/header-comment",
			Severity: core.SeverityInfo,
			Message:  "unit does not open with a header comment",
			Span:     block.Span(),
		}}
	}

	var missing []string
	for _, field := range required {
		re := regexp.MustCompile(`(?im)^\s*` + regexp.QuoteMeta(field) + `\s*:`)
		if !re.MatchString(header.Text) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "convention/header-comment",
		Severity: core.SeverityInfo,
		Message:  fmt.Sprintf("header comment is missing required field(s): %s", strings.Join(missing, ", ")),
		Span:     header.Span(),
	}}
}
