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
	lint.MustRegister(NoCommentedCode)
}

// A comment line looks like code when it opens with a statement keyword and
// ends with the statement terminator.
var commentedCodeRE = regexp.MustCompile(`(?i)^\s*(assign|find|for|if|do|end|run|create|delete|define|message|display|repeat|case|return|leave|next|undo|output|input|buffer-copy|empty)\b.*\.\s*$`)

// NoCommentedCode flags comments that hold disabled statements.
var NoCommentedCode = lint.RuleDef{
	ID:          "convention/no-commented-code",
	Name:        "convention.no_commented_code",
	Group:       "convention",
	Description: "Comments must not contain disabled executable statements.",
	Severity:    core.SeverityInfo,
	Kinds:       []ast.Kind{ast.KindComment},
	ConfigKeys:  []string{"min_lines"},
	Check:       checkNoCommentedCode,

	Rationale: `Commented-out statements decay: they stop compiling, stop matching the
schema, and mislead readers into thinking the behavior is one edit away from
returning. Version control already remembers deleted code.`,

	BadExample: `/* FIND FIRST customer WHERE customer.id = 42 NO-LOCK.
   DISPLAY customer.name. */`,

	GoodExample: `/* Customer display moved to showCustomer.p */`,

	Fix: "Delete the commented-out statements; history lives in version control.",
}

func checkNoCommentedCode(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	comment, ok := node.(*ast.Comment)
	if !ok {
		return nil
	}
	minLines := lint.GetIntOption(opts, "min_lines", 1)
	if minLines < 1 {
		minLines = 1
	}

	matched := 0
	for _, line := range strings.Split(comment.Text, "\n") {
		if commentedCodeRE.MatchString(line) {
			matched++
		}
	}
	if matched < minLines {
		return nil
	}

	return []lint.Finding{{
		RuleID:   "convention/no-commented-code",
		Severity: core.SeverityInfo,
		Message:  fmt.Sprintf("comment contains %d line(s) of commented-out code", matched),
		Span:     comment.Span(),
	}}
}
