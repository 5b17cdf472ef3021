package naming

import (
	"fmt"
	"regexp"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(BufferPrefix)
}

const defaultBufferPattern = "^b[A-Z]"

var defaultBufferRE = regexp.MustCompile(defaultBufferPattern)

// BufferPrefix enforces a naming pattern on buffer declarations.
var BufferPrefix = lint.RuleDef{
	ID:          "naming/buffer-prefix",
	Name:        "naming.buffer_prefix",
	Group:       "naming",
	Description: "Buffer names must match the configured pattern (default ^b[A-Z]).",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindBufferDeclaration},
	ConfigKeys:  []string{"pattern"},
	Check:       checkBufferPrefix,

	Rationale: `A buffer that shadows its table name makes it unclear which record scope a
statement touches. The b-prefix convention makes every named buffer visibly
distinct from the default table buffer.`,

	BadExample: `DEFINE BUFFER customer FOR customer.
DEFINE BUFFER cust2 FOR customer.`,

	GoodExample: `DEFINE BUFFER bCustomer FOR customer.`,

	Fix: "Rename the buffer to match the pattern, conventionally b followed by the capitalized table name.",
}

func checkBufferPrefix(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	buf, ok := node.(*ast.BufferDeclaration)
	if !ok {
		return nil
	}

	pattern := lint.GetStringOption(opts, "pattern", defaultBufferPattern)
	re := defaultBufferRE
	if pattern != defaultBufferPattern {
		custom, err := regexp.Compile(pattern)
		if err != nil {
			// An invalid pattern option falls back to the default.
			pattern = defaultBufferPattern
		} else {
			re = custom
		}
	}

	if re.MatchString(buf.Name) {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "naming/buffer-prefix",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("buffer name %q does not match required pattern %s", buf.Name, pattern),
		Span:     buf.Span(),
	}}
}
