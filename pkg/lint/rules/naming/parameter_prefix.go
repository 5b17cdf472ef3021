package naming

import (
	"fmt"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(ParameterPrefix)
}

var defaultDirectionPrefixes = map[string]string{
	string(ast.DirInput):       "ip",
	string(ast.DirOutput):      "op",
	string(ast.DirInputOutput): "iop",
}

// ParameterPrefix enforces the direction prefix on parameter names.
var ParameterPrefix = lint.RuleDef{
	ID:          "naming/parameter-prefix",
	Name:        "naming.parameter_prefix",
	Group:       "naming",
	Description: "Parameter names must carry the direction prefix (ipName, opResult, iopTotal).",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindParameter},
	ConfigKeys:  []string{"prefixes"},
	Check:       checkParameterPrefix,

	Rationale: `At a call site an OUTPUT parameter is assigned, not read, and confusing the
direction corrupts caller state. The direction prefix makes the data flow
readable in both the routine body and the caller.`,

	BadExample: `DEFINE INPUT  PARAMETER customerId AS INTEGER   NO-UNDO.
DEFINE OUTPUT PARAMETER name       AS CHARACTER NO-UNDO.`,

	GoodExample: `DEFINE INPUT  PARAMETER ipCustomerId AS INTEGER   NO-UNDO.
DEFINE OUTPUT PARAMETER opName       AS CHARACTER NO-UNDO.`,

	Fix: "Prefix the parameter with ip, op, or iop according to its direction.",
}

func checkParameterPrefix(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	param, ok := node.(*ast.Parameter)
	if !ok {
		return nil
	}

	prefixes := defaultDirectionPrefixes
	if override := lint.GetStringMapOption(opts, "prefixes", nil); len(override) > 0 {
		merged := make(map[string]string, len(defaultDirectionPrefixes))
		for k, v := range defaultDirectionPrefixes {
			merged[k] = v
		}
		for k, v := range override {
			merged[k] = v
		}
		prefixes = merged
	}

	prefix, known := prefixes[string(param.Direction)]
	if !known || hasPrefix(param.Name, prefix) {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "naming/parameter-prefix",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("%s parameter %q should be prefixed %q", param.Direction, param.Name, prefix),
		Span:     param.Span(),
	}}
}
