package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alextrs/oestandards/pkg/ast"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

func init() {
	lint.MustRegister(VariablePrefix)
}

// Conventional prefix per ABL data type. Overridable through the prefixes
// option.
var defaultTypePrefixes = map[string]string{
	"character": "c",
	"longchar":  "lc",
	"integer":   "i",
	"int64":     "i",
	"decimal":   "de",
	"date":      "da",
	"datetime":  "dt",
	"logical":   "l",
	"handle":    "h",
	"rowid":     "r",
	"recid":     "r",
	"memptr":    "m",
}

// VariablePrefix enforces the type prefix on variable names.
var VariablePrefix = lint.RuleDef{
	ID:          "naming/variable-prefix",
	Name:        "naming.variable_prefix",
	Group:       "naming",
	Description: "Variable names must carry the conventional data-type prefix (cName, iCount, lDone).",
	Severity:    core.SeverityWarning,
	Kinds:       []ast.Kind{ast.KindVariableDeclaration},
	ConfigKeys:  []string{"prefixes"},
	Check:       checkVariablePrefix,

	Rationale: `ABL is weakly typed at many call boundaries and the type prefix is the
reader's only local signal of what a variable holds. The prefix convention
is long established in OpenEdge code bases and tooling.`,

	BadExample: `DEFINE VARIABLE name   AS CHARACTER NO-UNDO.
DEFINE VARIABLE count  AS INTEGER   NO-UNDO.`,

	GoodExample: `DEFINE VARIABLE cName  AS CHARACTER NO-UNDO.
DEFINE VARIABLE iCount AS INTEGER   NO-UNDO.`,

	Fix: "Prefix the name with the type letter and capitalize the following character, or override the map with the prefixes option.",
}

// variablePrefixOptions is the typed shape of the rule's option map.
type variablePrefixOptions struct {
	Prefixes map[string]string `mapstructure:"prefixes"`
}

func checkVariablePrefix(node ast.Node, _ *lint.RuleContext, opts map[string]any) []lint.Finding {
	decl, ok := node.(*ast.VariableDeclaration)
	if !ok || decl.TempTable {
		return nil
	}

	var parsed variablePrefixOptions
	if err := lint.DecodeOptions(opts, &parsed); err != nil {
		parsed.Prefixes = nil
	}

	prefixes := defaultTypePrefixes
	if len(parsed.Prefixes) > 0 {
		merged := make(map[string]string, len(defaultTypePrefixes)+len(parsed.Prefixes))
		for k, v := range defaultTypePrefixes {
			merged[k] = v
		}
		for k, v := range parsed.Prefixes {
			merged[strings.ToLower(k)] = v
		}
		prefixes = merged
	}

	prefix, known := prefixes[strings.ToLower(decl.DataType)]
	if !known || hasPrefix(decl.Name, prefix) {
		return nil
	}
	return []lint.Finding{{
		RuleID:   "naming/variable-prefix",
		Severity: core.SeverityWarning,
		Message:  fmt.Sprintf("variable %q of type %s should be prefixed %q", decl.Name, decl.DataType, prefix),
		Span:     decl.Span(),
	}}
}

// hasPrefix reports whether name starts with the prefix followed by an
// uppercase letter, so "count" does not pass as c-prefixed.
func hasPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	rest := []rune(name[len(prefix):])
	return len(rest) > 0 && unicode.IsUpper(rest[0])
}
