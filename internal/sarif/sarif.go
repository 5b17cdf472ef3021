// Package sarif converts analysis results to SARIF 2.1.0 for CI systems
// and code-scanning upload.
package sarif

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
)

const informationURI = "https://github.com/alextrs/oestandards"

// Write renders the unit results as a SARIF report.
func Write(w io.Writer, results []lint.UnitResult) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("oestandards", informationURI)
	seenRules := make(map[string]bool)

	for _, res := range results {
		if res.Err != nil || res.Result == nil {
			continue
		}
		for _, f := range res.Result.Findings {
			if !seenRules[f.RuleID] {
				seenRules[f.RuleID] = true
				description := f.RuleID
				if rule, ok := lint.GetRuleByID(f.RuleID); ok {
					description = rule.Description()
				}
				run.AddRule(f.RuleID).
					WithDescription(description).
					WithHelpURI(lint.BuildDocURL(f.RuleID)).
					WithDefaultConfiguration(&sarif.ReportingConfiguration{
						Level: toLevel(f.Severity),
					})
			}

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(res.Result.Path)).
					WithRegion(sarif.NewRegion().
						WithStartLine(f.Span.Start.Line).
						WithStartColumn(f.Span.Start.Column).
						WithEndLine(f.Span.End.Line).
						WithEndColumn(f.Span.End.Column)),
			)

			result := sarif.NewRuleResult(f.RuleID).
				WithMessage(sarif.NewTextMessage(f.Message)).
				WithLevel(toLevel(f.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}

	report.AddRun(run)
	return report.PrettyWrite(w)
}

// toLevel maps a finding severity onto the SARIF level vocabulary.
func toLevel(sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return "error"
	case core.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
