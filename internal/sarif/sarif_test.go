package sarif

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/core"
	"github.com/alextrs/oestandards/pkg/lint"
	"github.com/alextrs/oestandards/pkg/token"
)

func span(line, col int) token.Span {
	return token.Span{
		Start: token.Position{Line: line, Column: col, Offset: line * 100},
		End:   token.Position{Line: line, Column: col + 20, Offset: line*100 + 20},
	}
}

func TestWrite(t *testing.T) {
	results := []lint.UnitResult{
		{
			Result: &lint.Result{
				Path: "src/order.p",
				Findings: []lint.Finding{
					{RuleID: "locking/no-share-lock", Severity: core.SeverityError, Message: "FIND on customer takes an implicit SHARE-LOCK", Span: span(10, 1)},
					{RuleID: "convention/require-no-undo", Severity: core.SeverityWarning, Message: "variable defined without NO-UNDO", Span: span(4, 1)},
					{RuleID: "structure/case-otherwise", Severity: core.SeverityInfo, Message: "CASE block has no OTHERWISE branch", Span: span(30, 1)},
				},
			},
		},
		{Err: assertableErr{}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "oestandards", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, 3)

	require.Len(t, run.Results, 3)
	assert.Equal(t, "locking/no-share-lock", run.Results[0].RuleID)
	assert.Equal(t, "error", run.Results[0].Level)
	assert.Equal(t, "warning", run.Results[1].Level)
	assert.Equal(t, "note", run.Results[2].Level)
	require.Len(t, run.Results[0].Locations, 1)
	assert.Equal(t, "src/order.p", run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 10, run.Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

type assertableErr struct{}

func (assertableErr) Error() string { return "broken unit" }
