package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alextrs/oestandards/internal/cli/config"
	"github.com/alextrs/oestandards/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, flag := range []string{"group", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesListJSON(t *testing.T) {
	config.ResetConfig()

	cmd := NewRulesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var infos []core.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.NotEmpty(t, infos)

	ids := make(map[string]bool)
	for _, info := range infos {
		ids[info.ID] = true
	}
	assert.True(t, ids["locking/no-share-lock"])
	assert.True(t, ids["errorhandling/no-empty-catch"])
	assert.True(t, ids["naming/variable-prefix"])

	// Sorted by group then ID
	for i := 1; i < len(infos); i++ {
		prev, cur := infos[i-1], infos[i]
		if prev.Group == cur.Group {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.Group, cur.Group)
		}
	}
}

func TestRulesListGroupFilter(t *testing.T) {
	config.ResetConfig()

	cmd := NewRulesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--group", "naming", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var infos []core.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.NotEmpty(t, infos)
	for _, info := range infos {
		assert.Equal(t, "naming", info.Group)
	}
}

func TestRulesShow(t *testing.T) {
	config.ResetConfig()

	cmd := NewRulesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"locking/no-share-lock", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var info core.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "locking/no-share-lock", info.ID)
	assert.Equal(t, "locking", info.Group)
	assert.NotEmpty(t, info.Description)
	assert.NotEmpty(t, info.Rationale)
}

func TestRulesShowNotFound(t *testing.T) {
	config.ResetConfig()

	cmd := NewRulesCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"no/such-rule"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesListMarkdown(t *testing.T) {
	config.ResetConfig()

	cmd := NewRulesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "markdown"})

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "# Lint Rules")
	assert.Contains(t, s, "| ID | Severity | Description |")
	assert.Contains(t, s, "`locking/no-share-lock`")
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Locking", capitalizeFirst("locking"))
	assert.Equal(t, "", capitalizeFirst(""))
}
