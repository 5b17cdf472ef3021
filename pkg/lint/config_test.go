package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/core"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.False(t, cfg.IsDisabled("testing/alpha"))
	assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("testing/alpha", core.SeverityWarning))
	assert.Nil(t, cfg.GetRuleOptions("testing/alpha"))
}

func TestConfigOverrides(t *testing.T) {
	cfg := NewConfig().
		Disable("testing/alpha").
		SetSeverity("testing/beta", core.SeverityError).
		SetRuleOptions("testing/beta", map[string]any{"max": 3})

	assert.True(t, cfg.IsDisabled("testing/alpha"))
	assert.False(t, cfg.IsDisabled("testing/beta"))
	assert.Equal(t, core.SeverityError, cfg.GetSeverity("testing/beta", core.SeverityWarning))
	assert.Equal(t, 3, GetIntOption(cfg.GetRuleOptions("testing/beta"), "max", 0))
}

func TestConfigValidateUnknownRule(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("testing/alpha")))

	cfg := NewConfig().Disable("testing/missing")
	err := cfg.Validate(reg)
	require.Error(t, err)
	var unknown *UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "testing/missing", unknown.ID)

	cfg = NewConfig().SetSeverity("testing/other", core.SeverityInfo)
	err = cfg.Validate(reg)
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "testing/other", unknown.ID)
}

func TestConfigApply(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("testing/alpha")))
	require.NoError(t, reg.Register(testRule("testing/beta")))

	cfg := NewConfig().Disable("testing/alpha")
	require.NoError(t, cfg.Apply(reg))

	active := reg.ActiveRules()
	require.Len(t, active, 1)
	assert.Equal(t, "testing/beta", active[0].ID())
}

func TestNilConfigIsSafe(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsDisabled("testing/alpha"))
	assert.Equal(t, core.SeverityInfo, cfg.GetSeverity("testing/alpha", core.SeverityInfo))
	assert.Nil(t, cfg.GetRuleOptions("testing/alpha"))
}
