package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionGetters(t *testing.T) {
	opts := map[string]any{
		"max":     5,
		"ratio":   2.0,
		"pattern": "^b[A-Z]",
		"strict":  true,
		"types":   []any{"share", "exclusive"},
		"prefixes": map[string]any{
			"character": "c",
			"integer":   "i",
		},
	}

	assert.Equal(t, 5, GetIntOption(opts, "max", 1))
	assert.Equal(t, 2, GetIntOption(opts, "ratio", 1))
	assert.Equal(t, 1, GetIntOption(opts, "missing", 1))

	assert.Equal(t, "^b[A-Z]", GetStringOption(opts, "pattern", ""))
	assert.Equal(t, "fallback", GetStringOption(opts, "missing", "fallback"))

	assert.True(t, GetBoolOption(opts, "strict", false))
	assert.False(t, GetBoolOption(opts, "missing", false))

	assert.Equal(t, []string{"share", "exclusive"}, GetStringSliceOption(opts, "types", nil))
	assert.Equal(t, []string{"x"}, GetStringSliceOption(opts, "missing", []string{"x"}))

	assert.Equal(t, map[string]string{"character": "c", "integer": "i"},
		GetStringMapOption(opts, "prefixes", nil))
}

func TestOptionGettersNilMap(t *testing.T) {
	assert.Equal(t, 7, GetIntOption(nil, "max", 7))
	assert.Equal(t, "d", GetStringOption(nil, "pattern", "d"))
	assert.True(t, GetBoolOption(nil, "strict", true))
}

func TestDecodeOptions(t *testing.T) {
	type nesting struct {
		Max     int    `mapstructure:"max"`
		Pattern string `mapstructure:"pattern"`
	}

	var out nesting
	err := DecodeOptions(map[string]any{"max": "4", "pattern": "^b"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Max, "weakly typed input coerces strings")
	assert.Equal(t, "^b", out.Pattern)
}
