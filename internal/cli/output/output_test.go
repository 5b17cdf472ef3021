package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	t.Run("explicit mode wins", func(t *testing.T) {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeJSON)
		assert.Equal(t, ModeJSON, r.EffectiveMode())
	})

	t.Run("auto falls back to markdown off-terminal", func(t *testing.T) {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
		assert.Equal(t, ModeMarkdown, r.EffectiveMode())
	})

	t.Run("empty mode means auto", func(t *testing.T) {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, "")
		assert.Equal(t, ModeMarkdown, r.EffectiveMode())
	})
}

func TestPrintln(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, &bytes.Buffer{}, ModeText)

	r.Println("hello")
	assert.Equal(t, "hello\n", out.String())
}

func TestPrintf(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, &bytes.Buffer{}, ModeText)

	r.Printf("%d issues\n", 3)
	assert.Equal(t, "3 issues\n", out.String())
}

func TestSuccessAndError(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRenderer(out, errOut, ModeMarkdown)

	r.Success("done")
	r.Error("broken")

	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "broken")
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, &bytes.Buffer{}, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"count": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["count"])
}

func TestStylesDisabledArePlain(t *testing.T) {
	s := NewStyles(false)
	assert.Equal(t, "path.p", s.FilePath.Render("path.p"))
	assert.Equal(t, "boom", s.Error.Render("boom"))
}
