package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alextrs/oestandards/pkg/token"
)

func span(startOff, endOff int) token.Span {
	return token.Span{
		Start: token.Position{Line: 1, Column: 1, Offset: startOff},
		End:   token.Position{Line: 1, Column: 1 + endOff - startOff, Offset: endOff},
	}
}

func TestSpan_Contains(t *testing.T) {
	s := span(10, 20)

	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(19))
	assert.False(t, s.Contains(20), "end offset is exclusive")
	assert.False(t, s.Contains(9))
}

func TestSpan_Covers(t *testing.T) {
	outer := span(0, 100)

	assert.True(t, outer.Covers(span(0, 100)), "a span covers itself")
	assert.True(t, outer.Covers(span(10, 20)))
	assert.False(t, outer.Covers(span(90, 101)))
	assert.False(t, span(10, 20).Covers(outer))
}

func TestPosition_String(t *testing.T) {
	p := token.Position{Line: 12, Column: 5, Offset: 140}
	assert.Equal(t, "12:5", p.String())
	assert.True(t, p.IsValid())
	assert.False(t, token.Position{}.IsValid())
}
