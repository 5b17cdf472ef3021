package ast_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextrs/oestandards/pkg/ast"
)

const memberUnitJSON = `{
  "path": "member.p",
  "text": "FIND FIRST member WHERE member.id = 1 EXCLUSIVE-LOCK NO-WAIT.",
  "root": {
    "kind": "BlockStatement",
    "block_type": "procedure",
    "span": {"start": {"line": 1, "column": 1, "offset": 0}, "end": {"line": 3, "column": 1, "offset": 120}},
    "checks": [{"buffer": "member", "attr": "locked", "span": {"start": {"line": 2, "column": 1, "offset": 70}, "end": {"line": 2, "column": 20, "offset": 89}}}],
    "children": [
      {
        "kind": "FindStatement",
        "verb": "find",
        "qualifier": "first",
        "buffer": "member",
        "where": [{"field": "id", "op": "eq"}],
        "span": {"start": {"line": 1, "column": 1, "offset": 0}, "end": {"line": 1, "column": 62, "offset": 61}},
        "children": [
          {
            "kind": "LockClause",
            "lock": "exclusive",
            "no_wait": true,
            "span": {"start": {"line": 1, "column": 39, "offset": 38}, "end": {"line": 1, "column": 61, "offset": 60}}
          }
        ]
      }
    ]
  }
}`

func TestDecodeSourceUnit(t *testing.T) {
	u, err := ast.DecodeSourceUnit(strings.NewReader(memberUnitJSON))
	require.NoError(t, err)

	assert.Equal(t, "member.p", u.Path())
	require.NoError(t, ast.Validate(u))

	root, ok := u.Root().(*ast.BlockStatement)
	require.True(t, ok)
	assert.Equal(t, ast.BlockProcedure, root.Type)
	require.Len(t, root.Checks, 1)
	assert.Equal(t, ast.CheckLocked, root.Checks[0].Attr)

	require.Len(t, root.Children(), 1)
	find, ok := root.Children()[0].(*ast.FindStatement)
	require.True(t, ok)
	assert.Equal(t, ast.VerbFind, find.Verb)
	assert.Equal(t, "first", find.Qualifier)
	assert.Equal(t, "member", find.Buffer)
	require.Len(t, find.Where, 1)
	assert.Equal(t, "eq", find.Where[0].Op)

	lock := find.Lock()
	require.NotNil(t, lock)
	assert.Equal(t, ast.LockExclusive, lock.Lock)
	assert.True(t, lock.NoWait)
	assert.Same(t, ast.Node(find), lock.Parent())

	assert.Equal(t, "FIND FIRST", u.Snippet(find.Span())[:10])
}

func TestDecodeSourceUnits_Collection(t *testing.T) {
	doc := `{"units": [` + memberUnitJSON + `, ` + memberUnitJSON + `]}`

	units, err := ast.DecodeSourceUnits(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "member.p", units[0].Path())
}

func TestDecodeSourceUnits_EmptyCollection(t *testing.T) {
	units, err := ast.DecodeSourceUnits(strings.NewReader(`{"units": []}`))
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestDecodeSourceUnits_SingleObject(t *testing.T) {
	units, err := ast.DecodeSourceUnits(strings.NewReader(memberUnitJSON))
	require.NoError(t, err)
	require.Len(t, units, 1)
}

func TestDecodeSourceUnit_UnknownKind(t *testing.T) {
	doc := `{"path": "x.p", "root": {"kind": "Mystery", "span": {"start": {"line": 1, "column": 1, "offset": 0}, "end": {"line": 1, "column": 2, "offset": 1}}}}`

	_, err := ast.DecodeSourceUnit(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node kind")
}

func TestDecodeSourceUnit_MissingRoot(t *testing.T) {
	_, err := ast.DecodeSourceUnit(strings.NewReader(`{"path": "x.p"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no root node")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	u, err := ast.DecodeSourceUnit(strings.NewReader(memberUnitJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ast.EncodeSourceUnit(&buf, u))
	first := buf.String()

	again, err := ast.DecodeSourceUnit(strings.NewReader(first))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, ast.EncodeSourceUnit(&second, again))
	assert.Equal(t, first, second.String(), "encoding is stable across round trips")
}
