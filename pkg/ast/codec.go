package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alextrs/oestandards/pkg/token"
)

// The JSON wire format produced by the external ABL parser. One flat node
// shape carries all per-kind payloads; absent fields are omitted.

type unitJSON struct {
	Path string    `json:"path"`
	Text string    `json:"text"`
	Root *nodeJSON `json:"root"`
}

type fileJSON struct {
	Units []*unitJSON `json:"units"`
}

type nodeJSON struct {
	Kind     Kind        `json:"kind"`
	Span     token.Span  `json:"span"`
	Children []*nodeJSON `json:"children,omitempty"`

	// FindStatement
	Verb      string       `json:"verb,omitempty"`
	Qualifier string       `json:"qualifier,omitempty"`
	Buffer    string       `json:"buffer,omitempty"`
	Where     []Comparison `json:"where,omitempty"`
	NoError   bool         `json:"no_error,omitempty"`

	// LockClause
	Lock   string `json:"lock,omitempty"`
	NoWait bool   `json:"no_wait,omitempty"`

	// CatchBlock
	Variable  string `json:"variable,omitempty"`
	ErrorType string `json:"error_type,omitempty"`

	// ThrowStatement
	Expr    string `json:"expr,omitempty"`
	Wrapped bool   `json:"wrapped,omitempty"`

	// Declarations
	Name      string `json:"name,omitempty"`
	DataType  string `json:"data_type,omitempty"`
	NoUndo    bool   `json:"no_undo,omitempty"`
	TempTable bool   `json:"temp_table,omitempty"`
	Table     string `json:"table,omitempty"`
	Direction string `json:"direction,omitempty"`

	// BlockStatement
	BlockType    string        `json:"block_type,omitempty"`
	Label        string        `json:"label,omitempty"`
	Iterating    bool          `json:"iterating,omitempty"`
	Transaction  bool          `json:"transaction,omitempty"`
	HasOtherwise bool          `json:"has_otherwise,omitempty"`
	Branches     []Branch      `json:"branches,omitempty"`
	Checks       []BufferCheck `json:"checks,omitempty"`
	HandleOps    []HandleOp    `json:"handle_ops,omitempty"`

	// Comment
	Text string `json:"text,omitempty"`
}

// DecodeSourceUnit reads one JSON-encoded source unit.
func DecodeSourceUnit(r io.Reader) (*SourceUnit, error) {
	var ju unitJSON
	if err := json.NewDecoder(r).Decode(&ju); err != nil {
		return nil, fmt.Errorf("ast: failed to decode source unit: %w", err)
	}
	return buildUnit(&ju)
}

// DecodeSourceUnits reads a JSON document holding either a single source
// unit object or a {"units": [...]} collection.
func DecodeSourceUnits(r io.Reader) ([]*SourceUnit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ast: failed to read input: %w", err)
	}

	// A non-nil Units slice means the document carried a "units" key, even
	// when the collection is explicitly empty.
	var jf fileJSON
	if err := json.Unmarshal(data, &jf); err == nil && jf.Units != nil {
		units := make([]*SourceUnit, 0, len(jf.Units))
		for _, ju := range jf.Units {
			u, err := buildUnit(ju)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
		return units, nil
	}

	var ju unitJSON
	if err := json.Unmarshal(data, &ju); err != nil {
		return nil, fmt.Errorf("ast: failed to decode source units: %w", err)
	}
	u, err := buildUnit(&ju)
	if err != nil {
		return nil, err
	}
	return []*SourceUnit{u}, nil
}

// ReadFile decodes source units from a JSON file. "-" reads stdin.
func ReadFile(path string) ([]*SourceUnit, error) {
	if path == "-" {
		return DecodeSourceUnits(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ast: failed to open %s: %w", path, err)
	}
	defer f.Close()
	units, err := DecodeSourceUnits(f)
	if err != nil {
		return nil, fmt.Errorf("ast: %s: %w", path, err)
	}
	return units, nil
}

// EncodeSourceUnit writes the unit as JSON. Used by tooling and tests to
// round-trip trees.
func EncodeSourceUnit(w io.Writer, u *SourceUnit) error {
	ju := unitJSON{
		Path: u.Path(),
		Text: u.Text(),
		Root: encodeNode(u.Root()),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&ju)
}

func buildUnit(ju *unitJSON) (*SourceUnit, error) {
	if ju.Root == nil {
		return nil, fmt.Errorf("ast: source unit %q has no root node", ju.Path)
	}
	root, err := buildNode(ju.Root)
	if err != nil {
		return nil, fmt.Errorf("ast: source unit %q: %w", ju.Path, err)
	}
	return NewSourceUnit(ju.Path, ju.Text, root), nil
}

func buildNode(jn *nodeJSON) (Node, error) {
	var n Node
	switch jn.Kind {
	case KindFindStatement:
		n = &FindStatement{
			Verb:      FindVerb(jn.Verb),
			Qualifier: jn.Qualifier,
			Buffer:    jn.Buffer,
			Where:     jn.Where,
			NoError:   jn.NoError,
		}
	case KindLockClause:
		n = &LockClause{Lock: LockType(jn.Lock), NoWait: jn.NoWait}
	case KindCatchBlock:
		n = &CatchBlock{Variable: jn.Variable, ErrorType: jn.ErrorType}
	case KindThrowStatement:
		n = &ThrowStatement{Expr: jn.Expr, Wrapped: jn.Wrapped}
	case KindVariableDeclaration:
		n = &VariableDeclaration{
			Name:      jn.Name,
			DataType:  jn.DataType,
			NoUndo:    jn.NoUndo,
			TempTable: jn.TempTable,
		}
	case KindBufferDeclaration:
		n = &BufferDeclaration{Name: jn.Name, Table: jn.Table}
	case KindParameter:
		n = &Parameter{Name: jn.Name, DataType: jn.DataType, Direction: Direction(jn.Direction)}
	case KindBlockStatement:
		n = &BlockStatement{
			Type:         BlockType(jn.BlockType),
			Label:        jn.Label,
			Iterating:    jn.Iterating,
			Transaction:  jn.Transaction,
			HasOtherwise: jn.HasOtherwise,
			Branches:     jn.Branches,
			Checks:       jn.Checks,
			HandleOps:    jn.HandleOps,
		}
	case KindComment:
		n = &Comment{Text: jn.Text}
	default:
		return nil, fmt.Errorf("unknown node kind %q", jn.Kind)
	}

	n.info().SetSpan(jn.Span)

	for _, jc := range jn.Children {
		c, err := buildNode(jc)
		if err != nil {
			return nil, err
		}
		Append(n, c)
	}
	return n, nil
}

func encodeNode(n Node) *nodeJSON {
	if n == nil {
		return nil
	}
	jn := &nodeJSON{Kind: n.Kind(), Span: n.Span()}
	switch t := n.(type) {
	case *FindStatement:
		jn.Verb = string(t.Verb)
		jn.Qualifier = t.Qualifier
		jn.Buffer = t.Buffer
		jn.Where = t.Where
		jn.NoError = t.NoError
	case *LockClause:
		jn.Lock = string(t.Lock)
		jn.NoWait = t.NoWait
	case *CatchBlock:
		jn.Variable = t.Variable
		jn.ErrorType = t.ErrorType
	case *ThrowStatement:
		jn.Expr = t.Expr
		jn.Wrapped = t.Wrapped
	case *VariableDeclaration:
		jn.Name = t.Name
		jn.DataType = t.DataType
		jn.NoUndo = t.NoUndo
		jn.TempTable = t.TempTable
	case *BufferDeclaration:
		jn.Name = t.Name
		jn.Table = t.Table
	case *Parameter:
		jn.Name = t.Name
		jn.DataType = t.DataType
		jn.Direction = string(t.Direction)
	case *BlockStatement:
		jn.BlockType = string(t.Type)
		jn.Label = t.Label
		jn.Iterating = t.Iterating
		jn.Transaction = t.Transaction
		jn.HasOtherwise = t.HasOtherwise
		jn.Branches = t.Branches
		jn.Checks = t.Checks
		jn.HandleOps = t.HandleOps
	case *Comment:
		jn.Text = t.Text
	}
	for _, c := range n.Children() {
		jn.Children = append(jn.Children, encodeNode(c))
	}
	return jn
}
