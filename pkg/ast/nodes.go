package ast

import "github.com/alextrs/oestandards/pkg/token"

// ---------- Record access ----------

// FindVerb distinguishes the record-access statement forms.
type FindVerb string

// Record-access verbs.
const (
	VerbFind    FindVerb = "find"
	VerbForEach FindVerb = "for-each"
	VerbCanFind FindVerb = "can-find"
)

// Comparison is one predicate of a WHERE clause, reduced to the shape the
// rules care about: which field is compared and with which operator.
type Comparison struct {
	Field string `json:"field"`
	Op    string `json:"op"` // eq, ne, lt, le, gt, ge, begins, matches
}

// FindStatement represents a record access: FIND, FOR EACH, or CAN-FIND.
// A LockClause child, when present, states the locking behavior.
type FindStatement struct {
	NodeInfo
	Verb      FindVerb
	Qualifier string // "", "first", "last"
	Buffer    string
	Where     []Comparison
	NoError   bool
}

// Kind implements Node.
func (*FindStatement) Kind() Kind { return KindFindStatement }

// Lock returns the statement's LockClause child, or nil when the statement
// names no locking behavior.
func (f *FindStatement) Lock() *LockClause {
	for _, c := range f.Children() {
		if lc, ok := c.(*LockClause); ok {
			return lc
		}
	}
	return nil
}

// LockType enumerates the ABL lock keywords.
type LockType string

// Lock types.
const (
	LockShare     LockType = "share"
	LockExclusive LockType = "exclusive"
	LockNone      LockType = "no-lock"
)

// LockClause represents an explicit lock keyword on a record access,
// optionally with NO-WAIT.
type LockClause struct {
	NodeInfo
	Lock   LockType
	NoWait bool
}

// Kind implements Node.
func (*LockClause) Kind() Kind { return KindLockClause }

// ---------- Error handling ----------

// CatchBlock represents a CATCH block. Children are the body statements.
type CatchBlock struct {
	NodeInfo
	Variable  string // name of the caught error variable
	ErrorType string // e.g. "Progress.Lang.Error"
}

// Kind implements Node.
func (*CatchBlock) Kind() Kind { return KindCatchBlock }

// Body returns the body statements excluding comments.
func (c *CatchBlock) Body() []Node {
	var body []Node
	for _, n := range c.Children() {
		if n.Kind() != KindComment {
			body = append(body, n)
		}
	}
	return body
}

// ThrowStatement represents UNDO, THROW. Expr is the thrown expression as
// written; Wrapped is true when a new error object is constructed around the
// original (THROW NEW ... ).
type ThrowStatement struct {
	NodeInfo
	Expr    string
	Wrapped bool
}

// Kind implements Node.
func (*ThrowStatement) Kind() Kind { return KindThrowStatement }

// ---------- Declarations ----------

// VariableDeclaration represents DEFINE VARIABLE and temp-table-like
// declarations (DEFINE TEMP-TABLE), which share the NO-UNDO discipline.
type VariableDeclaration struct {
	NodeInfo
	Name      string
	DataType  string // character, integer, logical, ...
	NoUndo    bool
	TempTable bool
}

// Kind implements Node.
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// BufferDeclaration represents DEFINE BUFFER name FOR table.
type BufferDeclaration struct {
	NodeInfo
	Name  string
	Table string
}

// Kind implements Node.
func (*BufferDeclaration) Kind() Kind { return KindBufferDeclaration }

// Direction enumerates parameter directions.
type Direction string

// Parameter directions.
const (
	DirInput       Direction = "input"
	DirOutput      Direction = "output"
	DirInputOutput Direction = "input-output"
)

// Parameter represents a routine parameter declaration.
type Parameter struct {
	NodeInfo
	Name      string
	DataType  string
	Direction Direction
}

// Kind implements Node.
func (*Parameter) Kind() Kind { return KindParameter }

// ---------- Blocks ----------

// BlockType enumerates the block statement forms the rules distinguish.
type BlockType string

// Block types.
const (
	BlockProcedure BlockType = "procedure"
	BlockFunction  BlockType = "function"
	BlockMethod    BlockType = "method"
	BlockDo        BlockType = "do"
	BlockRepeat    BlockType = "repeat"
	BlockFor       BlockType = "for"
	BlockCase      BlockType = "case"
	BlockFinally   BlockType = "finally"
)

// BranchKind enumerates block-exit statements.
type BranchKind string

// Branch kinds.
const (
	BranchLeave BranchKind = "leave"
	BranchNext  BranchKind = "next"
	BranchUndo  BranchKind = "undo"
)

// Branch records one UNDO/LEAVE/NEXT statement inside a block, with the
// label it names (empty when unlabeled).
type Branch struct {
	Kind  BranchKind `json:"kind"`
	Label string     `json:"label,omitempty"`
	Span  token.Span `json:"span"`
}

// CheckAttr enumerates the buffer-state tests a block can perform.
type CheckAttr string

// Buffer-state test attributes.
const (
	CheckLocked      CheckAttr = "locked"
	CheckAvailable   CheckAttr = "available"
	CheckErrorStatus CheckAttr = "error-status"
)

// BufferCheck records one buffer-state test (IF LOCKED(b), IF AVAILABLE b,
// ERROR-STATUS:ERROR) performed inside a block.
type BufferCheck struct {
	Buffer string     `json:"buffer,omitempty"`
	Attr   CheckAttr  `json:"attr"`
	Span   token.Span `json:"span"`
}

// HandleOpKind enumerates dynamic-handle lifecycle operations.
type HandleOpKind string

// Handle operations.
const (
	HandleCreate HandleOpKind = "create"
	HandleDelete HandleOpKind = "delete"
)

// HandleOp records one dynamic-handle operation (CREATE BUFFER/QUERY,
// RUN PERSISTENT, DELETE OBJECT) performed inside a block.
type HandleOp struct {
	Op     HandleOpKind `json:"op"`
	Handle string       `json:"handle"`
	What   string       `json:"what,omitempty"` // buffer, query, procedure
	Span   token.Span   `json:"span"`
}

// BlockStatement represents any statement block: routine bodies, DO, REPEAT,
// FOR, CASE, and FINALLY. Flow statements, buffer-state tests, and
// dynamic-handle operations inside the block are materialized as attributes
// rather than as child nodes.
type BlockStatement struct {
	NodeInfo
	Type         BlockType
	Label        string
	Iterating    bool // REPEAT, FOR EACH, DO WHILE/TO blocks
	Transaction  bool // DO TRANSACTION or a block that scopes one
	HasOtherwise bool // CASE blocks only
	Branches     []Branch
	Checks       []BufferCheck
	HandleOps    []HandleOp
}

// Kind implements Node.
func (*BlockStatement) Kind() Kind { return KindBlockStatement }

// ChecksFor returns the block's buffer-state tests with the given attribute
// on the given buffer. An empty buffer on the check matches any buffer.
func (b *BlockStatement) ChecksFor(attr CheckAttr, buffer string) []BufferCheck {
	var out []BufferCheck
	for _, c := range b.Checks {
		if c.Attr != attr {
			continue
		}
		if c.Buffer == "" || buffer == "" || c.Buffer == buffer {
			out = append(out, c)
		}
	}
	return out
}

// ---------- Comments ----------

// Comment represents one source comment, block or line, with delimiters
// stripped.
type Comment struct {
	NodeInfo
	Text string
}

// Kind implements Node.
func (*Comment) Kind() Kind { return KindComment }
