package ir

import "github.com/firrtlator/firrtlator/ferr"

// Reference is a name lookup into an enclosing lexical scope. To is a weak
// handle populated once name resolution runs; resolution is documented as
// deferred work (spec.md §9 Open Questions), so To is always nil after
// parsing alone. Reference never owns the node it points to — the IR tree
// stays acyclic regardless of how many References name the same
// declaration.
type Reference struct {
	Node // ID is the referenced name
	To   interface{} // resolved declaration handle, nil until resolution runs
}

func NewReference(name string) *Reference { return &Reference{Node: Node{ID: name}} }
func (r *Reference) isExpr()              {}

// LiteralForm records which textual form a Constant was written in, so
// re-emission preserves it exactly (spec.md §3 round-trip invariant).
type LiteralForm int

const (
	IntLiteral    LiteralForm = iota // UInt<n>(123)
	StringLiteral                    // UInt<n>("h1a") / UInt<n>("b101")
)

// Constant is a typed literal value. Exactly one of Int/Str is meaningful,
// selected by Form.
type Constant struct {
	Node
	Type Type
	Form LiteralForm
	Int  int64  // valid when Form == IntLiteral
	Str  string // valid when Form == StringLiteral; includes the original quotes' content, unquoted
}

func NewIntConstant(typ Type, v int64) *Constant {
	return &Constant{Type: typ, Form: IntLiteral, Int: v}
}

func NewStringConstant(typ Type, s string) *Constant {
	return &Constant{Type: typ, Form: StringLiteral, Str: s}
}

func (c *Constant) isExpr() {}

// SubField projects a bundle-typed expression's named field (`a.b`).
type SubField struct {
	Node
	Of    Expr
	Field string
}

func NewSubField(of Expr, field string) *SubField { return &SubField{Of: of, Field: field} }
func (s *SubField) isExpr()                        {}

// SubIndex projects a vector-typed expression at a constant index
// (`a[3]`).
type SubIndex struct {
	Node
	Of    Expr
	Index int
}

func NewSubIndex(of Expr, index int) *SubIndex { return &SubIndex{Of: of, Index: index} }
func (s *SubIndex) isExpr()                     {}

// SubAccess projects a vector-typed expression at a dynamic
// (expression-valued) index (`a[i]`).
type SubAccess struct {
	Node
	Of  Expr
	Idx Expr
}

func NewSubAccess(of, idx Expr) *SubAccess { return &SubAccess{Of: of, Idx: idx} }
func (s *SubAccess) isExpr()                {}

// Mux is a two-way conditional selection (`mux(sel, a, b)`).
type Mux struct {
	Node
	Sel, A, B Expr
}

func NewMux(sel, a, b Expr) *Mux { return &Mux{Sel: sel, A: a, B: b} }
func (m *Mux) isExpr()           {}

// CondValid is a conditionally-valid value (`validif(sel, a)`).
type CondValid struct {
	Node
	Sel, A Expr
}

func NewCondValid(sel, a Expr) *CondValid { return &CondValid{Sel: sel, A: a} }
func (c *CondValid) isExpr()              {}

// Operation is one of the 31 primitive hardware operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLeq
	OpGt
	OpGeq
	OpEq
	OpNeq
	OpPad
	OpAsUInt
	OpAsSInt
	OpAsClock
	OpShl
	OpShr
	OpDshl
	OpDshr
	OpCvt
	OpNeg
	OpNot
	OpAnd
	OpOr
	OpXor
	OpAndr
	OpOrr
	OpXorr
	OpCat
	OpBits
	OpHead
	OpTail
)

// opArity describes an Operation's fixed operand count and integer
// parameter count, collapsing the 31 PrimOpXxx C++ subclasses of the
// original implementation into one table (spec.md §9).
type opArity struct {
	Operands int
	Params   int
}

var opInfo = map[Operation]opArity{
	OpAdd: {2, 0}, OpSub: {2, 0}, OpMul: {2, 0}, OpDiv: {2, 0}, OpMod: {2, 0},
	OpLt: {2, 0}, OpLeq: {2, 0}, OpGt: {2, 0}, OpGeq: {2, 0}, OpEq: {2, 0}, OpNeq: {2, 0},
	OpPad: {1, 1},
	OpAsUInt: {1, 0}, OpAsSInt: {1, 0}, OpAsClock: {1, 0},
	OpShl: {1, 1}, OpShr: {1, 1},
	OpDshl: {2, 0}, OpDshr: {2, 0},
	OpCvt: {1, 0}, OpNeg: {1, 0}, OpNot: {1, 0},
	OpAnd: {2, 0}, OpOr: {2, 0}, OpXor: {2, 0},
	OpAndr: {1, 0}, OpOrr: {1, 0}, OpXorr: {1, 0},
	OpCat:  {2, 0},
	OpBits: {1, 2},
	OpHead: {1, 1}, OpTail: {1, 1},
}

var opNames = map[Operation]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div", OpMod: "mod",
	OpLt: "lt", OpLeq: "leq", OpGt: "gt", OpGeq: "geq", OpEq: "eq", OpNeq: "neq",
	OpPad: "pad", OpAsUInt: "asUInt", OpAsSInt: "asSInt", OpAsClock: "asClock",
	OpShl: "shl", OpShr: "shr", OpDshl: "dshl", OpDshr: "dshr",
	OpCvt: "cvt", OpNeg: "neg", OpNot: "not", OpAnd: "and", OpOr: "or", OpXor: "xor",
	OpAndr: "andr", OpOrr: "orr", OpXorr: "xorr", OpCat: "cat", OpBits: "bits",
	OpHead: "head", OpTail: "tail",
}

// Operations maps a primitive-operation keyword to its Operation tag. The
// lexer consults this directly to recognize the 31
// PRIMOP keywords; it is the single source of truth for the name set.
var Operations = func() map[string]Operation {
	m := make(map[string]Operation, len(opNames))
	for op, name := range opNames {
		m[name] = op
	}
	return m
}()

func (op Operation) String() string { return opNames[op] }

// Arity returns op's fixed operand count and integer-parameter count.
func (op Operation) Arity() (operands, params int) {
	a := opInfo[op]
	return a.Operands, a.Params
}

// PrimOp is a primitive hardware operation applied to its operands and
// integer parameters. NewPrimOp enforces spec.md §3's invariant that
// |operands| <= declared arity and |params| <= declared param count always;
// violating arity at construction is a ferr.ParseError (the parser calls it
// once its feeder loop, described in spec.md §4.2, reaches ')').
type PrimOp struct {
	Node
	Op       Operation
	Operands []Expr
	Params   []int
}

func NewPrimOp(op Operation, operands []Expr, params []int) (*PrimOp, error) {
	wantOperands, wantParams := op.Arity()
	if len(operands) > wantOperands {
		return nil, ferr.ParseError(noPos, "%s: excess operand (want %d, got %d)", op, wantOperands, len(operands))
	}
	if len(params) > wantParams {
		return nil, ferr.ParseError(noPos, "%s: excess parameter (want %d, got %d)", op, wantParams, len(params))
	}
	return &PrimOp{Op: op, Operands: operands, Params: params}, nil
}

// Complete reports whether the PrimOp has exactly its declared arity of
// operands and parameters, the condition spec.md §3 requires to hold "at
// emission time".
func (p *PrimOp) Complete() bool {
	wantOperands, wantParams := p.Op.Arity()
	return len(p.Operands) == wantOperands && len(p.Params) == wantParams
}

func (p *PrimOp) isExpr() {}
