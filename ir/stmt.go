package ir

import "github.com/firrtlator/firrtlator/ferr"

// StmtGroup is an ordered sequence of statements acting as a body: a
// module's internal body, or a Conditional's then/else block.
type StmtGroup struct {
	Node
	Stmts []Stmt
}

func NewStmtGroup(stmts ...Stmt) *StmtGroup {
	return &StmtGroup{Stmts: stmts}
}

func (s *StmtGroup) isStmt()       {}
func (s *StmtGroup) isElseBranch() {}

// Wire is a combinational signal declaration.
type Wire struct {
	Node
	Type Type
}

func NewWire(id string, typ Type) *Wire { return &Wire{Node: Node{ID: id}, Type: typ} }
func (w *Wire) isStmt()                 {}

// Reg is a clocked register declaration, with an optional synchronous reset
// clause (`with : ( reset => ( trigger, value ) )`).
type Reg struct {
	Node
	Type         Type
	Clock        Expr
	ResetTrigger Expr // nil if no reset clause
	ResetValue   Expr // nil if no reset clause
}

func NewReg(id string, typ Type, clock Expr) *Reg {
	return &Reg{Node: Node{ID: id}, Type: typ, Clock: clock}
}

// HasReset reports whether the reset clause is present.
func (r *Reg) HasReset() bool { return r.ResetTrigger != nil && r.ResetValue != nil }
func (r *Reg) isStmt()        {}

// RUW is a memory's read-under-write policy.
type RUW int

const (
	RUWOld RUW = iota
	RUWNew
	RUWUndefined
)

func (r RUW) String() string {
	switch r {
	case RUWOld:
		return "old"
	case RUWNew:
		return "new"
	default:
		return "undefined"
	}
}

// Memory is a FIRRTL memory declaration. DType, Depth, ReadLatency,
// WriteLatency and RUW are scalar fields set at most once each (spec.md
// §4.2 "Memory body"); Readers/Writers/ReadWriters are ordered sets of port
// names, each unique within its own set (spec.md §3 Memory invariant).
type Memory struct {
	Node
	DType        Type
	Depth        int
	ReadLatency  int
	WriteLatency int
	RUW          RUW

	Readers     []string
	Writers     []string
	ReadWriters []string

	derived *TypeBundle // lazily computed cache; nil means stale/unset
}

func NewMemory(id string) *Memory {
	return &Memory{Node: Node{ID: id}}
}

func (m *Memory) isStmt() {}

// SetDType sets the memory's element type and invalidates the derived
// bundle cache, per spec.md §3's "computed view" lifecycle rule.
func (m *Memory) SetDType(t Type) {
	m.DType = t
	m.derived = nil
}

// AddReader appends a reader port name. It is a ferr.SemanticError if the
// name is already present among this memory's readers.
func (m *Memory) AddReader(name string) error {
	if contains(m.Readers, name) {
		return ferr.SemanticError(noPos, "duplicate reader port %q on memory %q", name, m.ID)
	}
	m.Readers = append(m.Readers, name)
	m.derived = nil
	return nil
}

// AddWriter appends a writer port name. It is a ferr.SemanticError if the
// name is already present among this memory's writers.
func (m *Memory) AddWriter(name string) error {
	if contains(m.Writers, name) {
		return ferr.SemanticError(noPos, "duplicate writer port %q on memory %q", name, m.ID)
	}
	m.Writers = append(m.Writers, name)
	m.derived = nil
	return nil
}

// AddReadWriter appends a read-writer port name. It is a
// ferr.SemanticError if the name is already present among this memory's
// read-writers.
func (m *Memory) AddReadWriter(name string) error {
	if contains(m.ReadWriters, name) {
		return ferr.SemanticError(noPos, "duplicate readwriter port %q on memory %q", name, m.ID)
	}
	m.ReadWriters = append(m.ReadWriters, name)
	m.derived = nil
	return nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// DerivedType returns the memory's per-port sub-bundle type, computing and
// caching it on first access (or after DType/port-set mutation invalidated
// the cache). Each reader contributes {en: UInt<1>, clk: Clock, addr:
// UInt<?>, data: dtype}; each writer additionally gets mask; each
// read-writer additionally gets wmode. addr/data widths are left absent
// (width inference is deferred work, spec.md §9 Open Questions) rather than
// fabricated.
func (m *Memory) DerivedType() *TypeBundle {
	if m.derived != nil {
		return m.derived
	}
	if m.DType == nil {
		return nil
	}
	bundle := NewTypeBundle()
	addrType := NewTypeInt(false, -1)
	en := func() Type { return NewTypeInt(false, 1) }
	clk := func() Type { return &TypeClock{} }

	for _, r := range m.Readers {
		sub := NewTypeBundle(
			NewField("en", en(), false),
			NewField("clk", clk(), false),
			NewField("addr", addrType, false),
			NewField("data", m.DType, true),
		)
		bundle.AddField(NewField(r, sub, false))
	}
	for _, w := range m.Writers {
		sub := NewTypeBundle(
			NewField("en", en(), false),
			NewField("clk", clk(), false),
			NewField("addr", addrType, false),
			NewField("data", m.DType, false),
			NewField("mask", maskType(m.DType), false),
		)
		bundle.AddField(NewField(w, sub, false))
	}
	for _, rw := range m.ReadWriters {
		sub := NewTypeBundle(
			NewField("en", en(), false),
			NewField("clk", clk(), false),
			NewField("addr", addrType, false),
			NewField("wmode", NewTypeInt(false, 1), false),
			NewField("data", m.DType, true),
			NewField("mask", maskType(m.DType), false),
		)
		bundle.AddField(NewField(rw, sub, false))
	}
	m.derived = bundle
	return bundle
}

// maskType mirrors dtype's shape with UInt<1> leaves, for bit-granular
// write masking. Bundles and vectors recurse field-/element-wise; scalar
// int/clock types become a single UInt<1>.
func maskType(dtype Type) Type {
	switch t := dtype.(type) {
	case *TypeBundle:
		out := NewTypeBundle()
		for _, f := range t.Fields {
			out.AddField(NewField(f.ID, maskType(f.Type), f.Flip))
		}
		return out
	case *TypeVector:
		return NewTypeVector(maskType(t.Elem), t.Size)
	default:
		return NewTypeInt(false, 1)
	}
}

// Instance is a module instantiation statement (`inst ID of DEFID`).
type Instance struct {
	Node
	Of string // referenced module identifier
}

func NewInstance(id, of string) *Instance { return &Instance{Node: Node{ID: id}, Of: of} }
func (i *Instance) isStmt()               {}

// NodeStmt is a FIRRTL `node` declaration: a named, derived combinational
// value (`node ID = EXPR`). Named NodeStmt, not Node, to avoid colliding
// with the shared Node embedding used by every IR entity.
type NodeStmt struct {
	Node
	Value Expr
}

func NewNodeStmt(id string, value Expr) *NodeStmt {
	return &NodeStmt{Node: Node{ID: id}, Value: value}
}
func (n *NodeStmt) isStmt() {}

// Connect is a full (`<=`) or partial (`<-`) assignment between two
// expressions.
type Connect struct {
	Node
	To      Expr
	From    Expr
	Partial bool
}

func NewConnect(to, from Expr, partial bool) *Connect {
	return &Connect{To: to, From: from, Partial: partial}
}
func (c *Connect) isStmt() {}

// Invalid marks an expression as driven to an undefined value
// (`EXPR is invalid`).
type Invalid struct {
	Node
	Target Expr
}

func NewInvalid(target Expr) *Invalid { return &Invalid{Target: target} }
func (i *Invalid) isStmt()            {}

// ElseBranch is the sum of *Conditional (an `else when` chain link) and
// *StmtGroup (a plain terminal else block).
type ElseBranch interface {
	isElseBranch()
	Accept(v Visitor)
}

// Conditional is a FIRRTL `when`/`else` statement. Else is nil when there is
// no else clause.
type Conditional struct {
	Node
	Cond Expr
	Then *StmtGroup
	Else ElseBranch
}

func NewConditional(cond Expr, then *StmtGroup) *Conditional {
	return &Conditional{Cond: cond, Then: then}
}
func (c *Conditional) isStmt()       {}
func (c *Conditional) isElseBranch() {}

// Stop is a simulation-termination statement (`stop(clock, cond, code)`).
type Stop struct {
	Node
	Clock Expr
	Cond  Expr
	Code  int
}

func NewStop(clock, cond Expr, code int) *Stop { return &Stop{Clock: clock, Cond: cond, Code: code} }
func (s *Stop) isStmt()                        {}

// Printf is a simulation-time formatted print statement
// (`printf(clock, cond, "fmt")`).
type Printf struct {
	Node
	Clock  Expr
	Cond   Expr
	Format string
}

func NewPrintf(clock, cond Expr, format string) *Printf {
	return &Printf{Clock: clock, Cond: cond, Format: format}
}
func (p *Printf) isStmt() {}

// Empty is the `skip` no-op statement.
type Empty struct {
	Node
}

func NewEmpty() *Empty { return &Empty{} }
func (e *Empty) isStmt() {}
