package ir

// Visitor is the double-dispatch traversal protocol described in spec.md
// §4.3: branch nodes (those with children) get an Enter/Leave pair where
// Enter's bool return controls whether the traversal descends into the
// node's children; leaf nodes (TypeInt, TypeClock, Reference, Constant,
// Empty) get a single Visit call with no descent. This is the direct Go
// translation of the original implementation's Visitor base class
// (original_source/lib/include/Visitor.h), which declares one virtual
// visit/leave pair per concrete IR type with a default body — here realized
// as one interface plus an embeddable BaseVisitor supplying those defaults,
// since Go has no virtual-with-default-body methods (spec.md §9 "Deep
// inheritance").
type Visitor interface {
	EnterCircuit(c *Circuit) bool
	LeaveCircuit(c *Circuit)

	EnterModule(m *Module) bool
	LeaveModule(m *Module)

	EnterPort(p *Port) bool
	LeavePort(p *Port)

	EnterParameter(p *Parameter) bool
	LeaveParameter(p *Parameter)

	VisitTypeInt(t *TypeInt)
	VisitTypeClock(t *TypeClock)

	EnterField(f *Field) bool
	LeaveField(f *Field)

	EnterTypeBundle(t *TypeBundle) bool
	LeaveTypeBundle(t *TypeBundle)

	EnterTypeVector(t *TypeVector) bool
	LeaveTypeVector(t *TypeVector)

	EnterStmtGroup(s *StmtGroup) bool
	LeaveStmtGroup(s *StmtGroup)

	EnterWire(w *Wire) bool
	LeaveWire(w *Wire)

	EnterReg(r *Reg) bool
	LeaveReg(r *Reg)

	EnterMemory(m *Memory) bool
	LeaveMemory(m *Memory)

	EnterInstance(i *Instance) bool
	LeaveInstance(i *Instance)

	EnterNodeStmt(n *NodeStmt) bool
	LeaveNodeStmt(n *NodeStmt)

	EnterConnect(c *Connect) bool
	LeaveConnect(c *Connect)

	EnterInvalid(i *Invalid) bool
	LeaveInvalid(i *Invalid)

	EnterConditional(c *Conditional) bool
	LeaveConditional(c *Conditional)

	EnterStop(s *Stop) bool
	LeaveStop(s *Stop)

	EnterPrintf(p *Printf) bool
	LeavePrintf(p *Printf)

	VisitEmpty(e *Empty)

	VisitReference(r *Reference)
	VisitConstant(c *Constant)

	EnterSubField(s *SubField) bool
	LeaveSubField(s *SubField)

	EnterSubIndex(s *SubIndex) bool
	LeaveSubIndex(s *SubIndex)

	EnterSubAccess(s *SubAccess) bool
	LeaveSubAccess(s *SubAccess)

	EnterMux(m *Mux) bool
	LeaveMux(m *Mux)

	EnterCondValid(c *CondValid) bool
	LeaveCondValid(c *CondValid)

	EnterPrimOp(p *PrimOp) bool
	LeavePrimOp(p *PrimOp)
}

// BaseVisitor implements every Visitor method as a no-op that descends into
// children (Enter* returns true). Concrete visitors embed BaseVisitor and
// override only the methods they care about, the idiomatic Go substitute
// for the original's virtual-with-default-body base class.
type BaseVisitor struct{}

func (BaseVisitor) EnterCircuit(*Circuit) bool { return true }
func (BaseVisitor) LeaveCircuit(*Circuit)       {}

func (BaseVisitor) EnterModule(*Module) bool { return true }
func (BaseVisitor) LeaveModule(*Module)       {}

func (BaseVisitor) EnterPort(*Port) bool { return true }
func (BaseVisitor) LeavePort(*Port)       {}

func (BaseVisitor) EnterParameter(*Parameter) bool { return true }
func (BaseVisitor) LeaveParameter(*Parameter)       {}

func (BaseVisitor) VisitTypeInt(*TypeInt)     {}
func (BaseVisitor) VisitTypeClock(*TypeClock) {}

func (BaseVisitor) EnterField(*Field) bool { return true }
func (BaseVisitor) LeaveField(*Field)       {}

func (BaseVisitor) EnterTypeBundle(*TypeBundle) bool { return true }
func (BaseVisitor) LeaveTypeBundle(*TypeBundle)       {}

func (BaseVisitor) EnterTypeVector(*TypeVector) bool { return true }
func (BaseVisitor) LeaveTypeVector(*TypeVector)       {}

func (BaseVisitor) EnterStmtGroup(*StmtGroup) bool { return true }
func (BaseVisitor) LeaveStmtGroup(*StmtGroup)       {}

func (BaseVisitor) EnterWire(*Wire) bool { return true }
func (BaseVisitor) LeaveWire(*Wire)       {}

func (BaseVisitor) EnterReg(*Reg) bool { return true }
func (BaseVisitor) LeaveReg(*Reg)       {}

func (BaseVisitor) EnterMemory(*Memory) bool { return true }
func (BaseVisitor) LeaveMemory(*Memory)       {}

func (BaseVisitor) EnterInstance(*Instance) bool { return true }
func (BaseVisitor) LeaveInstance(*Instance)       {}

func (BaseVisitor) EnterNodeStmt(*NodeStmt) bool { return true }
func (BaseVisitor) LeaveNodeStmt(*NodeStmt)       {}

func (BaseVisitor) EnterConnect(*Connect) bool { return true }
func (BaseVisitor) LeaveConnect(*Connect)       {}

func (BaseVisitor) EnterInvalid(*Invalid) bool { return true }
func (BaseVisitor) LeaveInvalid(*Invalid)       {}

func (BaseVisitor) EnterConditional(*Conditional) bool { return true }
func (BaseVisitor) LeaveConditional(*Conditional)       {}

func (BaseVisitor) EnterStop(*Stop) bool { return true }
func (BaseVisitor) LeaveStop(*Stop)       {}

func (BaseVisitor) EnterPrintf(*Printf) bool { return true }
func (BaseVisitor) LeavePrintf(*Printf)       {}

func (BaseVisitor) VisitEmpty(*Empty) {}

func (BaseVisitor) VisitReference(*Reference) {}
func (BaseVisitor) VisitConstant(*Constant)   {}

func (BaseVisitor) EnterSubField(*SubField) bool { return true }
func (BaseVisitor) LeaveSubField(*SubField)       {}

func (BaseVisitor) EnterSubIndex(*SubIndex) bool { return true }
func (BaseVisitor) LeaveSubIndex(*SubIndex)       {}

func (BaseVisitor) EnterSubAccess(*SubAccess) bool { return true }
func (BaseVisitor) LeaveSubAccess(*SubAccess)       {}

func (BaseVisitor) EnterMux(*Mux) bool { return true }
func (BaseVisitor) LeaveMux(*Mux)       {}

func (BaseVisitor) EnterCondValid(*CondValid) bool { return true }
func (BaseVisitor) LeaveCondValid(*CondValid)       {}

func (BaseVisitor) EnterPrimOp(*PrimOp) bool { return true }
func (BaseVisitor) LeavePrimOp(*PrimOp)       {}

// Walk is a convenience entry point equivalent to n.Accept(v), used by
// callers that hold an ir.Stmt/ir.Expr/ir.Type rather than a concrete type.
func Walk(n interface{ Accept(Visitor) }, v Visitor) { n.Accept(v) }

// --- Accept implementations: one per concrete type, fixing the
// deterministic child order declared in spec.md §4.3. ---

func (c *Circuit) Accept(v Visitor) {
	if !v.EnterCircuit(c) {
		v.LeaveCircuit(c)
		return
	}
	for _, m := range c.Modules {
		m.Accept(v)
	}
	v.LeaveCircuit(c)
}

func (m *Module) Accept(v Visitor) {
	if !v.EnterModule(m) {
		v.LeaveModule(m)
		return
	}
	for _, p := range m.Ports {
		p.Accept(v)
	}
	if m.External {
		for _, p := range m.Parameters {
			p.Accept(v)
		}
	} else if m.Body != nil {
		m.Body.Accept(v)
	}
	v.LeaveModule(m)
}

func (p *Port) Accept(v Visitor) {
	if !v.EnterPort(p) {
		v.LeavePort(p)
		return
	}
	if p.Type != nil {
		p.Type.Accept(v)
	}
	v.LeavePort(p)
}

func (p *Parameter) Accept(v Visitor) {
	if !v.EnterParameter(p) {
		v.LeaveParameter(p)
		return
	}
	v.LeaveParameter(p)
}

func (t *TypeInt) Accept(v Visitor) { v.VisitTypeInt(t) }
func (t *TypeClock) Accept(v Visitor) { v.VisitTypeClock(t) }

func (f *Field) Accept(v Visitor) {
	if !v.EnterField(f) {
		v.LeaveField(f)
		return
	}
	if f.Type != nil {
		f.Type.Accept(v)
	}
	v.LeaveField(f)
}

func (t *TypeBundle) Accept(v Visitor) {
	if !v.EnterTypeBundle(t) {
		v.LeaveTypeBundle(t)
		return
	}
	for _, f := range t.Fields {
		f.Accept(v)
	}
	v.LeaveTypeBundle(t)
}

func (t *TypeVector) Accept(v Visitor) {
	if !v.EnterTypeVector(t) {
		v.LeaveTypeVector(t)
		return
	}
	if t.Elem != nil {
		t.Elem.Accept(v)
	}
	v.LeaveTypeVector(t)
}

func (s *StmtGroup) Accept(v Visitor) {
	if !v.EnterStmtGroup(s) {
		v.LeaveStmtGroup(s)
		return
	}
	for _, stmt := range s.Stmts {
		stmt.Accept(v)
	}
	v.LeaveStmtGroup(s)
}

func (w *Wire) Accept(v Visitor) {
	if !v.EnterWire(w) {
		v.LeaveWire(w)
		return
	}
	if w.Type != nil {
		w.Type.Accept(v)
	}
	v.LeaveWire(w)
}

func (r *Reg) Accept(v Visitor) {
	if !v.EnterReg(r) {
		v.LeaveReg(r)
		return
	}
	if r.Type != nil {
		r.Type.Accept(v)
	}
	if r.Clock != nil {
		r.Clock.Accept(v)
	}
	if r.HasReset() {
		r.ResetTrigger.Accept(v)
		r.ResetValue.Accept(v)
	}
	v.LeaveReg(r)
}

func (m *Memory) Accept(v Visitor) {
	if !v.EnterMemory(m) {
		v.LeaveMemory(m)
		return
	}
	if m.DType != nil {
		m.DType.Accept(v)
	}
	v.LeaveMemory(m)
}

func (i *Instance) Accept(v Visitor) {
	if !v.EnterInstance(i) {
		v.LeaveInstance(i)
		return
	}
	v.LeaveInstance(i)
}

func (n *NodeStmt) Accept(v Visitor) {
	if !v.EnterNodeStmt(n) {
		v.LeaveNodeStmt(n)
		return
	}
	if n.Value != nil {
		n.Value.Accept(v)
	}
	v.LeaveNodeStmt(n)
}

func (c *Connect) Accept(v Visitor) {
	if !v.EnterConnect(c) {
		v.LeaveConnect(c)
		return
	}
	if c.To != nil {
		c.To.Accept(v)
	}
	if c.From != nil {
		c.From.Accept(v)
	}
	v.LeaveConnect(c)
}

func (i *Invalid) Accept(v Visitor) {
	if !v.EnterInvalid(i) {
		v.LeaveInvalid(i)
		return
	}
	if i.Target != nil {
		i.Target.Accept(v)
	}
	v.LeaveInvalid(i)
}

func (c *Conditional) Accept(v Visitor) {
	if !v.EnterConditional(c) {
		v.LeaveConditional(c)
		return
	}
	if c.Cond != nil {
		c.Cond.Accept(v)
	}
	if c.Then != nil {
		c.Then.Accept(v)
	}
	if c.Else != nil {
		c.Else.Accept(v)
	}
	v.LeaveConditional(c)
}

func (s *Stop) Accept(v Visitor) {
	if !v.EnterStop(s) {
		v.LeaveStop(s)
		return
	}
	if s.Clock != nil {
		s.Clock.Accept(v)
	}
	if s.Cond != nil {
		s.Cond.Accept(v)
	}
	v.LeaveStop(s)
}

func (p *Printf) Accept(v Visitor) {
	if !v.EnterPrintf(p) {
		v.LeavePrintf(p)
		return
	}
	if p.Clock != nil {
		p.Clock.Accept(v)
	}
	if p.Cond != nil {
		p.Cond.Accept(v)
	}
	v.LeavePrintf(p)
}

func (e *Empty) Accept(v Visitor) { v.VisitEmpty(e) }

func (r *Reference) Accept(v Visitor) { v.VisitReference(r) }
func (c *Constant) Accept(v Visitor)  { v.VisitConstant(c) }

func (s *SubField) Accept(v Visitor) {
	if !v.EnterSubField(s) {
		v.LeaveSubField(s)
		return
	}
	if s.Of != nil {
		s.Of.Accept(v)
	}
	v.LeaveSubField(s)
}

func (s *SubIndex) Accept(v Visitor) {
	if !v.EnterSubIndex(s) {
		v.LeaveSubIndex(s)
		return
	}
	if s.Of != nil {
		s.Of.Accept(v)
	}
	v.LeaveSubIndex(s)
}

func (s *SubAccess) Accept(v Visitor) {
	if !v.EnterSubAccess(s) {
		v.LeaveSubAccess(s)
		return
	}
	if s.Of != nil {
		s.Of.Accept(v)
	}
	if s.Idx != nil {
		s.Idx.Accept(v)
	}
	v.LeaveSubAccess(s)
}

func (m *Mux) Accept(v Visitor) {
	if !v.EnterMux(m) {
		v.LeaveMux(m)
		return
	}
	if m.Sel != nil {
		m.Sel.Accept(v)
	}
	if m.A != nil {
		m.A.Accept(v)
	}
	if m.B != nil {
		m.B.Accept(v)
	}
	v.LeaveMux(m)
}

func (c *CondValid) Accept(v Visitor) {
	if !v.EnterCondValid(c) {
		v.LeaveCondValid(c)
		return
	}
	if c.Sel != nil {
		c.Sel.Accept(v)
	}
	if c.A != nil {
		c.A.Accept(v)
	}
	v.LeaveCondValid(c)
}

func (p *PrimOp) Accept(v Visitor) {
	if !v.EnterPrimOp(p) {
		v.LeavePrimOp(p)
		return
	}
	for _, o := range p.Operands {
		o.Accept(v)
	}
	v.LeavePrimOp(p)
}
