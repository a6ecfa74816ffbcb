// Package tree implements the ASCII tree-dump debug backend, grounded on
// TreeBackend.cpp: one line per node, prefixed with its variant name in
// parentheses and key attributes, children indented one level via the
// generic ir.Visitor and an indent.Writer.
package tree

import (
	"fmt"
	"io"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/indent"
	"github.com/firrtlator/firrtlator/ir"
)

// Backend is the ASCII tree dumper.
type Backend struct{}

func (Backend) Name() string         { return "tree" }
func (Backend) Description() string  { return "Dump the IR tree in ASCII" }
func (Backend) Extensions() []string { return []string{".tree"} }

func (Backend) Generate(w io.Writer, c *ir.Circuit) error {
	iw := indent.New(w)
	v := &visitor{w: iw}
	ir.Walk(c, v)
	return v.err
}

func init() {
	must(backend.Backends.Register("tree", func() backend.Backend { return Backend{} }))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

type visitor struct {
	ir.BaseVisitor
	w   *indent.Writer
	err error
}

func (v *visitor) line(format string, args ...interface{}) {
	if v.err != nil {
		return
	}
	if _, err := v.w.WriteString(fmt.Sprintf(format+"\n", args...)); err != nil {
		v.err = err
	}
}

func (v *visitor) info(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf(", info=%q", s)
}

func (v *visitor) EnterCircuit(c *ir.Circuit) bool {
	v.line("(circuit) id=%s%s", c.ID, v.info(c.Info))
	v.w.Indent()
	return true
}
func (v *visitor) LeaveCircuit(*ir.Circuit) { v.w.Dedent() }

func (v *visitor) EnterModule(m *ir.Module) bool {
	kind := "module"
	if m.External {
		kind = "extmodule"
	}
	v.line("(%s) id=%s%s", kind, m.ID, v.info(m.Info))
	v.w.Indent()
	if m.External && m.Defname != "" {
		v.line("[defname=%s]", m.Defname)
	}
	return true
}
func (v *visitor) LeaveModule(*ir.Module) { v.w.Dedent() }

func (v *visitor) EnterPort(p *ir.Port) bool {
	v.line("(port) id=%s, dir=%s%s", p.ID, p.Direction, v.info(p.Info))
	v.w.Indent()
	return true
}
func (v *visitor) LeavePort(*ir.Port) { v.w.Dedent() }

func (v *visitor) EnterParameter(p *ir.Parameter) bool {
	v.line("(parameter) id=%s, value=%s", p.ID, p.Value)
	return true
}

func (v *visitor) VisitTypeInt(t *ir.TypeInt) {
	v.line("(type int) signed=%t, width=%d", t.Signed, t.Width)
}
func (v *visitor) VisitTypeClock(*ir.TypeClock) { v.line("(type clock)") }

func (v *visitor) EnterField(f *ir.Field) bool {
	v.line("(field) id=%s, flipped=%t", f.ID, f.Flip)
	v.w.Indent()
	return true
}
func (v *visitor) LeaveField(*ir.Field) { v.w.Dedent() }

func (v *visitor) EnterTypeBundle(*ir.TypeBundle) bool {
	v.line("(type bundle)")
	v.w.Indent()
	return true
}
func (v *visitor) LeaveTypeBundle(*ir.TypeBundle) { v.w.Dedent() }

func (v *visitor) EnterTypeVector(t *ir.TypeVector) bool {
	v.line("(type vector) size=%d", t.Size)
	v.w.Indent()
	return true
}
func (v *visitor) LeaveTypeVector(*ir.TypeVector) { v.w.Dedent() }

func (v *visitor) EnterStmtGroup(*ir.StmtGroup) bool {
	v.line("(stmt group)")
	v.w.Indent()
	return true
}
func (v *visitor) LeaveStmtGroup(*ir.StmtGroup) { v.w.Dedent() }

func (v *visitor) EnterWire(w *ir.Wire) bool {
	v.line("(wire) id=%s", w.ID)
	v.w.Indent()
	return true
}
func (v *visitor) LeaveWire(*ir.Wire) { v.w.Dedent() }

func (v *visitor) EnterReg(r *ir.Reg) bool {
	v.line("(reg) id=%s%s", r.ID, v.info(r.Info))
	v.w.Indent()
	v.line("[type]")
	ir.Walk(r.Type, v)
	v.line("[clock]")
	ir.Walk(r.Clock, v)
	if r.HasReset() {
		v.line("[reset trigger]")
		ir.Walk(r.ResetTrigger, v)
		v.line("[reset value]")
		ir.Walk(r.ResetValue, v)
	}
	v.w.Dedent()
	return false
}

func (v *visitor) EnterInstance(i *ir.Instance) bool {
	v.line("(inst) id=%s, of=%s", i.ID, i.Of)
	return true
}

func (v *visitor) EnterMemory(m *ir.Memory) bool {
	v.line("(memory) id=%s, depth=%d, read-latency=%d, write-latency=%d, read-under-write=%s",
		m.ID, m.Depth, m.ReadLatency, m.WriteLatency, m.RUW)
	return false
}

func (v *visitor) EnterNodeStmt(n *ir.NodeStmt) bool {
	v.line("(node) id=%s", n.ID)
	v.w.Indent()
	return true
}
func (v *visitor) LeaveNodeStmt(*ir.NodeStmt) { v.w.Dedent() }

func (v *visitor) EnterConnect(c *ir.Connect) bool {
	v.line("(connect) partial=%t", c.Partial)
	v.w.Indent()
	v.line("[to]")
	ir.Walk(c.To, v)
	v.line("[from]")
	ir.Walk(c.From, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterInvalid(i *ir.Invalid) bool {
	v.line("(invalid)")
	v.w.Indent()
	return true
}
func (v *visitor) LeaveInvalid(*ir.Invalid) { v.w.Dedent() }

func (v *visitor) EnterConditional(c *ir.Conditional) bool {
	v.line("(when)")
	v.w.Indent()
	v.line("[cond]")
	ir.Walk(c.Cond, v)
	v.line("[then]")
	ir.Walk(c.Then, v)
	if c.Else != nil {
		v.line("[else]")
		ir.Walk(c.Else, v)
	}
	v.w.Dedent()
	return false
}

func (v *visitor) EnterStop(s *ir.Stop) bool {
	v.line("(stop) code=%d", s.Code)
	v.w.Indent()
	v.line("[clock]")
	ir.Walk(s.Clock, v)
	v.line("[cond]")
	ir.Walk(s.Cond, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterPrintf(p *ir.Printf) bool {
	v.line("(printf) format=%q", p.Format)
	v.w.Indent()
	v.line("[clock]")
	ir.Walk(p.Clock, v)
	v.line("[cond]")
	ir.Walk(p.Cond, v)
	v.w.Dedent()
	return false
}

func (v *visitor) VisitEmpty(*ir.Empty) { v.line("(skip)") }

func (v *visitor) VisitReference(r *ir.Reference) { v.line("(ref) to=%s", r.ID) }

func (v *visitor) VisitConstant(c *ir.Constant) {
	switch c.Form {
	case ir.IntLiteral:
		v.line("(const) value=%d", c.Int)
	default:
		v.line("(const) value=%q", c.Str)
	}
	v.w.Indent()
	ir.Walk(c.Type, v)
	v.w.Dedent()
}

func (v *visitor) EnterSubField(s *ir.SubField) bool {
	v.line("(subfield) field=%s", s.Field)
	v.w.Indent()
	v.line("[of]")
	ir.Walk(s.Of, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterSubIndex(s *ir.SubIndex) bool {
	v.line("(subindex) index=%d", s.Index)
	v.w.Indent()
	v.line("[of]")
	ir.Walk(s.Of, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterSubAccess(s *ir.SubAccess) bool {
	v.line("(subaccess)")
	v.w.Indent()
	v.line("[of]")
	ir.Walk(s.Of, v)
	v.line("[index]")
	ir.Walk(s.Idx, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterMux(m *ir.Mux) bool {
	v.line("(mux)")
	v.w.Indent()
	v.line("[sel]")
	ir.Walk(m.Sel, v)
	v.line("[a]")
	ir.Walk(m.A, v)
	v.line("[b]")
	ir.Walk(m.B, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterCondValid(c *ir.CondValid) bool {
	v.line("(condvalid)")
	v.w.Indent()
	v.line("[sel]")
	ir.Walk(c.Sel, v)
	v.line("[a]")
	ir.Walk(c.A, v)
	v.w.Dedent()
	return false
}

func (v *visitor) EnterPrimOp(op *ir.PrimOp) bool {
	v.line("(%s)", op.Op)
	v.w.Indent()
	return true
}
func (v *visitor) LeavePrimOp(*ir.PrimOp) { v.w.Dedent() }
