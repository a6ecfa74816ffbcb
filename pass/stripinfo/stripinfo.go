// Package stripinfo implements the info-erasing pass: walk the IR tree and
// clear every node's Info field, in place, returning the same circuit by
// reference. Running it twice is a no-op the second time (spec.md §8
// idempotence, Universal Property 3), since clearing an already-empty
// string changes nothing.
package stripinfo

import (
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/pass"
)

func init() {
	must(pass.Passes.Register("stripinfo", func() pass.Pass { return Pass{} }))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Pass is the stripinfo transformation.
type Pass struct{}

func (Pass) Name() string        { return "stripinfo" }
func (Pass) Description() string { return "Removes all source-location info strings from the IR" }

func (Pass) Run(c *ir.Circuit) (*ir.Circuit, error) {
	ir.Walk(c, &visitor{})
	return c, nil
}

// visitor clears Info on every node it enters or visits, then always
// descends (every Enter returns true): stripping is total, not selective.
type visitor struct {
	ir.BaseVisitor
}

func (v *visitor) EnterCircuit(c *ir.Circuit) bool { c.Info = ""; return true }
func (v *visitor) EnterModule(m *ir.Module) bool   { m.Info = ""; return true }
func (v *visitor) EnterPort(p *ir.Port) bool       { p.Info = ""; return true }
func (v *visitor) EnterParameter(p *ir.Parameter) bool {
	p.Info = ""
	return true
}

func (v *visitor) VisitTypeInt(t *ir.TypeInt)     { t.Info = "" }
func (v *visitor) VisitTypeClock(t *ir.TypeClock) { t.Info = "" }

func (v *visitor) EnterField(f *ir.Field) bool { f.Info = ""; return true }

func (v *visitor) EnterTypeBundle(t *ir.TypeBundle) bool { t.Info = ""; return true }
func (v *visitor) EnterTypeVector(t *ir.TypeVector) bool { t.Info = ""; return true }

func (v *visitor) EnterStmtGroup(s *ir.StmtGroup) bool { s.Info = ""; return true }

func (v *visitor) EnterWire(w *ir.Wire) bool { w.Info = ""; return true }
func (v *visitor) EnterReg(r *ir.Reg) bool   { r.Info = ""; return true }
func (v *visitor) EnterMemory(m *ir.Memory) bool {
	m.Info = ""
	return true
}
func (v *visitor) EnterInstance(i *ir.Instance) bool { i.Info = ""; return true }
func (v *visitor) EnterNodeStmt(n *ir.NodeStmt) bool { n.Info = ""; return true }
func (v *visitor) EnterConnect(c *ir.Connect) bool   { c.Info = ""; return true }
func (v *visitor) EnterInvalid(i *ir.Invalid) bool   { i.Info = ""; return true }
func (v *visitor) EnterConditional(c *ir.Conditional) bool {
	c.Info = ""
	return true
}
func (v *visitor) EnterStop(s *ir.Stop) bool     { s.Info = ""; return true }
func (v *visitor) EnterPrintf(p *ir.Printf) bool { p.Info = ""; return true }

func (v *visitor) VisitEmpty(e *ir.Empty) { e.Info = "" }

func (v *visitor) VisitReference(r *ir.Reference) { r.Info = "" }
func (v *visitor) VisitConstant(c *ir.Constant)   { c.Info = "" }

func (v *visitor) EnterSubField(s *ir.SubField) bool   { s.Info = ""; return true }
func (v *visitor) EnterSubIndex(s *ir.SubIndex) bool   { s.Info = ""; return true }
func (v *visitor) EnterSubAccess(s *ir.SubAccess) bool { s.Info = ""; return true }
func (v *visitor) EnterMux(m *ir.Mux) bool             { m.Info = ""; return true }
func (v *visitor) EnterCondValid(c *ir.CondValid) bool { c.Info = ""; return true }
func (v *visitor) EnterPrimOp(p *ir.PrimOp) bool       { p.Info = ""; return true }
