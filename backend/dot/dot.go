// Package dot implements the graphviz-dot debug backend, grounded on
// DotBackend.cpp: accumulate node labels and edges while descending with
// the generic ir.Visitor, then emit them once traversal completes.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/ir"
)

// Backend is the graphviz dot emitter.
type Backend struct{}

func (Backend) Name() string         { return "dot" }
func (Backend) Description() string  { return "Generates graphviz dot files" }
func (Backend) Extensions() []string { return []string{".dot"} }

func (Backend) Generate(w io.Writer, c *ir.Circuit) error {
	v := &visitor{ids: make(map[interface{}]int)}
	ir.Walk(c, v)
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", c.ID)
	for _, line := range v.nodes {
		fmt.Fprintf(&sb, "  %s\n", line)
	}
	for _, e := range v.edges {
		fmt.Fprintf(&sb, "  %d->%d", e.from, e.to)
		if e.label != "" {
			fmt.Fprintf(&sb, "[label=%q]", e.label)
		}
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func init() {
	must(backend.Backends.Register("dot", func() backend.Backend { return Backend{} }))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

type edge struct {
	from, to int
	label    string
}

// visitor is the ir.Visitor that accumulates node labels and edges;
// id() assigns sequential integer IDs to visited nodes on first sight.
type visitor struct {
	ir.BaseVisitor
	ids   map[interface{}]int
	nodes []string
	edges []edge
}

func (v *visitor) id(n interface{}) int {
	if id, ok := v.ids[n]; ok {
		return id
	}
	id := len(v.ids)
	v.ids[n] = id
	return id
}

func (v *visitor) addNode(n interface{}, label string) int {
	id := v.id(n)
	v.nodes = append(v.nodes, fmt.Sprintf("%d [label=%q];", id, label))
	return id
}

func (v *visitor) addEdge(from, to interface{}, label string) {
	v.edges = append(v.edges, edge{from: v.id(from), to: v.id(to), label: label})
}

func (v *visitor) EnterCircuit(c *ir.Circuit) bool {
	v.addNode(c, "circuit\n"+c.ID)
	for _, m := range c.Modules {
		v.addEdge(c, m, "")
	}
	return true
}

func (v *visitor) EnterModule(m *ir.Module) bool {
	kind := "module"
	if m.External {
		kind = "extmodule"
	}
	v.addNode(m, kind+"\n"+m.ID)
	for _, p := range m.Ports {
		v.addEdge(m, p, "")
	}
	if m.Body != nil {
		v.addEdge(m, m.Body, "")
	}
	return true
}

func (v *visitor) EnterPort(p *ir.Port) bool {
	v.addNode(p, "port\n"+p.ID)
	return true
}

func (v *visitor) EnterStmtGroup(g *ir.StmtGroup) bool {
	v.addNode(g, "stmt_group")
	for i, s := range g.Stmts {
		v.addEdge(g, s, fmt.Sprintf("[%d]", i))
	}
	return true
}

func (v *visitor) EnterWire(w *ir.Wire) bool {
	v.addNode(w, "wire\n"+w.ID)
	return true
}

func (v *visitor) EnterReg(r *ir.Reg) bool {
	v.addNode(r, "reg\n"+r.ID)
	return false
}

func (v *visitor) EnterInstance(i *ir.Instance) bool {
	v.addNode(i, "inst\n"+i.ID)
	return true
}

func (v *visitor) EnterMemory(m *ir.Memory) bool {
	v.addNode(m, "memory\n"+m.ID)
	return true
}

func (v *visitor) EnterNodeStmt(n *ir.NodeStmt) bool {
	v.addNode(n, "node\n"+n.ID)
	return true
}

func (v *visitor) EnterConnect(c *ir.Connect) bool {
	v.addNode(c, "connect")
	v.addEdge(c, c.To, "to")
	v.addEdge(c, c.From, "from")
	return true
}

func (v *visitor) EnterInvalid(i *ir.Invalid) bool {
	v.addNode(i, "invalid")
	return true
}

func (v *visitor) EnterConditional(c *ir.Conditional) bool {
	v.addNode(c, "conditional")
	v.addEdge(c, c.Cond, "cond")
	v.addEdge(c, c.Then, "then")
	if c.Else != nil {
		v.addEdge(c, c.Else, "else")
	}
	return true
}

func (v *visitor) EnterStop(s *ir.Stop) bool {
	v.addNode(s, "stop")
	return true
}

func (v *visitor) EnterPrintf(p *ir.Printf) bool {
	v.addNode(p, "printf")
	return true
}

func (v *visitor) VisitEmpty(e *ir.Empty) {
	v.addNode(e, "skip")
}

func (v *visitor) VisitReference(r *ir.Reference) {
	v.addNode(r, "ref\n"+r.ID)
}

func (v *visitor) VisitConstant(c *ir.Constant) {
	v.addNode(c, "const")
}

func (v *visitor) EnterSubField(s *ir.SubField) bool {
	v.addNode(s, "subfield\n"+s.Field)
	return true
}

func (v *visitor) EnterSubIndex(s *ir.SubIndex) bool {
	v.addNode(s, fmt.Sprintf("subindex\n%d", s.Index))
	return true
}

func (v *visitor) EnterSubAccess(s *ir.SubAccess) bool {
	v.addNode(s, "subaccess")
	return true
}

func (v *visitor) EnterMux(m *ir.Mux) bool {
	v.addNode(m, "mux")
	return true
}

func (v *visitor) EnterCondValid(c *ir.CondValid) bool {
	v.addNode(c, "condvalid")
	return true
}

func (v *visitor) EnterPrimOp(op *ir.PrimOp) bool {
	v.addNode(op, op.Op.String())
	for i, o := range op.Operands {
		v.addEdge(op, o, fmt.Sprintf("[%d]", i))
	}
	return true
}
