// Package firrtl implements the round-trip-faithful FIRRTL text emitter,
// grounded line-by-line on the original implementation's
// FirrtlBackend.cpp. Unlike the dot and tree backends, this one emits
// comma-separated lists (bundle fields, primop operands) whose separator
// placement needs to know "am I the first child", information the
// Enter/Leave boolean-return ir.Visitor contract doesn't carry; it is
// written as direct recursive functions over the IR instead.
package firrtl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/indent"
	"github.com/firrtlator/firrtlator/ir"
)

// quoteFirrtl doubles embedded double quotes, the escape convention
// spec.md §4.1 uses for string literals (never backslash escaping).
func quoteFirrtl(s string) string {
	return strings.ReplaceAll(s, "\"", "\"\"")
}

// Backend is the FIRRTL textual emitter.
type Backend struct{}

func (Backend) Name() string         { return "FIRRTL" }
func (Backend) Description() string  { return "Generates FIRRTL files" }
func (Backend) Extensions() []string { return []string{".fir"} }

func (Backend) Generate(w io.Writer, c *ir.Circuit) error {
	iw := indent.New(w)
	e := &emitter{w: iw}
	return e.circuit(c)
}

func init() {
	must(backend.Backends.Register("FIRRTL", func() backend.Backend { return Backend{} }))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

type emitter struct {
	w   *indent.Writer
	err error
}

func (e *emitter) write(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(fmt.Sprintf(format, args...)); err != nil {
		e.err = err
	}
}

func (e *emitter) info(s string) {
	if s != "" {
		e.write(" @[%s]", s)
	}
}

func (e *emitter) circuit(c *ir.Circuit) error {
	e.write("circuit %s :", c.ID)
	e.info(c.Info)
	e.w.Indent()
	e.write("\n")
	for _, m := range c.Modules {
		e.module(m)
	}
	e.w.Dedent()
	return e.err
}

func (e *emitter) module(m *ir.Module) {
	if m.External {
		e.write("extmodule %s :", m.ID)
	} else {
		e.write("module %s :", m.ID)
	}
	e.info(m.Info)
	e.w.Indent()
	e.write("\n")
	for _, p := range m.Ports {
		e.port(p)
	}
	if m.External {
		if m.Defname != "" {
			e.write("defname = %s\n", m.Defname)
		}
		for _, param := range m.Parameters {
			e.write("parameter %s = %s\n", param.ID, param.Value)
		}
	} else if m.Body != nil {
		for _, s := range m.Body.Stmts {
			e.stmt(s)
		}
	}
	e.w.Dedent()
}

func (e *emitter) port(p *ir.Port) {
	if p.Direction == ir.Input {
		e.write("input ")
	} else {
		e.write("output ")
	}
	e.write("%s : ", p.ID)
	e.typ(p.Type)
	e.write(" ")
	e.info(p.Info)
	e.write("\n")
}

func (e *emitter) typ(t ir.Type) {
	switch v := t.(type) {
	case *ir.TypeInt:
		if v.Signed {
			e.write("SInt")
		} else {
			e.write("UInt")
		}
		if v.HasWidth() {
			e.write("<%d>", v.Width)
		}
	case *ir.TypeClock:
		e.write("Clock")
	case *ir.TypeBundle:
		e.write("{")
		for i, f := range v.Fields {
			if i > 0 {
				e.write(", ")
			}
			if f.Flip {
				e.write("flip ")
			}
			e.write("%s : ", f.ID)
			e.typ(f.Type)
		}
		e.write(" }")
	case *ir.TypeVector:
		e.typ(v.Elem)
		e.write("[%d]", v.Size)
	}
}

func (e *emitter) stmt(s ir.Stmt) {
	switch v := s.(type) {
	case *ir.Wire:
		e.write("wire %s : ", v.ID)
		e.typ(v.Type)
		e.write(" ")
		e.info(v.Info)
		e.write("\n")
	case *ir.Reg:
		e.write("reg %s : ", v.ID)
		e.typ(v.Type)
		e.write(" ")
		e.expr(v.Clock)
		if v.HasReset() {
			e.write(" with : ( reset => ( ")
			e.expr(v.ResetTrigger)
			e.write(", ")
			e.expr(v.ResetValue)
			e.write(" ) ")
		}
		e.info(v.Info)
		e.write("\n")
	case *ir.Memory:
		e.memory(v)
	case *ir.Instance:
		e.write("inst %s of %s ", v.ID, v.Of)
		e.info(v.Info)
		e.write("\n")
	case *ir.NodeStmt:
		e.write("node %s = ", v.ID)
		e.expr(v.Value)
		e.write(" ")
		e.info(v.Info)
		e.write("\n")
	case *ir.Connect:
		e.expr(v.To)
		if v.Partial {
			e.write(" <- ")
		} else {
			e.write(" <= ")
		}
		e.expr(v.From)
		e.info(v.Info)
		e.write("\n")
	case *ir.Invalid:
		e.expr(v.Target)
		e.write(" is invalid")
		e.info(v.Info)
		e.write("\n")
	case *ir.Conditional:
		e.conditional(v)
	case *ir.Stop:
		e.write("stop(")
		e.expr(v.Clock)
		e.write(", ")
		e.expr(v.Cond)
		e.write(", %d)", v.Code)
		e.info(v.Info)
		e.write("\n")
	case *ir.Printf:
		e.write("printf(")
		e.expr(v.Clock)
		e.write(", ")
		e.expr(v.Cond)
		e.write(", \"%s\")", quoteFirrtl(v.Format))
		e.info(v.Info)
		e.write("\n")
	case *ir.Empty:
		e.write("skip")
		e.info(v.Info)
		e.write("\n")
	case *ir.StmtGroup:
		for _, child := range v.Stmts {
			e.stmt(child)
		}
	}
}

func (e *emitter) memory(m *ir.Memory) {
	e.write("mem %s :", m.ID)
	e.info(m.Info)
	e.w.Indent()
	e.write("\n")
	e.write("datatype => ")
	e.typ(m.DType)
	e.write("\n")
	e.write("depth => %d\n", m.Depth)
	e.write("read-latency => %d\n", m.ReadLatency)
	e.write("write-latency => %d\n", m.WriteLatency)
	e.write("read-under-write => %s\n", m.RUW)
	for _, r := range m.Readers {
		e.write("reader => %s\n", r)
	}
	for _, w := range m.Writers {
		e.write("writer => %s\n", w)
	}
	for _, rw := range m.ReadWriters {
		e.write("readwriter => %s\n", rw)
	}
	e.w.Dedent()
}

func (e *emitter) conditional(c *ir.Conditional) {
	e.write("when ")
	e.expr(c.Cond)
	e.write(" :")
	e.info(c.Info)
	e.w.Indent()
	e.write("\n")
	if c.Then != nil {
		for _, s := range c.Then.Stmts {
			e.stmt(s)
		}
	}
	e.w.Dedent()

	switch els := c.Else.(type) {
	case nil:
	case *ir.Conditional:
		e.write("else ")
		e.conditionalInline(els)
	case *ir.StmtGroup:
		e.write("else :")
		e.info(els.Info)
		e.w.Indent()
		e.write("\n")
		for _, s := range els.Stmts {
			e.stmt(s)
		}
		e.w.Dedent()
	}
}

// conditionalInline emits a nested `when` that follows `else ` on the same
// line, for else-if chains.
func (e *emitter) conditionalInline(c *ir.Conditional) {
	e.write("when ")
	e.expr(c.Cond)
	e.write(" :")
	e.info(c.Info)
	e.w.Indent()
	e.write("\n")
	if c.Then != nil {
		for _, s := range c.Then.Stmts {
			e.stmt(s)
		}
	}
	e.w.Dedent()
	switch els := c.Else.(type) {
	case nil:
	case *ir.Conditional:
		e.write("else ")
		e.conditionalInline(els)
	case *ir.StmtGroup:
		e.write("else :")
		e.info(els.Info)
		e.w.Indent()
		e.write("\n")
		for _, s := range els.Stmts {
			e.stmt(s)
		}
		e.w.Dedent()
	}
}

func (e *emitter) expr(x ir.Expr) {
	switch v := x.(type) {
	case *ir.Reference:
		e.write("%s", v.ID)
	case *ir.Constant:
		e.typ(v.Type)
		switch v.Form {
		case ir.IntLiteral:
			e.write("(%s)", strconv.FormatInt(v.Int, 10))
		case ir.StringLiteral:
			e.write("(\"%s\")", quoteFirrtl(v.Str))
		}
	case *ir.SubField:
		e.expr(v.Of)
		e.write(".%s", v.Field)
	case *ir.SubIndex:
		e.expr(v.Of)
		e.write("[%d]", v.Index)
	case *ir.SubAccess:
		e.expr(v.Of)
		e.write("[")
		e.expr(v.Idx)
		e.write("]")
	case *ir.Mux:
		e.write("mux(")
		e.expr(v.Sel)
		e.write(", ")
		e.expr(v.A)
		e.write(", ")
		e.expr(v.B)
		e.write(")")
	case *ir.CondValid:
		e.write("validif(")
		e.expr(v.Sel)
		e.write(", ")
		e.expr(v.A)
		e.write(")")
	case *ir.PrimOp:
		e.write("%s(", v.Op)
		for i, o := range v.Operands {
			if i > 0 {
				e.write(", ")
			}
			e.expr(o)
		}
		for i, p := range v.Params {
			if i > 0 || len(v.Operands) > 0 {
				e.write(", ")
			}
			e.write("%d", p)
		}
		e.write(")")
	}
}
