package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/ir"
)

func TestMinimalCircuit(t *testing.T) {
	c, err := ParseCircuit("circuit top :\n")
	require.NoError(t, err)
	require.Equal(t, "top", c.ID)
	require.Empty(t, c.Modules)
	require.Empty(t, c.Info)
}

func TestExtModuleWithParameter(t *testing.T) {
	src := "circuit c :\n" +
		"  extmodule m :\n" +
		"    input clk : Clock\n" +
		"    defname = foo\n" +
		"    parameter WIDTH = 8\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	require.Len(t, c.Modules, 1)
	m := c.Modules[0]
	require.True(t, m.External)
	require.Equal(t, "foo", m.Defname)
	require.Len(t, m.Ports, 1)
	require.Equal(t, ir.Input, m.Ports[0].Direction)
	require.Len(t, m.Parameters, 1)
	require.Equal(t, "8", m.Parameters[0].Value)

	err = m.AddStmt(ir.NewEmpty())
	require.Error(t, err)
}

func TestWhenElse(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input a : UInt<1>\n" +
		"    output b : UInt<1>\n" +
		"    when a :\n" +
		"      b <= UInt<1>(1)\n" +
		"    else :\n" +
		"      b <= UInt<1>(0)\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	body := c.Modules[0].Body.Stmts
	require.Len(t, body, 1)
	cond, ok := body[0].(*ir.Conditional)
	require.True(t, ok)
	require.Len(t, cond.Then.Stmts, 1)
	_, isConnect := cond.Then.Stmts[0].(*ir.Connect)
	require.True(t, isConnect)
	elseGroup, ok := cond.Else.(*ir.StmtGroup)
	require.True(t, ok)
	require.Len(t, elseGroup.Stmts, 1)
}

func TestPrimOpExcessOperandIsParseError(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input a : UInt<1>\n" +
		"    input b : UInt<1>\n" +
		"    input cc : UInt<1>\n" +
		"    node n = add(a, b, cc)\n"
	_, err := ParseCircuit(src)
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Parse))
}

func TestPrimOpMissingParamsIsParseError(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input a : UInt<8>\n" +
		"    node n = bits(a)\n"
	_, err := ParseCircuit(src)
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Parse))
}

func TestMemoryRoundTripFields(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    mem M :\n" +
		"      datatype => UInt<8>\n" +
		"      depth => 16\n" +
		"      read-latency => 1\n" +
		"      write-latency => 1\n" +
		"      read-under-write => old\n" +
		"      reader => r0\n" +
		"      writer => w0\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	mem, ok := c.Modules[0].Body.Stmts[0].(*ir.Memory)
	require.True(t, ok)
	require.Equal(t, 16, mem.Depth)
	require.Equal(t, 1, mem.ReadLatency)
	require.Equal(t, 1, mem.WriteLatency)
	require.Equal(t, ir.RUWOld, mem.RUW)
	require.Equal(t, []string{"r0"}, mem.Readers)
	require.Equal(t, []string{"w0"}, mem.Writers)
}

func TestMemoryDuplicateReaderIsSemanticError(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    mem M :\n" +
		"      reader => r0\n" +
		"      reader => r0\n"
	_, err := ParseCircuit(src)
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Semantic))
}

func TestIntLiteralWithUnderscoreSeparators(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    output b : UInt<16>\n" +
		"    b <= UInt<16>(0xFF_FF)\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	connect, ok := c.Modules[0].Body.Stmts[0].(*ir.Connect)
	require.True(t, ok)
	lit, ok := connect.From.(*ir.Constant)
	require.True(t, ok)
	require.Equal(t, int64(0xFFFF), lit.Int)
}

func TestMemoryDuplicateScalarFieldIsSemanticError(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    mem M :\n" +
		"      depth => 16\n" +
		"      depth => 32\n"
	_, err := ParseCircuit(src)
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Semantic))
}

func TestSubFieldIndexChain(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input a : { b : UInt<1>[4] }\n" +
		"    node n = a.b[3]\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	node, ok := c.Modules[0].Body.Stmts[0].(*ir.NodeStmt)
	require.True(t, ok)
	_, isSubIndex := node.Value.(*ir.SubIndex)
	require.True(t, isSubIndex)
}

func TestRegWithReset(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input clk : Clock\n" +
		"    input rst : UInt<1>\n" +
		"    reg r : UInt<8>, clk with : (reset => (rst, UInt<8>(0)))\n"
	c, err := ParseCircuit(src)
	require.NoError(t, err)
	reg, ok := c.Modules[0].Body.Stmts[0].(*ir.Reg)
	require.True(t, ok)
	require.True(t, reg.HasReset())
}
