package tree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/parser"

	_ "github.com/firrtlator/firrtlator/backend/tree"
)

func TestTreeDumpCoversEveryStatementKind(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input clk : Clock\n" +
		"    input rst : UInt<1>\n" +
		"    input a : UInt<1>\n" +
		"    output b : UInt<1>\n" +
		"    wire w : UInt<1>\n" +
		"    inst i of m\n" +
		"    mem M :\n" +
		"      datatype => UInt<8>\n" +
		"      depth => 16\n" +
		"    reg r : UInt<8>, clk with : (reset => (rst, UInt<8>(0)))\n" +
		"    node n = add(a, a)\n" +
		"    b <= a\n" +
		"    w is invalid\n" +
		"    when a :\n" +
		"      b <= a\n" +
		"    else :\n" +
		"      b <= a\n" +
		"    stop(clk, a, 1)\n" +
		"    printf(clk, a, \"hi\")\n" +
		"    skip\n"
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)

	be, err := backend.Backends.Create("tree")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, be.Generate(&buf, c))

	out := buf.String()
	for _, want := range []string{
		"(circuit)", "(module)", "(port)", "(wire)", "(inst)", "(memory)", "(reg)",
		"(node)", "(connect)", "(invalid)", "(when)", "(stop)", "(printf)", "(skip)",
	} {
		require.Contains(t, out, want)
	}
}

func TestTreeDumpExtModuleLabel(t *testing.T) {
	src := "circuit c :\n  extmodule m :\n    input clk : Clock\n    defname = foo\n"
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)

	be, err := backend.Backends.Create("tree")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, be.Generate(&buf, c))
	require.Contains(t, buf.String(), "extmodule")
	require.Contains(t, buf.String(), "defname=foo")
}
