package firrtl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/parser"

	_ "github.com/firrtlator/firrtlator/backend/firrtl"
)

func generate(t *testing.T, c *ir.Circuit) string {
	t.Helper()
	be, err := backend.Backends.Create("FIRRTL")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, be.Generate(&buf, c))
	return buf.String()
}

// roundTrip parses src, re-emits it, and reparses the emission, asserting
// the two trees are structurally identical modulo Info — spec.md §8's
// round-trip property (S1..S5's shapes).
func roundTrip(t *testing.T, src string) *ir.Circuit {
	t.Helper()
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)

	out := generate(t, c)
	c2, err := parser.ParseCircuit(out)
	require.NoError(t, err, "re-emitted source:\n%s", out)
	require.True(t, ir.Equal(c, c2), "round-trip mismatch\nsource:\n%s\nemitted:\n%s", src, out)
	return c2
}

func TestRoundTripSimpleModule(t *testing.T) {
	roundTrip(t, "circuit top :\n  module top :\n    input a : UInt<1>\n    output b : UInt<1>\n    b <= a\n")
}

func TestRoundTripExtModuleWithParameter(t *testing.T) {
	roundTrip(t, "circuit c :\n  extmodule m :\n    input clk : Clock\n    defname = foo\n    parameter WIDTH = 8\n")
}

func TestRoundTripWhenElse(t *testing.T) {
	roundTrip(t, "circuit c :\n  module m :\n    input a : UInt<1>\n    output b : UInt<1>\n    when a :\n      b <= UInt<1>(1)\n    else :\n      b <= UInt<1>(0)\n")
}

func TestRoundTripMemory(t *testing.T) {
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
	roundTrip(t, src)
}

func TestRoundTripRegWithReset(t *testing.T) {
	src := "circuit c :\n" +
		"  module m :\n" +
		"    input clk : Clock\n" +
		"    input rst : UInt<1>\n" +
		"    reg r : UInt<8>, clk with : (reset => (rst, UInt<8>(0)))\n"
	roundTrip(t, src)
}

func TestRoundTripBundleAndVectorTypes(t *testing.T) {
	src := "circuit c :\n  module m :\n    input a : { b : UInt<1>, flip c : UInt<2>[3] }\n"
	roundTrip(t, src)
}

func TestRoundTripPrimOpWithParams(t *testing.T) {
	src := "circuit c :\n  module m :\n    input a : UInt<8>\n    node n = bits(a, 3, 0)\n"
	roundTrip(t, src)
}

func TestEmittedOutputUsesTwoSpaceIndentation(t *testing.T) {
	c, err := parser.ParseCircuit("circuit c :\n  module m :\n    input a : UInt<1>\n")
	require.NoError(t, err)
	out := generate(t, c)
	require.Contains(t, out, "\n  module m :\n")
	require.Contains(t, out, "\n    input a")
}
