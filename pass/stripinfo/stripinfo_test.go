package stripinfo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/parser"
)

func TestStripInfoClearsEveryInfoField(t *testing.T) {
	src := "circuit Foo :\n  module Foo :\n    input a : UInt<1> @[Foo.scala 1:2]\n    wire w : UInt<1> @[Foo.scala 2:3]\n    w <= a @[Foo.scala 3:4]\n"
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)
	require.NotEmpty(t, c.Modules[0].Ports[0].Info)

	out, err := Pass{}.Run(c)
	require.NoError(t, err)
	require.Same(t, c, out)

	require.Empty(t, out.Modules[0].Ports[0].Info)
	wire := out.Modules[0].Body.Stmts[0].(*ir.Wire)
	require.Empty(t, wire.Info)
	connect := out.Modules[0].Body.Stmts[1].(*ir.Connect)
	require.Empty(t, connect.Info)
}

func TestStripInfoIsIdempotent(t *testing.T) {
	src := "circuit Foo :\n  module Foo :\n    skip @[Foo.scala 1:1]\n"
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)

	_, err = Pass{}.Run(c)
	require.NoError(t, err)
	first := c.Modules[0].Body.Stmts[0].(*ir.Empty)
	require.Empty(t, first.Info)

	_, err = Pass{}.Run(c)
	require.NoError(t, err)
	require.Empty(t, first.Info)
}
