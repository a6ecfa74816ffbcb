package dot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/parser"

	_ "github.com/firrtlator/firrtlator/backend/dot"
)

func TestDotEmitsDigraphWithEdges(t *testing.T) {
	src := "circuit top :\n  module top :\n    input a : UInt<1>\n    output b : UInt<1>\n    b <= a\n"
	c, err := parser.ParseCircuit(src)
	require.NoError(t, err)

	be, err := backend.Backends.Create("dot")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, be.Generate(&buf, c))

	out := buf.String()
	require.Contains(t, out, "digraph top {")
	require.Contains(t, out, "->")
	require.Contains(t, out, "}\n")
}

func TestDotRegisteredByExtension(t *testing.T) {
	name, ok := backend.Backends.FindByExtension(".dot")
	require.True(t, ok)
	require.Equal(t, "dot", name)
}
