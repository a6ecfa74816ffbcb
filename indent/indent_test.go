package indent_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/indent"
)

func TestIndentInsertsTwoSpacesPerLevelAfterNewline(t *testing.T) {
	var buf bytes.Buffer
	w := indent.New(&buf)
	w.WriteString("circuit top :")
	w.Indent()
	w.WriteString("\n")
	w.WriteString("module top :")
	w.Indent()
	w.WriteString("\n")
	w.WriteString("skip\n")
	w.Dedent()
	w.WriteString("skip\n")
	w.Dedent()

	require.Equal(t, "circuit top :\n  module top :\n    skip\n  skip\n", buf.String())
}

func TestDedentBelowZeroPanics(t *testing.T) {
	w := indent.New(&bytes.Buffer{})
	require.Panics(t, func() { w.Dedent() })
}
