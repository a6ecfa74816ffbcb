package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ir"
)

func TestModuleStmtAndParameterAreMutuallyExclusive(t *testing.T) {
	internal := ir.NewModule("m")
	require.Error(t, internal.AddParameter(ir.NewParameter("W", "8")))
	require.Error(t, internal.SetDefname("foo"))

	external := ir.NewExtModule("m")
	require.Error(t, external.AddStmt(ir.NewEmpty()))
	require.NoError(t, external.SetDefname("foo"))
	require.NoError(t, external.AddParameter(ir.NewParameter("W", "8")))
}

func TestMemoryDuplicatePortNamesAreRejected(t *testing.T) {
	m := ir.NewMemory("M")
	require.NoError(t, m.AddReader("r0"))
	require.Error(t, m.AddReader("r0"))
	require.NoError(t, m.AddWriter("w0"))
	require.Error(t, m.AddWriter("w0"))
	require.NoError(t, m.AddReadWriter("rw0"))
	require.Error(t, m.AddReadWriter("rw0"))
}

func TestPrimOpArityEnforcedAtConstruction(t *testing.T) {
	a := ir.NewReference("a")
	b := ir.NewReference("b")
	c := ir.NewReference("c")

	_, err := ir.NewPrimOp(ir.OpAdd, []ir.Expr{a, b, c}, nil)
	require.Error(t, err)

	op, err := ir.NewPrimOp(ir.OpAdd, []ir.Expr{a, b}, nil)
	require.NoError(t, err)
	require.True(t, op.Complete())

	incomplete, err := ir.NewPrimOp(ir.OpBits, []ir.Expr{a}, nil)
	require.NoError(t, err)
	require.False(t, incomplete.Complete())

	_, err = ir.NewPrimOp(ir.OpBits, []ir.Expr{a}, []int{3, 0, 1})
	require.Error(t, err)
}

func TestRegHasResetRequiresBothTriggerAndValue(t *testing.T) {
	clk := ir.NewReference("clk")
	r := ir.NewReg("r", ir.NewTypeInt(false, 8), clk)
	require.False(t, r.HasReset())
	r.ResetTrigger = ir.NewReference("rst")
	require.False(t, r.HasReset())
	r.ResetValue = ir.NewIntConstant(ir.NewTypeInt(false, 8), 0)
	require.True(t, r.HasReset())
}
