package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalRefOnBareConstant(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	require.True(t, n.EvalRef(n.Const1(), nil))
	require.False(t, n.EvalRef(n.Const1().Not(), nil))
}

func TestEvalRefOnDanglingProbeNode(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	probe := n.AIGAnd(a.Ref(), b.Ref()) // never wired to any CO

	require.True(t, n.EvalRef(probe, map[ObjID]bool{a.ID(): true, b.ID(): true}))
	require.False(t, n.EvalRef(probe, map[ObjID]bool{a.ID(): true, b.ID(): false}))
}
