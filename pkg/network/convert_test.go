package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertToSopThenBackToAigPreservesFunction(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")
	out := n.AIGXor(n.AIGAnd(a.Ref(), b.Ref()), c.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, out)

	sop, err := n.ConvertToSop()
	require.NoError(t, err)
	require.Equal(t, NtkKindLogic, sop.Kind)
	require.Equal(t, FuncKindSOP, sop.Func)

	back, err := sop.ConvertToAig()
	require.NoError(t, err)
	require.NoError(t, back.Check())

	for mask := 0; mask < 8; mask++ {
		orig := map[ObjID]bool{}
		round := map[ObjID]bool{}
		for i, name := range []string{"a", "b", "c"} {
			v := (mask>>uint(i))&1 == 1
			orig[n.FindCi(name).ID()] = v
			round[back.FindCi(name).ID()] = v
		}
		require.Equal(t,
			n.EvalRef(n.FindCo("out").FaninRef(0), orig),
			back.EvalRef(back.FindCo("out").FaninRef(0), round),
			"mask=%d", mask)
	}
}

func TestConvertToSopConstNode(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "zero"))
	n.AddFanin(po, n.Const1().Not())

	sop, err := n.ConvertToSop()
	require.NoError(t, err)
	driver := sop.FindCo("zero").FaninRef(0)
	require.True(t, driver.Compl, "constant-0 must be represented as the complement of the SOP const-1 node")
	require.Contains(t, sop.Obj(driver.ID).Data().SOP, "1")
}
