package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocRejectsIncompatibleKindFunc(t *testing.T) {
	_, err := Alloc(NtkKindNetlist, FuncKindAIG)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ErrIncompatibleKindFunc, e.Kind)

	_, err = Alloc(NtkKindStrash, FuncKindSOP)
	require.Error(t, err)
}

func TestSetNameRejectsDuplicatePrimaryIO(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := n.CreatePI()
	require.NoError(t, n.SetName(a, "x"))

	b := n.CreatePI()
	err = n.SetName(b, "x")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ErrNameClash, e.Kind)

	// Renaming a itself to the same name it already holds is not a clash.
	require.NoError(t, n.SetName(a, "x"))
}

func TestFindCiFindCoRoundTrip(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, a.Ref())

	require.Equal(t, a.ID(), n.FindCi("a").ID())
	require.Equal(t, po.ID(), n.FindCo("out").ID())
	require.Nil(t, n.FindCi("out"), "a PO name must not resolve through FindCi")
	require.Nil(t, n.FindCo("a"), "a PI name must not resolve through FindCo")
}

func TestStartFromFinalizeBuildsIsomorphicCopy(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	and := n.AIGAnd(a.Ref(), b.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, and.Not())

	dst, err := n.StartFrom(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	for _, obj := range n.Dfs() {
		p0 := n.arena.get(obj.fanins[0].Peer).copy.NotCond(obj.fanins[0].Compl)
		p1 := n.arena.get(obj.fanins[1].Peer).copy.NotCond(obj.fanins[1].Compl)
		obj.copy = dst.AIGAnd(p0, p1)
	}
	require.NoError(t, n.Finalize(dst))

	require.Equal(t, n.Count(ObjTypePI), dst.Count(ObjTypePI))
	require.Equal(t, n.Count(ObjTypePO), dst.Count(ObjTypePO))
	require.NotNil(t, dst.FindCi("a"))
	require.NotNil(t, dst.FindCi("b"))

	dstPo := dst.FindCo("out")
	require.NotNil(t, dstPo)
	require.True(t, dstPo.FaninRef(0).Compl, "the CO driver's complement must carry over")
}

func TestCountReflectsDeletion(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	n.AIGAnd(a.Ref(), b.Ref())
	require.Equal(t, 1, n.Count(ObjTypeNode)-1)

	removed := n.AigCleanup()
	require.Equal(t, 1, removed)
	require.Equal(t, 1, n.Count(ObjTypeNode), "only const1 should remain")
}
