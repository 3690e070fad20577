package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMffcCollectStopsAtSharedNode(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")

	shared := n.AIGAnd(a.Ref(), b.Ref())
	root := n.AIGAnd(shared, c.Ref())
	other := n.AIGAnd(shared, a.Ref()) // second consumer of shared

	po1 := n.CreatePO()
	require.NoError(t, n.SetName(po1, "root"))
	n.AddFanin(po1, root)
	po2 := n.CreatePO()
	require.NoError(t, n.SetName(po2, "other"))
	n.AddFanin(po2, other)

	cone := n.MffcCollect(n.Obj(root.ID))
	require.Len(t, cone, 1, "shared is referenced by a second consumer, so only root itself is in its own MFFC")
	require.Equal(t, root.ID, cone[0].ID())
}

func TestMffcCollectIncludesExclusiveCone(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")

	inner := n.AIGAnd(a.Ref(), b.Ref())
	root := n.AIGAnd(inner, c.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, root)

	size := n.MffcSize(n.Obj(root.ID))
	require.Equal(t, 2, size, "both root and its sole-fanout fanin belong to root's MFFC")
}
