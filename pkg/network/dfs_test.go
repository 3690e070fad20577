package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDfsVisitsLatchDriverNotJustLatchItself(t *testing.T) {
	n, err := Alloc(NtkKindSeq, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	latch := n.CreateLatch(LatchInitZero)
	require.NoError(t, n.SetName(latch, "state"))

	driven := n.AIGAnd(a.Ref(), latch.Ref())
	n.AddFanin(latch, driven)

	order := n.Dfs()
	require.Len(t, order, 1, "the AND node feeding the latch must be visited")
	require.Equal(t, driven.ID, order[0].ID())
}

func TestDfsOrdersFaninsBeforeFanouts(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")

	inner := n.AIGAnd(a.Ref(), b.Ref())
	outer := n.AIGAnd(inner, c.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, outer)

	order := n.Dfs()
	require.Len(t, order, 2)
	require.Equal(t, inner.ID, order[0].ID(), "inner AND must precede the outer AND that consumes it")
	require.Equal(t, outer.ID, order[1].ID())
}

func TestComputeLevelsMatchesTreeDepth(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")

	inner := n.AIGAnd(a.Ref(), b.Ref())
	outer := n.AIGAnd(inner, c.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, outer)

	depth := n.ComputeLevels()
	require.Equal(t, 2, depth)
	require.Equal(t, 1, n.Obj(inner.ID).Level)
	require.Equal(t, 2, n.Obj(outer.ID).Level)
}

func TestCheckAcyclicDetectsCombinationalLoop(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	node := n.CreateNode()
	n.AddFanin(node, a.Ref())
	n.AddFanin(node, node.Ref()) // self-loop, not hashed through And
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, node.Ref())

	_, ok := n.CheckAcyclic()
	require.False(t, ok)
}

func TestCheckAcyclicTreatsLatchAsBoundary(t *testing.T) {
	n, err := Alloc(NtkKindSeq, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	latch := n.CreateLatch(LatchInitZero)
	require.NoError(t, n.SetName(latch, "state"))
	driven := n.AIGAnd(a.Ref(), latch.Ref())
	n.AddFanin(latch, driven)

	_, ok := n.CheckAcyclic()
	require.True(t, ok, "a latch feeding back through its own output is a fixed point, not a loop")
}

func TestAigDfsRecursesIntoChoiceClass(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	c := mustPI(t, n, "c")

	repr := n.Obj(n.AIGAnd(a.Ref(), b.Ref()).ID)
	// member is built from a fanin (c) the repr's own cone never touches, so
	// it is only reachable through the choice link, not through any fanout.
	member := n.CreateNode()
	n.AddFanin(member, c.Ref())
	n.AddFanin(member, c.Ref().Not())
	n.CreateChoice(repr, member, false)

	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, repr.Ref())

	order := n.AigDfs(false, false)
	require.Contains(t, order, member, "a choice-class member must be visited even with no fanout of its own")
	require.Contains(t, order, repr)
}

func TestAigDfsCollectAllAndCollectCos(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	wired := n.Obj(n.AIGAnd(a.Ref(), b.Ref()).ID)
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, wired.Ref())

	dangling := n.CreateNode()
	n.AddFanin(dangling, a.Ref())
	n.AddFanin(dangling, b.Ref().Not())

	withoutAll := n.AigDfs(false, false)
	require.NotContains(t, withoutAll, dangling, "collectAll=false must not surface a node with no path from any CO")

	withAll := n.AigDfs(true, true)
	require.Contains(t, withAll, dangling, "collectAll=true must append unvisited internal nodes")
	require.Contains(t, withAll, po, "collectCos=true must append the CO itself")
}

func TestSupportCollectsUniqueInputs(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	and1 := n.AIGAnd(a.Ref(), b.Ref())
	and2 := n.AIGAnd(and1, a.Ref())

	root := n.Obj(and2.ID)
	support := n.Support(root)
	require.Len(t, support, 2)
}
