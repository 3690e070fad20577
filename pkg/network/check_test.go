package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPassesOnWellFormedNetwork(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")
	out := n.AIGAnd(a.Ref(), b.Ref())
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, out)

	require.NoError(t, n.Check())
}

func TestCheckDetectsCombinationalLoop(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	a := mustPI(t, n, "a")
	node := n.CreateNode()
	n.AddFanin(node, a.Ref())
	n.AddFanin(node, node.Ref())
	n.aig.insert(node) // keep the hash-table bookkeeping invariant honest so Check's cycle check, not its hash check, is what's under test
	po := n.CreatePO()
	require.NoError(t, n.SetName(po, "out"))
	n.AddFanin(po, node.Ref())

	err = n.Check()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ErrCombinationalLoop, e.Kind)
}

func TestCheckWarnsOnSelfFeedingLatchButDoesNotReject(t *testing.T) {
	n, err := Alloc(NtkKindSeq, FuncKindAIG)
	require.NoError(t, err)
	latch := n.CreateLatch(LatchInitZero)
	require.NoError(t, n.SetName(latch, "state"))
	n.AddFanin(latch, latch.Ref())

	require.NoError(t, n.Check(), "a latch feeding directly from itself is a legitimate fixed point")
}

func TestCheckRecursesIntoExdc(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	exdc, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	a := mustPI(t, exdc, "a")
	node := exdc.CreateNode()
	exdc.AddFanin(node, a.Ref())
	exdc.AddFanin(node, node.Ref())
	exdc.aig.insert(node)
	po := exdc.CreatePO()
	require.NoError(t, exdc.SetName(po, "out"))
	exdc.AddFanin(po, node.Ref())
	n.EXDC = exdc

	err = n.Check()
	require.Error(t, err, "a broken EXDC sub-network must fail the parent's Check")
}
