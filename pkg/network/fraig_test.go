package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// alwaysEqualSAT is a SATSolver stand-in for fraig_test.go that always
// reports its query as constant zero, so FraigSweep's merge logic can be
// exercised without depending on pkg/extern (which imports network and
// would create an import cycle from inside the network package's own
// tests).
type alwaysEqualSAT struct{}

func (alwaysEqualSAT) CheckConstZero(*Ntk, Ref) (bool, error) { return true, nil }

func TestFraigSweepMergesEquivalentNodes(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	n.SAT = alwaysEqualSAT{}

	a := mustPI(t, n, "a")
	b := mustPI(t, n, "b")

	and1 := n.CreateNode()
	n.AddFanin(and1, a.Ref())
	n.AddFanin(and1, b.Ref())
	n.aig.insert(and1)
	and1.Level = 1

	and2 := n.CreateNode()
	n.AddFanin(and2, a.Ref())
	n.AddFanin(and2, b.Ref())
	n.aig.insert(and2) // inserted under the same bucket key as and1: hash collision, not a dedup (lookup keeps only the first match)
	and2.Level = 1     // same level as and1, distinct node id: not hash-consed together

	po1 := n.CreatePO()
	require.NoError(t, n.SetName(po1, "out1"))
	n.AddFanin(po1, and1.Ref())
	po2 := n.CreatePO()
	require.NoError(t, n.SetName(po2, "out2"))
	n.AddFanin(po2, and2.Ref())

	before := n.Count(ObjTypeNode)
	merged, err := n.FraigSweep()
	require.NoError(t, err)
	require.Equal(t, 1, merged)
	require.Less(t, n.Count(ObjTypeNode), before)
	require.NoError(t, n.Check())
}

func TestFraigSweepRequiresSATAndAig(t *testing.T) {
	n, err := Alloc(NtkKindStrash, FuncKindAIG)
	require.NoError(t, err)
	_, err = n.FraigSweep()
	require.Error(t, err)
}
