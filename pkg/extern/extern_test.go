package extern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syntheon/boolnet/pkg/network"
)

func buildXorNet(t *testing.T) (*network.Ntk, *network.Obj, *network.Obj) {
	t.Helper()
	n, err := network.Alloc(network.NtkKindStrash, network.FuncKindAIG)
	require.NoError(t, err)
	a := n.CreatePI()
	require.NoError(t, n.SetName(a, "a"))
	b := n.CreatePI()
	require.NoError(t, n.SetName(b, "b"))
	return n, a, b
}

func TestBruteForceSATDetectsTautologicalZero(t *testing.T) {
	n, a, b := buildXorNet(t)
	// (a xor b) xor (a xor b) is constant zero for every assignment.
	x := n.AIGXor(a.Ref(), b.Ref())
	zero := n.AIGXor(x, x)

	sat := NewBruteForceSAT()
	constZero, err := sat.CheckConstZero(n, zero)
	require.NoError(t, err)
	require.True(t, constZero)
}

func TestBruteForceSATRejectsSatisfiableRef(t *testing.T) {
	n, a, b := buildXorNet(t)
	x := n.AIGXor(a.Ref(), b.Ref())

	sat := NewBruteForceSAT()
	constZero, err := sat.CheckConstZero(n, x)
	require.NoError(t, err)
	require.False(t, constZero, "a xor b is true for (1,0) and (0,1), so it is not constant zero")
}

func TestBruteForceSATRejectsTooManyInputs(t *testing.T) {
	n, err := network.Alloc(network.NtkKindStrash, network.FuncKindAIG)
	require.NoError(t, err)
	var last network.Ref
	for i := 0; i < maxBruteForceInputs+1; i++ {
		pi := n.CreatePI()
		last = pi.Ref()
	}

	sat := NewBruteForceSAT()
	_, err = sat.CheckConstZero(n, last)
	require.Error(t, err)
}
