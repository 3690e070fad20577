// Package extern provides stand-in implementations of the opaque external
// collaborators network.Ntk stores a handle to (spec §6). The spec marks a
// real BDD package and SAT solver out of scope; nothing in the retrieved
// pack supplies a Go SAT/BDD library, so this package is deliberately
// stdlib-only — the one place in the tree with no third-party dependency
// to wire, by design rather than oversight.
package extern

import (
	"fmt"

	"github.com/syntheon/boolnet/pkg/network"
)

// maxBruteForceInputs caps BruteForceSAT.CheckConstZero's exhaustive
// enumeration; beyond this the 2^n assignment sweep is impractical.
const maxBruteForceInputs = 20

// BruteForceSAT answers equivalence queries by enumerating every input
// assignment and simulating, rather than by solving CNF clauses. It is
// usable only on small, purely combinational (Strash) networks, which is
// exactly the scope of the demo driver and the equivalence tests.
type BruteForceSAT struct{}

// NewBruteForceSAT returns a ready-to-use brute-force SAT stand-in.
func NewBruteForceSAT() *BruteForceSAT { return &BruteForceSAT{} }

// CheckConstZero implements network.SATSolver.
func (BruteForceSAT) CheckConstZero(net *network.Ntk, ref network.Ref) (bool, error) {
	var pis []network.ObjID
	for _, ci := range net.CIs() {
		if ci.Type() == network.ObjTypePI {
			pis = append(pis, ci.ID())
		}
	}
	if len(pis) > maxBruteForceInputs {
		return false, fmt.Errorf("extern: %d primary inputs exceeds brute-force SAT limit of %d", len(pis), maxBruteForceInputs)
	}

	total := 1 << uint(len(pis))
	assignment := make(map[network.ObjID]bool, len(pis))
	for mask := 0; mask < total; mask++ {
		for i, id := range pis {
			assignment[id] = (mask>>uint(i))&1 == 1
		}
		if net.EvalRef(ref, assignment) {
			return false, nil
		}
	}
	return true, nil
}

// NopTimingManager is a TimingManager stand-in that observes level changes
// without acting on them.
type NopTimingManager struct{}

// NotifyLevelsChanged implements network.TimingManager.
func (NopTimingManager) NotifyLevelsChanged(*network.Ntk) {}

// NopCutManager is a CutManager stand-in for contexts that don't perform
// technology mapping.
type NopCutManager struct{}

// Invalidate implements network.CutManager.
func (NopCutManager) Invalidate(*network.Obj) {}

// NopBDDManager is a BDDManager stand-in for contexts that never actually
// allocate BDD nodes (no Logic+BDD network is built without a real
// manager attached).
type NopBDDManager struct{}

// Ref implements network.BDDManager.
func (NopBDDManager) Ref(network.BDDHandle) {}

// Deref implements network.BDDManager.
func (NopBDDManager) Deref(network.BDDHandle) {}
