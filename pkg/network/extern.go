package network

// This file declares the opaque external-collaborator interfaces named in
// spec §1/§6: the core stores a handle to each and calls it by name, but
// never reaches into its internals. Concrete implementations live outside
// this package (pkg/extern provides minimal stand-ins used by the demo
// driver and by equivalence tests).

// BDDManager is the opaque binary-decision-diagram package a Logic+BDD
// network's node data points into.
type BDDManager interface {
	// Ref increments the external manager's reference count for handle h.
	Ref(h BDDHandle)
	// Deref decrements it, permitting reclamation once it reaches zero.
	Deref(h BDDHandle)
}

// SATSolver is the opaque satisfiability engine of the miter flow (spec §6):
// it reports whether an output can never be true, i.e. is unsatisfiable.
type SATSolver interface {
	// CheckConstZero reports whether the function at ref is the constant
	// zero function over net's primary inputs (spec §4.6 Miter/EC flow).
	CheckConstZero(net *Ntk, ref Ref) (isConstZero bool, err error)
}

// TimingManager is the opaque static-timing collaborator referenced by
// spec §6 as a consumer of level information, not a core responsibility.
type TimingManager interface {
	// NotifyLevelsChanged tells the timing manager that net's Level fields
	// were just recomputed and any cached arrival times are stale.
	NotifyLevelsChanged(net *Ntk)
}

// CutManager is the opaque cut-enumeration collaborator spec §6 names as a
// consumer of the AIG structure for technology mapping.
type CutManager interface {
	// Invalidate tells the cut manager that obj's local structure changed.
	Invalidate(obj *Obj)
}
