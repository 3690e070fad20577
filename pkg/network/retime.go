package network

import "strings"

// This file implements C6's comb/seq conversion and per-node register
// retiming (spec §4.6), built directly on edge.go's per-edge latch-count
// fields (FaninLatches/SetFaninLatches/MinFanoutLatches/MinFaninLatches),
// which exist precisely to support these moves.

// MakeComb flattens a Seq network into a Strash network by turning each
// latch into a free PI ("<name>_in") paired with an observed PO
// ("<name>_out"), recording n itself as the result's backup network so
// MakeSeq can reconstruct the original latch boundary.
func (n *Ntk) MakeComb() (*Ntk, error) {
	if n.Kind != NtkKindSeq {
		return nil, newError(ErrInvariantViolation, "MakeComb requires a Seq network")
	}
	dst, err := Alloc(NtkKindStrash, FuncKindAIG)
	if err != nil {
		return nil, err
	}

	for _, id := range n.cis {
		src := n.arena.get(id)
		switch src.typ {
		case ObjTypePI:
			pi := dst.CreatePI()
			if err := dst.SetName(pi, src.name); err != nil {
				return nil, err
			}
			src.copy = pi.Ref()
		case ObjTypeLatch:
			pi := dst.CreatePI()
			if err := dst.SetName(pi, src.name+"_in"); err != nil {
				return nil, err
			}
			src.copy = pi.Ref()
		}
	}

	rebuildInto(n, dst, n.Dfs())

	for _, id := range n.cos {
		src := n.arena.get(id)
		driverRef := src.FaninRef(0)
		driver := n.arena.get(driverRef.ID)
		image := driver.copy.NotCond(driverRef.Compl)
		switch src.typ {
		case ObjTypePO:
			po := dst.CreatePO()
			if err := dst.SetName(po, src.name); err != nil {
				return nil, err
			}
			dst.AddFanin(po, image)
		case ObjTypeLatch:
			po := dst.CreatePO()
			if err := dst.SetName(po, src.name+"_out"); err != nil {
				return nil, err
			}
			dst.AddFanin(po, image)
		}
	}

	dst.backup = n
	dst.backupGen = n.backupGen + 1
	dst.ComputeLevels()
	return dst, nil
}

// MakeSeq is MakeComb's inverse: every PI/PO pair named "<base>_in"/
// "<base>_out" becomes one latch named "<base>" with the given default
// init value; every other PI/PO passes through unchanged.
func MakeSeq(comb *Ntk, defaultInit LatchInit) (*Ntk, error) {
	if comb.Kind != NtkKindStrash {
		return nil, newError(ErrInvariantViolation, "MakeSeq requires a Strash network")
	}
	dst, err := Alloc(NtkKindSeq, FuncKindAIG)
	if err != nil {
		return nil, err
	}

	for _, id := range comb.cis {
		src := comb.arena.get(id)
		if strings.HasSuffix(src.name, "_in") {
			base := strings.TrimSuffix(src.name, "_in")
			l := dst.CreateLatch(defaultInit)
			if err := dst.SetName(l, base); err != nil {
				return nil, err
			}
			src.copy = l.Ref()
			continue
		}
		pi := dst.CreatePI()
		if err := dst.SetName(pi, src.name); err != nil {
			return nil, err
		}
		src.copy = pi.Ref()
	}

	rebuildInto(comb, dst, comb.Dfs())

	for _, id := range comb.cos {
		src := comb.arena.get(id)
		driverRef := src.FaninRef(0)
		driver := comb.arena.get(driverRef.ID)
		image := driver.copy.NotCond(driverRef.Compl)

		if strings.HasSuffix(src.name, "_out") {
			base := strings.TrimSuffix(src.name, "_out")
			latch := dst.FindCi(base)
			if latch == nil {
				return nil, newError(ErrInvariantViolation, "MakeSeq: no latch named %q for output %q", base, src.name)
			}
			dst.AddFanin(latch, image)
			continue
		}
		po := dst.CreatePO()
		if err := dst.SetName(po, src.name); err != nil {
			return nil, err
		}
		dst.AddFanin(po, image)
	}

	dst.ComputeLevels()
	return dst, nil
}

// RetimeForward moves min(fanin latch counts) latches off every fanin edge
// of obj (an AND node) and onto every one of obj's own fanout edges (spec
// §4.6: "forward retiming moves latches from the fanin edges to each fanout
// edge") — legal only when every fanin edge already carries at least one
// latch.
func (n *Ntk) RetimeForward(obj *Obj) error {
	if obj.typ != ObjTypeNode || obj.IsConst() {
		return newError(ErrInvariantViolation, "RetimeForward: only AND nodes can be retimed")
	}
	if obj.FaninNum() == 0 || MinFaninLatches(obj) < 1 {
		return newError(ErrInvariantViolation, "RetimeForward: every fanin edge must carry at least one latch")
	}
	count := MinFaninLatches(obj)
	for i := range obj.fanins {
		n.AddFaninLatches(obj, i, -count)
	}
	for _, fo := range append([]Edge(nil), obj.fanouts...) {
		dependent := n.arena.get(fo.Peer)
		idx := findFaninIndex(dependent.fanins, obj.id)
		n.AddFaninLatches(dependent, idx, count)
	}
	return nil
}

// RetimeBackward is RetimeForward's inverse: moves min(fanout latch counts)
// latches off every fanout edge of obj and onto every fanin edge.
func (n *Ntk) RetimeBackward(obj *Obj) error {
	if obj.typ != ObjTypeNode || obj.IsConst() {
		return newError(ErrInvariantViolation, "RetimeBackward: only AND nodes can be retimed")
	}
	if obj.FanoutNum() == 0 || MinFanoutLatches(obj) < 1 {
		return newError(ErrInvariantViolation, "RetimeBackward: every fanout edge must carry at least one latch")
	}
	count := MinFanoutLatches(obj)
	for _, fo := range append([]Edge(nil), obj.fanouts...) {
		dependent := n.arena.get(fo.Peer)
		idx := findFaninIndex(dependent.fanins, obj.id)
		n.AddFaninLatches(dependent, idx, -count)
	}
	for i := range obj.fanins {
		n.AddFaninLatches(obj, i, count)
	}
	return nil
}

// RetimeForwardAll is the network-level retiming pass named by spec §6
// (retimeForward(ntk)): it repeatedly retimes forward wherever a node has a
// movable latch, propagating to every node whose latch counts just changed,
// until no node in the network has one left to move.
func (n *Ntk) RetimeForwardAll() error {
	return n.retimeAll(n.RetimeForward)
}

// RetimeBackwardAll is RetimeForwardAll's inverse (spec §6 retimeBackward(ntk)).
func (n *Ntk) RetimeBackwardAll() error {
	return n.retimeAll(n.RetimeBackward)
}

// retimeAll drives a worklist of AND nodes to a retiming fixpoint, applying
// step (RetimeForward or RetimeBackward) at each one. fMarkA tracks which
// nodes are currently queued so a node touched twice before it is popped is
// only queued once; the mark is cleared the moment a node is popped, so it
// is free to be re-queued if a later step touches it again, and the whole
// scope is guaranteed clear on return (spec §5's "contractually cleared on
// exit"). A node for which step reports no movable latch is simply skipped:
// that is the normal fixpoint signal for that node, not a pass failure.
func (n *Ntk) retimeAll(step func(*Obj) error) error {
	scope := n.BeginMarkA()
	defer scope.Clear()

	var queue []ObjID
	enqueue := func(id ObjID) {
		if scope.Test(id) {
			return
		}
		scope.Set(id)
		queue = append(queue, id)
	}

	for _, obj := range n.Objs() {
		if obj.typ == ObjTypeNode && !obj.IsConst() {
			enqueue(obj.id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		scope.ClearMark(id)

		obj := n.arena.get(id)
		if obj == nil || obj.typ != ObjTypeNode || obj.IsConst() {
			continue
		}
		if err := step(obj); err != nil {
			continue
		}
		for _, e := range obj.fanins {
			enqueue(e.Peer)
		}
		for _, e := range obj.fanouts {
			enqueue(e.Peer)
		}
	}
	return nil
}
