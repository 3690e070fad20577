package network

// This file implements C3: the fanin/fanout graph and complement-edge
// algebra (spec §4.3), generalized from the single-wire splice/fuse idiom in
// the teacher (vic-GoDNet/pkg/deltanet/deltanet.go: Link/splice/fuse) to
// ordered, multi-entry fanin/fanout edge lists.

func findFaninIndex(fanins []Edge, peer ObjID) int {
	for i, e := range fanins {
		if e.Peer == peer {
			return i
		}
	}
	return -1
}

func findFanoutIndex(fanouts []Edge, peer ObjID) int {
	for i, e := range fanouts {
		if e.Peer == peer {
			return i
		}
	}
	return -1
}

// addFanin appends peer as a new fanin of obj, copying peer's complement bit
// into the new edge, and appends the mirrored fanout edge onto the peer so
// that spec invariant 2 (fanin/fanout mutual consistency) holds immediately.
func (n *Ntk) addFanin(obj *Obj, peer Ref) {
	peerObj := n.arena.get(peer.ID)
	obj.fanins = append(obj.fanins, Edge{Peer: peer.ID, Compl: peer.Compl})
	peerObj.fanouts = append(peerObj.fanouts, Edge{Peer: obj.id, Compl: peer.Compl})
}

// addFaninL is addFanin for sequential AIG edges carrying a latch count.
func (n *Ntk) addFaninL(obj *Obj, peer Ref, nLatches int) {
	peerObj := n.arena.get(peer.ID)
	obj.fanins = append(obj.fanins, Edge{Peer: peer.ID, Compl: peer.Compl, NLatches: nLatches})
	peerObj.fanouts = append(peerObj.fanouts, Edge{Peer: obj.id, Compl: peer.Compl, NLatches: nLatches})
}

// deleteFanin removes the edge from obj to peer (and its mirror).
func (n *Ntk) deleteFanin(obj *Obj, peer ObjID) {
	peerObj := n.arena.get(peer)
	if i := findFaninIndex(obj.fanins, peer); i >= 0 {
		obj.fanins = append(obj.fanins[:i], obj.fanins[i+1:]...)
	}
	if peerObj != nil {
		if i := findFanoutIndex(peerObj.fanouts, obj.id); i >= 0 {
			peerObj.fanouts = append(peerObj.fanouts[:i], peerObj.fanouts[i+1:]...)
		}
	}
}

// patchFanin replaces the single edge from obj to old with an edge to
// newRef, preserving obj's fanin position (spec §4.3: "used by AIG
// replace"). The latch count of the replaced edge is preserved.
func (n *Ntk) patchFanin(obj *Obj, old ObjID, newRef Ref) {
	i := findFaninIndex(obj.fanins, old)
	if i < 0 {
		return
	}
	nLatches := obj.fanins[i].NLatches

	oldPeer := n.arena.get(old)
	if oldPeer != nil {
		if j := findFanoutIndex(oldPeer.fanouts, obj.id); j >= 0 {
			oldPeer.fanouts = append(oldPeer.fanouts[:j], oldPeer.fanouts[j+1:]...)
		}
	}

	obj.fanins[i] = Edge{Peer: newRef.ID, Compl: newRef.Compl, NLatches: nLatches}

	newPeer := n.arena.get(newRef.ID)
	if newPeer != nil {
		newPeer.fanouts = append(newPeer.fanouts, Edge{Peer: obj.id, Compl: newRef.Compl, NLatches: nLatches})
	}
}

// transferFanout moves every incoming edge of `from` onto `to` (spec §4.3),
// preserving per-edge complement: an edge that pointed at `from` with
// complement c now points at to.Regular() with complement c XOR to.Compl,
// so that "to" itself being a complemented reference (the common case when
// called from AIG Replace with a negated replacement) is honored. After
// this call `from` has no fanout.
func (n *Ntk) transferFanout(from *Obj, to Ref) {
	fanouts := append([]Edge(nil), from.fanouts...)
	for _, fo := range fanouts {
		dependent := n.arena.get(fo.Peer)
		if dependent == nil {
			continue
		}
		n.patchFanin(dependent, from.id, Ref{ID: to.ID, Compl: fo.Compl != to.Compl})
	}
}

// deleteObj detaches every fanin/fanout of obj, removes it from whichever
// owner index it belongs to (CIs/COs/latches, name tables) and recycles its
// slot (spec §3 "Lifecycle").
func (n *Ntk) deleteObj(obj *Obj) {
	if n.aig != nil && obj.typ == ObjTypeNode && len(obj.fanins) == 2 {
		n.aig.removeFromHash(obj)
	}
	for _, e := range append([]Edge(nil), obj.fanins...) {
		n.deleteFanin(obj, e.Peer)
	}
	for _, e := range append([]Edge(nil), obj.fanouts...) {
		if dependent := n.arena.get(e.Peer); dependent != nil {
			n.deleteFanin(dependent, obj.id)
		}
	}
	n.untrackObj(obj)
	n.counts[obj.typ]--
	n.arena.recycle(obj.id)
}

// Replace rewires every fanout of old onto newRef (§4.3 transferFanout) then
// recursively deletes old and any fanin that becomes unreferenced as a
// result, matching spec §3's "replace(old,new)... invoking deletion cascade
// on nodes that become unreferenced." This is the generic (non
// hash-consing) version used directly by Logic/Netlist transforms; the AIG
// engine's own AigReplace (aig.go) additionally merges newly-identical nodes
// via the structural hash table.
func (n *Ntk) Replace(old *Obj, newRef Ref) {
	n.transferFanout(old, newRef)
	n.deleteCascade(old)
}

// deleteCascade deletes obj, then recursively deletes any fanin of obj that
// is left with zero fanouts as a result (and is not a CI or the AIG
// constant), per spec §3.
func (n *Ntk) deleteCascade(obj *Obj) {
	fanins := append([]Edge(nil), obj.fanins...)
	n.deleteObj(obj)
	for _, e := range fanins {
		fanin := n.arena.get(e.Peer)
		if fanin == nil || fanin.IsCI() || fanin.IsConst() {
			continue
		}
		if fanin.FanoutNum() == 0 {
			n.deleteCascade(fanin)
		}
	}
}

// --- per-edge latch count helpers (sequential AIG retiming, spec §4.3) ---

// FaninLatches returns the latch count stored on obj's i'th fanin edge.
func (o *Obj) FaninLatches(i int) int { return o.fanins[i].NLatches }

// SetFaninLatches overwrites the latch count on obj's i'th fanin edge and
// its fanout mirror.
func (n *Ntk) SetFaninLatches(obj *Obj, i int, count int) {
	obj.fanins[i].NLatches = count
	peer := n.arena.get(obj.fanins[i].Peer)
	if peer == nil {
		return
	}
	if j := findFanoutIndex(peer.fanouts, obj.id); j >= 0 {
		peer.fanouts[j].NLatches = count
	}
}

// AddFaninLatches adds delta to the latch count on obj's i'th fanin edge.
func (n *Ntk) AddFaninLatches(obj *Obj, i int, delta int) {
	n.SetFaninLatches(obj, i, obj.fanins[i].NLatches+delta)
}

// MinFanoutLatches returns the minimum latch count over obj's fanout edges,
// or 0 if obj has no fanouts (spec §9 open-question resolution).
func MinFanoutLatches(obj *Obj) int {
	if len(obj.fanouts) == 0 {
		return 0
	}
	min := obj.fanouts[0].NLatches
	for _, e := range obj.fanouts[1:] {
		if e.NLatches < min {
			min = e.NLatches
		}
	}
	return min
}

// MaxFanoutLatches returns the maximum latch count over obj's fanout edges,
// or 0 if obj has no fanouts.
func MaxFanoutLatches(obj *Obj) int {
	if len(obj.fanouts) == 0 {
		return 0
	}
	max := obj.fanouts[0].NLatches
	for _, e := range obj.fanouts[1:] {
		if e.NLatches > max {
			max = e.NLatches
		}
	}
	return max
}

// MinFaninLatches returns the minimum latch count over obj's fanin edges, or
// 0 if obj has no fanins.
func MinFaninLatches(obj *Obj) int {
	if len(obj.fanins) == 0 {
		return 0
	}
	min := obj.fanins[0].NLatches
	for _, e := range obj.fanins[1:] {
		if e.NLatches < min {
			min = e.NLatches
		}
	}
	return min
}
