package network

import "sort"

// This file implements the forward/reverse DFS half of C5 (spec §4.5),
// grounded on original_source/src/base/abc/abcDfs.c's Abc_NtkDfs_rec /
// Abc_NtkDfs / Abc_NtkDfsReverse_rec: a single travID bump per call,
// `Obj.travIDCurrent()` standing in for the C original's
// `Abc_NodeIsTravIdCurrent`, no auxiliary visited set.

// Dfs returns every node reachable backward from the network's CO drivers,
// in topological (fanin-before-fanout) order. Traversal starts at each CO's
// driver, not the CO object itself — a latch is simultaneously a CI and a
// CO, and starting at the object would hit the CI short-circuit before ever
// visiting the logic feeding it (Abc_NtkDfs's "for each Co, recurse into
// Abc_ObjFanin0(Co)"). CIs and COs are still marked at the current travID
// before returning, even though neither appears in the result — later
// traversals in the same pass depend on that (pinned behavior).
func (n *Ntk) Dfs() []*Obj {
	n.IncrementTravID()
	var order []*Obj
	for _, id := range n.cos {
		co := n.arena.get(id)
		if co.FaninNum() == 0 {
			continue
		}
		n.dfsRec(n.arena.get(co.fanins[0].Peer), &order)
	}
	n.markBoundary()
	return order
}

func (n *Ntk) dfsRec(obj *Obj, order *[]*Obj) {
	if obj.travIDCurrent() {
		return
	}
	obj.setTravIDCurrent()
	if obj.IsCI() {
		return
	}
	for _, e := range obj.fanins {
		n.dfsRec(n.arena.get(e.Peer), order)
	}
	if obj.typ == ObjTypeNode {
		*order = append(*order, obj)
	}
}

// markBoundary marks every CI and CO object at the network's current
// travID, regardless of whether the traversal just performed happened to
// reach them (e.g. an unused PI, or a PO/latch whose driver has no other
// consumers). See the Dfs doc comment.
func (n *Ntk) markBoundary() {
	for _, id := range n.cis {
		n.arena.get(id).setTravIDCurrent()
	}
	for _, id := range n.cos {
		n.arena.get(id).setTravIDCurrent()
	}
}

// DfsFrom is Dfs restricted to the fanin cone of a single root (which may
// itself already be a node rather than a CO), used by EvalRef to order the
// cone it simulates.
func (n *Ntk) DfsFrom(root *Obj) []*Obj {
	n.IncrementTravID()
	var order []*Obj
	n.dfsRec(root, &order)
	return order
}

// DfsNodes is Dfs starting from an explicit root set rather than the
// network's COs (Abc_NtkDfsNodes), used when a transform only needs the
// cone feeding a handful of objects.
func (n *Ntk) DfsNodes(roots []*Obj) []*Obj {
	n.IncrementTravID()
	var order []*Obj
	for _, r := range roots {
		n.dfsRec(r, &order)
	}
	return order
}

// DfsReverse returns every node reachable forward from the network's CIs,
// ordered so a node never precedes a fanin-sibling it depends on through a
// shared consumer — the reverse-topological companion to Dfs
// (Abc_NtkDfsReverse_rec), used by deletion-cascade style sweeps that must
// process consumers before producers. CIs and COs are marked at the end
// exactly as in Dfs.
func (n *Ntk) DfsReverse() []*Obj {
	n.IncrementTravID()
	var order []*Obj
	for _, ci := range n.cis {
		n.dfsReverseRec(n.arena.get(ci), &order)
	}
	n.markBoundary()
	return order
}

func (n *Ntk) dfsReverseRec(obj *Obj, order *[]*Obj) {
	if obj.travIDCurrent() {
		return
	}
	obj.setTravIDCurrent()
	for _, e := range obj.fanouts {
		n.dfsReverseRec(n.arena.get(e.Peer), order)
	}
	if obj.typ == ObjTypeNode {
		*order = append(*order, obj)
	}
}

// AigDfs is Dfs's AIG-aware specialization (spec §4.5/§6's
// `aigDfs(ntk, collectAll, collectCos)`, Abc_AigDfs): besides a node's own
// fanins, it also recurses into every other member of that node's choice
// class (obj.data.ChoiceNext), so a representative's equivalent alternatives
// are reachable even though they carry no fanout edge of their own. If
// collectCos, each CO is appended to the order right after its driver's cone
// is visited. If collectAll, after the CO-rooted sweep every internal node
// not yet visited (a dangling sub-AIG with no path from any CO) is appended
// too.
func (n *Ntk) AigDfs(collectAll, collectCos bool) []*Obj {
	n.IncrementTravID()
	var order []*Obj
	for _, id := range n.cos {
		co := n.arena.get(id)
		if co.FaninNum() > 0 {
			n.aigDfsRec(n.arena.get(co.fanins[0].Peer), &order)
		}
		co.setTravIDCurrent()
		if collectCos {
			order = append(order, co)
		}
	}
	if collectAll {
		for _, obj := range n.Objs() {
			if obj.typ == ObjTypeNode && !obj.IsConst() && !obj.travIDCurrent() {
				n.aigDfsRec(obj, &order)
			}
		}
	}
	return order
}

func (n *Ntk) aigDfsRec(obj *Obj, order *[]*Obj) {
	if obj.travIDCurrent() {
		return
	}
	obj.setTravIDCurrent()
	if obj.IsCI() || obj.IsConst() {
		return
	}
	for _, e := range obj.fanins {
		n.aigDfsRec(n.arena.get(e.Peer), order)
	}
	for id := obj.data.ChoiceNext; id != 0; {
		sib := n.arena.get(id)
		n.aigDfsRec(sib, order)
		id = sib.data.ChoiceNext
	}
	*order = append(*order, obj)
}

// DfsLevelizedTfo walks the transitive fanout of roots breadth-first by
// level, matching Abc_DfsLevelizedTfo_rec's level-bucketed traversal; the
// returned slice is ordered by ascending Level, which must already be
// current (call ComputeLevels first).
func (n *Ntk) DfsLevelizedTfo(roots []*Obj) []*Obj {
	n.IncrementTravID()
	var frontier []*Obj
	for _, r := range roots {
		if !r.travIDCurrent() {
			r.setTravIDCurrent()
			frontier = append(frontier, r)
		}
	}
	var order []*Obj
	for len(frontier) > 0 {
		var next []*Obj
		for _, obj := range frontier {
			order = append(order, obj)
			for _, e := range obj.fanouts {
				fo := n.arena.get(e.Peer)
				if fo != nil && !fo.travIDCurrent() {
					fo.setTravIDCurrent()
					next = append(next, fo)
				}
			}
		}
		frontier = next
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].Level < order[j].Level })
	return order
}
