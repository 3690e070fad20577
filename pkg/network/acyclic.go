package network

import "fmt"

// CheckAcyclic reports whether the network's combinational fanin graph (COs
// traced back to their drivers, latches acting as opaque boundaries) has a
// directed cycle. On failure it also returns the object names forming one
// offending loop.
//
// This is abcDfs.c's Abc_NtkIsAcyclic_rec two-travID scheme carried over
// verbatim (pinned decision): travIDs marks "currently on the recursion
// path", travIDs-1 marks "already fully explored, no cycle through here" —
// using the same travIDCurrent/travIDPrevious pair obj.go defines for this
// exact purpose, rather than a bitset side-table. A choice node's class
// siblings are walked alongside its own fanins, since they denote the same
// logical signal under Abc_AigNodeIsChoice.
func (n *Ntk) CheckAcyclic() ([]string, bool) {
	n.IncrementTravID()
	n.IncrementTravID()

	for _, id := range n.cos {
		co := n.arena.get(id)
		if co.FaninNum() == 0 {
			continue
		}
		driver := n.arena.get(co.fanins[0].Peer)
		if ok, loop := n.acyclicRec(driver, nil); !ok {
			names := make([]string, len(loop))
			for i, lid := range loop {
				o := n.arena.get(lid)
				if o.name != "" {
					names[i] = o.name
				} else {
					names[i] = fmt.Sprintf("n%d", o.id)
				}
			}
			return names, false
		}
	}
	return nil, true
}

// IsAcyclic is CheckAcyclic without the loop trace.
func (n *Ntk) IsAcyclic() bool {
	_, ok := n.CheckAcyclic()
	return ok
}

func (n *Ntk) acyclicRec(obj *Obj, path []ObjID) (bool, []ObjID) {
	if obj.IsCI() {
		return true, nil
	}
	if obj.travIDCurrent() {
		for i, id := range path {
			if id == obj.id {
				loop := append(append([]ObjID{}, path[i:]...), obj.id)
				return false, loop
			}
		}
		return false, []ObjID{obj.id}
	}
	if obj.travIDPrevious() {
		return true, nil
	}
	obj.setTravIDCurrent()
	path = append(path, obj.id)

	for _, e := range obj.fanins {
		if ok, loop := n.acyclicRec(n.arena.get(e.Peer), path); !ok {
			return false, loop
		}
	}
	for id := obj.data.ChoiceNext; id != 0; {
		sib := n.arena.get(id)
		for _, e := range sib.fanins {
			if ok, loop := n.acyclicRec(n.arena.get(e.Peer), path); !ok {
				return false, loop
			}
		}
		id = sib.data.ChoiceNext
	}

	obj.setTravIDPrevious()
	return true, nil
}
