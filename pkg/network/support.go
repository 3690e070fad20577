package network

// Support returns the set of combinational inputs in root's fanin cone, in
// first-encountered order, matching Abc_NtkNodeSupport_rec's travID-guarded
// collection.
func (n *Ntk) Support(root *Obj) []*Obj {
	n.IncrementTravID()
	var cis []*Obj
	n.supportRec(root, &cis)
	return cis
}

func (n *Ntk) supportRec(obj *Obj, cis *[]*Obj) {
	if obj.travIDCurrent() {
		return
	}
	obj.setTravIDCurrent()
	if obj.IsCI() {
		*cis = append(*cis, obj)
		return
	}
	for _, e := range obj.fanins {
		n.supportRec(n.arena.get(e.Peer), cis)
	}
}
