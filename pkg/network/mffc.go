package network

// MffcCollect returns root together with every node in its maximum
// fanout-free cone: the set of nodes that would become dead if root were
// removed, found by a local reference-count decrement over a transient
// map rather than the network's real fanout lists (spec §4.5 "reference
// counting... collects the cone of logic exclusively feeding a node"). The
// teacher's domain has no equivalent; this is grounded directly on the
// description of Abc_NodeMffcSize/Abc_NodeDeref_rec in abc.h's node API,
// adapted so the ref-count bookkeeping never touches the live fanout
// edges: since FanoutNum is always derived live from those edges, there is
// nothing to restore afterward.
func (n *Ntk) MffcCollect(root *Obj) []*Obj {
	refs := make(map[ObjID]int)
	cone := []*Obj{root}
	n.mffcDeref(root, refs, &cone)
	return cone
}

func (n *Ntk) mffcDeref(obj *Obj, refs map[ObjID]int, cone *[]*Obj) {
	for _, e := range obj.fanins {
		fanin := n.arena.get(e.Peer)
		if fanin == nil || fanin.IsCI() || fanin.IsConst() {
			continue
		}
		if _, ok := refs[fanin.id]; !ok {
			refs[fanin.id] = fanin.FanoutNum()
		}
		refs[fanin.id]--
		if refs[fanin.id] == 0 {
			*cone = append(*cone, fanin)
			n.mffcDeref(fanin, refs, cone)
		}
	}
}

// MffcSize returns the size of root's MFFC (including root itself).
func (n *Ntk) MffcSize(root *Obj) int { return len(n.MffcCollect(root)) }

// MffcLabel marks every node of root's MFFC in a borrowed markB scope,
// returning the scope for the caller to Clear once the labels have been
// consumed (e.g. by a rewriting pass deciding which nodes it may freely
// discard). Grounded on the same "bounded to the cone" usage that the
// teacher's scheduler gives its per-reduction scratch state, generalized
// to the explicit scope-guard idiom from marks.go.
func (n *Ntk) MffcLabel(root *Obj) MarkScope {
	scope := n.BeginMarkB()
	for _, obj := range n.MffcCollect(root) {
		scope.Set(obj.id)
	}
	return scope
}
