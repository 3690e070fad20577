package network

// rebuildInto re-strashes each node in order (assumed topological, fanins
// before fanouts) into dst through dst's AIG manager, using each node's
// own `copy` field to remember its image and each fanin's already-set
// `copy` to resolve operands. Used by transforms that need a faithful
// structural copy rather than Balance's supergate flattening (Miter,
// Frames, MakeComb/MakeSeq).
func rebuildInto(src, dst *Ntk, order []*Obj) {
	for _, obj := range order {
		if obj.IsConst() {
			obj.copy = dst.Const1()
			continue
		}
		p0 := src.arena.get(obj.fanins[0].Peer).copy.NotCond(obj.fanins[0].Compl)
		p1 := src.arena.get(obj.fanins[1].Peer).copy.NotCond(obj.fanins[1].Compl)
		obj.copy = dst.aig.And(p0, p1)
	}
}
