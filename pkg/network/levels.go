package network

// ComputeLevels recomputes every node's logic level as one plus the largest
// level among its fanins, zeroing CIs first, matching Abc_NtkLevel's single
// DFS-ordered sweep. It returns the network's depth (the maximum level
// reached by any CO driver).
func (n *Ntk) ComputeLevels() int {
	for _, ci := range n.cis {
		n.arena.get(ci).Level = 0
	}
	for _, obj := range n.Dfs() {
		lvl := 0
		for _, e := range obj.fanins {
			if fi := n.arena.get(e.Peer); fi.Level > lvl {
				lvl = fi.Level
			}
		}
		obj.Level = lvl + 1
	}

	depth := 0
	for _, co := range n.cos {
		obj := n.arena.get(co)
		if obj.FaninNum() == 0 {
			continue
		}
		if d := n.arena.get(obj.fanins[0].Peer).Level; d > depth {
			depth = d
		}
	}

	if n.Timing != nil {
		n.Timing.NotifyLevelsChanged(n)
	}
	return depth
}
