package network

// EvalRef evaluates every node in ref's fanin cone under assignment (a
// partial map from CI/const ObjID to boolean value) and reports ref's
// resulting value. It is the evaluation primitive the brute-force SAT
// stand-in (pkg/extern) drives exhaustively over a network's PIs to answer
// FraigSweep's equivalence queries.
func (n *Ntk) EvalRef(ref Ref, assignment map[ObjID]bool) bool {
	root := n.arena.get(ref.ID)
	order := n.DfsFrom(root)

	values := make(map[ObjID]bool, len(order)+len(assignment)+1)
	for id, v := range assignment {
		values[id] = v
	}
	if n.aig != nil {
		values[n.aig.const1] = true
	}

	for _, obj := range order {
		if obj.IsConst() {
			values[obj.id] = true
			continue
		}
		v0 := values[obj.fanins[0].Peer] != obj.fanins[0].Compl
		v1 := values[obj.fanins[1].Peer] != obj.fanins[1].Compl
		values[obj.id] = v0 && v1
	}

	return values[ref.ID] != ref.Compl
}
