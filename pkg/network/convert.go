package network

import "strings"

// This file implements C6's AIG <-> logic-SOP conversion (spec §4.6).
// ConvertToSop preserves exactly one Logic node per AIG AND gate (it does
// not perform technology-independent two-level minimization or multi-level
// factoring — both out of scope per spec's Non-goals on logic
// optimization); each node's cube string follows the 2-input
// literal-per-column convention read off abcFunc.c's node-function
// encoding ('1' = asserted literal, '0' = complemented literal, trailing
// " 1" marks the on-set row). Complement on Logic+SOP networks lives only
// on CO-driver edges (obj.go's documented invariant), never on internal
// node fanins, so AND-input complement is folded into the cube string
// instead of the edge.

// ConvertToSop rebuilds src (an AIG-func network) as a Logic+SOP network
// with one node per AND gate.
func (n *Ntk) ConvertToSop() (*Ntk, error) {
	if n.Func != FuncKindAIG {
		return nil, newError(ErrInvariantViolation, "ConvertToSop requires an AIG-func source")
	}
	dst, err := n.StartFrom(NtkKindLogic, FuncKindSOP)
	if err != nil {
		return nil, err
	}

	for _, obj := range n.Dfs() {
		node := dst.CreateNode()
		if obj.IsConst() {
			node.SetData(ObjData{SOP: " 1\n"})
			obj.copy = node.Ref()
			continue
		}
		lit0, lit1 := cubeLit(obj.fanins[0].Compl), cubeLit(obj.fanins[1].Compl)
		node.SetData(ObjData{SOP: lit0 + lit1 + " 1\n"})
		p0 := n.arena.get(obj.fanins[0].Peer).copy.Regular()
		p1 := n.arena.get(obj.fanins[1].Peer).copy.Regular()
		dst.AddFanin(node, p0)
		dst.AddFanin(node, p1)
		obj.copy = node.Ref()
	}

	if err := n.Finalize(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func cubeLit(compl bool) string {
	if compl {
		return "0"
	}
	return "1"
}

// ConvertToAig rebuilds src (a Logic+SOP-func network) as a Strash AIG
// network, expanding each node's sum-of-products cover into an AND/OR tree
// over its fanins.
func (n *Ntk) ConvertToAig() (*Ntk, error) {
	if n.Func != FuncKindSOP {
		return nil, newError(ErrInvariantViolation, "ConvertToAig requires an SOP-func source")
	}
	dst, err := n.StartFrom(NtkKindStrash, FuncKindAIG)
	if err != nil {
		return nil, err
	}

	for _, obj := range n.Dfs() {
		ref, err := n.sopToAig(dst, obj)
		if err != nil {
			return nil, err
		}
		obj.copy = ref
	}

	if err := n.Finalize(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (n *Ntk) sopToAig(dst *Ntk, obj *Obj) (Ref, error) {
	if obj.FaninNum() == 0 {
		if strings.Contains(obj.data.SOP, "1") {
			return dst.Const1(), nil
		}
		return dst.Const1().Not(), nil
	}

	var sum Ref
	have := false
	for _, line := range strings.Split(strings.TrimRight(obj.data.SOP, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lits := fields[0]
		if len(lits) != obj.FaninNum() {
			return NilRef, newError(ErrInvariantViolation, "sopToAig: cube width %d does not match fanin count %d", len(lits), obj.FaninNum())
		}
		prod := dst.Const1()
		for i, ch := range lits {
			if ch == '-' {
				continue
			}
			faninRef := n.arena.get(obj.fanins[i].Peer).copy
			if ch == '0' {
				faninRef = faninRef.Not()
			}
			prod = dst.aig.And(prod, faninRef)
		}
		if !have {
			sum = prod
			have = true
		} else {
			sum = dst.aig.Or(sum, prod)
		}
	}
	if !have {
		return dst.Const1().Not(), nil
	}
	return sum, nil
}
