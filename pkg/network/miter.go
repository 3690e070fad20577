package network

import "fmt"

// Miter builds the standard equivalence-checking miter of a and b: a
// network sharing a's and b's primary inputs, carrying both networks'
// logic, and driving a single PO with the balanced OR of each aligned
// output pair's XOR (spec §4.6). a and b must have the same CI/CO shape in
// the same order; sequential networks keep distinct per-side latches,
// named with `_1`/`_2` suffixes since — unlike the shared PIs — they are
// not the same state element (pinned naming decision).
func Miter(a, b *Ntk) (*Ntk, error) {
	if a.aig == nil || b.aig == nil {
		return nil, newError(ErrInvariantViolation, "Miter requires AIG networks")
	}
	if len(a.cis) != len(b.cis) {
		return nil, newError(ErrSignatureMismatch, "Miter: CI count mismatch (%d vs %d)", len(a.cis), len(b.cis))
	}
	if len(a.cos) != len(b.cos) {
		return nil, newError(ErrSignatureMismatch, "Miter: CO count mismatch (%d vs %d)", len(a.cos), len(b.cos))
	}

	kind := NtkKindStrash
	if a.Kind == NtkKindSeq || b.Kind == NtkKindSeq {
		kind = NtkKindSeq
	}
	dst, err := Alloc(kind, FuncKindAIG)
	if err != nil {
		return nil, err
	}

	for i, id := range a.cis {
		srcA := a.arena.get(id)
		srcB := b.arena.get(b.cis[i])
		if srcA.typ != srcB.typ {
			return nil, newError(ErrSignatureMismatch, "Miter: CI %d kind mismatch (%s vs %s)", i, srcA.typ, srcB.typ)
		}
		switch srcA.typ {
		case ObjTypePI:
			name := srcA.name
			if name == "" {
				name = srcB.name
			}
			pi := dst.CreatePI()
			if err := dst.SetName(pi, name); err != nil {
				return nil, err
			}
			srcA.copy = pi.Ref()
			srcB.copy = pi.Ref()
		case ObjTypeLatch:
			la := dst.CreateLatch(srcA.data.LatchInit)
			if err := dst.SetName(la, fmt.Sprintf("%s_1", srcA.name)); err != nil {
				return nil, err
			}
			srcA.copy = la.Ref()
			lb := dst.CreateLatch(srcB.data.LatchInit)
			if err := dst.SetName(lb, fmt.Sprintf("%s_2", srcB.name)); err != nil {
				return nil, err
			}
			srcB.copy = lb.Ref()
		}
	}

	rebuildInto(a, dst, a.Dfs())
	rebuildInto(b, dst, b.Dfs())

	var diffs []balanceItem
	for i, id := range a.cos {
		coA := a.arena.get(id)
		if coA.typ != ObjTypePO {
			continue
		}
		coB := b.arena.get(b.cos[i])
		refA := coA.FaninRef(0)
		refB := coB.FaninRef(0)
		imgA := a.arena.get(refA.ID).copy.NotCond(refA.Compl)
		imgB := b.arena.get(refB.ID).copy.NotCond(refB.Compl)
		x := dst.aig.Xor(imgA, imgB)
		diffs = append(diffs, balanceItem{ref: x})
	}
	if len(diffs) == 0 {
		return nil, newError(ErrInvariantViolation, "Miter: no PO pairs to compare")
	}

	out := buildBalancedOr(dst, diffs)
	po := dst.CreatePO()
	if err := dst.SetName(po, "miter"); err != nil {
		return nil, err
	}
	dst.AddFanin(po, out)

	if kind == NtkKindSeq {
		for i, id := range a.latches {
			la := dst.arena.get(a.arena.get(id).copy.ID)
			driverA := a.arena.get(id).FaninRef(0)
			imgA := a.arena.get(driverA.ID).copy.NotCond(driverA.Compl)
			dst.AddFanin(la, imgA)

			lb := dst.arena.get(b.arena.get(b.latches[i]).copy.ID)
			driverB := b.arena.get(b.latches[i]).FaninRef(0)
			imgB := b.arena.get(driverB.ID).copy.NotCond(driverB.Compl)
			dst.AddFanin(lb, imgB)
		}
	}

	dst.ComputeLevels()
	return dst, nil
}
