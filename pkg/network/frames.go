package network

import "fmt"

// Frames unrolls a sequential network into numFrames combinational copies,
// chaining each frame's latch-driven next-state value into the following
// frame's latch-output role — spec §4.6/§6's time-frame expansion,
// `frames(ntk, k, initial)`. When initial is true, frame 0's latch outputs
// fold to the appropriate constant for a 0/1 init value and become a fresh
// free input only for a "don't care" init (the reset-at-frame-0 case);
// when initial is false, every frame-0 latch output becomes a free input
// regardless of its declared init value (unrolling with no reset assumed,
// the common bounded-model-checking-without-reset use). PI/PO names get the
// pinned `_<frame>FF` suffix so repeated runs (and tests) can address a
// specific frame's ports by name.
//
// Each source object's `copy` field is reused as scratch across frames: only
// the per-latch boundary values need to outlive a single frame, and those
// are tracked explicitly in `state`, so overwriting `copy` every frame is
// safe.
func (n *Ntk) Frames(numFrames int, initial bool) (*Ntk, error) {
	if n.Kind != NtkKindSeq {
		return nil, newError(ErrInvariantViolation, "Frames requires a Seq network")
	}
	if numFrames < 1 {
		return nil, newError(ErrInvariantViolation, "Frames: numFrames must be >= 1")
	}

	dst, err := Alloc(NtkKindStrash, FuncKindAIG)
	if err != nil {
		return nil, err
	}

	freeInput := func(obj *Obj) (Ref, error) {
		pi := dst.CreatePI()
		if err := dst.SetName(pi, fmt.Sprintf("%s_init", obj.name)); err != nil {
			return NilRef, err
		}
		return pi.Ref(), nil
	}

	state := make([]Ref, len(n.latches))
	for i, id := range n.latches {
		obj := n.arena.get(id)
		if !initial {
			ref, err := freeInput(obj)
			if err != nil {
				return nil, err
			}
			state[i] = ref
			continue
		}
		switch obj.data.LatchInit {
		case LatchInitZero:
			state[i] = dst.Const1().Not()
		case LatchInitOne:
			state[i] = dst.Const1()
		default:
			ref, err := freeInput(obj)
			if err != nil {
				return nil, err
			}
			state[i] = ref
		}
	}

	for frame := 0; frame < numFrames; frame++ {
		for _, id := range n.cis {
			src := n.arena.get(id)
			if src.typ != ObjTypePI {
				continue
			}
			pi := dst.CreatePI()
			if err := dst.SetName(pi, fmt.Sprintf("%s_%dFF", src.name, frame)); err != nil {
				return nil, err
			}
			src.copy = pi.Ref()
		}
		for i, id := range n.latches {
			n.arena.get(id).copy = state[i]
		}

		rebuildInto(n, dst, n.Dfs())

		next := make([]Ref, len(n.latches))
		for i, id := range n.latches {
			latch := n.arena.get(id)
			driverRef := latch.FaninRef(0)
			driver := n.arena.get(driverRef.ID)
			next[i] = driver.copy.NotCond(driverRef.Compl)
		}

		for _, id := range n.cos {
			src := n.arena.get(id)
			if src.typ != ObjTypePO {
				continue
			}
			driverRef := src.FaninRef(0)
			driver := n.arena.get(driverRef.ID)
			image := driver.copy.NotCond(driverRef.Compl)
			po := dst.CreatePO()
			if err := dst.SetName(po, fmt.Sprintf("%s_%dFF", src.name, frame)); err != nil {
				return nil, err
			}
			dst.AddFanin(po, image)
		}

		state = next
	}

	dst.ComputeLevels()
	return dst, nil
}
