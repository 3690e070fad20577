package network

import "github.com/bits-and-blooms/bitset"

// arena is the C1 object arena: a dense slab of *Obj indexed by ObjID, with
// a free list recycling slots freed by deleteObj. Index 0 is never used
// (ObjID 0 means "no object"), so objs[0] stays nil and live ids start at 1.
//
// Unlike vic-GoDNet's map[uint64]Node registry (deltanet.go, addNodeInternal)
// the core needs objs[id] == obj to be an O(1) array index, not a map probe,
// per spec invariant 1 — so ids are recycled through a free list instead of
// monotonically increasing forever.
type arena struct {
	objs  []*Obj
	free  []ObjID
	alive *bitset.BitSet
}

func newArena() *arena {
	return &arena{objs: []*Obj{nil}, alive: bitset.New(64)}
}

func (a *arena) alloc(owner *Ntk, typ ObjType) *Obj {
	var id ObjID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		id = ObjID(len(a.objs))
		a.objs = append(a.objs, nil)
	}
	obj := &Obj{id: id, typ: typ, owner: owner}
	a.objs[id] = obj
	a.alive.Set(uint(id))
	return obj
}

// recycle detaches slot id so it can be reused by a later alloc. The caller
// must have already removed obj from every index (cis/cos/latches, name
// tables, hash table) before calling recycle.
func (a *arena) recycle(id ObjID) {
	a.objs[id] = nil
	a.alive.Clear(uint(id))
	a.free = append(a.free, id)
}

func (a *arena) get(id ObjID) *Obj {
	if id == 0 || int(id) >= len(a.objs) {
		return nil
	}
	return a.objs[id]
}

func (a *arena) isLive(id ObjID) bool {
	return a.alive.Test(uint(id))
}

// count returns the number of currently live objects.
func (a *arena) count() int {
	return int(a.alive.Count())
}

// namePool interns object and net names so repeated lookups share one
// backing string, matching spec §4.1's "string pool for names" in spirit
// without a custom flex-array allocator (Go's GC already owns string
// storage; the pool's job here is de-duplication, not memory layout).
type namePool struct {
	interned map[string]string
}

func newNamePool() *namePool {
	return &namePool{interned: make(map[string]string)}
}

func (p *namePool) intern(s string) string {
	if v, ok := p.interned[s]; ok {
		return v
	}
	p.interned[s] = s
	return s
}
