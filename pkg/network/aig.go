package network

// This file implements C4: the structurally-hashed AIG engine with
// complemented edges, grounded on original_source/src/base/abc/abcAig.c
// (Abc_Aig_t, Abc_AigAnd, Abc_AigOr, Abc_AigXor, Abc_AigResize). Every
// two-input AND built through And is looked up in a hash table keyed on its
// (possibly complemented) fanin pair before a new node is ever allocated,
// so structurally identical subgraphs always collapse onto one node
// (spec §4.4 "maintains the invariant that no two live nodes... are
// structurally identical").
type aigManager struct {
	owner    *Ntk
	bins     []ObjID
	nBins    int
	nEntries int
	const1   ObjID
}

func newAigManager(n *Ntk, initialBins int) *aigManager {
	if initialBins < 1 {
		initialBins = 1
	}
	m := &aigManager{owner: n, nBins: initialBins, bins: make([]ObjID, initialBins)}
	obj := n.arena.alloc(n, ObjTypeNode)
	n.counts[ObjTypeNode]++
	m.const1 = obj.id
	return m
}

func (m *aigManager) const1Ref() Ref { return Ref{ID: m.const1} }
func (m *aigManager) const0Ref() Ref { return Ref{ID: m.const1, Compl: true} }

// lookup returns the existing node with fanins (p0, p1) in canonical order,
// or ObjID 0 if none exists yet.
func (m *aigManager) lookup(p0, p1 Ref) ObjID {
	key := hashKey(lit(p0), lit(p1), m.nBins)
	for id := m.bins[key]; id != 0; {
		obj := m.owner.arena.get(id)
		if obj.fanins[0].Ref() == p0 && obj.fanins[1].Ref() == p1 {
			return id
		}
		id = obj.next
	}
	return 0
}

func (m *aigManager) insert(obj *Obj) {
	p0, p1 := obj.fanins[0].Ref(), obj.fanins[1].Ref()
	key := hashKey(lit(p0), lit(p1), m.nBins)
	obj.next = m.bins[key]
	m.bins[key] = obj.id
	m.nEntries++
	if m.nEntries > 2*m.nBins {
		m.resize()
	}
}

// removeFromHash unlinks obj from its hash bucket without touching its
// fanin/fanout edges; called from deleteObj before an AND node's fanins are
// detached and its slot recycled, and from AigReplace before old's fanouts
// are rewired. It trusts obj's current fanins to
// compute the bucket, so it is only correct while those fanins still match
// the pair obj was inserted under — once a fanin has been patched in place,
// use removeKeyed with the pair obj was actually hashed on instead.
func (m *aigManager) removeFromHash(obj *Obj) {
	if len(obj.fanins) != 2 {
		return
	}
	m.removeKeyed(obj, obj.fanins[0].Ref(), obj.fanins[1].Ref())
}

// removeKeyed unlinks obj from the bucket that (p0, p1) hashes to,
// regardless of what obj's fanins currently hold. Used to evict a node
// whose fanin was just patched in place (edge.go's patchFanin), where the
// live fanins no longer match the key the node was originally inserted
// under.
func (m *aigManager) removeKeyed(obj *Obj, p0, p1 Ref) {
	key := hashKey(lit(p0), lit(p1), m.nBins)
	id := m.bins[key]
	if id == obj.id {
		m.bins[key] = obj.next
		m.nEntries--
		return
	}
	for id != 0 {
		o := m.owner.arena.get(id)
		if o.next == obj.id {
			o.next = obj.next
			m.nEntries--
			return
		}
		id = o.next
	}
}

// primeSizes is a small built-in table of primes above common power-of-two
// bin counts, standing in for Abc_AigResize's use of Cudd_PrimeCopy: rather
// than pull in a full BDD package transitively for one helper, the next
// table size is picked directly from this list.
var primeSizes = []int{
	101, 211, 503, 1009, 2003, 4001, 8009, 16001, 32003, 64007,
	128021, 256019, 512009, 1024021, 2048003, 4096013, 8192003,
	16384001, 32768011, 65536043, 131072027, 262144009, 524288057,
	1048576019,
}

func nextPrimeSize(target int) int {
	for _, p := range primeSizes {
		if p > target {
			return p
		}
	}
	return target*2 + 1
}

// resize grows the bucket count to the next built-in prime above 2*nBins
// and rehashes every resident node, matching Abc_AigResize's "nEntries grew
// past 2*nBins" trigger.
func (m *aigManager) resize() {
	newSize := nextPrimeSize(m.nBins * 2)
	newBins := make([]ObjID, newSize)
	for _, head := range m.bins {
		id := head
		for id != 0 {
			obj := m.owner.arena.get(id)
			next := obj.next
			key := hashKey(lit(obj.fanins[0].Ref()), lit(obj.fanins[1].Ref()), newSize)
			obj.next = newBins[key]
			newBins[key] = id
			id = next
		}
	}
	m.bins = newBins
	m.nBins = newSize
}

func levelOf(n *Ntk, id ObjID) int {
	if o := n.arena.get(id); o != nil {
		return o.Level
	}
	return 0
}

// And returns the structurally-hashed conjunction of p0 and p1, folding the
// trivial cases (spec §4.4's "structural simplification: x&x=x, x&!x=0,
// x&1=x, x&0=0") before ever touching the hash table, per Abc_AigAnd.
func (m *aigManager) And(p0, p1 Ref) Ref {
	c1, c0 := m.const1Ref(), m.const0Ref()

	if p0 == p1 {
		return p0
	}
	if p0 == p1.Not() {
		return c0
	}
	switch p0 {
	case c1:
		return p1
	case c0:
		return c0
	}
	switch p1 {
	case c1:
		return p0
	case c0:
		return c0
	}

	if p0.ID > p1.ID {
		p0, p1 = p1, p0
	}
	if id := m.lookup(p0, p1); id != 0 {
		return Ref{ID: id}
	}

	obj := m.owner.CreateNode()
	m.owner.addFanin(obj, p0)
	m.owner.addFanin(obj, p1)
	obj.Level = max(levelOf(m.owner, p0.ID), levelOf(m.owner, p1.ID)) + 1
	m.insert(obj)
	return obj.Ref()
}

// Or is De Morgan's law over And, matching Abc_AigOr.
func (m *aigManager) Or(p0, p1 Ref) Ref {
	return m.And(p0.Not(), p1.Not()).Not()
}

// Xor builds p0 XOR p1 from two Ands and an Or (Abc_AigXor's SOP
// expansion), and marks the apex node as a recognized EXOR for callers that
// want to special-case it (e.g. choosing not to balance through it).
func (m *aigManager) Xor(p0, p1 Ref) Ref {
	r := m.Or(m.And(p0, p1.Not()), m.And(p0.Not(), p1))
	if obj := m.owner.arena.get(r.ID); obj != nil && !obj.IsConst() {
		obj.fExor = true
	}
	return r
}

// Mux builds ITE(c, t, e) = c&t | !c&e, the standard AIG multiplexer
// decomposition used by technology-independent logic built on top of And.
func (m *aigManager) Mux(c, t, e Ref) Ref {
	return m.Or(m.And(c, t), m.And(c.Not(), e))
}

// AIGAnd is the public surface of the AIG manager's structurally-hashed
// conjunction. It panics if n is not AIG-backed, matching the rest of the
// package's convention of treating a missing collaborator as a programmer
// error rather than a recoverable one.
func (n *Ntk) AIGAnd(p0, p1 Ref) Ref { return n.aig.And(p0, p1) }

// AIGOr is the public surface of the AIG manager's disjunction.
func (n *Ntk) AIGOr(p0, p1 Ref) Ref { return n.aig.Or(p0, p1) }

// AIGXor is the public surface of the AIG manager's exclusive-or.
func (n *Ntk) AIGXor(p0, p1 Ref) Ref { return n.aig.Xor(p0, p1) }

// AIGMux is the public surface of the AIG manager's multiplexer.
func (n *Ntk) AIGMux(c, t, e Ref) Ref { return n.aig.Mux(c, t, e) }

// CreateChoice links member into repr's choice class (spec §4.4: "a
// representative node plus a linked list of equivalent alternatives"),
// recording whether member is equivalent (phase=false) or
// inverse-equivalent (phase=true) to repr.
func (n *Ntk) CreateChoice(repr, member *Obj, phase bool) {
	member.phase = phase
	d := member.Data()
	d.ChoiceNext = repr.data.ChoiceNext
	member.SetData(d)
	rd := repr.Data()
	rd.ChoiceNext = member.id
	repr.SetData(rd)
}

// ChoiceClass returns repr together with every node chained after it via
// ChoiceNext, in link order.
func (n *Ntk) ChoiceClass(repr *Obj) []*Obj {
	out := []*Obj{repr}
	for id := repr.data.ChoiceNext; id != 0; {
		o := n.arena.get(id)
		if o == nil {
			break
		}
		out = append(out, o)
		id = o.data.ChoiceNext
	}
	return out
}

// AigReplace rewires old's fanouts onto newRef (spec §4.3 transferFanout)
// and then runs the deletion cascade, exactly like the generic Replace,
// except it also evicts old from the structural hash table first so a
// stale bucket entry can never shadow a future And lookup, and — because
// spec §4.4 calls AIG replace "recursive" precisely so that "fanouts that
// become structurally identical to an existing node after patching must be
// merged (via lookup)" — re-strashes every patched fanout afterward,
// merging any that now duplicate a live node instead of leaving the hash
// table's uniqueness invariant (property 3) broken.
func (n *Ntk) AigReplace(old *Obj, newRef Ref) {
	if n.aig == nil {
		n.Replace(old, newRef)
		return
	}
	if old.typ == ObjTypeNode && len(old.fanins) == 2 {
		n.aig.removeFromHash(old)
	}

	type faninPair struct{ p0, p1 Ref }
	touched := make(map[ObjID]faninPair, len(old.fanouts))
	for _, fo := range old.fanouts {
		dep := n.arena.get(fo.Peer)
		if dep != nil && dep.typ == ObjTypeNode && !dep.IsConst() && len(dep.fanins) == 2 {
			touched[dep.id] = faninPair{p0: dep.fanins[0].Ref(), p1: dep.fanins[1].Ref()}
		}
	}

	n.transferFanout(old, newRef)
	n.deleteCascade(old)

	for id, prev := range touched {
		if dep := n.arena.get(id); dep != nil {
			n.restrashNode(dep, prev.p0, prev.p1)
		}
	}
}

// restrashNode restores the structural-hash invariant for obj right after
// one of its fanin edges was patched in place (edge.go's patchFanin, driven
// by AigReplace's transferFanout). prevP0/prevP1 are the fanin pair obj was
// actually hashed under before the patch, needed to evict its now-stale
// bucket entry. obj's fanins are re-sorted into canonical id order; if some
// other live node already occupies that key, obj is merged into it instead
// of given a fresh entry, recursing into obj's own fanouts in turn, since
// that merge can make obj's dependents duplicate something too.
func (n *Ntk) restrashNode(obj *Obj, prevP0, prevP1 Ref) {
	if obj.typ != ObjTypeNode || obj.IsConst() || len(obj.fanins) != 2 {
		return
	}
	n.aig.removeKeyed(obj, prevP0, prevP1)

	if obj.fanins[0].Peer > obj.fanins[1].Peer {
		obj.fanins[0], obj.fanins[1] = obj.fanins[1], obj.fanins[0]
	}
	p0, p1 := obj.fanins[0].Ref(), obj.fanins[1].Ref()

	if dupID := n.aig.lookup(p0, p1); dupID != 0 && dupID != obj.id {
		n.AigReplace(obj, Ref{ID: dupID})
		return
	}
	n.aig.insert(obj)
}

// AigCleanup repeatedly removes Node objects with no fanout (dangling logic
// left behind by rewiring) that are not the constant node, returning the
// count removed. This is network-wide dangling-node sweep, distinct from
// the fanin-triggered deleteCascade used by Replace.
func (n *Ntk) AigCleanup() int {
	removed := 0
	for {
		progress := false
		for _, obj := range n.Objs() {
			if obj.typ == ObjTypeNode && !obj.IsConst() && obj.FanoutNum() == 0 {
				n.deleteObj(obj)
				removed++
				progress = true
			}
		}
		if !progress {
			return removed
		}
	}
}
