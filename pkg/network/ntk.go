package network

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Ntk is the C2 network container (spec §3/§4.2): a self-contained group of
// objects plus the indices, counters, and opaque function-manager handle
// that give the objects meaning.
type Ntk struct {
	Kind NtkKind
	Func FuncKind
	Name string
	Spec string // source-spec string, e.g. an originating file path

	arena    *arena
	namePool *namePool

	cis     []ObjID
	cos     []ObjID
	latches []ObjID

	counts [6]int // indexed by ObjType

	aig *aigManager // non-nil iff Func == FuncKindAIG

	// Opaque external collaborators (spec §1/§6): the core stores these
	// handles and calls them by name; it never interprets their contents.
	BDD     BDDManager
	SAT     SATSolver
	Timing  TimingManager
	CutMan  CutManager

	EXDC *Ntk // optional external don't-care sub-network

	travIDs uint64

	backup    *Ntk
	backupGen int

	netNames map[string]ObjID
	objNames map[string]ObjID

	markA, markB, markC *markChannel

	randSeed uint64

	log zerolog.Logger
}

// ntkConfig holds the options applied at Alloc time.
type ntkConfig struct {
	initialBins int
	randSeed    uint64
}

// Option configures a network at allocation time.
type Option func(*ntkConfig)

// WithInitialBins sets the AIG structural-hash table's initial bucket
// count (ignored for non-AIG networks).
func WithInitialBins(n int) Option {
	return func(c *ntkConfig) { c.initialBins = n }
}

// WithRand seeds the deterministic tie-break randomization hook used by
// Balance (spec §4.6, §9 open question: "keep both and document"). A zero
// seed (the default) disables randomization.
func WithRand(seed uint64) Option {
	return func(c *ntkConfig) { c.randSeed = seed }
}

// Alloc creates a new empty network with the given (kind, func) pair,
// validated against the compatibility matrix (spec §3/§4.2).
func Alloc(kind NtkKind, fn FuncKind, opts ...Option) (*Ntk, error) {
	if !kindFuncCompatible(kind, fn) {
		return nil, newError(ErrIncompatibleKindFunc, "kind %s cannot carry func %s", kind, fn)
	}
	cfg := ntkConfig{initialBins: 997}
	for _, o := range opts {
		o(&cfg)
	}
	n := &Ntk{
		Kind:     kind,
		Func:     fn,
		arena:    newArena(),
		namePool: newNamePool(),
		netNames: make(map[string]ObjID),
		objNames: make(map[string]ObjID),
		markA:    newMarkChannel(),
		markB:    newMarkChannel(),
		markC:    newMarkChannel(),
		randSeed: cfg.randSeed,
		log:      newDisabledLogger(),
	}
	if fn == FuncKindAIG {
		n.aig = newAigManager(n, cfg.initialBins)
	}
	return n, nil
}

// CreatePI allocates a new primary input.
func (n *Ntk) CreatePI() *Obj {
	obj := n.arena.alloc(n, ObjTypePI)
	n.cis = append(n.cis, obj.id)
	n.counts[ObjTypePI]++
	return obj
}

// CreatePO allocates a new primary output.
func (n *Ntk) CreatePO() *Obj {
	obj := n.arena.alloc(n, ObjTypePO)
	n.cos = append(n.cos, obj.id)
	n.counts[ObjTypePO]++
	return obj
}

// CreateLatch allocates a new latch, which is simultaneously a CI (its
// output drives forward logic) and a CO (its input is driven by the logic
// feeding it), per spec §3.
func (n *Ntk) CreateLatch(init LatchInit) *Obj {
	obj := n.arena.alloc(n, ObjTypeLatch)
	obj.data.LatchInit = init
	n.cis = append(n.cis, obj.id)
	n.cos = append(n.cos, obj.id)
	n.latches = append(n.latches, obj.id)
	n.counts[ObjTypeLatch]++
	return obj
}

// CreateNode allocates a new internal node (an AIG AND gate, or a
// multi-input SOP/BDD/Map logic node, depending on n.Func).
func (n *Ntk) CreateNode() *Obj {
	obj := n.arena.alloc(n, ObjTypeNode)
	n.counts[ObjTypeNode]++
	return obj
}

// AddFanin appends peer as a fanin of obj (public C3 surface).
func (n *Ntk) AddFanin(obj *Obj, peer Ref) { n.addFanin(obj, peer) }

// AddFaninLatched appends peer as a fanin of obj carrying a latch count
// (sequential AIG edges).
func (n *Ntk) AddFaninLatched(obj *Obj, peer Ref, nLatches int) { n.addFaninL(obj, peer, nLatches) }

// DeleteFanin removes the fanin edge from obj to peer.
func (n *Ntk) DeleteFanin(obj *Obj, peer ObjID) { n.deleteFanin(obj, peer) }

// PatchFanin replaces obj's fanin edge to old with one to newRef, in place.
func (n *Ntk) PatchFanin(obj *Obj, old ObjID, newRef Ref) { n.patchFanin(obj, old, newRef) }

// findOrCreateNet returns the Net object for name, creating it if absent.
func (n *Ntk) findOrCreateNet(name string) *Obj {
	if id, ok := n.netNames[name]; ok {
		return n.arena.get(id)
	}
	obj := n.arena.alloc(n, ObjTypeNet)
	obj.name = n.namePool.intern(name)
	n.netNames[obj.name] = obj.id
	n.counts[ObjTypeNet]++
	return obj
}

// FindOrCreateNet is the public surface of findOrCreateNet.
func (n *Ntk) FindOrCreateNet(name string) *Obj { return n.findOrCreateNet(name) }

// FindNet looks up a Net object by name.
func (n *Ntk) FindNet(name string) *Obj {
	if id, ok := n.netNames[name]; ok {
		return n.arena.get(id)
	}
	return nil
}

// FindCi looks up a combinational input by name.
func (n *Ntk) FindCi(name string) *Obj {
	if id, ok := n.objNames[name]; ok {
		if o := n.arena.get(id); o != nil && o.IsCI() {
			return o
		}
	}
	return nil
}

// FindCo looks up a combinational output by name.
func (n *Ntk) FindCo(name string) *Obj {
	if id, ok := n.objNames[name]; ok {
		if o := n.arena.get(id); o != nil && o.IsCO() {
			return o
		}
	}
	return nil
}

// SetName assigns name to obj, enforcing uniqueness among primary
// input/output/latch names (spec §4.2 failure semantics: "Duplicate primary-IO
// names fail").
func (n *Ntk) SetName(obj *Obj, name string) error {
	if name == "" {
		if obj.name != "" && (obj.typ == ObjTypePI || obj.typ == ObjTypePO || obj.typ == ObjTypeLatch) {
			delete(n.objNames, obj.name)
		}
		obj.name = ""
		return nil
	}
	interned := n.namePool.intern(name)
	if obj.typ == ObjTypePI || obj.typ == ObjTypePO || obj.typ == ObjTypeLatch {
		if existing, ok := n.objNames[interned]; ok && existing != obj.id {
			return newError(ErrNameClash, "duplicate primary IO name %q", interned)
		}
		if obj.name != "" {
			delete(n.objNames, obj.name)
		}
		n.objNames[interned] = obj.id
	}
	obj.name = interned
	return nil
}

// untrackObj removes obj from every index the network keeps over it (CI/CO/
// latch lists, name tables). Called from deleteObj before the slot is
// recycled.
func (n *Ntk) untrackObj(obj *Obj) {
	if obj.name != "" {
		if obj.typ == ObjTypeNet {
			delete(n.netNames, obj.name)
		} else {
			delete(n.objNames, obj.name)
		}
	}
	switch obj.typ {
	case ObjTypePI:
		n.cis = removeID(n.cis, obj.id)
	case ObjTypePO:
		n.cos = removeID(n.cos, obj.id)
	case ObjTypeLatch:
		n.cis = removeID(n.cis, obj.id)
		n.cos = removeID(n.cos, obj.id)
		n.latches = removeID(n.latches, obj.id)
	}
}

func removeID(s []ObjID, id ObjID) []ObjID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// IncrementTravID bumps the per-network traversal-id counter and returns the
// new value. Two-phase traversals (acyclicity) call this twice in a row.
func (n *Ntk) IncrementTravID() uint64 {
	n.travIDs++
	return n.travIDs
}

// TravID returns the network's current traversal id.
func (n *Ntk) TravID() uint64 { return n.travIDs }

// CIs returns the network's combinational inputs (PIs and latches) in the
// order they were created; PIs are not grouped ahead of latches.
func (n *Ntk) CIs() []*Obj { return n.objsByID(n.cis) }

// COs returns the network's combinational outputs (POs and latch inputs) in
// the order they were created; POs are not grouped ahead of latches.
func (n *Ntk) COs() []*Obj { return n.objsByID(n.cos) }

// Latches returns the network's latch objects.
func (n *Ntk) Latches() []*Obj { return n.objsByID(n.latches) }

func (n *Ntk) objsByID(ids []ObjID) []*Obj {
	out := make([]*Obj, 0, len(ids))
	for _, id := range ids {
		if o := n.arena.get(id); o != nil {
			out = append(out, o)
		}
	}
	return out
}

// Objs returns every live object in the network in ascending id order.
func (n *Ntk) Objs() []*Obj {
	out := make([]*Obj, 0, n.arena.count())
	for id := ObjID(1); int(id) < len(n.arena.objs); id++ {
		if o := n.arena.get(id); o != nil {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of live objects of the given type.
func (n *Ntk) Count(t ObjType) int { return n.counts[t] }

// Obj looks up a live object by id, returning nil if the id is not live.
func (n *Ntk) Obj(id ObjID) *Obj { return n.arena.get(id) }

// StartFrom allocates a fresh network of (kind, fn) and duplicates n's CIs,
// latches, and name tables into it, setting n's objects' copy pointers to
// their image in the new network — the first step of every C6 transform
// (spec §4.2).
func (n *Ntk) StartFrom(kind NtkKind, fn FuncKind, opts ...Option) (*Ntk, error) {
	dst, err := Alloc(kind, fn, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "StartFrom")
	}
	dst.Name = n.Name
	dst.Spec = n.Spec

	for _, id := range n.cis {
		src := n.arena.get(id)
		switch src.typ {
		case ObjTypePI:
			dstObj := dst.CreatePI()
			if err := dst.SetName(dstObj, src.name); err != nil {
				return nil, err
			}
			src.copy = dstObj.Ref()
		case ObjTypeLatch:
			dstObj := dst.CreateLatch(src.data.LatchInit)
			if err := dst.SetName(dstObj, src.name); err != nil {
				return nil, err
			}
			src.copy = dstObj.Ref()
		}
	}
	return dst, nil
}

// Finalize connects dst's COs using each of n's CO drivers' copy pointers,
// composing complement bits along the way (spec §4.2). Latch COs were
// already created by StartFrom (a latch is simultaneously a CI and a CO);
// PO COs are created here.
func (n *Ntk) Finalize(dst *Ntk) error {
	for _, id := range n.cos {
		src := n.arena.get(id)
		driverRef := src.FaninRef(0)
		driver := n.arena.get(driverRef.ID)
		if driver == nil || driver.copy.IsNil() {
			return newError(ErrInvariantViolation, "Finalize: %s has no image for driver of %q", src.typ, src.name)
		}
		image := driver.copy.NotCond(driverRef.Compl)

		switch src.typ {
		case ObjTypePO:
			dstObj := dst.CreatePO()
			if err := dst.SetName(dstObj, src.name); err != nil {
				return err
			}
			dst.AddFanin(dstObj, image)
		case ObjTypeLatch:
			dstObj := dst.arena.get(src.copy.ID)
			if dstObj == nil {
				return newError(ErrInvariantViolation, "Finalize: latch %q missing image", src.name)
			}
			dst.AddFanin(dstObj, image)
		}
	}
	return nil
}
