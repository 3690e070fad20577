package network

// Edge is a directed fanin/fanout edge: the peer's id, a one-bit complement
// (legal only for AIG-style networks and for CO-driver edges of SOP logic
// networks, spec §3), and a latch count used only by sequential AIG edges.
type Edge struct {
	Peer     ObjID
	Compl    bool
	NLatches int
}

// Ref returns the tagged reference this edge denotes.
func (e Edge) Ref() Ref { return Ref{ID: e.Peer, Compl: e.Compl} }

// Obj is a single structural entity: net, node, latch, PI, or PO (spec §3).
type Obj struct {
	id    ObjID
	typ   ObjType
	owner *Ntk

	Level int

	// phase: for an AIG choice node, whether this member is equivalent
	// (false) or inverse-equivalent (true) to its class representative.
	phase bool

	travID uint64

	// fExor: set if this AIG node is the recognized apex of an EXOR.
	fExor bool

	fanins  []Edge
	fanouts []Edge

	data ObjData

	// next is the AIG structural-hash chain link (valid only while the
	// object is resident in the hash table maintained by aigManager).
	next ObjID

	// copy is the transient per-transform image pointer: during a
	// StartFrom/transform pass, src.copy holds the Ref of the
	// corresponding object in the destination network. It must not be
	// read outside the transform that set it (spec §5).
	copy Ref

	name string
}

// ID returns the object's id, stable for its lifetime (spec invariant 1).
func (o *Obj) ID() ObjID { return o.id }

// Type returns the object's semantic kind.
func (o *Obj) Type() ObjType { return o.typ }

// Owner returns the network that owns this object.
func (o *Obj) Owner() *Ntk { return o.owner }

// Name returns the object's name, or "" if unnamed.
func (o *Obj) Name() string { return o.name }

// Ref returns the uncomplemented (regular) reference to this object.
func (o *Obj) Ref() Ref { return Ref{ID: o.id} }

// IsCI reports whether o is a combinational input (a PI, or a latch in its
// role as an output feeding forward).
func (o *Obj) IsCI() bool { return o.typ == ObjTypePI || o.typ == ObjTypeLatch }

// IsCO reports whether o is a combinational output (a PO, or a latch in its
// role as an input fed from the current frame).
func (o *Obj) IsCO() bool { return o.typ == ObjTypePO || o.typ == ObjTypeLatch }

// IsConst reports whether o is the AIG's constant-1 node: a Node with no
// fanins, owned by a Strash/Seq network's aigManager.
func (o *Obj) IsConst() bool {
	return o.typ == ObjTypeNode && len(o.fanins) == 0 && o.owner != nil &&
		o.owner.aig != nil && o.owner.aig.const1 == o.id
}

// FaninNum returns the number of fanin edges.
func (o *Obj) FaninNum() int { return len(o.fanins) }

// FanoutNum returns the number of fanout edges.
func (o *Obj) FanoutNum() int { return len(o.fanouts) }

// Fanins returns the object's fanin edges. The returned slice aliases
// internal storage and must not be mutated by the caller.
func (o *Obj) Fanins() []Edge { return o.fanins }

// Fanouts returns the object's fanout edges. The returned slice aliases
// internal storage and must not be mutated by the caller.
func (o *Obj) Fanouts() []Edge { return o.fanouts }

// FaninRef returns the i'th fanin as a tagged Ref.
func (o *Obj) FaninRef(i int) Ref { return o.fanins[i].Ref() }

// Data returns the object's function/latch payload.
func (o *Obj) Data() ObjData { return o.data }

// SetData overwrites the object's function/latch payload.
func (o *Obj) SetData(d ObjData) { o.data = d }

// Phase reports the choice-class phase bit (spec §3: "records whether the
// node's output is equivalent or inverse-equivalent to the class
// representative").
func (o *Obj) Phase() bool { return o.phase }

// IsExor reports whether this AIG node is a recognized EXOR apex.
func (o *Obj) IsExor() bool { return o.fExor }

// travIDCurrent reports whether obj was last visited at owner's current
// travIDs (the "visited in current pass" contract from spec §3/§4.5).
func (o *Obj) travIDCurrent() bool { return o.travID == o.owner.travIDs }

func (o *Obj) travIDPrevious() bool { return o.travID == o.owner.travIDs-1 }

func (o *Obj) setTravIDCurrent() { o.travID = o.owner.travIDs }

func (o *Obj) setTravIDPrevious() { o.travID = o.owner.travIDs - 1 }

// Regular strips the complement off a Ref and returns the underlying Obj.
func (n *Ntk) Regular(r Ref) *Obj { return n.arena.get(r.ID) }

// Const1 returns the tagged reference to the AIG's constant-1 node (the
// only legal degenerate fanin-less AIG node besides PIs).
func (n *Ntk) Const1() Ref {
	if n.aig == nil {
		return NilRef
	}
	return Ref{ID: n.aig.const1}
}
