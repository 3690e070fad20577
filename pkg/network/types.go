// Package network implements the in-memory multi-level Boolean network
// engine: the object/network data model, the structurally-hashed AIG with
// complemented edges and choice nodes, and the traversal and transform
// primitives built on top of it.
package network

import "fmt"

// ObjID is the dense, stable index of an Obj inside its owner Ntk's object
// sequence. 0 is never a valid id; it is reserved as the "no object" value.
type ObjID uint32

// ObjType is the semantic kind of a structural object.
type ObjType int

const (
	ObjTypeNone ObjType = iota
	ObjTypeNet
	ObjTypeNode
	ObjTypeLatch
	ObjTypePI
	ObjTypePO
)

func (t ObjType) String() string {
	switch t {
	case ObjTypeNet:
		return "Net"
	case ObjTypeNode:
		return "Node"
	case ObjTypeLatch:
		return "Latch"
	case ObjTypePI:
		return "PI"
	case ObjTypePO:
		return "PO"
	default:
		return "None"
	}
}

// NtkKind is the structural kind of a network.
type NtkKind int

const (
	NtkKindNone NtkKind = iota
	NtkKindNetlist
	NtkKindLogic
	NtkKindStrash
	NtkKindSeq
)

func (k NtkKind) String() string {
	switch k {
	case NtkKindNetlist:
		return "Netlist"
	case NtkKindLogic:
		return "Logic"
	case NtkKindStrash:
		return "Strash"
	case NtkKindSeq:
		return "Seq"
	default:
		return "None"
	}
}

// FuncKind is the function representation a network carries.
type FuncKind int

const (
	FuncKindNone FuncKind = iota
	FuncKindSOP
	FuncKindBDD
	FuncKindAIG
	FuncKindMap
)

func (f FuncKind) String() string {
	switch f {
	case FuncKindSOP:
		return "SOP"
	case FuncKindBDD:
		return "BDD"
	case FuncKindAIG:
		return "AIG"
	case FuncKindMap:
		return "Map"
	default:
		return "None"
	}
}

// kindFuncCompatible implements the compatibility matrix from spec §3:
// Netlist: SOP or Map. Logic: SOP/BDD/Map. Strash/Seq: AIG only.
func kindFuncCompatible(kind NtkKind, fn FuncKind) bool {
	switch kind {
	case NtkKindNetlist:
		return fn == FuncKindSOP || fn == FuncKindMap
	case NtkKindLogic:
		return fn == FuncKindSOP || fn == FuncKindBDD || fn == FuncKindMap
	case NtkKindStrash, NtkKindSeq:
		return fn == FuncKindAIG
	default:
		return false
	}
}

// LatchInit is the initial value carried by a latch object's data payload.
type LatchInit int

const (
	LatchInitZero LatchInit = iota
	LatchInitOne
	LatchInitDC
)

func (v LatchInit) String() string {
	switch v {
	case LatchInitZero:
		return "0"
	case LatchInitOne:
		return "1"
	default:
		return "X"
	}
}

// Ref is a complemented-object reference: a tagged pointer idiom made
// explicit as a small value type, per the design notes ("Replace with a
// small struct Ref{id, compl}... Obj never carries the complement bit
// itself."). Regular()/Not()/NotCond()/IsComplement() are the spec's
// ubiquitous complemented-pointer algebra.
type Ref struct {
	ID    ObjID
	Compl bool
}

// NilRef is the zero value of Ref and never denotes a live object.
var NilRef = Ref{}

// IsNil reports whether r denotes no object.
func (r Ref) IsNil() bool { return r.ID == 0 }

// Regular strips the complement tag.
func (r Ref) Regular() Ref { return Ref{ID: r.ID} }

// IsComplement reads the complement tag.
func (r Ref) IsComplement() bool { return r.Compl }

// Not toggles the complement tag.
func (r Ref) Not() Ref { return Ref{ID: r.ID, Compl: !r.Compl} }

// NotCond conditionally toggles the complement tag.
func (r Ref) NotCond(cond bool) Ref {
	if cond {
		return r.Not()
	}
	return r
}

func (r Ref) String() string {
	if r.Compl {
		return fmt.Sprintf("!%d", r.ID)
	}
	return fmt.Sprintf("%d", r.ID)
}

// ObjData is the payload interpreted per (network kind, function kind), per
// spec §3. It is a plain struct rather than an interface so the zero value
// is meaningful and no allocation is needed for objects that carry no
// payload (PIs, POs, most AIG nodes).
type ObjData struct {
	SOP        string    // Logic+SOP: cube string for this node's local function
	BDD        BDDHandle // Logic+BDD: opaque handle into an external BDD manager
	Gate       GateID    // Netlist/Logic+Map: opaque handle into a technology mapper
	ChoiceNext ObjID     // Strash/Seq AIG: next member of this node's choice class, 0 if none
	LatchInit  LatchInit // Latch: initial value
}

// BDDHandle is an opaque handle into an external BDD manager (spec §1, §6:
// "BDD package (opaque manager)"). The core never interprets its value.
type BDDHandle uintptr

// GateID is an opaque handle into an external technology mapper.
type GateID uintptr
