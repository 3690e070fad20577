package network

import "github.com/bits-and-blooms/bitset"

// markChannel is one of the three fMarkA/B/C scratch channels from spec §3
// and §5, implemented as a bitset side-table indexed by ObjID rather than an
// in-Obj bit (design notes: "Replace with typed borrow or a per-pass
// side-table keyed by id"). The side-table shape lets a MarkScope own
// exclusive access and enforce clear-on-exit structurally.
type markChannel struct {
	bits *bitset.BitSet
	busy bool
}

func newMarkChannel() *markChannel {
	return &markChannel{bits: bitset.New(64)}
}

func (m *markChannel) set(id ObjID)    { m.bits.Set(uint(id)) }
func (m *markChannel) clear(id ObjID)  { m.bits.Clear(uint(id)) }
func (m *markChannel) test(id ObjID) bool { return m.bits.Test(uint(id)) }
func (m *markChannel) clearAll()       { m.bits.ClearAll() }

// MarkScope is a borrowed, exclusive handle on one of the network's
// fMarkA/B/C scratch channels. Callers must call Clear (typically via
// defer) before any other pass may use the same channel; nested use of the
// same channel panics rather than silently corrupting a concurrent pass's
// scratch state, fulfilling spec §5's "nested uses are prohibited."
type MarkScope struct {
	ch *markChannel
}

// Set marks obj id as scratch-set in this scope.
func (s MarkScope) Set(id ObjID) { s.ch.set(id) }

// ClearMark unmarks a single object, leaving the scope open.
func (s MarkScope) ClearMark(id ObjID) { s.ch.clear(id) }

// Test reports whether obj id is currently marked in this scope.
func (s MarkScope) Test(id ObjID) bool { return s.ch.test(id) }

// Clear releases the scope, clearing every bit set during it and allowing
// the channel to be borrowed again. Calling Clear more than once is a no-op.
func (s MarkScope) Clear() {
	if !s.ch.busy {
		return
	}
	s.ch.clearAll()
	s.ch.busy = false
}

func beginMark(ch *markChannel) MarkScope {
	if ch.busy {
		panic("network: nested use of the same scratch mark channel")
	}
	ch.busy = true
	return MarkScope{ch: ch}
}

// BeginMarkA borrows the fMarkA scratch channel for the duration of a pass.
func (n *Ntk) BeginMarkA() MarkScope { return beginMark(n.markA) }

// BeginMarkB borrows the fMarkB scratch channel.
func (n *Ntk) BeginMarkB() MarkScope { return beginMark(n.markB) }

// BeginMarkC borrows the fMarkC scratch channel.
func (n *Ntk) BeginMarkC() MarkScope { return beginMark(n.markC) }
