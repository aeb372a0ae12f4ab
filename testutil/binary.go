// Package testutil provides multi-bit test harnesses for driving and
// reading whole words of a core.Network from a single integer, the way
// original_source/gatesym/tests/blocks/test_latches.py's test_utils module
// drives blocks/latches.go's Register from a random.randrange(256) value.
package testutil

import (
	"github.com/xDarkicex/gatesym/core"
	"github.com/xDarkicex/gatesym/gate"
)

// bitWord packs an integer's bits for per-position access, least
// significant bit first, the way classical/bitvector.go's BitwiseInt
// indexes bits by position. Kept unexported since BinaryIn/BinaryOut are
// the only things that need it.
type bitWord int

func (w bitWord) bit(pos int) bool { return int(w)&(1<<pos) != 0 }

func bitWordFromBits(bits []bool) bitWord {
	var w bitWord
	for i, set := range bits {
		if set {
			w |= 1 << i
		}
	}
	return w
}

// BinaryIn is a bank of switches, least significant bit first, that can be
// set all at once from an integer.
type BinaryIn struct {
	bits []gate.Gate
}

// NewBinaryIn creates width switches on net, all initially 0.
func NewBinaryIn(net *core.Network, width int) *BinaryIn {
	bits := make([]gate.Gate, width)
	for i := range bits {
		bits[i] = gate.Switch(net)
	}
	return &BinaryIn{bits: bits}
}

// Bits returns the underlying switches, for passing to a block such as
// blocks.Register.
func (b *BinaryIn) Bits() []gate.Gate { return b.bits }

// Write sets every bit of value onto its corresponding switch.
func (b *BinaryIn) Write(value int) {
	w := bitWord(value)
	for i, bit := range b.bits {
		bit.Write(w.bit(i))
	}
}

// BinaryOut reads a bank of gates, least significant bit first, as a
// single integer.
type BinaryOut struct {
	bits []gate.Gate
}

// NewBinaryOut wraps an existing slice of gates (e.g. a Register's output)
// for combined reading.
func NewBinaryOut(bits []gate.Gate) *BinaryOut {
	return &BinaryOut{bits: bits}
}

// Read combines every bit's current value into an integer.
func (b *BinaryOut) Read() int {
	bits := make([]bool, len(b.bits))
	for i, bit := range b.bits {
		bits[i] = bit.Read()
	}
	return int(bitWordFromBits(bits))
}
