package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTie(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Tie, "")
	a.False(n.Read(idx))
	n.Write(idx, true)
	a.True(n.Read(idx))
	n.Write(idx, false)
	a.False(n.Read(idx))
}

func TestSwitch(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Switch, "")
	a.False(n.Read(idx))
	n.Write(idx, true)
	a.True(n.Read(idx))
}

func TestSoloNor(t *testing.T) {
	// S1: a nor with no inputs reads true immediately and stays true.
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Nor, "")
	a.True(n.Read(idx))
	n.Step()
	a.True(n.Read(idx))
}

func TestOneInputNor(t *testing.T) {
	for _, inputKind := range []Kind{Switch, Tie} {
		t.Run(string(inputKind), func(t *testing.T) {
			a := assert.New(t)
			n := NewNetwork()
			src := n.AddGate(inputKind, "")
			idx := n.AddGate(Nor, "")
			n.AddLink(src, idx)

			n.Write(src, false)
			a.True(n.Read(idx))
			n.Step()
			a.True(n.Read(idx))

			n.Write(src, true)
			a.True(n.Read(idx))
			n.Step()
			a.False(n.Read(idx))

			n.Write(src, false)
			a.False(n.Read(idx))
			n.Step()
			a.True(n.Read(idx))
		})
	}
}

func TestTwoInputNor(t *testing.T) {
	for _, inputKind := range []Kind{Switch, Tie} {
		t.Run(string(inputKind), func(t *testing.T) {
			a := assert.New(t)
			n := NewNetwork()
			x := n.AddGate(inputKind, "")
			y := n.AddGate(inputKind, "")
			idx := n.AddGate(Nor, "")
			n.AddLink(x, idx)
			n.AddLink(y, idx)

			n.Write(x, false)
			n.Write(y, false)
			a.True(n.Read(idx))
			n.Step()
			a.True(n.Read(idx))

			n.Write(x, true)
			n.Write(y, false)
			a.True(n.Read(idx))
			n.Step()
			a.False(n.Read(idx))

			n.Write(x, false)
			n.Write(y, true)
			a.False(n.Read(idx))
			n.Step()
			a.False(n.Read(idx))

			n.Write(x, true)
			n.Write(y, true)
			a.False(n.Read(idx))
			n.Step()
			a.False(n.Read(idx))

			n.Write(x, false)
			n.Write(y, false)
			a.False(n.Read(idx))
			n.Step()
			a.True(n.Read(idx))
		})
	}
}

func TestStep(t *testing.T) {
	// S3: a two-stage inverter chain.
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	g1 := n.AddGate(Nor, "")
	g2 := n.AddGate(Nor, "")
	n.AddLink(sw, g1)
	n.AddLink(g1, g2)

	n.Drain()
	a.False(n.Read(sw))
	a.True(n.Read(g1))
	a.False(n.Read(g2))

	n.Write(sw, true)
	a.True(n.Read(sw))
	a.True(n.Read(g1))
	a.False(n.Read(g2))

	a.True(n.Step())
	a.True(n.Read(sw))
	a.False(n.Read(g1))
	a.False(n.Read(g2))

	a.False(n.Step())
	a.False(n.Read(g1))
	a.True(n.Read(g2))

	a.False(n.Step())
	a.True(n.Read(g2))
}

func TestDrain(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	g1 := n.AddGate(Nor, "")
	g2 := n.AddGate(Nor, "")
	n.AddLink(sw, g1)
	n.AddLink(g1, g2)

	n.Drain()
	a.True(n.Read(g1))
	a.False(n.Read(g2))
	_ = g2

	n.Write(sw, true)
	a.Equal(2, n.Drain())
	a.False(n.Read(g1))
	a.True(n.Read(g2))

	// idempotence
	n.Write(sw, true)
	a.Equal(0, n.Drain())

	n.Write(sw, false)
	n.Write(sw, true)
	a.Equal(1, n.Drain())
}

func TestAddLinkRejectsNonNorDestination(t *testing.T) {
	n := NewNetwork()
	src := n.AddGate(Switch, "")
	dst := n.AddGate(Tie, "")
	assert.Panics(t, func() { n.AddLink(src, dst) })
}

func TestAddGateRejectsInvalidKind(t *testing.T) {
	n := NewNetwork()
	assert.Panics(t, func() { n.AddGate(Kind("xor"), "") })
}

func TestRemoveGateRequiresNoEdges(t *testing.T) {
	n := NewNetwork()
	src := n.AddGate(Switch, "")
	dst := n.AddGate(Nor, "")
	n.AddLink(src, dst)

	assert.Panics(t, func() { n.RemoveGate(dst) })

	n.RemoveLink(src, dst)
	require.NotPanics(t, func() { n.RemoveGate(dst) })
}

func TestRemoveGateRecyclesFreshState(t *testing.T) {
	// Invariant 7: removal + re-add on the free list yields a fresh gate.
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Nor, "cookie")
	n.RemoveGate(idx)

	reused := n.AddGate(Switch, "")
	a.Equal(idx, reused)
	a.False(n.Read(reused))
}

func TestMultiplicityPreservedOnSelfWire(t *testing.T) {
	// A nor wired to its own input twice must still compute correctly
	// (Invariant 3: multisets, not sets).
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	idx := n.AddGate(Nor, "")
	n.AddLink(sw, idx)
	n.AddLink(sw, idx)

	n.Write(sw, false)
	n.Drain()
	a.True(n.Read(idx))

	n.RemoveLink(sw, idx)
	// one edge remains; removing the gate must still fail.
	assert.Panics(t, func() { n.RemoveGate(idx) })
}

func TestEdgeSymmetry(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	idx := n.AddGate(Nor, "")
	n.AddLink(sw, idx)

	a.Contains(n.gates[sw].outputs, idx)
	a.Contains(n.gates[idx].inputs, sw)
}

func TestStepRejectsNonNorGateInPendingSet(t *testing.T) {
	n := NewNetwork()
	tie := n.AddGate(Tie, "")
	n.pending[tie] = struct{}{}
	assert.Panics(t, func() { n.Step() })
}
