// Package gate provides value-typed wrappers around core.Network indices:
// the compositional façade (Tie, Switch, Nor, Not, And, Or, Xor,
// Placeholder) that a program uses to assemble circuits, plus the
// construction-path ("cookie") bookkeeping consumed by Find and List.
package gate

import "github.com/xDarkicex/gatesym/core"

// Gate is a cheap handle: a network reference plus an index. No Gate value
// owns the underlying storage — the Network does — so copying a Gate is
// free and "destroying" one is a no-op.
type Gate struct {
	net   *core.Network
	index int
}

// Index returns the underlying Network gate index.
func (g Gate) Index() int { return g.index }

// Network returns the Network this handle belongs to.
func (g Gate) Network() *core.Network { return g.net }

// Read returns the gate's current value.
func (g Gate) Read() bool { return g.net.Read(g.index) }

// Write sets the gate's value.
func (g Gate) Write(value bool) { g.net.Write(g.index, value) }

// Tie creates a constant input pre-written to value.
func Tie(net *core.Network, value bool) Gate {
	idx := net.AddGate(core.Tie, "tie")
	g := Gate{net: net, index: idx}
	net.Write(idx, value)
	return g
}

// Switch creates a writable input, initially false.
func Switch(net *core.Network) Gate {
	idx := net.AddGate(core.Switch, "switch")
	return Gate{net: net, index: idx}
}

// Nor creates a nor gate and installs one link per argument; repeated
// arguments produce repeated links (the multiset is preserved).
func Nor(inputs ...Gate) Gate {
	if len(inputs) == 0 {
		panic("gate.Nor: requires at least one input")
	}
	net := inputs[0].net
	idx := net.AddGate(core.Nor, "nor")
	g := Gate{net: net, index: idx}
	for _, in := range inputs {
		net.AddLink(in.index, idx)
	}
	return g
}

// Not is a single-input Nor.
func Not(a Gate) Gate {
	idx := a.net.AddGate(core.Nor, "not")
	a.net.AddLink(a.index, idx)
	return Gate{net: a.net, index: idx}
}

// And is the OR of negations, negated: the minimum gate count the NOR-only
// primitive set permits for logical AND.
func And(inputs ...Gate) Gate {
	negated := make([]Gate, len(inputs))
	for i, in := range inputs {
		negated[i] = Not(in)
	}
	return Nor(negated...)
}

// Or is Not(Nor(inputs...)).
func Or(inputs ...Gate) Gate {
	return Not(Nor(inputs...))
}

// Xor is the canonical NOR expansion: Or(And(a, Not(b)), And(Not(a), b)).
func Xor(a, b Gate) Gate {
	return Or(And(a, Not(b)), And(Not(a), b))
}

// Placeholder creates a nor gate with no inputs, used to close feedback
// loops without a forward reference: wire it as if it were the final
// gate, then call Replace once the real gate exists.
type Placeholder struct {
	Gate
}

// NewPlaceholder creates a Placeholder.
func NewPlaceholder(net *core.Network) Placeholder {
	idx := net.AddGate(core.Nor, "placeholder")
	return Placeholder{Gate{net: net, index: idx}}
}

// Replace transfers every outgoing edge currently sourced at the
// placeholder onto target (remove_link then add_link for each), merges
// the placeholder's cookie set into target's, then removes the now
// isolated placeholder.
func (p Placeholder) Replace(target Gate) {
	net := p.net
	outs := append([]int(nil), net.Outputs(p.index)...)
	for _, dst := range outs {
		net.RemoveLink(p.index, dst)
		net.AddLink(target.index, dst)
	}
	mergeCookies(net, p.index, target.index)
	net.RemoveGate(p.index)
}
