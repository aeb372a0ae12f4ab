package gatesym

import "github.com/xDarkicex/gatesym/core"

// Drive provides a fluent interface for chaining gate operations over a
// live Network, the circuit counterpart to the teacher's boolean
// Evaluator: each call wires in one more gate and returns the builder for
// further chaining, and Result drains the network and reads the final
// value.
//
// Example:
//
//	net := gatesym.NewNetwork()
//	b := gatesym.Switch(net)
//	c := gatesym.Switch(net)
//	result := gatesym.NewDrive(net, true).And(b).Or(c).Result()
type Drive struct {
	net *core.Network
	g   Gate
}

// NewDrive creates a Drive seeded with a Tie gate carrying initial.
func NewDrive(net *core.Network, initial bool) *Drive {
	return &Drive{net: net, g: Tie(net, initial)}
}

// FromGate wraps an existing gate for further chaining.
func FromGate(g Gate) *Drive {
	return &Drive{net: g.Network(), g: g}
}

// And wires the current gate and other into an And gate, and chains.
func (d *Drive) And(other Gate) *Drive {
	d.g = And(d.g, other)
	return d
}

// Or wires the current gate and other into an Or gate, and chains.
func (d *Drive) Or(other Gate) *Drive {
	d.g = Or(d.g, other)
	return d
}

// Xor wires the current gate and other into an Xor gate, and chains.
func (d *Drive) Xor(other Gate) *Drive {
	d.g = Xor(d.g, other)
	return d
}

// Not wires the current gate through a Not gate, and chains.
func (d *Drive) Not() *Drive {
	d.g = Not(d.g)
	return d
}

// Gate returns the current gate without draining.
func (d *Drive) Gate() Gate { return d.g }

// Result drains the network and reads the current gate's value.
func (d *Drive) Result() bool {
	d.net.Drain()
	return d.g.Read()
}
