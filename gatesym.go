// Package gatesym simulates digital circuits built from a single
// primitive, the NOR gate, driven to a fixed point by unit-delay,
// level-agnostic event propagation. core holds the simulation engine,
// gate the compositional façade (Tie, Switch, Nor, Not, And, Or, Xor,
// Placeholder, Find, List), blocks the reusable circuit library (latches,
// registers, muxes, adders, memories), and expr a boolean-expression
// compiler that turns an expression string into a live circuit.
//
// Basic usage:
//
//	net := gatesym.NewNetwork()
//	a := gatesym.Switch(net)
//	b := gatesym.Switch(net)
//	sum := gatesym.Xor(a, b)
//	net.Drain()
package gatesym

import (
	"github.com/xDarkicex/gatesym/core"
	"github.com/xDarkicex/gatesym/gate"
)

// Network is the simulation engine: a set of gates plus the pending-work
// queue that Drain resolves to a fixed point.
type Network = core.Network

// Gate is a cheap value handle onto one Network index.
type Gate = gate.Gate

// Placeholder closes feedback loops without a forward reference.
type Placeholder = gate.Placeholder

// NewNetwork creates an empty Network.
func NewNetwork() *Network { return core.NewNetwork() }

// Tie, Switch, Nor, Not, And, Or, Xor, NewPlaceholder, Find and List
// re-export the gate package's façade so simple programs need only import
// the root package.
var (
	Tie            = gate.Tie
	Switch         = gate.Switch
	Nor            = gate.Nor
	Not            = gate.Not
	And            = gate.And
	Or             = gate.Or
	Xor            = gate.Xor
	NewPlaceholder = gate.NewPlaceholder
	Find           = gate.Find
	List           = gate.List
)
