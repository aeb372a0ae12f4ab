package core

import "sort"

// AddGate allocates (or reclaims from the free list) an index, installs a
// fresh gate of the given kind carrying cookie (or no cookie if empty),
// initializes its value (true for Nor, false otherwise), and returns the
// index. kind must be one of Tie, Switch, Nor.
func (n *Network) AddGate(kind Kind, cookie string) int {
	if !validKind(kind) {
		fail("Network.AddGate", "invalid gate kind: "+string(kind))
	}

	g := newGateRecord(kind, cookie)
	value := kind == Nor

	if len(n.freeList) > 0 {
		index := n.freeList[len(n.freeList)-1]
		n.freeList = n.freeList[:len(n.freeList)-1]
		n.gates[index] = g
		n.values[index] = value
		return index
	}

	index := len(n.gates)
	n.gates = append(n.gates, g)
	n.values = append(n.values, value)
	return index
}

// RemoveGate marks index empty and pushes it onto the free list. It fails
// if the gate still has any fan-in or fan-out.
func (n *Network) RemoveGate(index int) {
	g := n.mustGate("Network.RemoveGate", index)
	if len(g.inputs) != 0 || len(g.outputs) != 0 {
		failf("Network.RemoveGate", index, "gate still has %d input(s) and %d output(s)", len(g.inputs), len(g.outputs))
	}
	n.gates[index] = nil
	n.freeList = append(n.freeList, index)
	delete(n.pending, index)
}

// AddLink records an edge from src to dst in both multisets (multiplicity
// preserved) and schedules dst for re-evaluation. It fails if dst's kind is
// Tie or Switch.
func (n *Network) AddLink(src, dst int) {
	srcGate := n.mustGate("Network.AddLink", src)
	dstGate := n.mustGate("Network.AddLink", dst)
	if dstGate.kind == Tie || dstGate.kind == Switch {
		failf("Network.AddLink", dst, "cannot link into a %s gate", dstGate.kind)
	}
	srcGate.addOutput(dst)
	dstGate.addInput(src)
	n.pending[dst] = struct{}{}
}

// RemoveLink removes one instance of the edge (src, dst) from each
// endpoint's multiset and schedules dst for re-evaluation.
func (n *Network) RemoveLink(src, dst int) {
	srcGate := n.mustGate("Network.RemoveLink", src)
	dstGate := n.mustGate("Network.RemoveLink", dst)

	var ok1, ok2 bool
	srcGate.outputs, ok1 = removeOne(srcGate.outputs, dst)
	dstGate.inputs, ok2 = removeOne(dstGate.inputs, src)
	if !ok1 || !ok2 {
		failf("Network.RemoveLink", src, "no edge to %d to remove", dst)
	}
	n.pending[dst] = struct{}{}
}

// Read returns the current value of a gate.
func (n *Network) Read(index int) bool {
	n.mustGate("Network.Read", index)
	return n.values[index]
}

// Write sets the value of a gate. If the value changes, every fan-out
// target is scheduled for re-evaluation. Writes to Nor gates are permitted
// and used to force initial conditions on feedback loops.
func (n *Network) Write(index int, value bool) {
	g := n.mustGate("Network.Write", index)
	if n.values[index] == value {
		return
	}
	n.values[index] = value
	for _, dst := range g.outputs {
		n.pending[dst] = struct{}{}
	}
}

// Step snapshots the pending set, clears it, and re-evaluates every gate in
// the snapshot as NOT OR(inputs), in ascending index order. Each new value
// is written to the value table at once, so a gate evaluated later in the
// same step reads it. Gates whose value changes schedule their fan-out into
// a fresh pending set. Step reports whether that fresh pending set is
// non-empty.
func (n *Network) Step() bool {
	snapshot := make([]int, 0, len(n.pending))
	for index := range n.pending {
		snapshot = append(snapshot, index)
	}
	sort.Ints(snapshot)
	n.pending = make(map[int]struct{})

	for _, index := range snapshot {
		g := n.gates[index]
		if g == nil {
			continue
		}
		if g.kind != Nor {
			failf("Network.Step", index, "non-nor gate %s scheduled for evaluation", g.kind)
		}

		result := true
		for _, in := range g.inputs {
			if n.values[in] {
				result = false
				break
			}
		}

		if n.values[index] != result {
			n.values[index] = result
			for _, dst := range g.outputs {
				n.pending[dst] = struct{}{}
			}
		}
	}

	return len(n.pending) > 0
}

// Drain repeatedly calls Step until the pending set is empty, returning the
// number of steps executed (0 if it was already empty on entry).
func (n *Network) Drain() int {
	count := 0
	if len(n.pending) == 0 {
		return count
	}
	count++
	for n.Step() {
		count++
	}
	return count
}

// Outputs returns a copy of index's current fan-out multiset.
func (n *Network) Outputs(index int) []int {
	g := n.mustGate("Network.Outputs", index)
	return append([]int(nil), g.outputs...)
}

// Inputs returns a copy of index's current fan-in multiset.
func (n *Network) Inputs(index int) []int {
	g := n.mustGate("Network.Inputs", index)
	return append([]int(nil), g.inputs...)
}

// AddCookie tags index with an additional construction-path cookie, on top
// of whatever AddGate gave it (or none, if created with an empty cookie).
func (n *Network) AddCookie(index int, cookie string) {
	g := n.mustGate("Network.AddCookie", index)
	g.addCookie(cookie)
}

// HasCookie reports whether index carries the given cookie.
func (n *Network) HasCookie(index int, cookie string) bool {
	g := n.mustGate("Network.HasCookie", index)
	return g.hasCookie(cookie)
}

// Cookies returns the set of cookies tagged on index, in no particular
// order.
func (n *Network) Cookies(index int) []string {
	g := n.mustGate("Network.Cookies", index)
	out := make([]string, 0, len(g.cookies))
	for c := range g.cookies {
		out = append(out, c)
	}
	return out
}

func (n *Network) mustGate(op string, index int) *gateRecord {
	if index < 0 || index >= len(n.gates) || n.gates[index] == nil {
		failf(op, index, "no such live gate")
	}
	return n.gates[index]
}
