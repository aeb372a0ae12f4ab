// Package blocks is the reusable circuit library: latches and flip-flops,
// registers, address decoding and multiplexers, adders, and memories, all
// built from the gate package's façade.
package blocks

import "github.com/xDarkicex/gatesym/gate"

// GatedDLatch passes data through while clock is high and holds it while
// clock is low. Returns (q, notQ). The feedback loop between q and its own
// complement is closed with a Placeholder, since neither gate can be built
// before the other exists.
func GatedDLatch(dataNot, clockNot gate.Gate) (q, qNot gate.Gate) {
	results := gate.Block("gated_d_latch", 0, []gate.Gate{dataNot, clockNot}, func() []gate.Gate {
		s := gate.Nor(dataNot, clockNot)
		r := gate.Nor(s, clockNot)
		qPlaceholder := gate.NewPlaceholder(dataNot.Network())
		q := gate.Nor(qPlaceholder.Gate, r)
		qNot := gate.Nor(q, s)
		qPlaceholder.Replace(qNot)
		q.Write(false)
		return []gate.Gate{q, qNot}
	})
	return results[0], results[1]
}

// MSDFlop is a master-slave flip-flop built from two gated D latches on
// complementary clocks: data is captured on clockNot's falling edge and
// released on clock's falling edge, giving edge-triggered behavior from
// level-triggered latches. Returns (q, notQ).
func MSDFlop(dataNot, clock, clockNot gate.Gate) (q, qNot gate.Gate) {
	results := gate.Block("ms_d_flop", 0, []gate.Gate{dataNot, clock, clockNot}, func() []gate.Gate {
		latch, latchNot := GatedDLatch(dataNot, clockNot)
		_ = latch
		res, resNot := GatedDLatch(latchNot, clock)
		return []gate.Gate{res, resNot}
	})
	return results[0], results[1]
}

// Register is a bank of MSDFlops sharing a clock line. By default data is
// sampled active-high and returns the non-inverted output; negateIn treats
// data as already inverted (skipping the input Not), and negateOut returns
// each flop's complemented output instead.
func Register(data []gate.Gate, clock gate.Gate, negateIn, negateOut bool) []gate.Gate {
	args := append([]gate.Gate{clock}, data...)
	results := gate.Block("register", 0, args, func() []gate.Gate {
		clockNot := gate.Not(clock)
		dataNot := data
		if !negateIn {
			dataNot = invert(data)
		}
		out := make([]gate.Gate, len(dataNot))
		for i, bit := range dataNot {
			d, dNot := MSDFlop(bit, clock, clockNot)
			if negateOut {
				out[i] = dNot
			} else {
				out[i] = d
			}
		}
		return out
	})
	return results
}

// invert returns Not(x) for every gate in bits.
func invert(bits []gate.Gate) []gate.Gate {
	out := make([]gate.Gate, len(bits))
	for i, b := range bits {
		out[i] = gate.Not(b)
	}
	return out
}
