package blocks

import "github.com/xDarkicex/gatesym/gate"

// HalfAdder adds two bits with no carry in, returning (sum, carryOut).
func HalfAdder(a, b gate.Gate) (sum, carryOut gate.Gate) {
	results := gate.Block("half_adder", 0, []gate.Gate{a, b}, func() []gate.Gate {
		return []gate.Gate{gate.Xor(a, b), gate.And(a, b)}
	})
	return results[0], results[1]
}

// FullAdder adds two bits plus a carry in, returning (sum, carryOut).
func FullAdder(a, b, carryIn gate.Gate) (sum, carryOut gate.Gate) {
	results := gate.Block("full_adder", 0, []gate.Gate{a, b, carryIn}, func() []gate.Gate {
		s1, c1 := HalfAdder(a, b)
		s2, c2 := HalfAdder(s1, carryIn)
		return []gate.Gate{s2, gate.Or(c1, c2)}
	})
	return results[0], results[1]
}

// RippleAdd adds two equal-length words, least-significant bit first, plus
// a carry in, returning (sum, carryOut).
func RippleAdd(a, b []gate.Gate, carryIn gate.Gate) (sum []gate.Gate, carryOut gate.Gate) {
	if len(a) != len(b) {
		panic("blocks.RippleAdd: mismatched word lengths")
	}
	results := gate.Block("ripple_add", 0, append(append([]gate.Gate{carryIn}, a...), b...), func() []gate.Gate {
		carry := carryIn
		out := make([]gate.Gate, len(a))
		for i := range a {
			out[i], carry = FullAdder(a[i], b[i], carry)
		}
		return append(out, carry)
	})
	return results[:len(a)], results[len(a)]
}
