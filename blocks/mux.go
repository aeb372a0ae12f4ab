package blocks

import "github.com/xDarkicex/gatesym/gate"

// AddressMatches reports whether the current value on addressLines equals
// addressValue: Nor of the bit that would be high if it didn't match, one
// term per line (the non-inverted line when the target bit is 0, the
// inverted line when it's 1).
func AddressMatches(addressValue int, addressLines, addressLinesNot []gate.Gate) gate.Gate {
	if addressValue >= 1<<len(addressLines) {
		panic("blocks.AddressMatches: addressValue out of range")
	}
	terms := make([]gate.Gate, len(addressLines))
	for i := range addressLines {
		if addressValue&(1<<i) != 0 {
			terms[i] = addressLinesNot[i]
		} else {
			terms[i] = addressLines[i]
		}
	}
	results := gate.Block("address_matches", 0, []gate.Gate{addressLines[0]}, func() []gate.Gate {
		return []gate.Gate{gate.Nor(terms...)}
	})
	return results[0]
}

// AddressDecode breaks address out into limit individual enable lines, one
// high per representable address value. limit defaults to the full range
// (2^len(address)) when <= 0.
func AddressDecode(address []gate.Gate, limit int) []gate.Gate {
	if limit <= 0 {
		limit = 1 << len(address)
	}
	addressNot := invert(address)
	results := gate.Block("address_decode", 0, []gate.Gate{address[0]}, func() []gate.Gate {
		lines := make([]gate.Gate, limit)
		for i := range lines {
			lines[i] = AddressMatches(i, address, addressNot)
		}
		return lines
	})
	return results
}

// BitSwitch selects the bit from data whose matching controlLineNot
// (inverted) is low, i.e. whose control line is asserted; normally exactly
// one control line is high. data is taken inverted as well: the result is
// the complement of the selected data bit.
func BitSwitch(controlLinesNot []gate.Gate, data []gate.Gate) gate.Gate {
	if len(controlLinesNot) < len(data) {
		panic("blocks.BitSwitch: not enough control lines for data")
	}
	terms := make([]gate.Gate, len(data))
	for i, d := range data {
		terms[i] = gate.Nor(controlLinesNot[i], d)
	}
	results := gate.Block("bit_switch", 0, []gate.Gate{data[0]}, func() []gate.Gate {
		return []gate.Gate{gate.Or(terms...)}
	})
	return results[0]
}

// BitMux selects a single bit from data based on address.
func BitMux(address []gate.Gate, data []gate.Gate) gate.Gate {
	if len(data) > 1<<len(address) {
		panic("blocks.BitMux: more data bits than the address can select")
	}
	results := gate.Block("bit_mux", 0, []gate.Gate{address[0]}, func() []gate.Gate {
		control := AddressDecode(address, len(data))
		return []gate.Gate{BitSwitch(invert(control), invert(data))}
	})
	return results[0]
}

// WordSwitchNot is WordSwitch's inverted-data form: every word in dataNot
// is already bit-inverted, while controlLines are passed non-inverted. The
// selected word comes out non-inverted.
func WordSwitchNot(controlLines []gate.Gate, dataNot [][]gate.Gate) []gate.Gate {
	if len(controlLines) < len(dataNot) {
		panic("blocks.WordSwitchNot: not enough control lines for data")
	}
	wordSize := len(dataNot[0])
	for _, w := range dataNot {
		if len(w) != wordSize {
			panic("blocks.WordSwitchNot: mismatched word sizes")
		}
	}
	controlLinesNot := invert(controlLines)
	results := gate.Block("word_switch_", 0, []gate.Gate{controlLines[0]}, func() []gate.Gate {
		out := make([]gate.Gate, wordSize)
		for bit := 0; bit < wordSize; bit++ {
			lines := make([]gate.Gate, len(dataNot))
			for w := range dataNot {
				lines[w] = dataNot[w][bit]
			}
			out[bit] = BitSwitch(controlLinesNot, lines)
		}
		return out
	})
	return results
}

// WordSwitch selects the word(s) matching the enabled control line(s).
func WordSwitch(controlLines []gate.Gate, data [][]gate.Gate) []gate.Gate {
	dataNot := make([][]gate.Gate, len(data))
	for i, w := range data {
		dataNot[i] = invert(w)
	}
	return WordSwitchNot(controlLines, dataNot)
}

// WordMux selects a single word from data based on address.
func WordMux(address []gate.Gate, data [][]gate.Gate) []gate.Gate {
	control := AddressDecode(address, len(data))
	return WordSwitch(control, data)
}
