package blocks

import "github.com/xDarkicex/gatesym/gate"

// tieWord ties width bits to the given integer value, least significant bit
// first. There is no surviving original_source helper for this (gatesym's
// utils.py was not retrieved); it is written directly against its call site
// in ROM below.
func tieWord(clockNetwork gate.Gate, width int, value int) []gate.Gate {
	net := clockNetwork.Network()
	out := make([]gate.Gate, width)
	for i := range out {
		out[i] = gate.Tie(net, value&(1<<i) != 0)
	}
	return out
}

// Memory is a block of read/write RAM. clock, write and address share the
// control lines; the returned data word is as wide as dataIn. size selects
// how many of the low bits of address are decoded into per-register enable
// lines (size == 0 means a single one-register bank, always enabled).
func Memory(clock, write gate.Gate, address []gate.Gate, dataIn []gate.Gate, size int) []gate.Gate {
	results := gate.Block("memory", 0, append(append([]gate.Gate{clock, write}, address...), dataIn...), func() []gate.Gate {
		var controlLines []gate.Gate
		if size == 0 {
			controlLines = []gate.Gate{gate.Tie(clock.Network(), true)}
		} else {
			controlLines = AddressDecode(address[:size], 0)
		}

		dataInNot := invert(dataIn)
		registers := make([][]gate.Gate, len(controlLines))
		for i, line := range controlLines {
			enable := gate.And(line, clock, write)
			registers[i] = Register(dataInNot, enable, true, true)
		}
		return WordSwitchNot(controlLines, registers)
	})
	return results
}

// ROM is a block of read-only memory preloaded with data: reading address i
// returns data[i] (or all-zero if i is out of range and size covers it). It
// has no clock or write input of its own; the clock gate passed in is only
// used as a handle onto the Network to tie the constant data words.
func ROM(clock gate.Gate, address []gate.Gate, dataWidth int, size int, data []int) []gate.Gate {
	results := gate.Block("rom", 0, append([]gate.Gate{clock}, address...), func() []gate.Gate {
		controlLines := AddressDecode(address[:size], len(data))
		ties := make([][]gate.Gate, len(data))
		for i, d := range data {
			ties[i] = tieWord(clock, dataWidth, d)
		}
		return WordSwitch(controlLines, ties)
	})
	return results
}
