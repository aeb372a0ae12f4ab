package core

import (
	"fmt"
	"strings"
)

// KindCount pairs a Kind (and, for the fan-in breakdown, an input count)
// with the number of live gates matching it.
type KindCount struct {
	Kind    Kind
	FanIn   int
	FanInOK bool
	Count   int
}

// Stats summarizes the live contents of a Network.
type Stats struct {
	Size           int
	ByKind         map[Kind]int
	ByKindAndFanIn []KindCount
}

// GetStats reports total size, count by kind, and count by (kind, fan-in).
func (n *Network) GetStats() Stats {
	byKind := make(map[Kind]int)
	byFanIn := make(map[[2]int]int)

	for _, g := range n.gates {
		if g == nil {
			continue
		}
		byKind[g.kind]++
		byFanIn[[2]int{int(kindIndex(g.kind)), len(g.inputs)}]++
	}

	stats := Stats{
		Size:   n.GetSize(),
		ByKind: byKind,
	}
	for key, count := range byFanIn {
		stats.ByKindAndFanIn = append(stats.ByKindAndFanIn, KindCount{
			Kind:    kindFromIndex(key[0]),
			FanIn:   key[1],
			FanInOK: true,
			Count:   count,
		})
	}
	return stats
}

// GetSize returns the total count of all gate slots, live or freed.
func (n *Network) GetSize() int {
	return len(n.gates)
}

func kindIndex(k Kind) int {
	switch k {
	case Tie:
		return 0
	case Switch:
		return 1
	default:
		return 2
	}
}

func kindFromIndex(i int) Kind {
	switch i {
	case 0:
		return Tie
	case 1:
		return Switch
	default:
		return Nor
	}
}

// Dump renders every gate's index, value, kind, and edges, one line per
// gate, to a string — the programmatic equivalent of the teacher's debug
// printers (e.g. classical.Circuit.String).
func (n *Network) Dump() string {
	var b strings.Builder
	for i, g := range n.gates {
		if g == nil {
			fmt.Fprintf(&b, "%d: <empty>\n", i)
			continue
		}
		fmt.Fprintf(&b, "%d: %v %s in=%v out=%v\n", i, n.values[i], g.kind, g.inputs, g.outputs)
	}
	return b.String()
}

// DumpValues appends one glyph per gate's current value to a byte buffer,
// used for visualization by a front end: norLow/norHigh render Nor gates,
// otherLow/otherHigh render Tie/Switch gates. prefix is written first.
func (n *Network) DumpValues(buf []byte, prefix string, norLow, norHigh, otherLow, otherHigh byte) []byte {
	buf = append(buf, prefix...)
	for i, g := range n.gates {
		if g == nil {
			continue
		}
		v := n.values[i]
		if g.kind == Nor {
			if v {
				buf = append(buf, norHigh)
			} else {
				buf = append(buf, norLow)
			}
		} else {
			if v {
				buf = append(buf, otherHigh)
			} else {
				buf = append(buf, otherLow)
			}
		}
	}
	return buf
}
