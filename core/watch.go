package core

import (
	"fmt"
	"strings"
)

// Watch registers an output channel sampled by RecordLog. It fails if any
// log row has already been recorded, since a watch list is fixed once
// logging begins.
func (n *Network) Watch(index int, name string, negate bool) {
	n.mustGate("Network.Watch", index)
	if len(n.log) != 0 {
		fail("Network.Watch", "cannot add a watch after recording has begun")
	}
	n.watches = append(n.watches, watchEntry{name: name, index: index, negate: negate})
}

// RecordLog samples every watch and appends a row only if it differs from
// the previously appended row.
func (n *Network) RecordLog() {
	row := make([]bool, len(n.watches))
	for i, w := range n.watches {
		v := n.Read(w.index)
		if w.negate {
			v = !v
		}
		row[i] = v
	}
	if len(n.log) == 0 || !rowsEqual(n.log[len(n.log)-1], row) {
		n.log = append(n.log, row)
	}
}

func rowsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PrintLog renders the recorded log as one line per watch, columns in
// sample order: "<name padded to max width> <bitstring>", with a blank
// line at the end.
func (n *Network) PrintLog() string {
	n.RecordLog()
	if len(n.watches) == 0 {
		return ""
	}

	nameLen := 0
	for _, w := range n.watches {
		if len(w.name) > nameLen {
			nameLen = len(w.name)
		}
	}

	var b strings.Builder
	for i, w := range n.watches {
		fmt.Fprintf(&b, "%-*s ", nameLen, w.name)
		for _, row := range n.log {
			if row[i] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
