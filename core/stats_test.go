package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStats(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	tie := n.AddGate(Tie, "")
	g1 := n.AddGate(Nor, "")
	g2 := n.AddGate(Nor, "")
	n.AddLink(sw, g1)
	n.AddLink(tie, g1)
	n.AddLink(g1, g2)

	stats := n.GetStats()
	a.Equal(4, stats.Size)
	a.Equal(1, stats.ByKind[Switch])
	a.Equal(1, stats.ByKind[Tie])
	a.Equal(2, stats.ByKind[Nor])
}

func TestGetSizeCountsFreedSlots(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Nor, "")
	n.RemoveGate(idx)
	a.Equal(1, n.GetSize())
}

func TestDumpContainsEveryGate(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	n.AddGate(Switch, "")
	n.AddGate(Nor, "")
	out := n.Dump()
	a.Equal(2, strings.Count(out, "\n"))
}

func TestDumpValues(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	nor := n.AddGate(Nor, "")
	n.AddLink(sw, nor)
	n.Drain()

	buf := n.DumpValues(nil, ">", '.', '#', 'o', 'O')
	a.Equal(">o#", string(buf))
}
