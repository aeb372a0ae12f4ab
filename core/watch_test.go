package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchAfterLoggingFails(t *testing.T) {
	n := NewNetwork()
	idx := n.AddGate(Switch, "")
	n.Watch(idx, "a", false)
	n.RecordLog()
	assert.Panics(t, func() { n.Watch(idx, "b", false) })
}

func TestRecordLogDedupesConsecutiveRows(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	idx := n.AddGate(Switch, "")
	n.Watch(idx, "a", false)

	n.RecordLog()
	n.RecordLog()
	a.Len(n.log, 1)

	n.Write(idx, true)
	n.RecordLog()
	a.Len(n.log, 2)
}

func TestPrintLogFormat(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	n.Watch(sw, "clk", false)

	n.RecordLog()
	n.Write(sw, true)
	n.RecordLog()

	out := n.PrintLog()
	a.Equal("clk 01\n\n", out)
}

func TestPrintLogNegate(t *testing.T) {
	a := assert.New(t)
	n := NewNetwork()
	sw := n.AddGate(Switch, "")
	n.Watch(sw, "q_", true)

	n.RecordLog()
	n.Write(sw, true)
	n.RecordLog()

	out := n.PrintLog()
	a.Equal("q_ 10\n\n", out)
}
