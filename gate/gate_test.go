package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xDarkicex/gatesym/core"
)

func TestTieAndSwitch(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()

	tie := Tie(net, true)
	a.True(tie.Read())

	sw := Switch(net)
	a.False(sw.Read())
	sw.Write(true)
	a.True(sw.Read())
}

func TestNotInvertsAfterDrain(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()
	sw := Switch(net)
	out := Not(sw)

	net.Drain()
	a.True(out.Read())

	sw.Write(true)
	net.Drain()
	a.False(out.Read())
}

func TestAndOrTruthTable(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()
	x := Switch(net)
	y := Switch(net)
	and := And(x, y)
	or := Or(x, y)

	cases := []struct{ x, y, and, or bool }{
		{false, false, false, false},
		{true, false, false, true},
		{false, true, false, true},
		{true, true, true, true},
	}
	for _, c := range cases {
		x.Write(c.x)
		y.Write(c.y)
		net.Drain()
		a.Equal(c.and, and.Read())
		a.Equal(c.or, or.Read())
	}
}

func TestXorTruthTable(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()
	x := Switch(net)
	y := Switch(net)
	xor := Xor(x, y)

	cases := []struct{ x, y, want bool }{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, false},
	}
	for _, c := range cases {
		x.Write(c.x)
		y.Write(c.y)
		net.Drain()
		a.Equal(c.want, xor.Read())
	}
}

func TestPlaceholderReplace(t *testing.T) {
	// A cross-coupled SR latch: q depends on nq and vice versa, so one of
	// the two nor gates must be created as a Placeholder first.
	a := assert.New(t)
	net := core.NewNetwork()
	s := Switch(net)
	r := Switch(net)

	qPlaceholder := NewPlaceholder(net)
	nq := Nor(s, qPlaceholder.Gate)
	q := Nor(r, nq)
	qPlaceholder.Replace(q)

	s.Write(true)
	net.Drain()
	a.True(q.Read())
	a.False(nq.Read())

	s.Write(false)
	r.Write(true)
	net.Drain()
	a.False(q.Read())
	a.True(nq.Read())
}
