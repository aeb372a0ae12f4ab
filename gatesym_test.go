package gatesym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriveFluentChain(t *testing.T) {
	a := assert.New(t)
	net := NewNetwork()
	b := Switch(net)
	c := Switch(net)

	b.Write(true)
	c.Write(false)
	result := NewDrive(net, true).And(b).Or(c).Result()
	a.True(result)

	result = NewDrive(net, false).And(b).Not().Result()
	a.True(result)
}

func TestBenchmarkRunsEachCircuit(t *testing.T) {
	a := assert.New(t)
	bench := NewBenchmark()
	bench.Add("and-true-true", func(net *Network) Gate {
		x := Tie(net, true)
		y := Tie(net, true)
		return And(x, y)
	})
	bench.Add("nor-chain", func(net *Network) Gate {
		x := Switch(net)
		return Not(Not(x))
	})
	bench.Run()

	a.Len(bench.Results, 2)
	a.Equal("and-true-true", bench.Results[0].Name)
	a.True(bench.Results[0].Value)
	a.Equal("nor-chain", bench.Results[1].Name)
	a.False(bench.Results[1].Value)
}
