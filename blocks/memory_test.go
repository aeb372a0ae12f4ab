package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xDarkicex/gatesym/core"
	"github.com/xDarkicex/gatesym/gate"
	"github.com/xDarkicex/gatesym/testutil"
)

func TestMemoryReadWrite(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()
	clock := gate.Switch(net)
	write := gate.Switch(net)
	address := []gate.Gate{gate.Switch(net)}
	dataIn := []gate.Gate{gate.Switch(net), gate.Switch(net)}

	dataOut := Memory(clock, write, address, dataIn, 1)
	a.Len(dataOut, 2)

	pulse := func() {
		clock.Write(true)
		net.Drain()
		clock.Write(false)
		net.Drain()
	}

	// write {true, false} to address 0.
	address[0].Write(false)
	write.Write(true)
	dataIn[0].Write(true)
	dataIn[1].Write(false)
	net.Drain()
	pulse()

	// write {false, true} to address 1.
	address[0].Write(true)
	dataIn[0].Write(false)
	dataIn[1].Write(true)
	net.Drain()
	pulse()

	write.Write(false)
	net.Drain()

	address[0].Write(false)
	net.Drain()
	a.True(dataOut[0].Read())
	a.False(dataOut[1].Read())

	address[0].Write(true)
	net.Drain()
	a.False(dataOut[0].Read())
	a.True(dataOut[1].Read())
}

func TestROMReadsPreloadedData(t *testing.T) {
	a := assert.New(t)
	net := core.NewNetwork()
	clock := gate.Switch(net)
	address := []gate.Gate{gate.Switch(net)}

	out := ROM(clock, address, 2, 1, []int{0x1, 0x2})
	a.Len(out, 2)

	address[0].Write(false)
	net.Drain()
	a.True(out[0].Read())
	a.False(out[1].Read())

	address[0].Write(true)
	net.Drain()
	a.False(out[0].Read())
	a.True(out[1].Read())
}

// TestScenarioS8 preloads a ROM with [7, 2, 5, 3] and checks address 2
// reads back 5, then writes 9 into RAM at address 1 and checks address 0
// still reads 0 while address 1 now reads 9.
func TestScenarioS8(t *testing.T) {
	a := assert.New(t)

	romNet := core.NewNetwork()
	romClock := gate.Switch(romNet)
	romAddress := testutil.NewBinaryIn(romNet, 2)
	romOut := testutil.NewBinaryOut(ROM(romClock, romAddress.Bits(), 3, 2, []int{7, 2, 5, 3}))

	romAddress.Write(2)
	romNet.Drain()
	a.Equal(5, romOut.Read())

	ramNet := core.NewNetwork()
	clock := gate.Switch(ramNet)
	write := gate.Switch(ramNet)
	ramAddress := testutil.NewBinaryIn(ramNet, 1)
	dataIn := testutil.NewBinaryIn(ramNet, 4)
	dataOut := testutil.NewBinaryOut(Memory(clock, write, ramAddress.Bits(), dataIn.Bits(), 1))

	ramAddress.Write(1)
	write.Write(true)
	dataIn.Write(9)
	ramNet.Drain()
	clock.Write(true)
	ramNet.Drain()
	clock.Write(false)
	ramNet.Drain()

	write.Write(false)
	ramNet.Drain()

	ramAddress.Write(0)
	ramNet.Drain()
	a.Equal(0, dataOut.Read())

	ramAddress.Write(1)
	ramNet.Drain()
	a.Equal(9, dataOut.Read())
}
