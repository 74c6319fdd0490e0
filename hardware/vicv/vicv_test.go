package vicv_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/hardware/exceptions"
	"github.com/elmerucr/E64-SQ/hardware/spec"
	"github.com/elmerucr/E64-SQ/hardware/vicv"
	"github.com/elmerucr/E64-SQ/test"
)

func TestVBlankInterrupt(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)

	v.Run(spec.ClksScanline*spec.Height - 1)
	test.ExpectFailure(t, ic.IRQ())
	test.ExpectFailure(t, v.VBlank())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 0)

	v.Run(1)
	test.ExpectSuccess(t, ic.IRQ())
	test.ExpectSuccess(t, v.VBlank())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 1)
	test.ExpectEquality(t, v.Scanline(), spec.Height)

	// acknowledge
	v.Write(vicv.RegISR, 0x01)
	test.ExpectFailure(t, ic.IRQ())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 0)
}

func TestAcknowledgeRequiresBit0(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)
	v.Run(spec.ClksScanline * spec.Height)
	test.ExpectSuccess(t, ic.IRQ())

	v.Write(vicv.RegISR, 0xfe)
	test.ExpectSuccess(t, ic.IRQ())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 1)
}

func TestFrameDone(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)

	v.Run(spec.ClksFrame - 1)
	test.ExpectFailure(t, v.FrameDone())
	test.ExpectEquality(t, v.CyclesToFrameEnd(), 1)

	v.Run(1)
	test.ExpectSuccess(t, v.FrameDone())

	// the flag is consumed
	test.ExpectFailure(t, v.FrameDone())

	test.ExpectEquality(t, v.Cycles(), 0)
	test.ExpectEquality(t, v.Coords.Frame, 1)
	test.ExpectEquality(t, v.Coords.ShortString(), "1/000/000")
}

func TestDots(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)

	// one complete scanline produces one line of visible pixels
	v.Run(spec.ClksScanline)
	test.ExpectEquality(t, v.Dots(), spec.Width)
	test.ExpectEquality(t, v.Scanline(), 1)
	test.ExpectEquality(t, v.Pixel(), 0)

	v.Run(spec.ClksScanline*spec.Height - spec.ClksScanline)
	test.ExpectEquality(t, v.Dots(), spec.TotalPixels)

	// no visible pixels during vblank
	v.Run(spec.ClksScanline)
	test.ExpectEquality(t, v.Dots(), spec.TotalPixels)
}

func TestHBlank(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)

	v.Run(spec.Width - 1)
	test.ExpectFailure(t, v.HBlank())
	v.Run(1)
	test.ExpectSuccess(t, v.HBlank())
	test.ExpectEquality(t, v.CyclesToScanlineEnd(), spec.HBlank)
	v.Run(spec.HBlank)
	test.ExpectFailure(t, v.HBlank())
	test.ExpectEquality(t, v.Coords.Scanline, 1)
	test.ExpectEquality(t, v.Coords.Clk, 0)
}

func TestPaused(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)
	v.Paused = true

	v.Run(spec.ClksFrame)
	test.ExpectFailure(t, ic.IRQ())
	test.ExpectSuccess(t, v.FrameDone())
}

func TestSwapRegister(t *testing.T) {
	var swaps int
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), func() { swaps++ })

	v.Write(vicv.RegSwap, 0x00)
	test.ExpectEquality(t, swaps, 0)
	v.Write(vicv.RegSwap, 0x01)
	test.ExpectEquality(t, swaps, 1)
	test.ExpectEquality(t, v.Read(vicv.RegSwap), 0x01)

	// registers are mirrored through the page
	test.ExpectEquality(t, v.Read(0x03), 0x01)
}

func TestMirroredWrite(t *testing.T) {
	ic := exceptions.Create()
	v := vicv.Create(ic.Connect(), nil)
	v.Run(spec.ClksScanline * spec.Height)
	test.ExpectSuccess(t, ic.IRQ())

	// a mirror of the status register does not clear the status without
	// acknowledging the interrupt
	v.Write(0x02, 0x00)
	test.ExpectSuccess(t, ic.IRQ())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 1)

	v.Write(0x02, 0x01)
	test.ExpectFailure(t, ic.IRQ())
	test.ExpectEquality(t, v.Read(vicv.RegISR), 0)
}
