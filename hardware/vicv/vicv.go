// Package vicv implements the video timing chip. The chip does not draw
// anything itself. It counts cycles of the dot clock, raises an interrupt at
// the start of the vertical blank and flags the end of each frame so that the
// machine can finish the frame with the blitter.
//
// Registers:
//
//	0x00 interrupt status. bit 0 is set at the start of VBLANK. writing bit 0
//	     acknowledges the interrupt
//	0x01 buffer swap. writing bit 0 swaps the front and back framebuffers
package vicv

import (
	"fmt"

	"github.com/elmerucr/E64-SQ/hardware/spec"
)

// register indexes
const (
	RegISR  = 0x00
	RegSwap = 0x01
)

// the cycle counts that mark the beginning of vblank and the end of the frame
const (
	vblankStart = spec.ClksScanline * spec.Height
	frameEnd    = spec.ClksFrame
)

// Line is the chip's connection to the interrupt controller
type Line interface {
	Assert()
	Release()
}

type VICV struct {
	line Line

	// called when the buffer swap register is written to
	swap func()

	registers [2]uint8

	// all cycles in the current frame
	cycleClock int

	// cycles in the current frame that produced a visible pixel
	dotClock int

	frameDone bool

	// suppresses the vblank interrupt while the machine is paused
	Paused bool

	Coords Coords
}

// Create the video timing chip. The swap function is called when the program
// writes to the buffer swap register
func Create(line Line, swap func()) *VICV {
	v := &VICV{
		line: line,
		swap: swap,
	}
	v.Reset()
	return v
}

// Reset clears the registers. The position of the beam is unaffected
func (v *VICV) Reset() {
	v.registers[RegISR] = 0
	v.registers[RegSwap] = 0
}

// Restart moves the beam to the top of a new frame
func (v *VICV) Restart() {
	v.cycleClock = 0
	v.dotClock = 0
	v.frameDone = false
	v.Coords.Reset()
}

func (v *VICV) Label() string {
	return "VICV"
}

func (v *VICV) Status() string {
	return v.String()
}

func (v *VICV) String() string {
	return fmt.Sprintf("%s: %s hblank=%v vblank=%v isr=%02x dots=%d", v.Label(),
		v.Coords.ShortString(), v.HBlank(), v.VBlank(), v.registers[RegISR], v.dotClock)
}

// Run the chip for the number of cycles
func (v *VICV) Run(cycles int) {
	for ; cycles > 0; cycles-- {
		if !v.HBlank() && !v.VBlank() {
			v.dotClock++
		}

		v.cycleClock++

		switch v.cycleClock {
		case vblankStart:
			if !v.Paused {
				v.registers[RegISR] = 0x01
				v.line.Assert()
			}
		case frameEnd:
			v.cycleClock = 0
			v.dotClock = 0
			v.frameDone = true
			v.Coords.Frame++
		}
	}

	v.Coords.Scanline = v.cycleClock / spec.ClksScanline
	v.Coords.Clk = v.cycleClock % spec.ClksScanline
}

// FrameDone returns true once after the end of each frame
func (v *VICV) FrameDone() bool {
	done := v.frameDone
	v.frameDone = false
	return done
}

// HBlank returns true if the beam is in the horizontal blank
func (v *VICV) HBlank() bool {
	return v.cycleClock%spec.ClksScanline >= spec.Width
}

// VBlank returns true if the beam is in the vertical blank
func (v *VICV) VBlank() bool {
	return v.cycleClock >= vblankStart
}

// Scanline returns the current scanline, including the vertical blank
func (v *VICV) Scanline() int {
	return v.cycleClock / spec.ClksScanline
}

// Pixel returns the cycle within the current scanline
func (v *VICV) Pixel() int {
	return v.cycleClock % spec.ClksScanline
}

// Cycles returns the number of cycles into the current frame
func (v *VICV) Cycles() int {
	return v.cycleClock
}

// Dots returns the number of visible pixels produced so far in the frame
func (v *VICV) Dots() int {
	return v.dotClock
}

// CyclesToFrameEnd returns the number of cycles remaining in the frame
func (v *VICV) CyclesToFrameEnd() int {
	return frameEnd - v.cycleClock
}

// CyclesToScanlineEnd returns the number of cycles remaining in the scanline
func (v *VICV) CyclesToScanlineEnd() int {
	return spec.ClksScanline - v.Pixel()
}

// Read implements the memory.Area interface
func (v *VICV) Read(idx uint16) uint8 {
	return v.registers[idx&0x01]
}

// Write implements the memory.Area interface. Writes are mirrored through the
// page in the same way as reads
func (v *VICV) Write(idx uint16, data uint8) {
	switch idx & 0x01 {
	case RegISR:
		if data&0x01 == 0x01 {
			v.registers[RegISR] = 0
			v.line.Release()
		}
	case RegSwap:
		v.registers[RegSwap] = data
		if data&0x01 == 0x01 && v.swap != nil {
			v.swap()
		}
	}
}
