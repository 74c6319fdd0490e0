// Package sound implements the register page of the two SID chips and the
// mixer. Sound is not synthesised. The register file is kept so that programs
// can write to it and the debugger can inspect it, and the chips are clocked
// at their own speed through a frequency divider.
//
// Registers:
//
//	0x00-0x1f first SID
//	0x20-0x3f second SID
//	0x80-0x87 mixer. left and right volume of each SID
package sound

import (
	"fmt"

	"github.com/elmerucr/E64-SQ/hardware/clocks"
)

// offsets of the register blocks
const (
	SID0  = 0x00
	SID1  = 0x20
	Mixer = 0x80
)

// SID register offsets within a block
const (
	RegFreqLo      = 0x00
	RegFreqHi      = 0x01
	RegPulseLo     = 0x02
	RegPulseHi     = 0x03
	RegControl     = 0x04
	RegAttackDecay = 0x05
	RegVolume      = 0x18
)

type Sound struct {
	registers [256]uint8

	// converts system cycles to SID cycles
	divider *clocks.Divider

	// number of SID cycles since reset
	cycles uint64
}

func Create() *Sound {
	s := &Sound{
		divider: clocks.NewDivider(clocks.DotClock, clocks.SIDClock),
	}
	s.Reset()
	return s
}

// Reset the registers to the power on values. Each SID has a pulse voice
// prepared so that a program only needs to gate it
func (s *Sound) Reset() {
	clear(s.registers[:])
	for i := range 8 {
		s.registers[Mixer+i] = 0xff
	}

	s.registers[SID0+RegVolume] = 0x0f
	s.registers[SID1+RegVolume] = 0x0f

	// note d3
	s.registers[SID0+RegFreqLo] = 0xc4
	s.registers[SID0+RegFreqHi] = 0x09
	s.registers[SID0+RegAttackDecay] = 0x09
	s.registers[SID0+RegPulseLo] = 0x0f
	s.registers[SID0+RegPulseHi] = 0x0f
	s.registers[Mixer+0] = 0xff
	s.registers[Mixer+1] = 0x10
	s.registers[SID0+RegControl] = 0x41

	// note a3
	s.registers[SID1+RegFreqLo] = 0xa2
	s.registers[SID1+RegFreqHi] = 0x0e
	s.registers[SID1+RegAttackDecay] = 0x09
	s.registers[SID1+RegPulseLo] = 0x0f
	s.registers[SID1+RegPulseHi] = 0x0f
	s.registers[Mixer+2] = 0x10
	s.registers[Mixer+3] = 0xff
	s.registers[SID1+RegControl] = 0x41

	s.divider.Reset()
	s.cycles = 0
}

func (s *Sound) Label() string {
	return "SID"
}

func (s *Sound) Status() string {
	return s.String()
}

func (s *Sound) String() string {
	return fmt.Sprintf("%s: sid0 freq=%04x ctrl=%02x vol=%x sid1 freq=%04x ctrl=%02x vol=%x cycles=%d",
		s.Label(),
		s.Frequency(SID0), s.registers[SID0+RegControl], s.registers[SID0+RegVolume]&0x0f,
		s.Frequency(SID1), s.registers[SID1+RegControl], s.registers[SID1+RegVolume]&0x0f,
		s.cycles)
}

// Frequency returns the 16 bit frequency value of the SID at the offset
func (s *Sound) Frequency(sid int) uint16 {
	return uint16(s.registers[sid+RegFreqLo]) | uint16(s.registers[sid+RegFreqHi])<<8
}

// Run the sound chips for the number of system cycles. The return value is
// the number of SID cycles that were run
func (s *Sound) Run(cycles int) int {
	n := s.divider.Clock(cycles)
	s.cycles += uint64(n)
	return n
}

// Cycles returns the number of SID cycles run since reset
func (s *Sound) Cycles() uint64 {
	return s.cycles
}

// Read implements the memory.Area interface
func (s *Sound) Read(idx uint16) uint8 {
	return s.registers[idx&0xff]
}

// Write implements the memory.Area interface
func (s *Sound) Write(idx uint16, data uint8) {
	s.registers[idx&0xff] = data
}
