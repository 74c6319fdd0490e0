// Package timer implements the eight channel timer unit. Each channel counts
// cycles of the dot clock and asserts the timer's interrupt line when its
// interval has elapsed.
//
// Registers:
//
//	0x00 status. a set bit indicates the channel caused an interrupt. writing
//	     a set bit acknowledges the interrupt for that channel
//	0x01 control. a set bit enables the channel
//	0x02 rate in beats per minute, low byte
//	0x03 rate in beats per minute, high byte
package timer

import (
	"fmt"
	"math"
	"strings"

	"github.com/elmerucr/E64-SQ/hardware/clocks"
)

const (
	regStatus  = 0x00
	regControl = 0x01
	regRateLo  = 0x02
	regRateHi  = 0x03
)

// NumChannels is the number of channels in the timer unit
const NumChannels = 8

// Line is the timer's connection to the interrupt controller
type Line interface {
	Assert()
	Release()
}

type channel struct {
	bpm      uint16
	interval uint64
	counter  uint64
}

// Timer is the timer unit
type Timer struct {
	line      Line
	registers [4]uint8
	channels  [NumChannels]channel
}

// Create a Timer connected to the interrupt line
func Create(line Line) *Timer {
	tmr := &Timer{
		line: line,
	}
	tmr.Reset()
	return tmr
}

// Interval converts a rate in beats per minute to a number of dot clock cycles.
// A bpm value of zero is treated as one
func Interval(bpm uint16) uint64 {
	if bpm == 0 {
		bpm = 1
	}
	return uint64(math.Round(60.0 / float64(bpm) * clocks.DotClock))
}

func (tmr *Timer) Reset() {
	tmr.registers[regStatus] = 0x00
	tmr.registers[regControl] = 0x00

	// the rate may never be zero
	tmr.registers[regRateLo] = 0x01
	tmr.registers[regRateHi] = 0x00

	for i := range tmr.channels {
		tmr.channels[i].bpm = tmr.rate()
		tmr.channels[i].interval = Interval(tmr.channels[i].bpm)
		tmr.channels[i].counter = 0
	}

	tmr.line.Release()
}

func (tmr *Timer) rate() uint16 {
	return uint16(tmr.registers[regRateLo]) | uint16(tmr.registers[regRateHi])<<8
}

func (tmr *Timer) Label() string {
	return "Timer"
}

func (tmr *Timer) Status() string {
	return fmt.Sprintf("%s: status=%08b control=%08b rate=%d", tmr.Label(),
		tmr.registers[regStatus], tmr.registers[regControl], tmr.rate())
}

func (tmr *Timer) String() string {
	var s strings.Builder
	s.WriteString(tmr.Status())
	for i := range tmr.channels {
		s.WriteString("\n")
		s.WriteString(tmr.ChannelStatus(i))
	}
	return s.String()
}

// ChannelStatus returns a single line summary of the channel
func (tmr *Timer) ChannelStatus(channel int) string {
	channel &= NumChannels - 1
	ch := tmr.channels[channel]
	on := tmr.registers[regControl]&(1<<channel) != 0
	return fmt.Sprintf("%02x: %5d/%8d on=%v", channel, ch.bpm, ch.counter, on)
}

// Counter returns the current counter value for the channel
func (tmr *Timer) Counter(channel int) uint64 {
	return tmr.channels[channel&(NumChannels-1)].counter
}

// Interval returns the current interval for the channel
func (tmr *Timer) Interval(channel int) uint64 {
	return tmr.channels[channel&(NumChannels-1)].interval
}

// Run advances every enabled channel by the number of cycles
func (tmr *Timer) Run(cycles int) {
	if cycles <= 0 {
		return
	}
	for i := range tmr.channels {
		if tmr.registers[regControl]&(1<<i) == 0 {
			continue
		}
		ch := &tmr.channels[i]
		ch.counter += uint64(cycles)
		if ch.counter >= ch.interval {
			ch.counter -= ch.interval
			tmr.registers[regStatus] |= 1 << i
			tmr.line.Assert()
		}
	}
}

func (tmr *Timer) Read(idx uint16) uint8 {
	return tmr.registers[idx&0x03]
}

func (tmr *Timer) Write(idx uint16, data uint8) {
	switch idx & 0x03 {
	case regStatus:
		// a set bit acknowledges the interrupt for the channel
		tmr.registers[regStatus] = ^data & tmr.registers[regStatus]
		if tmr.registers[regStatus] == 0 {
			tmr.line.Release()
		}
	case regControl:
		turnedOn := data &^ tmr.registers[regControl]
		for i := range tmr.channels {
			if turnedOn&(1<<i) != 0 {
				ch := &tmr.channels[i]
				ch.bpm = tmr.rate()
				if ch.bpm == 0 {
					ch.bpm = 1
				}
				ch.interval = Interval(ch.bpm)
				ch.counter = 0
			}
		}
		tmr.registers[regControl] = data
	default:
		tmr.registers[idx&0x03] = data
	}
}

// Set enables the channel with the specified rate
func (tmr *Timer) Set(channel int, bpm uint16) {
	channel &= NumChannels - 1
	tmr.Write(regRateLo, uint8(bpm))
	tmr.Write(regRateHi, uint8(bpm>>8))
	tmr.Write(regControl, tmr.Read(regControl)|(1<<channel))
}
