package clocks

import "github.com/elmerucr/E64-SQ/hardware/spec"

const Mhz = 1000000

// DotClock is the speed of the video timing chip. It is also the speed of the
// system clock that drives the CPU
const DotClock = spec.ClksFrame * spec.FrameRate // 4.8Mhz

// SIDClock is the speed of the sound chips
const SIDClock = 985248

// Divider converts a number of cycles at one clock speed to the number of
// cycles at another clock speed. The remainder of each conversion is carried
// forward so that no cycles are lost over many calls
type Divider struct {
	from      uint64
	to        uint64
	remainder uint64
}

// NewDivider creates a Divider for the two clock speeds
func NewDivider(from uint64, to uint64) *Divider {
	return &Divider{
		from: from,
		to:   to,
	}
}

// Clock returns the number of cycles at the target speed that correspond to
// the number of cycles at the source speed
func (d *Divider) Clock(cycles int) int {
	if cycles <= 0 {
		return 0
	}
	n := uint64(cycles)*d.to + d.remainder
	d.remainder = n % d.from
	return int(n / d.from)
}

// Reset removes any remainder carried from previous calls
func (d *Divider) Reset() {
	d.remainder = 0
}
