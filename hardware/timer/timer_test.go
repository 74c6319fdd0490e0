package timer_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/hardware/clocks"
	"github.com/elmerucr/E64-SQ/hardware/timer"
	"github.com/elmerucr/E64-SQ/test"
)

type line struct {
	active bool
}

func (l *line) Assert() {
	l.active = true
}

func (l *line) Release() {
	l.active = false
}

func TestReset(t *testing.T) {
	var l line
	tmr := timer.Create(&l)

	test.ExpectEquality(t, tmr.Read(0x00), 0x00)
	test.ExpectEquality(t, tmr.Read(0x01), 0x00)
	test.ExpectEquality(t, tmr.Read(0x02), 0x01)
	test.ExpectEquality(t, tmr.Read(0x03), 0x00)
	test.ExpectEquality(t, tmr.Interval(0), 60*clocks.DotClock)

	// registers are mirrored every four bytes
	test.ExpectEquality(t, tmr.Read(0x06), 0x01)
}

func TestInterval(t *testing.T) {
	test.ExpectEquality(t, timer.Interval(60), clocks.DotClock)
	test.ExpectEquality(t, timer.Interval(0), timer.Interval(1))

	// 4800000 * 60 / 7 = 41142857.142...
	test.ExpectEquality(t, timer.Interval(7), 41142857)
}

func TestDisabledChannelsDoNotCount(t *testing.T) {
	var l line
	tmr := timer.Create(&l)
	tmr.Run(1000)
	for i := range timer.NumChannels {
		test.ExpectEquality(t, tmr.Counter(i), 0)
	}
	test.ExpectFailure(t, l.active)
}

func TestRemainder(t *testing.T) {
	var l line
	tmr := timer.Create(&l)

	// 3600 bpm is 60 times a second which is 80000 cycles
	tmr.Set(2, 3600)
	interval := tmr.Interval(2)
	test.DemandEquality(t, interval, 80000)

	tmr.Run(50000)
	test.ExpectFailure(t, l.active)
	test.ExpectEquality(t, tmr.Counter(2), 50000)

	tmr.Run(50000)
	test.ExpectSuccess(t, l.active)
	test.ExpectEquality(t, tmr.Read(0x00), 0x04)

	// the interval is subtracted and the remainder is kept
	test.ExpectEquality(t, tmr.Counter(2), 20000)

	// acknowledge the interrupt
	tmr.Write(0x00, 0x04)
	test.ExpectFailure(t, l.active)
	test.ExpectEquality(t, tmr.Read(0x00), 0x00)

	// no drift over many intervals
	for range 100 {
		tmr.Run(80000)
	}
	test.ExpectEquality(t, tmr.Counter(2), 20000)

	// disabling and re-enabling the channel resets the counter
	tmr.Write(0x01, 0x00)
	tmr.Run(12345)
	test.ExpectEquality(t, tmr.Counter(2), 20000)
	tmr.Write(0x01, 0x04)
	test.ExpectEquality(t, tmr.Counter(2), 0)
}

func TestReenableOnlyAffectsNewChannels(t *testing.T) {
	var l line
	tmr := timer.Create(&l)

	tmr.Set(0, 3600)
	tmr.Run(1000)

	// enabling a second channel does not restart the first
	tmr.Set(1, 7200)
	test.ExpectEquality(t, tmr.Counter(0), 1000)
	test.ExpectEquality(t, tmr.Counter(1), 0)
	test.ExpectEquality(t, tmr.Interval(1), 40000)
	test.ExpectEquality(t, tmr.Read(0x01), 0x03)
}

func TestAcknowledge(t *testing.T) {
	var l line
	tmr := timer.Create(&l)

	tmr.Set(0, 3600)
	tmr.Set(1, 3600)
	tmr.Run(80000)
	test.ExpectEquality(t, tmr.Read(0x00), 0x03)
	test.ExpectSuccess(t, l.active)

	// the line stays asserted until every channel is acknowledged
	tmr.Write(0x00, 0x01)
	test.ExpectEquality(t, tmr.Read(0x00), 0x02)
	test.ExpectSuccess(t, l.active)

	tmr.Write(0x00, 0x02)
	test.ExpectFailure(t, l.active)
}

func TestZeroRate(t *testing.T) {
	var l line
	tmr := timer.Create(&l)
	tmr.Write(0x02, 0x00)
	tmr.Write(0x03, 0x00)
	tmr.Write(0x01, 0x01)
	test.ExpectEquality(t, tmr.Interval(0), timer.Interval(1))
}
