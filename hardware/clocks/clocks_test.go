package clocks_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/hardware/clocks"
	"github.com/elmerucr/E64-SQ/test"
)

func TestDotClock(t *testing.T) {
	test.ExpectEquality(t, clocks.DotClock, 4800000)
}

func TestDivider(t *testing.T) {
	d := clocks.NewDivider(4, 1)

	// three cycles at the faster speed are not enough for a single cycle at
	// the slower speed but the remainder is kept
	test.ExpectEquality(t, d.Clock(3), 0)
	test.ExpectEquality(t, d.Clock(1), 1)
	test.ExpectEquality(t, d.Clock(7), 1)
	test.ExpectEquality(t, d.Clock(1), 1)

	// no cycles are lost over many calls
	d.Reset()
	var total int
	for range 1000 {
		total += d.Clock(511)
	}
	test.ExpectEquality(t, total, 511*1000/4)
}

func TestDividerSIDClock(t *testing.T) {
	d := clocks.NewDivider(clocks.DotClock, clocks.SIDClock)
	var total int
	for range clocks.DotClock / 480 {
		total += d.Clock(480)
	}
	test.ExpectEquality(t, total, clocks.SIDClock)
}
