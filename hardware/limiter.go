package hardware

import (
	"time"
)

type limiter struct {
	tick  *time.Ticker
	nudge chan bool
}

func newLimiter(hz int) *limiter {
	return &limiter{
		tick:  time.NewTicker(time.Second / time.Duration(hz)),
		nudge: make(chan bool, 1),
	}
}

// Wait for the next tick or for a nudge, whichever comes first
func (l *limiter) Wait() {
	select {
	case <-l.tick.C:
	case <-l.nudge:
	}
}

// Nudge causes the current or next call to Wait() to return immediately
func (l *limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}

func (l *limiter) Stop() {
	l.tick.Stop()
}
