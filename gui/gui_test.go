package gui_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/test"
)

func TestSetState(t *testing.T) {
	g := gui.NewGUI()

	// the most recent state replaces an uncollected state
	g.SetState(gui.StatePaused)
	g.SetState(gui.StateRunning)
	test.ExpectEquality(t, <-g.State, gui.StateRunning)

	select {
	case s := <-g.State:
		t.Errorf("unexpected state: %s", s)
	default:
	}
}
