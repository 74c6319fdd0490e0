package hardware

import (
	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/hardware/cia"
	"github.com/elmerucr/E64-SQ/logger"
)

func (m *Machine) handleInput() {
	if m.g == nil {
		return
	}

	for {
		select {
		default:
			return
		case inp := <-m.g.UserInput:
			m.input(inp)
		}
	}
}

func (m *Machine) input(inp gui.Input) {
	switch inp.Action {
	case gui.KeyPress:
		if k, ok := inp.Data.(cia.Scancode); ok {
			m.CIA.Press(k)
		}
	case gui.KeyRelease:
		if k, ok := inp.Data.(cia.Scancode); ok {
			m.CIA.Release(k)
		}
	case gui.Reset:
		m.Reset()
	case gui.Pause:
		m.SetPaused(!m.Paused)
		logger.Logf(logger.Allow, "machine", "paused: %v", m.Paused)

		// a paused machine waits on the limiter so release it immediately
		// to make the change of state responsive
		m.limit.Nudge()
	}
}
