package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elmerucr/E64-SQ/hardware/cpu"
	"github.com/elmerucr/E64-SQ/hardware/spec"
)

// parseStepRule sets the step rule from the arguments to the STEP command.
// Returns false if the rule is not valid
func (m *debugger) parseStepRule(cmd []string) bool {
	coords := &m.machine.VICV.Coords

	rule := strings.ToUpper(cmd[0])
	switch rule {
	case "FRAME", "FR":
		tgt := coords.Frame + 1
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.print(m.styles.err, err.Error())
				return false
			}
			if tgt <= coords.Frame {
				m.printf(m.styles.err, "FRAME %d is in the past", tgt)
				return false
			}
		}
		m.stepRule = func(_ int) bool {
			return coords.Frame >= tgt
		}

	case "SCANLINE", "SL":
		tgt := (coords.Scanline + 1) % spec.Scanlines
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.print(m.styles.err, err.Error())
				return false
			}
			if tgt < 0 || tgt >= spec.Scanlines {
				m.printf(m.styles.err, "SCANLINE %d does not exist", tgt)
				return false
			}
		}
		m.stepRule = func(_ int) bool {
			return coords.Scanline == tgt
		}

	case "INTERRUPT", "INTR":
		// stops after the next interrupt service
		m.stepRule = func(_ int) bool {
			return m.machine.CPU.LastUnit() != cpu.UnitInstruction
		}

	case "CYCLES", "CY":
		if len(cmd) < 2 {
			m.print(m.styles.err, "STEP CYCLES requires a number of cycles")
			return false
		}
		tgt, err := strconv.Atoi(cmd[1])
		if err != nil || tgt <= 0 {
			m.printf(m.styles.err, "STEP CYCLES %s is not valid", cmd[1])
			return false
		}
		var ct int
		m.stepRule = func(n int) bool {
			ct += n
			return ct >= tgt
		}
		m.postStep = func() {
			m.printf(m.styles.debugger, "%d cycles stepped", ct)
			m.status()
		}

	default:
		m.print(m.styles.err, fmt.Sprintf("STEP %s is unsupported", rule))
		return false
	}

	return true
}
