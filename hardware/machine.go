// Package hardware connects the chips of the E64 into a complete machine and
// runs it against the host.
package hardware

import (
	"errors"
	"fmt"
	"image"

	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/hardware/blitter"
	"github.com/elmerucr/E64-SQ/hardware/cia"
	"github.com/elmerucr/E64-SQ/hardware/cpu"
	"github.com/elmerucr/E64-SQ/hardware/exceptions"
	"github.com/elmerucr/E64-SQ/hardware/memory"
	"github.com/elmerucr/E64-SQ/hardware/sound"
	"github.com/elmerucr/E64-SQ/hardware/spec"
	"github.com/elmerucr/E64-SQ/hardware/timer"
	"github.com/elmerucr/E64-SQ/hardware/vicv"
	"github.com/elmerucr/E64-SQ/logger"
	"github.com/elmerucr/E64-SQ/version"
)

// Context allows the machine and its chips to signal a break
type Context interface {
	Break(error)
}

// CyclesPerStep is the number of cycles requested from the CPU by each call
// to Step() made by Run()
const CyclesPerStep = 511

// the descriptor used for the terminal and its position on the screen
const (
	terminalBlit = 0
	terminalX    = 0
	terminalY    = 16
)

// ErrFrame is returned by Step() if the frame could not be finished
var ErrFrame = errors.New("frame")

type Machine struct {
	ctx Context
	g   *gui.GUI

	limit *limiter

	Mem     *memory.Memory
	IC      *exceptions.Controller
	CPU     *cpu.CPU
	Timer   *timer.Timer
	Blitter *blitter.Blitter
	VICV    *vicv.VICV
	CIA     *cia.CIA
	Sound   *sound.Sound

	// whether the machine is paused. the machine can be stepped while paused
	// but Run() will not advance the emulation
	Paused bool

	// blitter statistics for the most recently completed frame
	BlitterBusy  int
	BlitterTotal int
}

// Create a new machine. The GUI can be nil, in which case frames are not
// published and there is no user input
func Create(ctx Context, g *gui.GUI) *Machine {
	m := &Machine{
		ctx:   ctx,
		g:     g,
		limit: newLimiter(spec.FrameRate),
	}

	var addChips memory.AddChips
	m.Mem, addChips = memory.Create()

	m.IC = exceptions.Create()
	m.Blitter = blitter.Create(ctx)
	m.VICV = vicv.Create(m.IC.Connect(), m.Blitter.SwapBuffers)
	m.Timer = timer.Create(m.IC.Connect())
	m.CIA = cia.Create()
	m.Sound = sound.Create()

	addChips(memory.Chips{
		VICV:        m.VICV,
		Blitter:     m.Blitter,
		BlitMemory:  m.Blitter.Indirect,
		Descriptors: m.Blitter.Descriptors,
		Timer:       m.Timer,
		Sound:       m.Sound,
		CIA:         m.CIA,
	})

	m.CPU = cpu.Create(cpu.NewWalker(m.Mem), m.IC, m.Mem.Debug())

	m.Reset()
	return m
}

// AttachCore replaces the CPU core and resets the machine
func (m *Machine) AttachCore(core cpu.Core) {
	m.CPU.Attach(core)
	m.Reset()
}

// Reset all chips and prepare the terminal
func (m *Machine) Reset() {
	logger.Log(logger.Allow, "machine", "reset")

	m.Mem.Reset()
	m.IC.Reset()
	m.Sound.Reset()
	m.Blitter.Reset()
	m.Timer.Reset()
	m.CIA.Reset()
	m.VICV.Reset()
	m.VICV.Restart()
	m.CPU.Reset()

	m.Blitter.SetClearColour(spec.C64Blue)
	m.Blitter.SetBorderColour(spec.C64Black)
	m.Blitter.SetBorderSize(16)

	term := m.Terminal()
	term.Init(blitter.FlagBackground|blitter.FlagColourPerTile|blitter.FlagFont, 0x00, 0x56,
		spec.C64LightBlue, spec.C64Blue)
	term.Clear()
	ver, _, _ := version.Version()
	term.Puts("E64-SQ Virtual Computer System\n")
	term.Printf("version %s\n", ver)
	term.Prompt()
	term.ActivateCursor()
}

// Terminal returns the terminal shown on the screen
func (m *Machine) Terminal() *blitter.Terminal {
	return m.Blitter.Terminal(terminalBlit)
}

func (m *Machine) Label() string {
	return "E64"
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: %s paused=%v", m.Label(), m.VICV.Coords, m.Paused)
}

// SetPaused changes the paused state of the machine. The vertical blank
// interrupt is not raised while the machine is paused
func (m *Machine) SetPaused(paused bool) {
	m.Paused = paused
	m.VICV.Paused = paused
	if m.g != nil {
		if paused {
			m.g.SetState(gui.StatePaused)
		} else {
			m.g.SetState(gui.StateRunning)
		}
	}
}

// Step the machine by the number of cycles. The CPU decides how many cycles
// are actually used and the other chips are run for the same number of
// cycles. The number of cycles used is returned
func (m *Machine) Step(cycles int) (int, error) {
	n := m.CPU.Run(cycles)

	m.VICV.Run(n)
	m.CIA.Run(n)
	m.Timer.Run(n)
	m.Blitter.Run(n)
	m.Sound.Run(n)

	if m.VICV.FrameDone() {
		if err := m.finishFrame(); err != nil {
			return n, err
		}
	}

	return n, nil
}

// Run the machine until the hook function returns an error or a breakpoint
// is reached. While the machine is paused the hook is still called once per
// frame but the emulation does not advance
func (m *Machine) Run(hook func() error) error {
	for {
		if m.Paused {
			m.handleInput()
			m.limit.Wait()
		} else {
			_, err := m.Step(CyclesPerStep)
			if err != nil {
				return err
			}
			if m.CPU.BreakpointReached() {
				return nil
			}
		}

		err := hook()
		if err != nil {
			return err
		}
	}
}

// the work done by the machine at the end of every frame. the blitter is
// given the operations for the next frame and is then run until they are
// complete
func (m *Machine) finishFrame() error {
	m.handleInput()

	m.Blitter.SwapBuffers()
	m.Publish()

	m.BlitterBusy, m.BlitterTotal = m.Blitter.Stats()
	m.Blitter.ResetStats()

	m.Terminal().ProcessCursorState()

	m.Blitter.ClearFramebuffer()
	m.Blitter.DrawBlit(terminalBlit, terminalX, terminalY)
	m.Blitter.DrawBorder()
	if err := m.Blitter.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFrame, err)
	}

	if !m.Paused {
		m.limit.Wait()
	}

	return nil
}

// Image returns the front buffer as an RGBA image
func (m *Machine) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	for i, c := range m.Blitter.Front() {
		img.SetRGBA(i%spec.Width, i/spec.Width, spec.RGBA(c))
	}
	return img
}

// Publish the front buffer to the GUI. The GUI is never waited on
func (m *Machine) Publish() {
	if m.g == nil {
		return
	}
	img := gui.Image{
		Main:   m.Image(),
		Cursor: [2]int{m.VICV.Pixel(), m.VICV.Scanline()},
		Frame:  m.VICV.Coords.Frame,
	}
	select {
	case m.g.SetImage <- img:
	default:
	}
}

// Close stops the frame limiter
func (m *Machine) Close() {
	m.limit.Stop()
}
