// Package debugger is the interactive monitor for the E64. Commands are read
// from stdin and the machine is stepped or run in response. The monitor owns
// the machine: the GUI only ever receives copies of the screen and sends user
// input through channels.
package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/hardware"
	"github.com/elmerucr/E64-SQ/hardware/cpu"
	"github.com/elmerucr/E64-SQ/logger"
	"github.com/elmerucr/E64-SQ/statsview"
	"golang.org/x/term"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	ctx context
	out io.Writer

	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// closed when the command loop ends
	done chan struct{}

	machine *hardware.Machine
	watches map[uint16]watch

	// rule for stepping. by default (the field is nil) the step will move
	// forward one instruction or interrupt service. the rule is given the
	// number of cycles used by the most recent step
	stepRule func(cycles int) bool
	postStep func()

	// printing styles
	styles styles

	// the prompt is not printed if the input is not a terminal
	prompt bool
}

func newDebugger(guiQuit chan bool, g *gui.GUI, out io.Writer, terminal bool, strict bool) *debugger {
	m := &debugger{
		ctx:     context{strict: strict},
		out:     out,
		guiQuit: guiQuit,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		done:    make(chan struct{}),
		watches: make(map[uint16]watch),
		styles:  newStyles(out, terminal),
		prompt:  terminal,
	}
	m.machine = hardware.Create(&m.ctx, g)
	m.machine.SetPaused(true)
	return m
}

func (m *debugger) print(style lipgloss.Style, s string) {
	fmt.Fprintln(m.out, style.Render(s))
}

func (m *debugger) printf(style lipgloss.Style, format string, a ...any) {
	m.print(style, fmt.Sprintf(format, a...))
}

func (m *debugger) reset() {
	m.ctx.Reset()
	m.machine.Reset()
	m.print(m.styles.debugger, "machine reset")
	m.print(m.styles.cpu, m.machine.CPU.Status())
}

// status prints the CPU state and the state of the most recently written chip
func (m *debugger) status() {
	m.print(m.styles.cpu, m.machine.CPU.Status())
	if s := m.machine.Mem.LastAreaStatus(); len(s) > 0 {
		m.print(m.styles.mem, s)
	}
}

// step advances the emulation one CPU instruction or interrupt service
// according to the current step rule. the step rule will be reset after the
// step has completed
//
// returns true if quit signal has been received
func (m *debugger) step() bool {
	defer func() {
		m.stepRule = nil
		m.postStep = nil
	}()

	// the number of units stepped over
	var ct int

	var done bool
	for !done {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		n, err := m.machine.Step(0)
		ct++
		if err != nil {
			m.print(m.styles.err, err.Error())
			return false
		}

		err = m.ctx.filter()
		if err != nil {
			m.print(m.styles.breakpoint, err.Error())
			return false
		}

		if m.stepRule == nil {
			done = true
		} else {
			done = m.stepRule(n) || m.machine.CPU.BreakpointReached()
		}
	}

	m.machine.Publish()

	if ct > 1 {
		m.printf(m.styles.debugger, "%d steps", ct)
	}

	if m.postStep != nil {
		m.postStep()
		return false
	}

	if u := m.machine.CPU.LastUnit(); u != cpu.UnitInstruction {
		m.printf(m.styles.instruction, "!! %s", u)
	}
	m.status()

	return false
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	m.print(m.styles.debugger, "emulation running")

	// sentinal errors returned by the hook
	var (
		watchErr   = errors.New("watch")
		contextErr = errors.New("context")
		endRunErr  = errors.New("end run")
		quitErr    = errors.New("quit")
	)

	// hook is called after every slice of emulation
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		default:
		}

		err := m.ctx.filter()
		if err != nil {
			return fmt.Errorf("%w%w", contextErr, err)
		}

		if w := m.checkWatches(); w != nil {
			return fmt.Errorf("%w: $%04x = %02x -> %02x", watchErr, w.ma.address, w.prev, w.data)
		}

		return nil
	}

	startFrame := m.machine.VICV.Coords.Frame
	startTime := time.Now()

	m.machine.SetPaused(false)
	err := m.machine.Run(hook)
	m.machine.SetPaused(true)

	if errors.Is(err, quitErr) {
		return true
	}

	m.machine.Publish()

	if errors.Is(err, endRunErr) {
		m.printf(m.styles.debugger, "%d frames in %.02f seconds",
			m.machine.VICV.Coords.Frame-startFrame, time.Since(startTime).Seconds())
	} else if errors.Is(err, watchErr) {
		m.print(m.styles.watch, err.Error())
	} else if errors.Is(err, contextErr) {
		s := strings.TrimPrefix(err.Error(), contextErr.Error())
		m.print(m.styles.err, s)
	} else if err != nil {
		m.print(m.styles.err, err.Error())
	} else if m.machine.CPU.BreakpointReached() {
		m.printf(m.styles.breakpoint, "breakpoint: $%04x", m.machine.CPU.PC())
	}

	// it's useful to see the state of the CPU and the video coords at the end of the run
	m.print(m.styles.cpu, m.machine.CPU.Status())
	m.print(m.styles.video, m.machine.VICV.Coords.String())

	// consume last memory access information
	_ = m.machine.Mem.LastAreaStatus()

	return false
}

func (m *debugger) loop() {
	defer close(m.done)

	for {
		if m.prompt {
			fmt.Fprintf(m.out, "%s> ", m.machine.VICV.Coords.ShortString())
		}

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				if !errors.Is(input.err, io.EOF) {
					m.print(m.styles.err, input.err.Error())
				}
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case <-m.sig:
			fmt.Fprint(m.out, "\r")
			return
		case <-m.guiQuit:
			fmt.Fprint(m.out, "\n")
			return
		}

		if m.commands(cmd) {
			return
		}
	}
}

// read lines from the reader and forward them to the command loop. an error
// is sent when the reader is exhausted
func (m *debugger) read(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for {
		inp := input{err: io.EOF}
		if scanner.Scan() {
			inp = input{s: strings.TrimSpace(scanner.Text())}
		} else if err := scanner.Err(); err != nil {
			inp.err = err
		}

		select {
		case m.input <- inp:
		case <-m.done:
			return
		}

		if inp.err != nil {
			return
		}
	}
}

// Launch the debugger. The GUI can be nil. The guiQuit channel should receive
// a value when the GUI has closed
func Launch(guiQuit chan bool, g *gui.GUI, opts Options) error {
	terminal := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	m := newDebugger(guiQuit, g, os.Stdout, terminal, opts.Strict)
	defer m.machine.Close()

	signal.Notify(m.sig, syscall.SIGINT)
	defer signal.Stop(m.sig)

	if opts.Statsview {
		statsview.Launch(m.out)
	}

	if opts.Profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	go m.read(os.Stdin)

	m.print(m.styles.cpu, m.machine.CPU.Status())
	m.loop()

	return nil
}
