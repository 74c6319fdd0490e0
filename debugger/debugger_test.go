package debugger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/elmerucr/E64-SQ/hardware/blitter"
	"github.com/elmerucr/E64-SQ/test"
)

func create(t *testing.T) (*debugger, *test.CompareWriter) {
	t.Helper()
	w := &test.CompareWriter{}
	m := newDebugger(make(chan bool, 1), nil, w, false, false)
	t.Cleanup(m.machine.Close)
	return m, w
}

func contains(t *testing.T, w *test.CompareWriter, s string) {
	t.Helper()
	if !strings.Contains(w.String(), s) {
		t.Errorf("output does not contain %q:\n%s", s, w.String())
	}
}

func TestPeekPoke(t *testing.T) {
	m, w := create(t)

	test.ExpectEquality(t, m.commands([]string{"POKE", "$0200", "$42"}), false)
	contains(t, w, "$0200 = 42 (RAM)")
	test.ExpectEquality(t, m.machine.Mem.Read(0x0200), 0x42)

	w.Clear()
	m.commands([]string{"peek", "0x200"})
	contains(t, w, "$0200 = 42 (RAM)")

	w.Clear()
	m.commands([]string{"POKE", "$0200", "$100"})
	contains(t, w, "value is not valid")

	w.Clear()
	m.commands([]string{"PEEK", "$10000"})
	contains(t, w, "address is not valid")
}

func TestPokeROM(t *testing.T) {
	m, w := create(t)

	// the ROM is unchanged but the RAM underneath is written to
	m.commands([]string{"POKE", "$e000", "$ea"})
	contains(t, w, "$e000 = 4c (ROM)")
	test.ExpectEquality(t, m.machine.Mem.RAM.Read(0xe000), 0xea)
}

func TestDisasm(t *testing.T) {
	m, w := create(t)

	m.commands([]string{"DISASM", "$e000", "1"})
	contains(t, w, "$e000  4c 00 e0  jmp  $e000")

	w.Clear()
	m.commands([]string{"BREAK", "$e000"})
	contains(t, w, "added breakpoint for $e000")
	m.commands([]string{"DISASM"})
	contains(t, w, "$e000  *")
}

func TestBreakpoints(t *testing.T) {
	m, w := create(t)

	m.commands([]string{"BREAK", "$e000"})
	m.commands([]string{"BREAK", "$e010"})
	w.Clear()
	m.commands([]string{"LIST"})
	test.ExpectSuccess(t, w.Compare("breakpoints\n$e000\n$e010\nwatches\nnone\n"))

	m.commands([]string{"BREAK", "$e010"})
	contains(t, w, "breakpoint $e010 has been removed")

	w.Clear()
	m.commands([]string{"RUN"})
	contains(t, w, "breakpoint: $e000")
	test.ExpectEquality(t, m.machine.Paused, true)

	m.commands([]string{"BREAK", "CLEAR"})
	test.ExpectEquality(t, len(m.machine.CPU.Breakpoints()), 0)
}

func TestWatch(t *testing.T) {
	m, w := create(t)

	m.commands([]string{"WATCH", "$d000"})
	contains(t, w, "added watch for $d000 (VICV)")

	// the vertical blank sets the interrupt status register
	w.Clear()
	m.commands([]string{"RUN"})
	contains(t, w, "watch: $d000 = 00 -> 01")
	test.ExpectEquality(t, m.machine.VICV.VBlank(), true)

	m.commands([]string{"WATCH", "DROP", "$d000"})
	contains(t, w, "watch $d000 has been removed")
	test.ExpectEquality(t, len(m.watches), 0)
}

func TestStepRules(t *testing.T) {
	m, w := create(t)

	m.commands([]string{"STEP"})
	contains(t, w, "jmp $e000")

	w.Clear()
	m.commands([]string{"STEP", "CYCLES", "100"})
	contains(t, w, "50 steps")
	contains(t, w, "100 cycles stepped")

	w.Clear()
	m.commands([]string{"STEP", "SCANLINE", "3"})
	test.ExpectEquality(t, m.machine.VICV.Coords.Scanline, 3)

	m.commands([]string{"STEP", "FRAME"})
	test.ExpectEquality(t, m.machine.VICV.Coords.Frame, 1)

	w.Clear()
	m.commands([]string{"STEP", "FRAME", "1"})
	contains(t, w, "FRAME 1 is in the past")

	w.Clear()
	m.commands([]string{"STEP", "SCANLINE", "200"})
	contains(t, w, "SCANLINE 200 does not exist")

	w.Clear()
	m.commands([]string{"STEP", "SIDEWAYS"})
	contains(t, w, "STEP SIDEWAYS is unsupported")
}

func TestPrint(t *testing.T) {
	m, _ := create(t)

	term := m.machine.Terminal()
	row := term.Row()
	m.commands([]string{"PRINT", "hello", "world"})
	test.ExpectEquality(t, term.Row(), row+1)
	test.ExpectEquality(t, term.Column(), 0)
}

func TestPrintBlinkingCursor(t *testing.T) {
	m, _ := create(t)

	term := m.machine.Terminal()
	test.ExpectSuccess(t, term.CursorBlinking())

	pos := term.Row()*term.Columns() + term.Column()
	tile := term.Tile(pos)

	// the first call after the cursor is activated inverts the tile
	term.ProcessCursorState()
	test.ExpectEquality(t, term.Tile(pos), tile^0x80)

	m.commands([]string{"PRINT"})
	test.ExpectEquality(t, term.Tile(pos), tile)
	test.ExpectEquality(t, term.Row(), pos/term.Columns()+1)
	test.ExpectSuccess(t, term.CursorBlinking())
}

func TestChips(t *testing.T) {
	m, w := create(t)

	for _, c := range []string{"BLITTER", "VICV", "TIMER", "IC", "CIA", "SOUND", "CPU"} {
		w.Clear()
		m.commands([]string{c})
		test.ExpectInequality(t, w.String(), "", c)
		if strings.Contains(w.String(), "unrecognised") {
			t.Errorf("%s not recognised", c)
		}
	}

	w.Clear()
	m.commands([]string{"BLIT", "0"})
	contains(t, w, "tiles      $008000")

	w.Clear()
	m.commands([]string{"FOO", "BAR"})
	contains(t, w, "unrecognised command: FOO BAR")
}

func TestLoop(t *testing.T) {
	m, w := create(t)
	v := m.machine.Mem.Read(0x0301)

	go m.read(strings.NewReader("POKE $0300 7\n\nQUIT\nPOKE $0301 $a5\n"))
	m.loop()

	// commands after QUIT are not processed
	test.ExpectEquality(t, m.machine.Mem.Read(0x0300), 7)
	test.ExpectEquality(t, m.machine.Mem.Read(0x0301), v)
	contains(t, w, "jmp $e000")
}

func TestLoopEOF(t *testing.T) {
	m, _ := create(t)

	go m.read(strings.NewReader("POKE $0300 7"))
	m.loop()

	test.ExpectEquality(t, m.machine.Mem.Read(0x0300), 7)
}

func TestContextFilter(t *testing.T) {
	var ctx context

	ctx.Break(fmt.Errorf("%w: swap while busy", blitter.ContextError))
	test.ExpectSuccess(t, ctx.filter())

	ctx.Break(fmt.Errorf("%w: swap while busy", blitter.ContextError))
	ctx.Break(fmt.Errorf("other"))
	test.ExpectFailure(t, ctx.filter())
	test.ExpectSuccess(t, ctx.filter())

	ctx.strict = true
	ctx.Break(fmt.Errorf("%w: swap while busy", blitter.ContextError))
	test.ExpectFailure(t, ctx.filter())
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags([]string{"-nogui", "-strict"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, opts, Options{Strict: true, NoGUI: true})

	_, err = ParseFlags([]string{"game.bin"})
	test.ExpectFailure(t, err)
}
