package debugger

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/elmerucr/E64-SQ/hardware/blitter"
	"github.com/elmerucr/E64-SQ/logger"
)

// the number of instructions disassembled by DISASM if no count is given
const disasmCount = 8

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "R", "RUN":
		return m.run()

	case "ST", "STEP":
		if len(cmd) > 1 {
			if !m.parseStepRule(cmd[1:]) {
				break // switch
			}
		}
		return m.step()

	case "RESET":
		m.reset()

	case "CPU":
		m.print(m.styles.cpu, m.machine.CPU.String())
		m.printf(m.styles.cpu, "saldo=%d last=%s", m.machine.CPU.Saldo(), m.machine.CPU.LastUnit())

	case "DISASM", "D":
		address := m.machine.CPU.PC()
		n := disasmCount

		if len(cmd) > 1 {
			a, err := parseValue(cmd[1], 16)
			if err != nil {
				m.printf(m.styles.err, "disasm: address is not valid: %s", cmd[1])
				break // switch
			}
			address = uint16(a)
		}
		if len(cmd) > 2 {
			var err error
			n, err = strconv.Atoi(cmd[2])
			if err != nil || n <= 0 {
				m.printf(m.styles.err, "disasm: count is not valid: %s", cmd[2])
				break // switch
			}
		}

		for range n {
			e := m.machine.CPU.DisassembleEntry(address)
			s := e.String()
			if m.machine.CPU.Breakpoint(address) {
				s = fmt.Sprintf("%s  *", s)
			}
			m.print(m.styles.instruction, s)
			address += uint16(e.Length)
		}

	case "BREAK", "B":
		if len(cmd) < 2 {
			m.print(m.styles.err, "BREAK requires an address")
			break // switch
		}

		if strings.ToUpper(cmd[1]) == "CLEAR" {
			m.machine.CPU.ClearBreakpoints()
			m.print(m.styles.debugger, "all breakpoints removed")
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "breakpoint: %s", err.Error())
			break // switch
		}

		if m.machine.CPU.ToggleBreakpoint(ma.address) {
			m.printf(m.styles.debugger, "added breakpoint for $%04x", ma.address)
		} else {
			m.printf(m.styles.debugger, "breakpoint $%04x has been removed", ma.address)
		}

	case "WATCH", "W":
		if len(cmd) < 2 {
			m.print(m.styles.err, "WATCH requires an address")
			break // switch
		}

		// we check the first argument for special keywords before assuming
		// it is an address. the keywords are case insensitive
		if strings.ToUpper(cmd[1]) == "DROP" {
			if len(cmd) < 3 {
				m.print(m.styles.err, "WATCH DROP requires an address")
				break // switch
			}

			if strings.ToUpper(cmd[2]) == "ALL" {
				clear(m.watches)
				m.print(m.styles.debugger, "all watches removed")
				break // switch
			}

			ma, err := m.parseAddress(cmd[2])
			if err != nil {
				m.printf(m.styles.err, "watch: %s", err.Error())
				break // switch
			}
			if _, ok := m.watches[ma.address]; !ok {
				m.printf(m.styles.debugger, "watch for $%04x not present", ma.address)
				break // switch
			}
			delete(m.watches, ma.address)
			m.printf(m.styles.debugger, "watch $%04x has been removed", ma.address)
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "watch: %s", err.Error())
			break // switch
		}

		if _, ok := m.watches[ma.address]; ok {
			m.printf(m.styles.err, "watch for $%04x already present", ma.address)
			break // switch
		}

		m.watches[ma.address] = watch{
			ma:   ma,
			data: ma.peek(),
		}
		m.printf(m.styles.debugger, "added watch for $%04x (%s)", ma.address, ma.area.Label())

	case "LIST":
		m.print(m.styles.debugger, "breakpoints")
		if b := m.machine.CPU.Breakpoints(); len(b) == 0 {
			fmt.Fprintln(m.out, "none")
		} else {
			for _, a := range b {
				fmt.Fprintf(m.out, "$%04x\n", a)
			}
		}
		m.print(m.styles.debugger, "watches")
		if len(m.watches) == 0 {
			fmt.Fprintln(m.out, "none")
		} else {
			var l []uint16
			for a := range m.watches {
				l = append(l, a)
			}
			slices.Sort(l)
			for _, a := range l {
				fmt.Fprintf(m.out, "$%04x\n", a)
			}
		}

	case "PEEK":
		if len(cmd) < 2 {
			m.print(m.styles.err, "PEEK requires an address")
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "peek: %s", err.Error())
			break // switch
		}

		m.printf(m.styles.mem, "$%04x = %02x (%s)", ma.address, ma.peek(), ma.area.Label())

	case "POKE":
		if len(cmd) < 3 {
			m.print(m.styles.err, "POKE requires an address and a value")
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "poke: %s", err.Error())
			break // switch
		}

		v, err := parseValue(cmd[2], 8)
		if err != nil {
			m.printf(m.styles.err, "poke: value is not valid: %s", cmd[2])
			break // switch
		}

		// writes go through the bus so that writes to the ROM range reach
		// the RAM underneath
		m.machine.Mem.Write(ma.address, uint8(v))
		m.printf(m.styles.mem, "$%04x = %02x (%s)", ma.address, ma.peek(), ma.area.Label())

	case "DUMP":
		if len(cmd) < 3 {
			m.print(m.styles.err, "DUMP requires a 'from' and a 'to' address")
			break // switch
		}

		from, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "dump: %s", err.Error())
			break // switch
		}

		to, err := m.parseAddress(cmd[2])
		if err != nil {
			m.printf(m.styles.err, "dump: %s", err.Error())
			break // switch
		}

		if to.address < from.address {
			m.print(m.styles.err, "dump: the 'to' address is less than the 'from' address")
			break // switch
		}

		var s strings.Builder
		var column int
		for a := int(from.address); a <= int(to.address); a++ {
			if column == 0 {
				fmt.Fprintf(&s, "%04x", a)
			}
			fmt.Fprintf(&s, " %02x", m.machine.Mem.Peek(uint16(a)))

			column++
			if column > 15 {
				s.WriteString("\n")
				column = 0
			}
		}
		if column != 0 {
			s.WriteString("\n")
		}
		fmt.Fprint(m.out, s.String())

	case "BLITTER":
		m.print(m.styles.video, m.machine.Blitter.String())
		m.printf(m.styles.video, "last frame: busy=%d total=%d",
			m.machine.BlitterBusy, m.machine.BlitterTotal)

	case "BLIT":
		if len(cmd) < 2 {
			m.print(m.styles.err, "BLIT requires a descriptor number")
			break // switch
		}

		n, err := parseValue(cmd[1], 8)
		if err != nil {
			m.printf(m.styles.err, "blit: descriptor is not valid: %s", cmd[1])
			break // switch
		}

		d := m.machine.Blitter.Descriptor(uint8(n))
		m.printf(m.styles.video, "%02x: %s", n, d.String())
		for _, r := range []blitter.Region{blitter.RegionTiles, blitter.RegionForeground,
			blitter.RegionBackground, blitter.RegionPixels} {
			m.printf(m.styles.video, "%-10s $%06x", r, r.Base(uint8(n)))
		}

	case "VICV", "VIDEO":
		m.print(m.styles.video, m.machine.VICV.String())

	case "TIMER":
		m.print(m.styles.chip, m.machine.Timer.String())

	case "IC":
		m.print(m.styles.chip, m.machine.IC.String())

	case "CIA":
		m.print(m.styles.chip, m.machine.CIA.String())

	case "SOUND", "SID":
		m.print(m.styles.chip, m.machine.Sound.String())

	case "PRINT":
		// the tile under a blinking cursor may be inverted. it must be
		// restored before the cursor moves
		term := m.machine.Terminal()
		blinking := term.CursorBlinking()
		if blinking {
			term.DeactivateCursor()
		}
		term.Puts(strings.Join(cmd[1:], " "))
		term.Puts("\n")
		if blinking {
			term.ActivateCursor()
		}

	case "MEMVIZ":
		if len(cmd) < 3 {
			m.print(m.styles.err, "MEMVIZ requires a chip and a filename")
			break // switch
		}

		var v any
		switch strings.ToUpper(cmd[1]) {
		case "IC":
			v = m.machine.IC
		case "TIMER":
			v = m.machine.Timer
		case "VICV":
			v = &m.machine.VICV.Coords
		case "CIA":
			v = m.machine.CIA
		case "SOUND":
			v = m.machine.Sound
		case "CPU":
			v = m.machine.CPU.Registers()
		default:
			m.printf(m.styles.err, "memviz: unsupported chip: %s", cmd[1])
			break // switch
		}
		if v == nil {
			break // switch
		}

		f, err := os.Create(cmd[2])
		if err != nil {
			m.printf(m.styles.err, "memviz: %s", err.Error())
			break // switch
		}
		memviz.Map(f, v)
		err = f.Close()
		if err != nil {
			m.printf(m.styles.err, "memviz: %s", err.Error())
			break // switch
		}
		m.printf(m.styles.debugger, "memory graph written to %s", cmd[2])

	case "LOG":
		if len(cmd) > 1 {
			switch strings.ToUpper(cmd[1]) {
			case "ECHO":
				logger.SetEcho(m.out)
			case "NOECHO":
				logger.SetEcho(nil)
			case "CLEAR":
				logger.Clear()
			default:
				m.printf(m.styles.err, "unrecognised argument for LOG command: %s", cmd[1])
			}
			break // switch
		}
		logger.Write(m.out)

	case "QUIT", "Q":
		return true

	default:
		m.printf(m.styles.err, "unrecognised command: %s", strings.Join(cmd, " "))
	}

	return false
}
