package cpu_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/hardware/cpu"
	"github.com/elmerucr/E64-SQ/hardware/exceptions"
	"github.com/elmerucr/E64-SQ/test"
)

// core is a scripted Core. every instruction advances the PC by one byte and
// takes the same number of cycles
type core struct {
	regs   cpu.Registers
	cycles int

	steps int
	irqs  int
	nmis  int
}

func (c *core) Reset() {
	c.regs = cpu.Registers{PC: 0x1000, SP: 0xfd}
}

func (c *core) Step() int {
	c.steps++
	c.regs.PC++
	return c.cycles
}

func (c *core) ServiceIRQ() {
	c.irqs++
	c.regs.PC = 0x8000
	c.regs.Status |= cpu.FlagInterrupt
}

func (c *core) ServiceNMI() {
	c.nmis++
	c.regs.PC = 0x9000
	c.regs.Status |= cpu.FlagInterrupt
}

func (c *core) Registers() *cpu.Registers {
	return &c.regs
}

type lines struct {
	irq bool
	nmi bool
}

func (l *lines) IRQ() bool {
	return l.irq
}

func (l *lines) NMIActive() bool {
	return l.nmi
}

type mem [0x10000]uint8

func (m *mem) Read(address uint16) uint8 {
	return m[address]
}

func (m *mem) Write(address uint16, data uint8) {
	m[address] = data
}

func create(cycles int) (*cpu.CPU, *core, *lines) {
	c := &core{cycles: cycles}
	l := &lines{}
	mc := cpu.Create(c, l, &mem{})
	mc.Reset()
	return mc, c, l
}

func TestRunZero(t *testing.T) {
	mc, c, l := create(3)

	// a request of zero cycles performs exactly one instruction
	test.ExpectEquality(t, mc.Run(0), 3)
	test.ExpectEquality(t, c.steps, 1)
	test.ExpectEquality(t, mc.LastUnit(), cpu.UnitInstruction)

	// or exactly one interrupt service
	l.irq = true
	test.ExpectEquality(t, mc.Run(0), cpu.InterruptCycles)
	test.ExpectEquality(t, c.steps, 1)
	test.ExpectEquality(t, c.irqs, 1)
	test.ExpectEquality(t, mc.LastUnit(), cpu.UnitIRQ)
}

func TestSaldo(t *testing.T) {
	mc, c, _ := create(3)

	// 3, 6, 9, 12
	test.ExpectEquality(t, mc.Run(10), 12)
	test.ExpectEquality(t, c.steps, 4)
	test.ExpectEquality(t, mc.Saldo(), -2)

	// the overspend is taken from the next request: 3, 6, 9
	test.ExpectEquality(t, mc.Run(10), 9)
	test.ExpectEquality(t, c.steps, 7)
	test.ExpectEquality(t, mc.Saldo(), -1)

	// no drift over many calls
	var total int
	for range 1000 {
		total += mc.Run(10)
	}
	test.ExpectEquality(t, total+mc.Saldo(), 10000-1)
}

func TestIRQMasked(t *testing.T) {
	mc, c, l := create(2)

	l.irq = true
	mc.SetSR(cpu.FlagInterrupt)
	mc.Run(0)
	test.ExpectEquality(t, c.irqs, 0)
	test.ExpectEquality(t, c.steps, 1)

	mc.SetSR(0)
	mc.Run(0)
	test.ExpectEquality(t, c.irqs, 1)
	test.ExpectEquality(t, mc.PC(), 0x8000)

	// the handler has set the interrupt disable flag
	mc.Run(0)
	test.ExpectEquality(t, c.irqs, 1)
	test.ExpectEquality(t, c.steps, 2)
}

func TestIRQNotLatched(t *testing.T) {
	c := &core{cycles: 2}
	ic := exceptions.Create()
	mc := cpu.Create(c, ic, &mem{})
	mc.Reset()
	line := ic.Connect()

	// a pin released before the CPU samples the lines is lost
	line.Assert()
	line.Release()
	mc.SetSR(0)
	mc.Run(0)
	test.ExpectEquality(t, c.irqs, 0)
	test.ExpectEquality(t, c.steps, 1)

	line.Assert()
	mc.Run(0)
	test.ExpectEquality(t, c.irqs, 1)
	test.ExpectEquality(t, mc.LastUnit(), cpu.UnitIRQ)
}

func TestNMIEdge(t *testing.T) {
	mc, c, l := create(2)

	l.nmi = true
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 1)
	test.ExpectEquality(t, mc.LastUnit(), cpu.UnitNMI)

	// the signal is still active but there is no new edge
	mc.Run(0)
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 1)
	test.ExpectEquality(t, c.steps, 2)

	l.nmi = false
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 1)

	l.nmi = true
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 2)
}

func TestNMIPriority(t *testing.T) {
	mc, c, l := create(2)

	l.irq = true
	l.nmi = true
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 1)
	test.ExpectEquality(t, c.irqs, 0)

	// NMI is not masked by the interrupt flag
	l.nmi = false
	mc.Run(0)
	l.nmi = true
	mc.SetSR(cpu.FlagInterrupt)
	mc.Run(0)
	test.ExpectEquality(t, c.nmis, 2)
}

func TestBreakpoint(t *testing.T) {
	mc, c, _ := create(2)

	test.ExpectSuccess(t, mc.ToggleBreakpoint(0x1003))
	test.ExpectEquality(t, mc.Run(100), 6)
	test.ExpectEquality(t, c.steps, 3)
	test.ExpectEquality(t, mc.PC(), 0x1003)
	test.ExpectSuccess(t, mc.BreakpointReached())

	// the next run continues past the breakpoint
	mc.Run(0)
	test.ExpectFailure(t, mc.BreakpointReached())
	test.ExpectEquality(t, mc.PC(), 0x1004)
}

func TestBreakpointInInterrupt(t *testing.T) {
	mc, c, l := create(2)

	mc.ToggleBreakpoint(0x8000)
	l.irq = true
	test.ExpectEquality(t, mc.Run(1000), cpu.InterruptCycles)
	test.ExpectEquality(t, c.irqs, 1)
	test.ExpectEquality(t, c.steps, 0)
	test.ExpectSuccess(t, mc.BreakpointReached())
	test.ExpectEquality(t, mc.PC(), 0x8000)
}

func TestBreakpointToggle(t *testing.T) {
	mc, _, _ := create(2)

	test.ExpectFailure(t, mc.Breakpoint(0xc000))
	test.ExpectSuccess(t, mc.ToggleBreakpoint(0xc000))
	test.ExpectSuccess(t, mc.Breakpoint(0xc000))
	test.ExpectFailure(t, mc.ToggleBreakpoint(0xc000))
	test.ExpectFailure(t, mc.Breakpoint(0xc000))

	mc.ToggleBreakpoint(0x0000)
	mc.ToggleBreakpoint(0xffff)
	mc.ToggleBreakpoint(0x1234)
	test.ExpectEquality(t, len(mc.Breakpoints()), 3)
	test.ExpectEquality(t, mc.Breakpoints()[1], 0x1234)

	mc.ClearBreakpoints()
	for a := range 0x10000 {
		if mc.Breakpoint(uint16(a)) {
			t.Fatalf("breakpoint at %04x after clear", a)
		}
	}
	test.ExpectEquality(t, len(mc.Breakpoints()), 0)
}

func TestRegisters(t *testing.T) {
	mc, _, _ := create(2)
	mc.SetA(0x12)
	mc.SetX(0x34)
	mc.SetY(0x56)
	mc.SetSP(0xf0)
	mc.SetPC(0xabcd)
	mc.SetSR(cpu.FlagNegative | cpu.FlagCarry)
	test.ExpectEquality(t, mc.String(), "PC=$abcd SP=$f0 A=$12 X=$34 Y=$56 SR=Nv-bdizC")
}
