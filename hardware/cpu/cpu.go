// Package cpu schedules the execution of the CPU against the cycle budget
// given to it by the machine.
//
// The instruction set itself is provided by a Core. The CPU type decides
// whether the next unit of work is an interrupt or an instruction and keeps
// a balance of cycles so that the CPU stays in step with the other chips over
// many short calls to Run().
package cpu

import (
	"fmt"
	"slices"

	"github.com/elmerucr/E64-SQ/disassembly"
)

// Core is the instruction stepping primitive
type Core interface {
	Reset()

	// Step executes one instruction and returns the number of cycles used
	Step() int

	// ServiceIRQ and ServiceNMI perform the interrupt entry sequence
	ServiceIRQ()
	ServiceNMI()

	Registers() *Registers
}

// Interrupts are the inputs sampled by the CPU before each unit of work
type Interrupts interface {
	// level triggered and maskable
	IRQ() bool

	// edge triggered. the CPU detects the edge
	NMIActive() bool
}

// Memory as seen by the CPU
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// InterruptCycles is the number of cycles taken to service an interrupt
const InterruptCycles = 7

// Unit is the type of work performed by the CPU
type Unit int

// List of valid Unit values
const (
	UnitInstruction Unit = iota
	UnitIRQ
	UnitNMI
)

func (u Unit) String() string {
	switch u {
	case UnitIRQ:
		return "IRQ"
	case UnitNMI:
		return "NMI"
	}
	return "instruction"
}

type CPU struct {
	core  Core
	lines Interrupts
	mem   disassembly.Reader

	// unspent or overspent cycles carried between calls to Run()
	saldo int

	// the state of the NMI input at the previous sample
	oldNMI bool

	breakpoints       [0x10000]bool
	breakpointReached bool

	lastUnit Unit
}

// Create a new CPU. The core must already be attached to memory. The reader
// is used for disassembly only
func Create(core Core, lines Interrupts, mem disassembly.Reader) *CPU {
	return &CPU{
		core:  core,
		lines: lines,
		mem:   mem,
	}
}

// Attach a different core to the CPU. The core is reset. Breakpoints are
// unaffected
func (mc *CPU) Attach(core Core) {
	mc.core = core
	mc.Reset()
}

func (mc *CPU) Reset() {
	mc.core.Reset()
	mc.saldo = 0
	mc.oldNMI = false
	mc.breakpointReached = false
	mc.lastUnit = UnitInstruction
}

func (mc *CPU) Label() string {
	return "CPU"
}

func (mc *CPU) String() string {
	return mc.core.Registers().String()
}

// Run the CPU for the number of cycles. The number of cycles actually used is
// returned. This may be more or less than requested: the difference is
// carried forward to the next call.
//
// A request for zero cycles always performs exactly one instruction or
// interrupt service. Execution stops early if a breakpoint is reached
func (mc *CPU) Run(cycles int) int {
	mc.saldo += cycles
	mc.breakpointReached = false

	var done int

	for {
		regs := mc.core.Registers()
		nmi := mc.lines.NMIActive()

		switch {
		case nmi && !mc.oldNMI:
			mc.core.ServiceNMI()
			mc.lastUnit = UnitNMI
			done += InterruptCycles
		case mc.lines.IRQ() && regs.Status&FlagInterrupt == 0:
			mc.core.ServiceIRQ()
			mc.lastUnit = UnitIRQ
			done += InterruptCycles
		default:
			mc.lastUnit = UnitInstruction
			done += mc.core.Step()
		}

		mc.oldNMI = nmi

		if mc.breakpoints[mc.core.Registers().PC] {
			mc.breakpointReached = true
			break
		}

		if cycles == 0 || done >= mc.saldo {
			break
		}
	}

	mc.saldo -= done
	return done
}

// Saldo returns the current cycle balance
func (mc *CPU) Saldo() int {
	return mc.saldo
}

// LastUnit returns the type of work performed most recently
func (mc *CPU) LastUnit() Unit {
	return mc.lastUnit
}

// BreakpointReached returns true if the most recent call to Run() stopped
// because of a breakpoint
func (mc *CPU) BreakpointReached() bool {
	return mc.breakpointReached
}

// ToggleBreakpoint at the address. Returns the new state of the breakpoint
func (mc *CPU) ToggleBreakpoint(address uint16) bool {
	mc.breakpoints[address] = !mc.breakpoints[address]
	return mc.breakpoints[address]
}

// Breakpoint returns true if there is a breakpoint at the address
func (mc *CPU) Breakpoint(address uint16) bool {
	return mc.breakpoints[address]
}

func (mc *CPU) ClearBreakpoints() {
	clear(mc.breakpoints[:])
}

// Breakpoints returns the list of addresses with a breakpoint, in order
func (mc *CPU) Breakpoints() []uint16 {
	var l []uint16
	for i, b := range mc.breakpoints {
		if b {
			l = append(l, uint16(i))
		}
	}
	return slices.Clip(l)
}

// Disassemble the instruction at the address. Returns the text and the
// length of the instruction
func (mc *CPU) Disassemble(pc uint16) (string, int) {
	return disassembly.Mnemonic(mc.mem, pc)
}

// DisassembleEntry returns the formatted disassembly of the instruction at
// the address
func (mc *CPU) DisassembleEntry(pc uint16) disassembly.Entry {
	return disassembly.Disassemble(mc.mem, pc)
}

// Status returns a one line summary of the CPU state including the next
// instruction
func (mc *CPU) Status() string {
	s, _ := mc.Disassemble(mc.PC())
	return fmt.Sprintf("%s  %s", mc.core.Registers(), s)
}

// Registers returns the registers of the attached core
func (mc *CPU) Registers() *Registers {
	return mc.core.Registers()
}

func (mc *CPU) PC() uint16 {
	return mc.core.Registers().PC
}

func (mc *CPU) SetPC(v uint16) {
	mc.core.Registers().PC = v
}

func (mc *CPU) SP() uint8 {
	return mc.core.Registers().SP
}

func (mc *CPU) SetSP(v uint8) {
	mc.core.Registers().SP = v
}

func (mc *CPU) A() uint8 {
	return mc.core.Registers().A
}

func (mc *CPU) SetA(v uint8) {
	mc.core.Registers().A = v
}

func (mc *CPU) X() uint8 {
	return mc.core.Registers().X
}

func (mc *CPU) SetX(v uint8) {
	mc.core.Registers().X = v
}

func (mc *CPU) Y() uint8 {
	return mc.core.Registers().Y
}

func (mc *CPU) SetY(v uint8) {
	mc.core.Registers().Y = v
}

// SR returns the status register
func (mc *CPU) SR() uint8 {
	return mc.core.Registers().Status
}

func (mc *CPU) SetSR(v uint8) {
	mc.core.Registers().Status = v
}
