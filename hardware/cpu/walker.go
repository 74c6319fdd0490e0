package cpu

import "github.com/elmerucr/E64-SQ/disassembly"

// the interrupt vectors of the 65C02
const (
	VectorNMI   = 0xfffa
	VectorReset = 0xfffc
	VectorIRQ   = 0xfffe
)

// Walker is a Core that walks through memory one instruction at a time
// without executing the instructions. It follows JMP and RTI and performs the
// interrupt entry sequence, which is enough to run the idle loop and the
// interrupt handlers of the built-in ROM.
//
// It is used when no instruction set core is attached to the machine.
type Walker struct {
	mem  Memory
	regs Registers
}

// NewWalker returns a Walker connected to memory
func NewWalker(mem Memory) *Walker {
	return &Walker{mem: mem}
}

func (w *Walker) read16(address uint16) uint16 {
	return uint16(w.mem.Read(address)) | uint16(w.mem.Read(address+1))<<8
}

func (w *Walker) push(data uint8) {
	w.mem.Write(0x0100|uint16(w.regs.SP), data)
	w.regs.SP--
}

func (w *Walker) pull() uint8 {
	w.regs.SP++
	return w.mem.Read(0x0100 | uint16(w.regs.SP))
}

// Reset loads the PC from the reset vector
func (w *Walker) Reset() {
	w.regs = Registers{
		SP:     0xfd,
		Status: FlagUnused | FlagInterrupt,
	}
	w.regs.PC = w.read16(VectorReset)
}

func (w *Walker) Registers() *Registers {
	return &w.regs
}

// Step implements the Core interface. Every instruction takes two cycles
func (w *Walker) Step() int {
	opcode := w.mem.Read(w.regs.PC)
	switch opcode {
	case 0x4c: // JMP abs
		w.regs.PC = w.read16(w.regs.PC + 1)
	case 0x40: // RTI
		w.regs.Status = w.pull() | FlagUnused
		w.regs.Status &^= FlagBreak
		lo := uint16(w.pull())
		hi := uint16(w.pull())
		w.regs.PC = hi<<8 | lo
	case 0x58: // CLI
		w.regs.Status &^= FlagInterrupt
		w.regs.PC++
	case 0x78: // SEI
		w.regs.Status |= FlagInterrupt
		w.regs.PC++
	default:
		w.regs.PC += uint16(disassembly.Length(opcode))
	}
	return 2
}

func (w *Walker) interrupt(vector uint16) {
	w.push(uint8(w.regs.PC >> 8))
	w.push(uint8(w.regs.PC))
	w.push((w.regs.Status | FlagUnused) &^ FlagBreak)
	w.regs.Status |= FlagInterrupt
	w.regs.Status &^= FlagDecimal
	w.regs.PC = w.read16(vector)
}

func (w *Walker) ServiceIRQ() {
	w.interrupt(VectorIRQ)
}

func (w *Walker) ServiceNMI() {
	w.interrupt(VectorNMI)
}
