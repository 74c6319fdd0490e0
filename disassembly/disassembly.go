// Package disassembly formats 65C02 instructions for the debugger.
package disassembly

import (
	"fmt"
	"strings"
)

// Reader is the memory the instruction is read from. Reading must have no
// side effects
type Reader interface {
	Read(address uint16) uint8
}

type Entry struct {
	Address  uint16
	Length   int
	Bytecode string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return fmt.Sprintf("$%04x  %-8s  %-4s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// isBranch returns true for the relative branch instructions. These are BRA
// ($80) and $10, $30, $50, $70, $90, $b0, $d0, $f0
func isBranch(opcode uint8) bool {
	return opcode == 0x80 || opcode&0x1f == 0x10
}

// isZeroPageRelative returns true for the BBR and BBS instructions
func isZeroPageRelative(opcode uint8) bool {
	return opcode&0x0f == 0x0f
}

// Length returns the number of bytes in the instruction for the opcode
func Length(opcode uint8) int {
	if isZeroPageRelative(opcode) {
		return 3
	}
	m := mnemonics[opcode]
	if strings.Contains(m, "%04x") {
		return 3
	}
	if strings.Contains(m, "%02x") {
		return 2
	}
	return 1
}

// Disassemble the instruction at the address
func Disassemble(mem Reader, pc uint16) Entry {
	opcode := mem.Read(pc)
	mnemonic := mnemonics[opcode]

	e := Entry{
		Address: pc,
		Length:  Length(opcode),
	}

	var s string
	switch {
	case isZeroPageRelative(opcode):
		zp := mem.Read(pc + 1)
		rel := int8(mem.Read(pc + 2))
		s = fmt.Sprintf(mnemonic, zp, pc+3+uint16(rel))
	case e.Length == 2 && isBranch(opcode):
		rel := int8(mem.Read(pc + 1))
		s = fmt.Sprintf(mnemonic, pc+2+uint16(rel))
	case e.Length == 2:
		s = fmt.Sprintf(mnemonic, mem.Read(pc+1))
	case e.Length == 3:
		s = fmt.Sprintf(mnemonic, uint16(mem.Read(pc+1))|uint16(mem.Read(pc+2))<<8)
	default:
		s = mnemonic
	}

	e.Operator, e.Operand, _ = strings.Cut(s, " ")
	e.Operand = strings.TrimSpace(e.Operand)

	b := make([]string, e.Length)
	for i := range b {
		b[i] = fmt.Sprintf("%02x", mem.Read(pc+uint16(i)))
	}
	e.Bytecode = strings.Join(b, " ")

	return e
}

// Mnemonic returns the text of the instruction at the address
func Mnemonic(mem Reader, pc uint16) (string, int) {
	e := Disassemble(mem, pc)
	if e.Operand == "" {
		return e.Operator, e.Length
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand), e.Length
}
