package disassembly_test

import (
	"testing"

	"github.com/elmerucr/E64-SQ/disassembly"
	"github.com/elmerucr/E64-SQ/test"
)

type mem [0x10000]uint8

func (m *mem) Read(address uint16) uint8 {
	return m[address]
}

func TestLength(t *testing.T) {
	test.ExpectEquality(t, disassembly.Length(0xea), 1)
	test.ExpectEquality(t, disassembly.Length(0xa9), 2)
	test.ExpectEquality(t, disassembly.Length(0x4c), 3)
	test.ExpectEquality(t, disassembly.Length(0xd0), 2)
	test.ExpectEquality(t, disassembly.Length(0x0f), 3)
}

func TestDisassemble(t *testing.T) {
	var m mem

	// LDA #$42
	copy(m[0x1000:], []uint8{0xa9, 0x42})
	s, n := disassembly.Mnemonic(&m, 0x1000)
	test.ExpectEquality(t, s, "lda #$42")
	test.ExpectEquality(t, n, 2)

	// JMP $e000
	copy(m[0x1002:], []uint8{0x4c, 0x00, 0xe0})
	s, n = disassembly.Mnemonic(&m, 0x1002)
	test.ExpectEquality(t, s, "jmp $e000")
	test.ExpectEquality(t, n, 3)

	// NOP
	m[0x1005] = 0xea
	s, n = disassembly.Mnemonic(&m, 0x1005)
	test.ExpectEquality(t, s, "nop")
	test.ExpectEquality(t, n, 1)

	e := disassembly.Disassemble(&m, 0x1002)
	test.ExpectEquality(t, e.Bytecode, "4c 00 e0")
	test.ExpectEquality(t, e.Operator, "jmp")
	test.ExpectEquality(t, e.Operand, "$e000")
}

func TestBranch(t *testing.T) {
	var m mem

	// BNE backwards by two is a branch to itself
	copy(m[0x2000:], []uint8{0xd0, 0xfe})
	s, n := disassembly.Mnemonic(&m, 0x2000)
	test.ExpectEquality(t, s, "bne $2000")
	test.ExpectEquality(t, n, 2)

	// BRA forwards
	copy(m[0x2010:], []uint8{0x80, 0x10})
	s, _ = disassembly.Mnemonic(&m, 0x2010)
	test.ExpectEquality(t, s, "bra $2022")
}

func TestZeroPageRelative(t *testing.T) {
	var m mem

	// BBR0 $12, target
	copy(m[0x3000:], []uint8{0x0f, 0x12, 0x05})
	s, n := disassembly.Mnemonic(&m, 0x3000)
	test.ExpectEquality(t, s, "bbr0 $12, $3008")
	test.ExpectEquality(t, n, 3)
}
