// Package rom implements the 8KB read-only memory visible at the top of the
// address space. A ROM image can be loaded to replace the built-in image.
//
// The built-in image is a minimal kernel that loops forever at the reset
// address. The IRQ and NMI handlers return immediately.
package rom

import (
	"errors"
	"fmt"
)

// Size of the ROM image
const Size = 0x2000

// Mask is applied to an address to produce an index into the ROM
const Mask = Size - 1

// Origin is the address of the first byte of the ROM
const Origin = 0xe000

// addresses in the built-in image
const (
	resetEntry = 0xe000
	irqEntry   = 0xe010
	nmiEntry   = 0xe020
)

// ErrSize is returned by Load() when the image is the wrong size
var ErrSize = errors.New("rom image must be 8192 bytes")

type ROM struct {
	data   [Size]uint8
	loaded bool
}

// Create a ROM with the built-in image
func Create() *ROM {
	r := &ROM{}
	r.builtin()
	return r
}

func (r *ROM) builtin() {
	for i := range r.data {
		r.data[i] = 0xea // NOP
	}

	put := func(address uint16, b ...uint8) {
		copy(r.data[address&Mask:], b)
	}

	// JMP $e000
	put(resetEntry, 0x4c, resetEntry&0xff, resetEntry>>8)

	// RTI
	put(irqEntry, 0x40)
	put(nmiEntry, 0x40)

	// vectors
	put(0xfffa, nmiEntry&0xff, nmiEntry>>8)
	put(0xfffc, resetEntry&0xff, resetEntry>>8)
	put(0xfffe, irqEntry&0xff, irqEntry>>8)

	r.loaded = false
}

// Load replaces the ROM contents with the image
func (r *ROM) Load(image []byte) error {
	if len(image) != Size {
		return fmt.Errorf("rom: %w: %d bytes", ErrSize, len(image))
	}
	copy(r.data[:], image)
	r.loaded = true
	return nil
}

// Builtin restores the built-in image
func (r *ROM) Builtin() {
	r.builtin()
}

func (r *ROM) Label() string {
	if r.loaded {
		return "ROM (loaded)"
	}
	return "ROM"
}

func (r *ROM) Read(idx uint16) uint8 {
	return r.data[idx&Mask]
}

// Write has no effect. Writes to the ROM range are directed to RAM by the
// memory bus and so this function will not normally be called
func (r *ROM) Write(_ uint16, _ uint8) {
}
