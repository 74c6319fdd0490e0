// Package blitter implements the graphics co-processor. Operations are
// queued by writing to the blitter's registers and are executed over many
// cycles by a finite state machine. Each operation draws into the back
// buffer of a pair of framebuffers.
//
// Registers:
//
//	0x00 command. write only, reads zero
//	     0x01 swap buffers
//	     0x02 clear back buffer
//	     0x04 draw border
//	     0x08 blit the descriptor in register 0x01 at position x/y
//	     0x10 reset cursor of the descriptor in register 0x01
//	0x01 descriptor number
//	0x02 border size
//	0x04 x position, low byte
//	0x05 x position, high byte
//	0x06 y position, low byte
//	0x07 y position, high byte
//	0x08 clear colour, low byte
//	0x09 clear colour, high byte
//	0x0a border colour, low byte
//	0x0b border colour, high byte
//	0x0e indirect memory page, low byte
//	0x0f indirect memory page, high byte
//	0x10 number of tiles in descriptor (register 0x01), low byte
//	0x11 number of tiles in descriptor (register 0x01), high byte
//	0x12 cursor position of descriptor (register 0x01), low byte
//	0x13 cursor position of descriptor (register 0x01), high byte
package blitter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elmerucr/E64-SQ/hardware/spec"
	"github.com/elmerucr/E64-SQ/logger"
)

// Context allows the blitter to signal a break
type Context interface {
	Break(error)
}

// the wrapping error for any errors passed to Context.Break()
var ContextError = errors.New("blitter")

// ErrFlush is returned by Flush() if the blitter does not return to the idle
// state
var ErrFlush = errors.New("blitter flush did not complete")

// command values
const (
	CmdSwap        = 0x01
	CmdClear       = 0x02
	CmdBorder      = 0x04
	CmdBlit        = 0x08
	CmdResetCursor = 0x10
)

// register addresses
const (
	RegCommand     = 0x00
	RegDescriptor  = 0x01
	RegBorderSize  = 0x02
	RegXLo         = 0x04
	RegXHi         = 0x05
	RegYLo         = 0x06
	RegYHi         = 0x07
	RegClearLo     = 0x08
	RegClearHi     = 0x09
	RegBorderLo    = 0x0a
	RegBorderHi    = 0x0b
	RegPageLo      = 0x0e
	RegPageHi      = 0x0f
	RegTilesLo     = 0x10
	RegTilesHi     = 0x11
	RegCursorLo    = 0x12
	RegCursorHi    = 0x13
	registerFileSz = 0x20
)

type opKind int

const (
	opClear opKind = iota
	opBorder
	opBlit
)

type operation struct {
	kind opKind

	// blit operations only
	descriptor uint8
	snapshot   Descriptor
	x          int16
	y          int16
}

// QueueSize is the number of operations that can be waiting. The queue is
// circular and if it is filled faster than it is drained the oldest
// operations are overwritten
const QueueSize = 0x10000

// the largest number of cycles any single operation can take. a blit of the
// largest descriptor at double width and height, plus the dequeue and
// completion cycles
const maxOperationCycles = (128*8*2)*(128*8*2) + 2

// flushCeiling is the number of cycles after which Flush() gives up
const flushCeiling = QueueSize * maxOperationCycles

type Blitter struct {
	ctx Context

	registers [registerFileSz]uint8

	clearColour  uint16
	borderColour uint16
	borderSize   uint8

	descriptors [NumDescriptors]Descriptor
	terminals   [NumDescriptors]Terminal

	// the flat blit memory
	Arena *Arena

	// memory areas for the memory bus
	Indirect    *Indirect
	Descriptors *Descriptors

	// the built-in font. 256 glyphs of 8x8 pixels
	font *[FontSize]uint16

	buffers [2][]uint16
	front   int

	ops  []operation
	head uint16
	tail uint16

	state state

	busyCycles  int
	totalCycles int
}

// Create a new blitter
func Create(ctx Context) *Blitter {
	blt := &Blitter{
		ctx:   ctx,
		Arena: newArena(),
		font:  builtinFont(),
		ops:   make([]operation, QueueSize),
		state: idle{},
	}
	blt.Indirect = &Indirect{blt: blt}
	blt.Descriptors = &Descriptors{blt: blt}
	for i := range blt.buffers {
		blt.buffers[i] = make([]uint16, spec.TotalPixels)
	}
	for i := range blt.terminals {
		blt.terminals[i] = Terminal{blt: blt, n: uint8(i), cursorInterval: cursorInterval}
	}
	blt.Reset()
	return blt
}

// Reset the blitter. Descriptors and the arena are not affected
func (blt *Blitter) Reset() {
	blt.state = idle{}
	blt.head = 0
	blt.tail = 0
	for i := range blt.buffers {
		for j := range blt.buffers[i] {
			blt.buffers[i][j] = spec.ResetColour
		}
	}
	blt.front = 0
	blt.busyCycles = 0
	blt.totalCycles = 0
}

func (blt *Blitter) Label() string {
	return "Blitter"
}

func (blt *Blitter) Status() string {
	return fmt.Sprintf("%s: %s queue=%d", blt.Label(), blt.state, blt.Queued())
}

func (blt *Blitter) String() string {
	var s strings.Builder
	s.WriteString(blt.Status())
	s.WriteString(fmt.Sprintf("\nclear=%04x border=%04x size=%d front=%d",
		blt.clearColour, blt.borderColour, blt.borderSize, blt.front))
	s.WriteString(fmt.Sprintf("\nregisters: % 02x", blt.registers))
	return s.String()
}

// Descriptor returns the descriptor with the number
func (blt *Blitter) Descriptor(n uint8) *Descriptor {
	return &blt.descriptors[n]
}

// Terminal returns the terminal interface to the descriptor
func (blt *Blitter) Terminal(n uint8) *Terminal {
	return &blt.terminals[n]
}

// Front returns the framebuffer that is ready for display
func (blt *Blitter) Front() []uint16 {
	return blt.buffers[blt.front]
}

func (blt *Blitter) back() []uint16 {
	return blt.buffers[blt.front^1]
}

// Back returns the framebuffer being drawn to
func (blt *Blitter) Back() []uint16 {
	return blt.back()
}

// Busy returns true if the blitter is not idle
func (blt *Blitter) Busy() bool {
	_, ok := blt.state.(idle)
	return !ok
}

// Queued returns the number of operations waiting to be started
func (blt *Blitter) Queued() int {
	return int(blt.head - blt.tail)
}

// State returns a description of the current state
func (blt *Blitter) State() string {
	return blt.state.String()
}

func (blt *Blitter) enqueue(op operation) {
	blt.ops[blt.head] = op
	blt.head++
}

func (blt *Blitter) dequeue() (operation, bool) {
	if blt.head == blt.tail {
		return operation{}, false
	}
	op := blt.ops[blt.tail]
	blt.tail++
	return op, true
}

// ClearFramebuffer queues a clear operation
func (blt *Blitter) ClearFramebuffer() {
	blt.enqueue(operation{kind: opClear})
}

// DrawBorder queues a border operation
func (blt *Blitter) DrawBorder() {
	blt.enqueue(operation{kind: opBorder})
}

// DrawBlit queues a blit of the descriptor at the position. The descriptor
// fields are copied when the operation is queued
func (blt *Blitter) DrawBlit(n uint8, x int16, y int16) {
	blt.enqueue(operation{
		kind:       opBlit,
		descriptor: n,
		snapshot:   blt.descriptors[n],
		x:          x,
		y:          y,
	})
}

func (blt *Blitter) SetClearColour(c uint16) {
	blt.clearColour = c
}

func (blt *Blitter) SetBorderColour(c uint16) {
	blt.borderColour = c
}

func (blt *Blitter) SetBorderSize(size uint8) {
	blt.borderSize = size
}

// SwapBuffers exchanges the front and back buffers. Swapping while an
// operation is in progress causes the operation to be abandoned
func (blt *Blitter) SwapBuffers() {
	if blt.Busy() {
		logger.Logf(logger.Allow, "blitter", "swap buffers while %s", blt.state)
		blt.ctx.Break(fmt.Errorf("%w: swap buffers while %s", ContextError, blt.state))
		blt.state = idle{}
	}
	blt.front ^= 1
}

// Run the blitter for the number of cycles
func (blt *Blitter) Run(cycles int) {
	for ; cycles > 0; cycles-- {
		blt.totalCycles++
		if blt.Busy() {
			blt.busyCycles++
		}
		blt.state = blt.state.cycle(blt)
	}
}

// Flush runs the blitter until all queued operations are complete
func (blt *Blitter) Flush() error {
	var n int64
	for {
		blt.Run(1000)
		n += 1000
		if !blt.Busy() && blt.head == blt.tail {
			return nil
		}
		if n >= flushCeiling {
			return fmt.Errorf("%w: %s after %d cycles", ErrFlush, blt.state, n)
		}
	}
}

// Stats returns the number of busy cycles and the total number of cycles
// since the previous call to ResetStats()
func (blt *Blitter) Stats() (busy int, total int) {
	return blt.busyCycles, blt.totalCycles
}

func (blt *Blitter) ResetStats() {
	blt.busyCycles = 0
	blt.totalCycles = 0
}

func (blt *Blitter) Read(idx uint16) uint8 {
	d := &blt.descriptors[blt.registers[RegDescriptor]]

	switch idx & 0x1f {
	case RegCommand:
		return 0
	case RegBorderSize:
		return blt.borderSize
	case RegClearLo:
		return uint8(blt.clearColour)
	case RegClearHi:
		return uint8(blt.clearColour >> 8)
	case RegBorderLo:
		return uint8(blt.borderColour)
	case RegBorderHi:
		return uint8(blt.borderColour >> 8)
	case RegTilesLo:
		return uint8(d.Tiles())
	case RegTilesHi:
		return uint8(d.Tiles() >> 8)
	case RegCursorLo:
		return uint8(d.Cursor)
	case RegCursorHi:
		return uint8(d.Cursor >> 8)
	}

	return blt.registers[idx&0x1f]
}

func (blt *Blitter) Write(idx uint16, data uint8) {
	d := &blt.descriptors[blt.registers[RegDescriptor]]

	switch idx & 0x1f {
	case RegCommand:
		switch data {
		case CmdSwap:
			blt.SwapBuffers()
		case CmdClear:
			blt.ClearFramebuffer()
		case CmdBorder:
			blt.DrawBorder()
		case CmdBlit:
			x := uint16(blt.registers[RegXLo]) | uint16(blt.registers[RegXHi])<<8
			y := uint16(blt.registers[RegYLo]) | uint16(blt.registers[RegYHi])<<8
			blt.DrawBlit(blt.registers[RegDescriptor], int16(x), int16(y))
		case CmdResetCursor:
			d.Cursor = 0
		}
	case RegBorderSize:
		blt.borderSize = data
	case RegClearLo:
		blt.clearColour = blt.clearColour&0xff00 | uint16(data)
	case RegClearHi:
		blt.clearColour = blt.clearColour&0x00ff | uint16(data)<<8
	case RegBorderLo:
		blt.borderColour = blt.borderColour&0xff00 | uint16(data)
	case RegBorderHi:
		blt.borderColour = blt.borderColour&0x00ff | uint16(data)<<8
	case RegCursorLo:
		d.Cursor = d.Cursor&0xff00 | uint16(data)
	case RegCursorHi:
		d.Cursor = d.Cursor&0x00ff | uint16(data)<<8
	default:
		blt.registers[idx&0x1f] = data
	}
}

// MemoryRead reads a byte from the arena. If the descriptor that owns the
// address has the font flag set then the lower half of the block reads as
// the built-in font
func (blt *Blitter) MemoryRead(address uint32) uint8 {
	address &= ArenaSize - 1
	if blt.descriptors[address>>16].Flags0&FlagFont == FlagFont && address&0x8000 == 0 {
		w := blt.font[(address&0x7fff)>>1]
		if address&1 == 1 {
			return uint8(w >> 8)
		}
		return uint8(w)
	}
	return blt.Arena.Read(address)
}

// MemoryWrite writes a byte to the arena
func (blt *Blitter) MemoryWrite(address uint32, data uint8) {
	blt.Arena.Write(address, data)
}

// Indirect is the memory area that gives the CPU access to one page of the
// arena at a time. The page is selected by registers 0x0e and 0x0f
type Indirect struct {
	blt *Blitter
}

func (ind *Indirect) Label() string {
	return "Blit Memory"
}

func (ind *Indirect) address(idx uint16) uint32 {
	return uint32(ind.blt.registers[RegPageHi])<<16 |
		uint32(ind.blt.registers[RegPageLo])<<8 |
		uint32(idx&0xff)
}

func (ind *Indirect) Read(idx uint16) uint8 {
	return ind.blt.MemoryRead(ind.address(idx))
}

func (ind *Indirect) Write(idx uint16, data uint8) {
	ind.blt.MemoryWrite(ind.address(idx), data)
}
