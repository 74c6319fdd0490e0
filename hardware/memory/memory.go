package memory

import (
	"github.com/elmerucr/E64-SQ/hardware/memory/ram"
	"github.com/elmerucr/E64-SQ/hardware/memory/rom"
)

// the pages of memory occupied by the chips
const (
	PageVICV       = 0xd0
	PageBlitter    = 0xd1
	PageBlitMemory = 0xd2
	PageTimer      = 0xd3
	PageSound      = 0xd4
	PageCIA        = 0xd5

	// the descriptors occupy eight pages. the address is masked so that the
	// descriptor area sees a single 2KB index
	PageDescriptors     = 0xd8
	PageDescriptorsMask = 0xf8

	// any page with these bits set is in ROM for the purposes of reading
	PageROM = 0xe0
)

type Area interface {
	// read and write both take an index value. this is an address in the area
	// but with the area origin removed. in other words, the area doesn't need
	// to know about it's location in memory, only the relative placement of
	// addresses within the area
	Read(idx uint16) uint8
	Write(idx uint16, data uint8)
	Label() string
}

// Peeker is implemented by areas where a normal read has side effects. Peek
// returns the same value as Read without the side effect
type Peeker interface {
	Peek(idx uint16) uint8
}

// Status is implemented by areas that can summarise their state
type Status interface {
	Status() string
}

// Chips are the areas that are mapped into memory in addition to RAM and ROM
type Chips struct {
	VICV        Area
	Blitter     Area
	BlitMemory  Area
	Descriptors Area
	Timer       Area
	Sound       Area
	CIA         Area
}

type Memory struct {
	RAM   *ram.RAM
	ROM   *rom.ROM
	chips Chips

	// the most recent area to have been written to
	Last Area
}

// Create the memory bus. The chips are added with the function returned by
// Create(). This allows the chips to be created with a reference to the
// memory bus before the bus has a reference to them
func Create() (*Memory, AddChips) {
	mem := &Memory{
		RAM: ram.Create("RAM", ram.Size),
		ROM: rom.Create(),
	}
	return mem, func(chips Chips) {
		mem.chips = chips
	}
}

// AddChips is returned by the Create() function and should be called to
// finalise the memory creation process
type AddChips func(chips Chips)

func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.Last = nil
}

// MapAddress returns the memory "area" and index into the area corresponding
// to the address. The read flag is necessary because the ROM is only visible
// to reads. A write to the ROM range goes to the RAM underneath
//
// The area returned is never nil unless the chips have not been added
func (mem *Memory) MapAddress(address uint16, read bool) (uint16, Area) {
	page := uint8(address >> 8)

	switch page {
	case PageVICV:
		return address & 0xff, mem.chips.VICV
	case PageBlitter:
		return address & 0xff, mem.chips.Blitter
	case PageBlitMemory:
		return address & 0xff, mem.chips.BlitMemory
	case PageTimer:
		return address & 0xff, mem.chips.Timer
	case PageSound:
		return address & 0xff, mem.chips.Sound
	case PageCIA:
		return address & 0xff, mem.chips.CIA
	}

	if page&PageDescriptorsMask == PageDescriptors {
		return address & 0x7ff, mem.chips.Descriptors
	}

	if read && page&PageROM == PageROM {
		return address & rom.Mask, mem.ROM
	}

	return address, mem.RAM
}

func (mem *Memory) Read(address uint16) uint8 {
	idx, area := mem.MapAddress(address, true)
	if area == nil {
		return 0
	}
	return area.Read(idx)
}

// Peek reads the address without side effects
func (mem *Memory) Peek(address uint16) uint8 {
	idx, area := mem.MapAddress(address, true)
	return Peek(area, idx)
}

// Peek reads the index of the area without side effects
func Peek(area Area, idx uint16) uint8 {
	if area == nil {
		return 0
	}
	if p, ok := area.(Peeker); ok {
		return p.Peek(idx)
	}
	return area.Read(idx)
}

// Debug returns a view of memory where reading has no side effects
func (mem *Memory) Debug() Debug {
	return Debug{mem: mem}
}

// Debug is a view of memory for debugging and disassembly
type Debug struct {
	mem *Memory
}

func (d Debug) Read(address uint16) uint8 {
	return d.mem.Peek(address)
}

func (mem *Memory) Write(address uint16, data uint8) {
	idx, area := mem.MapAddress(address, false)
	if area == nil {
		return
	}
	if area != mem.RAM {
		mem.Last = area
	}
	area.Write(idx, data)
}

// LastAreaStatus returns the status of the chip most recently written to. The
// empty string is returned if no chip has been written to since the previous
// call
func (mem *Memory) LastAreaStatus() string {
	if mem.Last == nil {
		return ""
	}
	defer func() {
		mem.Last = nil
	}()
	if s, ok := mem.Last.(Status); ok {
		return s.Status()
	}
	return mem.Last.Label()
}
