package blitter

// ArenaSize is the size of the flat blit memory
const ArenaSize = 0x1000000

// BlockSize is the amount of arena memory owned by each descriptor
const BlockSize = 0x10000

// Region is one of the four areas of memory in a descriptor's block
type Region int

// List of valid Region values
const (
	RegionPixels Region = iota
	RegionTiles
	RegionForeground
	RegionBackground
)

func (r Region) String() string {
	switch r {
	case RegionPixels:
		return "pixels"
	case RegionTiles:
		return "tiles"
	case RegionForeground:
		return "foreground"
	case RegionBackground:
		return "background"
	}
	return "unknown region"
}

// Offset of the region within the descriptor's block
func (r Region) Offset() uint32 {
	switch r {
	case RegionTiles:
		return 0x8000
	case RegionForeground:
		return 0xc000
	case RegionBackground:
		return 0xe000
	}
	return 0x0000
}

// Size of the region in bytes
func (r Region) Size() uint32 {
	switch r {
	case RegionPixels:
		return 0x8000
	case RegionTiles:
		return 0x1000
	}
	return 0x2000
}

// Base returns the arena address of the region for the descriptor
func (r Region) Base(descriptor uint8) uint32 {
	return uint32(descriptor)<<16 | r.Offset()
}

// index masks. the pixel and colour regions are indexed by word
const (
	maskPixels = 0x3fff
	maskTiles  = 0x0fff
	maskColour = 0x0fff
)

// Arena is the 16MB of flat blit memory. It is divided into 256 blocks of
// 64KB, one per descriptor
type Arena struct {
	data []uint8
}

func newArena() *Arena {
	a := &Arena{
		data: make([]uint8, ArenaSize),
	}
	a.fill()
	return a
}

// fill the arena with a pattern derived from the address
func (a *Arena) fill() {
	for i := range a.data {
		if i&1 == 1 {
			a.data[i] = uint8(i >> 16)
		} else {
			a.data[i] = uint8(i >> 8)
		}
	}
}

func (a *Arena) Read(address uint32) uint8 {
	return a.data[address&(ArenaSize-1)]
}

func (a *Arena) Write(address uint32, data uint8) {
	a.data[address&(ArenaSize-1)] = data
}

// words are stored in little-endian order
func (a *Arena) word(address uint32) uint16 {
	return uint16(a.data[address]) | uint16(a.data[address+1])<<8
}

func (a *Arena) setWord(address uint32, v uint16) {
	a.data[address] = uint8(v)
	a.data[address+1] = uint8(v >> 8)
}

// Pixel returns the colour at index in the descriptor's pixel region
func (a *Arena) Pixel(descriptor uint8, idx uint16) uint16 {
	return a.word(RegionPixels.Base(descriptor) | uint32(idx&maskPixels)<<1)
}

func (a *Arena) SetPixel(descriptor uint8, idx uint16, colour uint16) {
	a.setWord(RegionPixels.Base(descriptor)|uint32(idx&maskPixels)<<1, colour)
}

// Tile returns the tile value at index in the descriptor's tile region
func (a *Arena) Tile(descriptor uint8, idx uint16) uint8 {
	return a.data[RegionTiles.Base(descriptor)|uint32(idx&maskTiles)]
}

func (a *Arena) SetTile(descriptor uint8, idx uint16, v uint8) {
	a.data[RegionTiles.Base(descriptor)|uint32(idx&maskTiles)] = v
}

// Foreground returns the foreground colour for the tile at index
func (a *Arena) Foreground(descriptor uint8, idx uint16) uint16 {
	return a.word(RegionForeground.Base(descriptor) | uint32(idx&maskColour)<<1)
}

func (a *Arena) SetForeground(descriptor uint8, idx uint16, colour uint16) {
	a.setWord(RegionForeground.Base(descriptor)|uint32(idx&maskColour)<<1, colour)
}

// Background returns the background colour for the tile at index
func (a *Arena) Background(descriptor uint8, idx uint16) uint16 {
	return a.word(RegionBackground.Base(descriptor) | uint32(idx&maskColour)<<1)
}

func (a *Arena) SetBackground(descriptor uint8, idx uint16, colour uint16) {
	a.setWord(RegionBackground.Base(descriptor)|uint32(idx&maskColour)<<1, colour)
}
