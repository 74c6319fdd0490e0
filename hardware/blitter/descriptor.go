package blitter

import "fmt"

// bits of the Flags0 field
const (
	// bitmap mode (1) or tile mode (0)
	FlagBitmap = 0x01

	// background pixels are drawn with the background colour
	FlagBackground = 0x02

	// pixel colours are used as they are. otherwise the foreground colour is
	// used for every pixel that is present
	FlagMulticolour = 0x04

	// foreground and background colours are taken from the per tile colour
	// regions
	FlagColourPerTile = 0x08

	// pixel data is taken from the built-in font
	FlagFont = 0x80
)

// bits of the Flags1 field
const (
	FlagDoubleWidth  = 0x01
	FlagDoubleHeight = 0x04
	FlagHFlip        = 0x10
	FlagVFlip        = 0x20
)

// NumDescriptors is the number of descriptors in the blitter
const NumDescriptors = 256

// Descriptor defines a surface that can be drawn by the blitter. The data
// for the surface is in the descriptor's block of the arena
type Descriptor struct {
	Flags0 uint8
	Flags1 uint8

	// size in tiles, log2. the low nibble is the width and the high nibble is
	// the height. only the lower three bits of each nibble are used
	size uint8

	// reserved byte, stored but not used
	Reserved uint8

	Foreground uint16
	Background uint16

	// position of the cursor when the descriptor is used as a terminal
	Cursor uint16
}

// SetSize sets the packed size field. Unused bits are masked off
func (d *Descriptor) SetSize(v uint8) {
	d.size = v & 0x77
}

// Size returns the packed size field
func (d *Descriptor) Size() uint8 {
	return d.size
}

// WidthLog2 is the width of the descriptor in tiles, log2
func (d *Descriptor) WidthLog2() uint16 {
	return uint16(d.size & 0x07)
}

// HeightLog2 is the height of the descriptor in tiles, log2
func (d *Descriptor) HeightLog2() uint16 {
	return uint16(d.size&0x70) >> 4
}

// Columns is the width in tiles
func (d *Descriptor) Columns() int {
	return 1 << d.WidthLog2()
}

// Rows is the height in tiles
func (d *Descriptor) Rows() int {
	return 1 << d.HeightLog2()
}

// Tiles is the number of tiles in the descriptor
func (d *Descriptor) Tiles() int {
	return d.Columns() * d.Rows()
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("flags0=%08b flags1=%08b size=%dx%d fg=%04x bg=%04x cursor=%d",
		d.Flags0, d.Flags1, d.Columns(), d.Rows(), d.Foreground, d.Background, d.Cursor)
}

// Descriptors is the memory area of the descriptors. Each descriptor
// occupies eight bytes:
//
//	0 flags0
//	1 flags1
//	2 size
//	3 reserved
//	4 foreground colour, low byte
//	5 foreground colour, high byte
//	6 background colour, low byte
//	7 background colour, high byte
type Descriptors struct {
	blt *Blitter
}

func (d *Descriptors) Label() string {
	return "Descriptors"
}

func (d *Descriptors) Read(idx uint16) uint8 {
	desc := &d.blt.descriptors[(idx&0x7f8)>>3]
	switch idx & 0x07 {
	case 0x00:
		return desc.Flags0
	case 0x01:
		return desc.Flags1
	case 0x02:
		return desc.size
	case 0x03:
		return desc.Reserved
	case 0x04:
		return uint8(desc.Foreground)
	case 0x05:
		return uint8(desc.Foreground >> 8)
	case 0x06:
		return uint8(desc.Background)
	default:
		return uint8(desc.Background >> 8)
	}
}

func (d *Descriptors) Write(idx uint16, data uint8) {
	desc := &d.blt.descriptors[(idx&0x7f8)>>3]
	switch idx & 0x07 {
	case 0x00:
		desc.Flags0 = data
	case 0x01:
		desc.Flags1 = data
	case 0x02:
		desc.SetSize(data)
	case 0x03:
		desc.Reserved = data
	case 0x04:
		desc.Foreground = desc.Foreground&0xff00 | uint16(data)
	case 0x05:
		desc.Foreground = desc.Foreground&0x00ff | uint16(data)<<8
	case 0x06:
		desc.Background = desc.Background&0xff00 | uint16(data)
	default:
		desc.Background = desc.Background&0x00ff | uint16(data)<<8
	}
}
