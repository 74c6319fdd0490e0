package blitter

import (
	"fmt"

	"github.com/elmerucr/E64-SQ/hardware/spec"
)

// state of the blitter. the cycle() function performs one cycle of work and
// returns the state for the next cycle. the state value carries everything
// needed to resume the operation on the next call to Run()
type state interface {
	cycle(blt *Blitter) state
	String() string
}

type idle struct{}

func (idle) String() string {
	return "idle"
}

// the idle state polls the queue. taking an operation from the queue uses
// one cycle
func (idle) cycle(blt *Blitter) state {
	op, ok := blt.dequeue()
	if !ok {
		return idle{}
	}

	switch op.kind {
	case opClear:
		return &clearing{
			total:  spec.TotalPixels,
			colour: blt.clearColour,
		}
	case opBorder:
		return &drawingBorder{
			total:  spec.Width * int(blt.borderSize),
			colour: blt.borderColour,
		}
	case opBlit:
		return newBlitting(op)
	}

	return idle{}
}

type clearing struct {
	pixel  int
	total  int
	colour uint16
}

func (s *clearing) String() string {
	return fmt.Sprintf("clearing %d/%d", s.pixel, s.total)
}

func (s *clearing) cycle(blt *Blitter) state {
	if s.pixel == s.total {
		return idle{}
	}
	blt.back()[s.pixel] = s.colour
	s.pixel++
	return s
}

// the border is drawn at the top and bottom of the screen at the same time
type drawingBorder struct {
	pixel  int
	total  int
	colour uint16
}

func (s *drawingBorder) String() string {
	return fmt.Sprintf("drawing border %d/%d", s.pixel, s.total)
}

func (s *drawingBorder) cycle(blt *Blitter) state {
	if s.pixel == s.total {
		return idle{}
	}
	back := blt.back()
	top := s.pixel
	bottom := spec.TotalPixels - 1 - s.pixel
	back[top] = Blend(back[top], s.colour)
	back[bottom] = Blend(back[bottom], s.colour)
	s.pixel++
	return s
}

type blitting struct {
	descriptor uint8

	bitmap        bool
	background    bool
	multicolour   bool
	colourPerTile bool
	font          bool
	hflip         bool
	vflip         bool
	doubleWidth   uint16
	doubleHeight  uint16

	widthInTilesLog2 uint16
	widthLog2        uint16
	widthMask        uint16

	// dimensions on screen after stretching
	wosLog2 uint16
	wos     uint16
	wosMask uint16
	hos     uint16

	x int16
	y int16

	foreground uint16
	backgrnd   uint16

	pixel uint32
	total uint32
}

func newBlitting(op operation) *blitting {
	d := &op.snapshot

	s := &blitting{
		descriptor:    op.descriptor,
		bitmap:        d.Flags0&FlagBitmap == FlagBitmap,
		background:    d.Flags0&FlagBackground == FlagBackground,
		multicolour:   d.Flags0&FlagMulticolour == FlagMulticolour,
		colourPerTile: d.Flags0&FlagColourPerTile == FlagColourPerTile,
		font:          d.Flags0&FlagFont == FlagFont,
		hflip:         d.Flags1&FlagHFlip == FlagHFlip,
		vflip:         d.Flags1&FlagVFlip == FlagVFlip,
		x:             op.x,
		y:             op.y,
		foreground:    d.Foreground,
		backgrnd:      d.Background,
	}

	if d.Flags1&FlagDoubleWidth == FlagDoubleWidth {
		s.doubleWidth = 1
	}
	if d.Flags1&FlagDoubleHeight == FlagDoubleHeight {
		s.doubleHeight = 1
	}

	s.widthInTilesLog2 = d.WidthLog2()
	s.widthLog2 = s.widthInTilesLog2 + 3
	heightLog2 := d.HeightLog2() + 3

	s.wosLog2 = s.widthLog2 + s.doubleWidth
	hosLog2 := heightLog2 + s.doubleHeight

	s.wos = 1 << s.wosLog2
	s.hos = 1 << hosLog2
	s.widthMask = (1 << s.widthLog2) - 1
	s.wosMask = s.wos - 1

	s.total = uint32(s.wos) * uint32(s.hos)

	return s
}

func (s *blitting) String() string {
	return fmt.Sprintf("blitting %d %d/%d", s.descriptor, s.pixel, s.total)
}

func (s *blitting) cycle(blt *Blitter) state {
	if s.pixel == s.total {
		return idle{}
	}

	p := s.pixel
	s.pixel++

	// screen position, taking flipping into account. negative positions wrap
	// to large values and are clipped
	col := uint16(p) & s.wosMask
	if s.hflip {
		col = s.wos - col - 1
	}
	scrnX := uint16(s.x) + col
	if scrnX >= spec.Width {
		return s
	}

	row := uint16(p >> s.wosLog2)
	if s.vflip {
		row = s.hos - row - 1
	}
	scrnY := uint16(s.y) + row
	if scrnY >= spec.Height {
		return s
	}

	// normalise the pixel number to the dimensions of the source by undoing
	// any stretching
	mask := uint32(s.wosMask)
	n := (((p >> s.doubleHeight) &^ mask) | (p & mask)) >> s.doubleWidth

	xIn := uint16(n) & s.widthMask
	yIn := uint16(n >> s.widthLog2)

	tileNumber := (xIn >> 3) + ((yIn >> 3) << s.widthInTilesLog2)
	tileIndex := blt.Arena.Tile(s.descriptor, tileNumber)

	if s.colourPerTile {
		s.foreground = blt.Arena.Foreground(s.descriptor, tileNumber)
		s.backgrnd = blt.Arena.Background(s.descriptor, tileNumber)
	}

	pixelInTile := (xIn & 0x07) | ((yIn & 0x07) << 3)

	var idx uint16
	if s.bitmap {
		idx = uint16(n)
	} else {
		idx = uint16(tileIndex)<<6 | pixelInTile
	}
	idx &= maskPixels

	var colour uint16
	if s.font {
		colour = blt.font[idx]
	} else {
		colour = blt.Arena.Pixel(s.descriptor, idx)
	}

	// a pixel with any alpha is a foreground pixel
	if colour&0xf000 != 0 {
		if !s.multicolour {
			colour = s.foreground
		}
	} else if s.background {
		colour = s.backgrnd
	}

	back := blt.back()
	i := int(scrnX) + int(scrnY)*spec.Width
	back[i] = Blend(back[i], colour)

	return s
}
