package blitter

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/elmerucr/E64-SQ/hardware/spec"
	"github.com/elmerucr/E64-SQ/logger"
)

// FontSize is the number of pixels in the built-in font. Each of the 256
// glyphs is 8x8 pixels
const FontSize = 256 * 64

// pixels with coverage at or above the threshold are set
const fontThreshold = 0x80

// builtinFont returns the built-in font. The font is rasterised once on first use
var builtinFont = sync.OnceValue(rasterise)

// rasterise the printable ASCII characters from the Go Mono typeface. The
// upper half of the font is the inverse of the lower half and is used for
// the cursor
func rasterise() *[FontSize]uint16 {
	var glyphs [FontSize]uint16

	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		logger.Log(logger.Allow, "blitter", err)
		return &glyphs
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    8,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logger.Log(logger.Allow, "blitter", err)
		return &glyphs
	}
	defer face.Close()

	cell := image.NewAlpha(image.Rect(0, 0, 8, 8))
	d := font.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: face,
	}

	for c := 0x20; c < 0x7f; c++ {
		clear(cell.Pix)
		d.Dot = fixed.P(1, 7)
		d.DrawString(string(rune(c)))

		for y := range 8 {
			for x := range 8 {
				if cell.AlphaAt(x, y).A >= fontThreshold {
					glyphs[c<<6|y<<3|x] = spec.C64Grey
				}
			}
		}
	}

	for c := range 0x80 {
		for p := range 64 {
			if glyphs[c<<6|p] == 0 {
				glyphs[(c|0x80)<<6|p] = spec.C64Grey
			}
		}
	}

	return &glyphs
}
