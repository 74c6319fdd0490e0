package spec

import (
	"image/color"
)

// Dimensions of the visible screen in pixels
const (
	Width  = 320
	Height = 180
)

// The number of pixels in the framebuffer
const TotalPixels = Width * Height

// Blanking periods. HBlank is measured in cycles at the end of each scanline.
// VBlank is measured in scanlines at the end of each frame
const (
	HBlank = 80
	VBlank = 20
)

// ClksScanline is the number of cycles required by one scanline, including
// the horizontal blank
const ClksScanline = Width + HBlank

// Scanlines is the number of scanlines in a frame, including the vertical
// blank
const Scanlines = Height + VBlank

// ClksFrame is the number of cycles in a complete frame
const ClksFrame = ClksScanline * Scanlines

// FrameRate is the number of frames per second
const FrameRate = 60

// Colours in ARGB4444 format. Values are an approximation of the C64 palette
const (
	C64Black      = 0xf000
	C64White      = 0xffff
	C64Red        = 0xf833
	C64Cyan       = 0xf7cc
	C64Purple     = 0xf849
	C64Green      = 0xf6a5
	C64Blue       = 0xf43a
	C64Yellow     = 0xfcd7
	C64Orange     = 0xf853
	C64Brown      = 0xf540
	C64LightRed   = 0xfb66
	C64DarkGrey   = 0xf444
	C64Grey       = 0xf777
	C64LightGreen = 0xfae9
	C64LightBlue  = 0xf87d
	C64LightGrey  = 0xfaaa
)

// ResetColour is the colour of both framebuffers after a reset
const ResetColour = 0xf222

// RGBA converts an ARGB4444 colour to color.RGBA. Each nibble is scaled to the
// full eight bits
func RGBA(c uint16) color.RGBA {
	return color.RGBA{
		R: uint8((c>>8)&0x0f) * 0x11,
		G: uint8((c>>4)&0x0f) * 0x11,
		B: uint8(c&0x0f) * 0x11,
		A: uint8((c>>12)&0x0f) * 0x11,
	}
}
