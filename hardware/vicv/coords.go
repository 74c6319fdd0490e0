package vicv

import (
	"fmt"
)

// Coords is the position of the beam. Clk is the cycle within the scanline,
// including the horizontal blank
type Coords struct {
	Frame    int
	Scanline int
	Clk      int
}

func (c Coords) String() string {
	return fmt.Sprintf("frame: %d, scanline: %d, clk: %d", c.Frame, c.Scanline, c.Clk)
}

func (c Coords) ShortString() string {
	return fmt.Sprintf("%d/%03d/%03d", c.Frame, c.Scanline, c.Clk)
}

func (c *Coords) Reset() {
	c.Frame = 0
	c.Scanline = 0
	c.Clk = 0
}
