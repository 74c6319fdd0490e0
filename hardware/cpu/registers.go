package cpu

import (
	"fmt"
	"strings"
)

// bits of the status register
const (
	FlagCarry     = 0x01
	FlagZero      = 0x02
	FlagInterrupt = 0x04
	FlagDecimal   = 0x08
	FlagBreak     = 0x10
	FlagUnused    = 0x20
	FlagOverflow  = 0x40
	FlagNegative  = 0x80
)

// Registers of the 65C02
type Registers struct {
	PC     uint16
	SP     uint8
	A      uint8
	X      uint8
	Y      uint8
	Status uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=$%04x SP=$%02x A=$%02x X=$%02x Y=$%02x SR=%s",
		r.PC, r.SP, r.A, r.X, r.Y, StatusString(r.Status))
}

// StatusString returns the status register as a string of flags. An upper
// case letter indicates the flag is set
func StatusString(status uint8) string {
	var s strings.Builder
	for i, c := range "nv-bdizc" {
		if status&(0x80>>i) != 0 {
			s.WriteString(strings.ToUpper(string(c)))
		} else {
			s.WriteRune(c)
		}
	}
	return s.String()
}
