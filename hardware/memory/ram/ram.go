package ram

import (
	"fmt"
	"strings"
)

// Size of the main RAM
const Size = 0x10000

type RAM struct {
	label string
	data  []uint8
}

func Create(label string, size int) *RAM {
	r := &RAM{
		label: label,
		data:  make([]uint8, size),
	}
	r.Reset()
	return r
}

// Reset fills the RAM with alternating blocks of 0x00 and 0x10
func (r *RAM) Reset() {
	for i := range r.data {
		if i&64 == 64 {
			r.data[i] = 0x10
		} else {
			r.data[i] = 0x00
		}
	}
}

// Dump returns a string of hex values for the range of addresses. Each line
// of the string begins with the address of the first value on that line
func (r *RAM) Dump(from uint16, to uint16) string {
	var s strings.Builder
	for i := int(from) &^ 0x0f; i <= int(to) && i < len(r.data); i += 16 {
		end := min(i+16, len(r.data))
		s.WriteString(fmt.Sprintf("%04x: % 02x\n", i, r.data[i:end]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r *RAM) String() string {
	return r.Dump(0, uint16(len(r.data)-1))
}

func (r *RAM) Label() string {
	return r.label
}

func (r *RAM) Read(idx uint16) uint8 {
	return r.data[int(idx)%len(r.data)]
}

func (r *RAM) Write(idx uint16, data uint8) {
	r.data[int(idx)%len(r.data)] = data
}
