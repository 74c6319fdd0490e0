package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elmerucr/E64-SQ/hardware/memory"
)

type mappedAddress struct {
	address uint16
	area    memory.Area
	idx     uint16
}

// parseValue accepts decimal, 0x prefixed and $ prefixed numbers
func parseValue(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}
	return strconv.ParseUint(s, 0, bits)
}

func (m *debugger) parseAddress(address string) (mappedAddress, error) {
	var ma mappedAddress

	addr, err := parseValue(address, 16)
	if err != nil {
		return ma, fmt.Errorf("address is not valid: %s", address)
	}
	ma.address = uint16(addr)

	ma.idx, ma.area = m.machine.Mem.MapAddress(ma.address, true)
	if ma.area == nil {
		return ma, fmt.Errorf("address is not mapped: %s", address)
	}

	return ma, nil
}

// peek returns the value at the mapped address without side effects
func (ma mappedAddress) peek() uint8 {
	return memory.Peek(ma.area, ma.idx)
}
