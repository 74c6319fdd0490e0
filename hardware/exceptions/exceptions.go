// Package exceptions implements the interrupt controller. Up to eight devices
// share a single level-triggered IRQ output. Each device is given a Line when
// it connects to the controller.
//
// The non-maskable interrupt is a separate Signal. It is edge-triggered but
// the detection of the edge is the responsibility of the CPU.
package exceptions

import (
	"fmt"
	"strings"
)

// NumPins is the number of device lines the controller can aggregate
const NumPins = 8

// Controller aggregates the device lines into a single IRQ output
type Controller struct {
	// a value of true means the pin is released
	pins   [NumPins]bool
	active bool

	// the next id to be returned by Connect()
	next int

	// NMI is independent of the IRQ pins
	NMI Signal
}

// Create a Controller with all pins released
func Create() *Controller {
	ic := &Controller{}
	ic.Reset()
	return ic
}

// Reset releases all pins and the NMI signal. Connected lines are unaffected
func (ic *Controller) Reset() {
	for i := range ic.pins {
		ic.pins[i] = true
	}
	ic.active = false
	ic.NMI.Release()
}

func (ic *Controller) Label() string {
	return "IC"
}

func (ic *Controller) Status() string {
	return ic.String()
}

func (ic *Controller) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: irq=%v nmi=%v pins=", ic.Label(), ic.active, ic.NMI.IsActive()))
	for i := range ic.pins {
		if ic.pins[i] {
			s.WriteRune('-')
		} else {
			s.WriteRune('*')
		}
	}
	return s.String()
}

// Connect returns a Line for a new device. The pins are assigned in order and
// wrap around after the eighth device. There is no check for a pin being
// shared by more than one device
func (ic *Controller) Connect() Line {
	l := Line{ic: ic, id: ic.next}
	ic.next = (ic.next + 1) & (NumPins - 1)
	return l
}

// Pull asserts the pin. The id is masked to the number of pins
func (ic *Controller) Pull(id int) {
	ic.pins[id&(NumPins-1)] = false
	ic.update()
}

// Release the pin. The id is masked to the number of pins
func (ic *Controller) Release(id int) {
	ic.pins[id&(NumPins-1)] = true
	ic.update()
}

func (ic *Controller) update() {
	ic.active = false
	for _, p := range ic.pins {
		if !p {
			ic.active = true
			return
		}
	}
}

// IRQ returns true while any pin is pulled
func (ic *Controller) IRQ() bool {
	return ic.active
}

// NMIActive returns true while the NMI signal is asserted
func (ic *Controller) NMIActive() bool {
	return ic.NMI.IsActive()
}

// Pin returns true if the pin is currently pulled
func (ic *Controller) Pin(id int) bool {
	return !ic.pins[id&(NumPins-1)]
}

// Line is a device's connection to the controller
type Line struct {
	ic *Controller
	id int
}

// ID of the pin the line is connected to
func (l Line) ID() int {
	return l.id
}

// Assert pulls the line's pin
func (l Line) Assert() {
	l.ic.Pull(l.id)
}

// Release the line's pin
func (l Line) Release() {
	l.ic.Release(l.id)
}

// IsActive returns true if the line's pin is pulled
func (l Line) IsActive() bool {
	return l.ic.Pin(l.id)
}

// Signal is a standalone interrupt input
type Signal struct {
	active bool
}

func (s *Signal) Assert() {
	s.active = true
}

func (s *Signal) Release() {
	s.active = false
}

func (s *Signal) IsActive() bool {
	return s.active
}
