// Package cia implements the keyboard interface of the E64. Key events from
// the host are queued and read by the program one at a time. The state of
// every key is also available as a register that records the most recent
// samples of the key.
//
// Registers:
//
//	0x00     status. bit 0 is set while key events are queued. writing bit 0
//	         discards all queued events
//	0x01     next key event. reading removes the event from the queue. bit 7
//	         is set for a key release. zero if the queue is empty
//	0x80-0xff key state. bit 0 is the latest sample of the key, bit 1 the
//	         sample before that and so on
package cia

import (
	"fmt"

	"github.com/elmerucr/E64-SQ/hardware/clocks"
)

// register indexes
const (
	RegStatus = 0x00
	RegEvent  = 0x01
	RegKeys   = 0x80
)

// ReleaseBit is set in a key event when the key was released
const ReleaseBit = 0x80

// the number of cycles between samples of the key states (1ms)
const sampleInterval = clocks.DotClock / 1000

// the maximum number of events that can be queued. a full queue drops new
// events
const queueSize = 64

type CIA struct {
	// current state of each key as reported by the host
	pressed [NumScancodes]bool

	// sampled history of each key
	keys [NumScancodes]uint8

	queue [queueSize]uint8
	head  int
	count int

	countdown int
}

func Create() *CIA {
	c := &CIA{}
	c.Reset()
	return c
}

func (c *CIA) Reset() {
	clear(c.pressed[:])
	clear(c.keys[:])
	c.head = 0
	c.count = 0
	c.countdown = sampleInterval
}

func (c *CIA) Label() string {
	return "CIA"
}

func (c *CIA) Status() string {
	return c.String()
}

func (c *CIA) String() string {
	var down int
	for _, p := range c.pressed {
		if p {
			down++
		}
	}
	return fmt.Sprintf("%s: queued=%d pressed=%d", c.Label(), c.count, down)
}

func (c *CIA) push(event uint8) {
	if c.count >= queueSize {
		return
	}
	c.queue[(c.head+c.count)%queueSize] = event
	c.count++
}

func (c *CIA) pop() uint8 {
	if c.count == 0 {
		return 0
	}
	e := c.queue[c.head]
	c.head = (c.head + 1) % queueSize
	c.count--
	return e
}

// Press records a key being pressed by the host. Repeated presses of a key
// that is already down are ignored
func (c *CIA) Press(key Scancode) {
	if key >= NumScancodes || c.pressed[key] {
		return
	}
	c.pressed[key] = true
	c.push(uint8(key))
}

// Release records a key being released by the host
func (c *CIA) Release(key Scancode) {
	if key >= NumScancodes || !c.pressed[key] {
		return
	}
	c.pressed[key] = false
	c.push(uint8(key) | ReleaseBit)
}

// Queued returns the number of key events waiting to be read
func (c *CIA) Queued() int {
	return c.count
}

// Run the chip for the number of cycles. Key states are sampled every
// millisecond
func (c *CIA) Run(cycles int) {
	c.countdown -= cycles
	for c.countdown <= 0 {
		c.countdown += sampleInterval
		for i := range c.keys {
			c.keys[i] <<= 1
			if c.pressed[i] {
				c.keys[i] |= 0x01
			}
		}
	}
}

// Read implements the memory.Area interface
func (c *CIA) Read(idx uint16) uint8 {
	idx &= 0xff
	switch {
	case idx == RegStatus:
		if c.count > 0 {
			return 0x01
		}
		return 0x00
	case idx == RegEvent:
		return c.pop()
	case idx >= RegKeys:
		k := idx - RegKeys
		if k < uint16(NumScancodes) {
			return c.keys[k]
		}
	}
	return 0
}

// Peek implements the memory.Peeker interface. The key event queue is not
// changed
func (c *CIA) Peek(idx uint16) uint8 {
	if idx&0xff == RegEvent {
		if c.count == 0 {
			return 0
		}
		return c.queue[c.head]
	}
	return c.Read(idx)
}

// Write implements the memory.Area interface
func (c *CIA) Write(idx uint16, data uint8) {
	if idx&0xff == RegStatus && data&0x01 == 0x01 {
		c.head = 0
		c.count = 0
	}
}
