// Package gui defines how the emulation communicates with the host window.
// All communication is by channel so the window and the emulation can run in
// different goroutines.
package gui

import (
	"image"
)

// State of the emulation as shown by the GUI
type State int

// List of valid State values
const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	}
	return "running"
}

// Image is sent from the emulation to the GUI once per frame
type Image struct {
	Main *image.RGBA

	// position of the beam in the image. the GUI marks the position while the
	// emulation is paused
	Cursor [2]int

	// the number of the frame that produced the image
	Frame int
}

type GUI struct {
	// images from the emulation. the emulation never blocks on sending an
	// image so the channel should be buffered
	SetImage chan Image

	// changes of emulation state
	State chan State

	// input from the user to the emulation
	UserInput chan Input
}

func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan Image, 1),
		State:     make(chan State, 1),
		UserInput: make(chan Input, 32),
	}
}

// SetState sends the state to the GUI without blocking. If a previous state
// has not yet been collected it is replaced
func (g *GUI) SetState(state State) {
	for {
		select {
		case g.State <- state:
			return
		default:
		}
		select {
		case <-g.State:
		default:
		}
	}
}
