package main

import (
	"fmt"
	"os"

	"github.com/elmerucr/E64-SQ/debugger"
	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/gui/ebiten"
)

func main() {
	opts, err := debugger.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(2)
	}

	if opts.NoGUI {
		if err := debugger.Launch(make(chan bool), nil, opts); err != nil {
			fmt.Printf("*** %s\n", err)
		}
		return
	}

	var endGui chan bool
	var endDebugger chan bool
	var resultGui chan error
	var resultDebugger chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the debugger and vice versa
	endGui = make(chan bool, 1)
	endDebugger = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and debugger will end
	resultGui = make(chan error, 1)
	resultDebugger = make(chan error, 1)

	g := gui.NewGUI()

	go func() {
		resultDebugger <- debugger.Launch(endDebugger, g, opts)
		endGui <- true
	}()

	// the window must run on the main thread
	resultGui <- ebiten.Launch(endGui, g)
	endDebugger <- true

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultDebugger; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
