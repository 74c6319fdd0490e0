// Package ebiten is the host window of the emulator. It shows the images sent
// by the machine and forwards keyboard input to it.
package ebiten

import (
	"image/color"
	"math"

	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/hardware/spec"
	"github.com/elmerucr/E64-SQ/logger"
	"github.com/elmerucr/E64-SQ/version"
	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"
)

// the initial scaling of the window
const windowScale = 3

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State

	main   *ebiten.Image
	cursor [2]int

	// a simple counter used to implement a fade-in/fade-out effect for the
	// beam cursor
	cursorFrame int

	inputSystem  input.System
	inputHandler *input.Handler
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	eg.inputSystem.Update()
	err := eg.inputHost()
	if err != nil {
		return ebiten.Termination
	}
	eg.inputKeyboard()

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
	default:
	}

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		eg.cursor = img.Cursor
		if img.Main != nil {
			if eg.main == nil || eg.main.Bounds() != img.Main.Bounds() {
				eg.main = ebiten.NewImage(img.Main.Bounds().Dx(), img.Main.Bounds().Dy())
			}
			eg.main.WritePixels(img.Main.Pix)
		}
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	eg.cursorFrame++

	if eg.main != nil {
		screen.DrawImage(eg.main, &ebiten.DrawImageOptions{})

		// draw cursor if emulation is paused
		if eg.state == gui.StatePaused {
			v := uint8((math.Sin(float64(eg.cursorFrame/10))*0.5 + 0.5) * 255)
			c := color.RGBA{R: v, G: v, B: v, A: 255}
			screen.Set(eg.cursor[0], eg.cursor[1], c)
			screen.Set(eg.cursor[0]+1, eg.cursor[1], c)
			screen.Set(eg.cursor[0], eg.cursor[1]+1, c)
			screen.Set(eg.cursor[0]+1, eg.cursor[1]+1, c)
		}
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return spec.Width, spec.Height
}

// Launch the host window. The function returns when the window is closed or
// when endGui receives a value
func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Width*windowScale, spec.Height*windowScale)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StateRunning,
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	eg.inputHandler = eg.inputSystem.NewHandler(0, keymap)

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
