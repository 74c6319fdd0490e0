package ebiten

import (
	"github.com/elmerucr/E64-SQ/gui"
	"github.com/elmerucr/E64-SQ/hardware/cia"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"
)

// actions that control the emulation rather than being passed to the
// emulated keyboard
const (
	actionPause input.Action = iota
	actionReset
	actionQuit
)

var keymap = input.Keymap{
	actionPause: {input.KeyF9, input.KeyGamepadStart},
	actionReset: {input.KeyF10, input.KeyGamepadBack},
	actionQuit:  {input.KeyF12},
}

func (eg *guiEbiten) sendInput(inp gui.Input) {
	select {
	case eg.g.UserInput <- inp:
	default:
	}
}

func (eg *guiEbiten) inputHost() error {
	if eg.inputHandler.ActionIsJustPressed(actionQuit) {
		return ebiten.Termination
	}
	if eg.inputHandler.ActionIsJustPressed(actionPause) {
		eg.sendInput(gui.Input{Action: gui.Pause})
	}
	if eg.inputHandler.ActionIsJustPressed(actionReset) {
		eg.sendInput(gui.Input{Action: gui.Reset})
	}
	return nil
}

// the host keys that correspond to keys on the emulated keyboard
var scancodes = map[ebiten.Key]cia.Scancode{
	ebiten.KeyEscape:       cia.ScanEscape,
	ebiten.KeyF1:           cia.ScanF1,
	ebiten.KeyF2:           cia.ScanF2,
	ebiten.KeyF3:           cia.ScanF3,
	ebiten.KeyF4:           cia.ScanF4,
	ebiten.KeyF5:           cia.ScanF5,
	ebiten.KeyF6:           cia.ScanF6,
	ebiten.KeyF7:           cia.ScanF7,
	ebiten.KeyF8:           cia.ScanF8,
	ebiten.KeyBackquote:    cia.ScanGrave,
	ebiten.KeyDigit1:       cia.Scan1,
	ebiten.KeyDigit2:       cia.Scan2,
	ebiten.KeyDigit3:       cia.Scan3,
	ebiten.KeyDigit4:       cia.Scan4,
	ebiten.KeyDigit5:       cia.Scan5,
	ebiten.KeyDigit6:       cia.Scan6,
	ebiten.KeyDigit7:       cia.Scan7,
	ebiten.KeyDigit8:       cia.Scan8,
	ebiten.KeyDigit9:       cia.Scan9,
	ebiten.KeyDigit0:       cia.Scan0,
	ebiten.KeyMinus:        cia.ScanMinus,
	ebiten.KeyEqual:        cia.ScanEquals,
	ebiten.KeyBackspace:    cia.ScanBackspace,
	ebiten.KeyTab:          cia.ScanTab,
	ebiten.KeyQ:            cia.ScanQ,
	ebiten.KeyW:            cia.ScanW,
	ebiten.KeyE:            cia.ScanE,
	ebiten.KeyR:            cia.ScanR,
	ebiten.KeyT:            cia.ScanT,
	ebiten.KeyY:            cia.ScanY,
	ebiten.KeyU:            cia.ScanU,
	ebiten.KeyI:            cia.ScanI,
	ebiten.KeyO:            cia.ScanO,
	ebiten.KeyP:            cia.ScanP,
	ebiten.KeyBracketLeft:  cia.ScanLeftBracket,
	ebiten.KeyBracketRight: cia.ScanRightBracket,
	ebiten.KeyEnter:        cia.ScanReturn,
	ebiten.KeyA:            cia.ScanA,
	ebiten.KeyS:            cia.ScanS,
	ebiten.KeyD:            cia.ScanD,
	ebiten.KeyF:            cia.ScanF,
	ebiten.KeyG:            cia.ScanG,
	ebiten.KeyH:            cia.ScanH,
	ebiten.KeyJ:            cia.ScanJ,
	ebiten.KeyK:            cia.ScanK,
	ebiten.KeyL:            cia.ScanL,
	ebiten.KeySemicolon:    cia.ScanSemicolon,
	ebiten.KeyQuote:        cia.ScanApostrophe,
	ebiten.KeyBackslash:    cia.ScanBackslash,
	ebiten.KeyShiftLeft:    cia.ScanLShift,
	ebiten.KeyZ:            cia.ScanZ,
	ebiten.KeyX:            cia.ScanX,
	ebiten.KeyC:            cia.ScanC,
	ebiten.KeyV:            cia.ScanV,
	ebiten.KeyB:            cia.ScanB,
	ebiten.KeyN:            cia.ScanN,
	ebiten.KeyM:            cia.ScanM,
	ebiten.KeyComma:        cia.ScanComma,
	ebiten.KeyPeriod:       cia.ScanPeriod,
	ebiten.KeySlash:        cia.ScanSlash,
	ebiten.KeyShiftRight:   cia.ScanRShift,
	ebiten.KeyControlLeft:  cia.ScanLCtrl,
	ebiten.KeySpace:        cia.ScanSpace,
	ebiten.KeyControlRight: cia.ScanRCtrl,
	ebiten.KeyArrowLeft:    cia.ScanLeft,
	ebiten.KeyArrowUp:      cia.ScanUp,
	ebiten.KeyArrowDown:    cia.ScanDown,
	ebiten.KeyArrowRight:   cia.ScanRight,
}

func (eg *guiEbiten) inputKeyboard() {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range released {
		if sc, ok := scancodes[k]; ok {
			eg.sendInput(gui.Input{Action: gui.KeyRelease, Data: sc})
		}
	}

	for _, k := range pressed {
		if sc, ok := scancodes[k]; ok {
			eg.sendInput(gui.Input{Action: gui.KeyPress, Data: sc})
		}
	}
}
