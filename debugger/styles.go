package debugger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	instruction lipgloss.Style
	cpu         lipgloss.Style
	mem         lipgloss.Style
	video       lipgloss.Style
	chip        lipgloss.Style
	err         lipgloss.Style
	breakpoint  lipgloss.Style
	watch       lipgloss.Style
	debugger    lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

// newStyles returns the styles for the debugger output. Styling is dropped
// entirely when the output is not a terminal
func newStyles(out io.Writer, terminal bool) styles {
	r := lipgloss.NewRenderer(out)
	if terminal {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		instruction: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		cpu:         r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:         r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		video:       r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		chip:        r.NewStyle().Foreground(lipgloss.ANSIColor(14)),
		err:         r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		breakpoint:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		watch:       r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		debugger:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
