package blitter

import (
	"fmt"
	"strings"
)

// the default number of calls to ProcessCursorState() between each change
// of the cursor. at 60Hz this is one third of a second
const cursorInterval = 20

// Terminal treats a descriptor's tiles as a grid of characters. The
// descriptor should be in tile mode with colour per tile and the font flag
// set
type Terminal struct {
	blt *Blitter
	n   uint8

	cursorInterval  int
	cursorCountdown int
	cursorBlinking  bool

	// the tile under the cursor when it was activated
	originalChar       uint8
	originalForeground uint16
	originalBackground uint16
}

func (t *Terminal) desc() *Descriptor {
	return &t.blt.descriptors[t.n]
}

// Init the descriptor for use as a terminal
func (t *Terminal) Init(flags0 uint8, flags1 uint8, size uint8, fg uint16, bg uint16) {
	d := t.desc()
	d.Flags0 = flags0
	d.Flags1 = flags1
	d.SetSize(size)
	d.Foreground = fg
	d.Background = bg
}

func (t *Terminal) set(pos int, char uint8) {
	d := t.desc()
	t.blt.Arena.SetTile(t.n, uint16(pos), char)
	t.blt.Arena.SetForeground(t.n, uint16(pos), d.Foreground)
	t.blt.Arena.SetBackground(t.n, uint16(pos), d.Background)
}

func (t *Terminal) copyTile(to int, from int) {
	a := t.blt.Arena
	a.SetTile(t.n, uint16(to), a.Tile(t.n, uint16(from)))
	a.SetForeground(t.n, uint16(to), a.Foreground(t.n, uint16(from)))
	a.SetBackground(t.n, uint16(to), a.Background(t.n, uint16(from)))
}

// Clear the terminal and move the cursor to the top left
func (t *Terminal) Clear() {
	d := t.desc()
	for i := range d.Tiles() {
		t.set(i, ' ')
	}
	d.Cursor = 0
	t.cursorInterval = cursorInterval
	t.cursorCountdown = 0
	t.cursorBlinking = false
}

// Tile returns the character at the position
func (t *Terminal) Tile(pos int) uint8 {
	return t.blt.Arena.Tile(t.n, uint16(pos))
}

// PutSymbol writes the symbol at the cursor and advances the cursor. There
// is no interpretation of control characters
func (t *Terminal) PutSymbol(symbol uint8) {
	d := t.desc()
	t.set(int(d.Cursor), symbol)
	d.Cursor++
	if int(d.Cursor) >= d.Tiles() {
		t.AddBottomRow()
		d.Cursor -= uint16(d.Columns())
	}
}

// PutChar writes the character at the cursor. Carriage return, newline and
// tab are interpreted
func (t *Terminal) PutChar(char uint8) uint8 {
	d := t.desc()
	columns := uint16(d.Columns())

	switch char {
	case '\r':
		d.Cursor -= d.Cursor % columns
	case '\n':
		d.Cursor -= d.Cursor % columns
		if int(d.Cursor/columns) == d.Rows()-1 {
			t.AddBottomRow()
		} else {
			d.Cursor += columns
		}
	case '\t':
		for (d.Cursor%columns)&0x03 != 0 {
			t.PutSymbol(' ')
		}
	default:
		t.PutSymbol(char)
	}

	return char
}

// Puts writes the string at the cursor. Returns the number of characters
// written
func (t *Terminal) Puts(s string) int {
	for i := range len(s) {
		t.PutChar(s[i])
	}
	return len(s)
}

// Printf formats the string and writes it at the cursor
func (t *Terminal) Printf(format string, a ...any) int {
	return t.Puts(fmt.Sprintf(format, a...))
}

// Prompt moves the cursor to the start of a new line
func (t *Terminal) Prompt() {
	t.PutChar('\n')
}

func (t *Terminal) ActivateCursor() {
	d := t.desc()
	a := t.blt.Arena
	t.originalChar = a.Tile(t.n, d.Cursor)
	t.originalForeground = a.Foreground(t.n, d.Cursor)
	t.originalBackground = a.Background(t.n, d.Cursor)
	t.cursorBlinking = true
	t.cursorCountdown = 0
}

func (t *Terminal) DeactivateCursor() {
	d := t.desc()
	a := t.blt.Arena
	t.cursorBlinking = false
	a.SetTile(t.n, d.Cursor, t.originalChar)
	a.SetForeground(t.n, d.Cursor, t.originalForeground)
	a.SetBackground(t.n, d.Cursor, t.originalBackground)
}

func (t *Terminal) CursorLeft() {
	d := t.desc()
	if d.Cursor > 0 {
		d.Cursor--
	}
}

func (t *Terminal) CursorRight() {
	d := t.desc()
	d.Cursor++
	if int(d.Cursor) > d.Tiles()-1 {
		t.AddBottomRow()
		d.Cursor -= uint16(d.Columns())
	}
}

// CursorUp moves the cursor up one row. The contents of the terminal scroll
// down if the cursor is on the top row
func (t *Terminal) CursorUp() {
	d := t.desc()
	d.Cursor -= uint16(d.Columns())
	if int(d.Cursor) >= d.Tiles() {
		t.AddTopRow()
	}
}

// CursorDown moves the cursor down one row. The contents of the terminal
// scroll up if the cursor is on the bottom row
func (t *Terminal) CursorDown() {
	d := t.desc()
	d.Cursor += uint16(d.Columns())
	if int(d.Cursor) >= d.Tiles() {
		t.AddBottomRow()
		d.Cursor -= uint16(d.Columns())
	}
}

// Backspace removes the character to the left of the cursor. The rest of the
// line moves left
func (t *Terminal) Backspace() {
	d := t.desc()
	columns := d.Columns()
	pos := int(d.Cursor)
	if pos > 0 {
		d.Cursor--
		for pos%columns != 0 {
			t.copyTile(pos-1, pos)
			pos++
		}
		t.set(pos-1, ' ')
	}
}

// AddBottomRow scrolls the terminal up by one row. The new bottom row is
// blank
func (t *Terminal) AddBottomRow() {
	d := t.desc()
	columns := d.Columns()
	tiles := d.Tiles()
	for i := range tiles - columns {
		t.copyTile(i, i+columns)
	}
	for i := tiles - columns; i < tiles; i++ {
		t.set(i, ' ')
	}
}

// AddTopRow inserts a blank row at the cursor. The rows below the cursor
// move down and the bottom row is lost
func (t *Terminal) AddTopRow() {
	d := t.desc()
	columns := d.Columns()
	d.Cursor += uint16(columns)
	start := int(d.Cursor) - t.Column()
	for i := d.Tiles() - 1; i >= start+columns; i-- {
		t.copyTile(i, i-columns)
	}
	for i := range columns {
		t.set(start+i, ' ')
	}
}

// LinesRemaining is the number of rows below the cursor
func (t *Terminal) LinesRemaining() int {
	d := t.desc()
	return d.Rows() - int(d.Cursor)/d.Columns() - 1
}

// Column of the cursor
func (t *Terminal) Column() int {
	d := t.desc()
	return int(d.Cursor) % d.Columns()
}

// Row of the cursor
func (t *Terminal) Row() int {
	d := t.desc()
	return int(d.Cursor) / d.Columns()
}

// Columns in a row of the terminal
func (t *Terminal) Columns() int {
	return t.desc().Columns()
}

// CursorBlinking returns true if the cursor is active
func (t *Terminal) CursorBlinking() bool {
	return t.cursorBlinking
}

// ProcessCursorState should be called once per frame. The character under
// an active cursor is inverted every cursor interval
func (t *Terminal) ProcessCursorState() {
	if !t.cursorBlinking {
		return
	}
	if t.cursorCountdown == 0 {
		d := t.desc()
		t.blt.Arena.SetTile(t.n, d.Cursor, t.blt.Arena.Tile(t.n, d.Cursor)^0x80)
		t.cursorCountdown += t.cursorInterval
	}
	t.cursorCountdown--
}

// EnterCommand returns the contents of the row the cursor is on, without
// trailing spaces
func (t *Terminal) EnterCommand() string {
	d := t.desc()
	columns := d.Columns()
	start := int(d.Cursor) - int(d.Cursor)%columns
	b := make([]byte, columns)
	for i := range b {
		b[i] = t.Tile(start + i)
	}
	return strings.TrimRight(string(b), " ")
}
