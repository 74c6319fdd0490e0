// Package logger is a central log for the emulator. Entries are tagged and
// repeated entries are folded into a single line with a repeat count.
//
// Logging is permitted by passing a Permission. The Allow value will always
// log.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Permission decides whether a log entry should be recorded
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow always permits logging
var Allow Permission = allow{}

// Entry is a single line in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e Entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)\n", e.Tag, e.Detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s\n", e.Tag, e.Detail)
}

const maxEntries = 256

type logger struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central = &logger{}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", " ")

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].repeated++
		l.entries[n-1].Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		if len(l.entries) > maxEntries {
			l.entries = l.entries[len(l.entries)-maxEntries:]
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Log adds an entry to the central log. The detail can be a string, an error,
// a fmt.Stringer or any other value that can be printed with the %v verb
func Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	switch d := detail.(type) {
	case string:
		central.log(tag, d)
	case error:
		central.log(tag, d.Error())
	case fmt.Stringer:
		central.log(tag, d.String())
	default:
		central.log(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a formatted entry to the central log
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear removes all entries
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

// Write all entries to the io.Writer
func Write(output io.Writer) {
	Tail(output, -1)
}

// Tail writes the most recent entries to the io.Writer. A negative number
// writes every entry
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	if number < 0 || number > len(central.entries) {
		number = len(central.entries)
	}
	for _, e := range central.entries[len(central.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho writes new entries to the io.Writer as they are logged. A nil
// io.Writer stops the echo
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}

// EchoStderr is a convenience function for SetEcho(os.Stderr)
func EchoStderr() {
	SetEcho(os.Stderr)
}
