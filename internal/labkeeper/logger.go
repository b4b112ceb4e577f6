package labkeeper

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// Logger writes styled progress lines to stdout and appends a timestamped
// plain-text copy of every message to the maintenance log. Log-file write
// failures are swallowed: the log must never take a maintenance run down.
type Logger struct {
	path   string
	styled bool
}

// NewLogger returns a logger appending to path. Styles are dropped when
// stdout is not a terminal. The file is only created on the first message.
func NewLogger(path string) *Logger {
	return &Logger{
		path:   path,
		styled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (l *Logger) Infof(format string, a ...any)    { l.record(colInfo, format, a...) }
func (l *Logger) Successf(format string, a ...any) { l.record(colSuccess, format, a...) }
func (l *Logger) Warnf(format string, a ...any)    { l.record(colWarn, format, a...) }
func (l *Logger) Errorf(format string, a ...any)   { l.record(colError, format, a...) }

func (l *Logger) record(style colorPrinter, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if l.styled {
		colArrow.Print("-> ")
		cPrintln(style, msg)
	} else {
		fmt.Println("->", msg)
	}
	l.append(msg)
}

// append writes one "<timestamp>: <message>" line. Append-only, no rotation.
func (l *Logger) append(msg string) {
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s: %s\n", time.Now().Format("2006-01-02 15:04:05"), msg)
}
