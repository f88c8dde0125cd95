// Package logger provides a small leveled logger with a colored prefix,
// one per component (APP, SERVER, SESSION, CLI).
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

// Color constants for prefixes.
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// Logger writes lines shaped "[PREFIX] [LEVEL] message".
type Logger struct {
	out   *log.Logger
	debug atomic.Bool
}

// New creates a Logger. color may be empty to disable colors.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is empty")
	}
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}
	tag := fmt.Sprintf("[%s] ", prefix)
	if color != "" {
		tag = color + tag + ColorReset
	}
	return &Logger{out: log.New(w, tag, log.LstdFlags|log.Lmsgprefix)}, nil
}

// SetDebug enables or disables Debug output.
func (l *Logger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *Logger) Info(msg string) { l.out.Print("[INFO] " + msg) }

func (l *Logger) Warning(msg string) { l.out.Print("[WARNING] " + msg) }

func (l *Logger) Error(msg string) { l.out.Print("[ERROR] " + msg) }

func (l *Logger) Debug(msg string) {
	if l.debug.Load() {
		l.out.Print("[DEBUG] " + msg)
	}
}
