package matprop

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Logger is what the scheduler reports task lifecycle events to.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// LoggingOptions configures NewLogger. Nil writers fall back to stdout for
// debug and info and to stderr for warnings and errors, with timestamps.
// Lines sent to caller-supplied writers carry no timestamp.
type LoggingOptions struct {
	Prefix    string
	Debug     bool
	Output    io.Writer
	ErrOutput io.Writer
}

// StdLogger writes "[prefix] LEVEL: message" lines through the standard log
// package. Debug output can be toggled at runtime.
type StdLogger struct {
	prefix string
	debug  atomic.Bool
	out    *log.Logger
	err    *log.Logger
}

func (o LoggingOptions) NewLogger() *StdLogger {
	out, errOut := o.Output, o.ErrOutput
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	flags := log.LstdFlags | log.Lmicroseconds
	if o.Output != nil || o.ErrOutput != nil {
		flags = 0
	}
	l := &StdLogger{
		prefix: o.Prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
	l.debug.Store(o.Debug)
	return l
}

func (l *StdLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }
func (l *StdLogger) DebugEnabled() bool    { return l.debug.Load() }

func (l *StdLogger) logf(level LogLevel, format string, args ...any) {
	if level == LevelDebug && !l.debug.Load() {
		return
	}
	dst := l.out
	if level >= LevelWarn {
		dst = l.err
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		dst.Printf("%s: %s", level, msg)
		return
	}
	dst.Printf("[%s] %s: %s", l.prefix, level, msg)
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
