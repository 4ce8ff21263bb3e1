// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package humanlog implements a leveled console logger for the levm command
// line tools: colorized when stderr is a terminal, plain otherwise.
package humanlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level is a logging severity, ordered least to most severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// Logger writes leveled, key-value log lines to an output stream, matching
// the format `LEVEL[timestamp] msg key=value key=value`.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
	colorize bool
}

// New returns a Logger writing to w, which is wrapped with go-colorable if
// it is an *os.File (such as os.Stderr/os.Stdout) so ANSI codes render correctly on Windows
// consoles. Color is enabled only when the underlying stream is a terminal.
func New(w io.Writer, minLevel Level) *Logger {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}
	return &Logger{out: w, minLevel: minLevel, colorize: colorize}
}

// Default returns a Logger at LevelInfo writing to os.Stderr, the logger
// cmd/levm uses before any -verbosity flag is parsed.
func Default() *Logger { return New(os.Stderr, LevelInfo) }

func (l *Logger) log(level Level, msg string, kvs ...interface{}) {
	if level < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	tag := levelNames[level]
	if l.colorize {
		tag = levelColors[level].Sprint(tag)
	}
	fmt.Fprintf(l.out, "%-5s[%s] %s", tag, time.Now().Format("01-02|15:04:05.000"), msg)
	for i := 0; i+1 < len(kvs); i += 2 {
		fmt.Fprintf(l.out, " %v=%v", kvs[i], kvs[i+1])
	}
	if level == LevelError {
		if call, ok := callerAboveHandler(); ok {
			fmt.Fprintf(l.out, " caller=%+v", call)
		}
	}
	fmt.Fprintln(l.out)
}

// callerAboveHandler walks the goroutine's call stack past this package's
// own frames and returns the file:line of the code that called into the
// logger, matching log15's caller-annotation convention for error lines.
func callerAboveHandler() (stack.Call, bool) {
	trace := stack.Trace().TrimRuntime()
	for _, call := range trace {
		if !strings.Contains(fmt.Sprintf("%+v", call), "internal/humanlog") {
			return call, true
		}
	}
	return stack.Call{}, false
}

func (l *Logger) Trace(msg string, kvs ...interface{}) { l.log(LevelTrace, msg, kvs...) }
func (l *Logger) Debug(msg string, kvs ...interface{}) { l.log(LevelDebug, msg, kvs...) }
func (l *Logger) Info(msg string, kvs ...interface{})  { l.log(LevelInfo, msg, kvs...) }
func (l *Logger) Warn(msg string, kvs ...interface{})  { l.log(LevelWarn, msg, kvs...) }
func (l *Logger) Error(msg string, kvs ...interface{}) { l.log(LevelError, msg, kvs...) }

// ParseLevel maps a CLI verbosity name to a Level, defaulting to LevelInfo
// for an unrecognized string.
func ParseLevel(name string) Level {
	switch name {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
