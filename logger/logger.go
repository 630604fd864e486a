/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for the translator.
// A process-wide default is used unless a component is given its own Logger.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG shows every rewrite the converter performs
	DEBUG Level = iota
	// INFO general information
	INFO
	// WARN warnings
	WARN
	// ERROR errors only
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	default:
		return OFF, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel sets the log level. Safe to call while other goroutines log.
	SetLevel(level Level)
	// Named returns a logger that prefixes every line with the component name
	// and shares this logger's output and level.
	Named(name string) Logger
	// WithLevel returns a logger sharing this logger's output and name with a level
	// of its own. SetLevel on either one leaves the other untouched.
	WithLevel(level Level) Logger
}

type sink struct {
	mu     sync.Mutex
	logger *log.Logger
}

// defaultLogger is the default log implementation
type defaultLogger struct {
	sink  *sink
	level *atomic.Int32
	name  string
}

func newLevel(level Level) *atomic.Int32 {
	l := new(atomic.Int32)
	l.Store(int32(level))
	return l
}

// NewLogger creates a new logger writing to output.
//
// Example:
//
//	log := NewLogger(INFO, os.Stderr)
//	log.Info("converter ready")
func NewLogger(level Level, output io.Writer) Logger {
	return &defaultLogger{
		sink:  &sink{logger: log.New(output, "", 0)},
		level: newLevel(level),
	}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) Named(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &defaultLogger{sink: l.sink, level: l.level, name: name}
}

func (l *defaultLogger) WithLevel(level Level) Logger {
	return &defaultLogger{sink: l.sink, level: newLevel(level), name: l.name}
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := Level(l.level.Load())
	if current == OFF || level < current {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	var line string
	if l.name != "" {
		line = fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, level, l.name, message)
	} else {
		line = fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
	}
	l.sink.mu.Lock()
	l.sink.logger.Println(line)
	l.sink.mu.Unlock()
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (d discardLogger) Named(name string) Logger               { return d }
func (d discardLogger) WithLevel(level Level) Logger           { return d }

var (
	defaultMu       sync.RWMutex
	defaultInstance Logger = NewLogger(WARN, os.Stderr)
)

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultMu.Lock()
	defaultInstance = logger
	defaultMu.Unlock()
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInstance
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
