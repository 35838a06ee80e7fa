// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

// Package logging holds the process-wide logrus logger used by the worker
// pool and the matbench CLI.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu   sync.RWMutex
	log  *logrus.Logger
	file *os.File // opened by Init, closed on the next Init or Close
)

// Init configures the logger. An unknown level falls back to info.
// When console is false and logFile is empty, output is discarded.
// A log file opened by a previous Init is closed.
func Init(level, logFile string, console bool) error {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stderr)
	}
	var f *os.File
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		f, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}
	if len(writers) == 0 {
		l.SetOutput(io.Discard)
	} else {
		l.SetOutput(io.MultiWriter(writers...))
	}

	mu.Lock()
	prev := file
	log, file = l, f
	mu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close closes the log file opened by Init, if any, and discards further
// output until the next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	if log != nil {
		log.SetOutput(io.Discard)
	}
	err := file.Close()
	file = nil
	return err
}

// Get returns the logger, creating a warn-level stderr logger on first use so
// library code stays quiet unless a program opts in.
func Get() *logrus.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// SetOutput redirects the current logger, mainly for tests.
func SetOutput(w io.Writer) {
	Get().SetOutput(w)
}

// WithField starts a structured entry.
func WithField(key string, value any) *logrus.Entry {
	return Get().WithField(key, value)
}

// WithFields starts a structured entry with several fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}

func Debugf(format string, args ...any) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	Get().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Get().Errorf(format, args...)
}
