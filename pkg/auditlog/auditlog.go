// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

// Package auditlog writes an append-only JSON line per operation.
// The log is write-only: filegate never reads it back.
package auditlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger records tool invocations and their outcomes.
type Logger struct {
	logger *logrus.Logger
	file   *os.File
}

// Open appends to the JSON lines file at path, creating missing ancestor
// directories.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{logger: newLogger(f), file: f}, nil
}

// Fallback returns a Logger writing to stderr, for when the audit sink
// cannot be opened.
func Fallback() *Logger {
	return &Logger{logger: newLogger(os.Stderr)}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{logger: newLogger(io.Discard)}
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Record writes one line for a tool invocation. A nil err records a
// successful outcome.
func (a *Logger) Record(tool string, fields logrus.Fields, err error) {
	entry := a.logger.WithField("tool", tool).WithFields(fields)
	if err != nil {
		entry.WithError(err).Error("operation failed")
		return
	}
	entry.Info("operation completed")
}

func (a *Logger) Close() error {
	if a.file == nil {
		return nil
	}
	return a.file.Close()
}
