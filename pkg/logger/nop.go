package logger

import "context"

type nopLogger struct{}

// NewNop returns a logger that discards everything, handy in tests.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...Field)                  {}
func (nopLogger) Info(string, ...Field)                   {}
func (nopLogger) Warn(string, ...Field)                   {}
func (nopLogger) Error(string, ...Field)                  {}
func (nopLogger) Fatal(string, ...Field)                  {}
func (n nopLogger) WithContext(context.Context) Logger    { return n }
func (n nopLogger) WithFields(...Field) Logger            { return n }
func (nopLogger) Sync() error                             { return nil }
