// Package monitoring carries the diagnostic logger shared by the engine and
// the commands.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes logging.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Swap installs f and returns a function restoring the previous logger.
func Swap(f func(format string, v ...interface{})) (restore func()) {
	prev := Logf
	SetLogger(f)
	return func() { Logf = prev }
}
