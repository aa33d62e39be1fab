// Package logging holds the package-level diagnostic logger used by galspc components.
//
// The codec is silent by default. Applications that want diagnostics redirect Logf with
// SetLogger (for example to log.Printf); components also accept a per-instance logger
// through their options.
package logging

import "sync/atomic"

// Func is the printf-style logger signature accepted throughout galspc.
type Func func(format string, v ...any)

var current atomic.Pointer[Func]

func init() {
	SetLogger(nil)
}

// Logf logs through the current package logger.
func Logf(format string, v ...any) {
	(*current.Load())(format, v...)
}

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f Func) {
	if f == nil {
		f = Discard
	}
	current.Store(&f)
}

// Discard is a logger that drops every message.
func Discard(string, ...any) {}

// Or returns f, or the package logger when f is nil.
func Or(f Func) Func {
	if f != nil {
		return f
	}

	return Logf
}
