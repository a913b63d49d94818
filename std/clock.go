/*
File    : glox/std/clock.go
*/

// Package std holds the language's native (Go-implemented) builtins. Lox
// ships exactly one: clock. Everything the teacher's much larger standard
// library covered — collections, I/O, formatting, crypto, HTTP, regex — is
// out of scope here (see DESIGN.md); this package holds only the
// constructor for that one function, which eval.New binds as a global.
package std

import (
	"time"

	"github.com/loxlang/glox/objects"
)

// Clock returns the native `clock()` builtin: zero arguments, yielding the
// number of seconds since the Unix epoch as a float64, the way jlox's
// System.currentTimeMillis()-backed clock() does. It's the interpreter's
// only window onto wall-clock time, useful for benchmarking Lox programs
// written against this implementation.
func Clock() *objects.NativeFunction {
	return &objects.NativeFunction{
		Name:     "clock",
		ArityVal: 0,
		Fn: func(args []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	}
}
