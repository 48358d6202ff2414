// Package util holds the small helpers shared by the type library, its CLI
// and the golden-file tester.
package util

import "fmt"

// Try returns v, panicking if err is set. Meant for values that cannot fail
// short of a programming error.
func Try[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("util.Try: %w", err))
	}
	return v
}

// Assert panics with msg when cond is false.
func Assert(cond bool, msg fmt.Stringer) {
	if cond {
		return
	}
	if msg == nil {
		panic("assertion failed")
	}
	panic(msg.String())
}

type message struct {
	format string
	args   []any
}

func (m message) String() string {
	return fmt.Sprintf(m.format, m.args...)
}

// Msg defers formatting of an assertion message until the assertion fails.
func Msg(format string, args ...any) fmt.Stringer {
	return message{format, args}
}
