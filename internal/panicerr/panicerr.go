package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, converting any panic into a non-nil error return that
// retains the panic value and the stack where it was recovered.
//
// Unlike running f in a separate goroutine, f stays on the caller's goroutine,
// so it may freely touch state that is not safe for concurrent use.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = Error{
				Name:  name,
				Value: e,
				Stack: debug.Stack(),
			}
		}
	}()
	return f()
}

// Error is a recovered panic.
type Error struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe Error) Error() string {
	return fmt.Sprint(pe)
}

// Format prints the panic value, and its stack under the %+v verb.
func (pe Error) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe Error
	return errors.As(err, &pe)
}

// Stack returns a non-empty stacktrace string if err is a recovered panic.
func Stack(err error) string {
	var pe Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
