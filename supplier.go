// supplier.go — eager detail suppliers that never fail.
//
// Overview
//   A supplier computes a detail value at the moment it is added. Collecting
//   diagnostics must not abort building the report, so both a returned error
//   and a panic inside the supplier become the recorded value.
//
// Usage
//   cat := report.Category("disk")
//   cat.DetailFunc("label", readLabel)               // func() (string, error)
//   xgxreport.Supply(cat, "free", statfs.FreeBytes)   // func() (uint64, error)
package xgxreport

import "fmt"

// Supply appends key with the value returned by fn, which runs now. The value
// is frozen the same way Detail freezes it. If fn returns a non-nil error, or
// panics, the failure is recorded under key instead.
func Supply[T any](c *Category, key string, fn func() (T, error)) *Category {
	v, err := supply(fn)
	if err != nil {
		return c.Detail(key, err)
	}
	return c.Detail(key, v)
}

func supply[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, &PanicError{Value: r, stk: captureStackDefault(1)}
		}
	}()
	return fn()
}

// PanicError is recorded in place of a detail whose supplier panicked.
type PanicError struct {
	// Value is the value recovered from the panic.
	Value any

	stk Stack
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// StackFrames returns the stack captured where the panic was recovered.
func (e *PanicError) StackFrames() Stack { return e.stk }
