// wrap.go — attach a stack to any error before it reaches a report.
//
// Go errors carry no stack of their own, so a rendered cause normally shows
// an empty "stack" array. Wrapping an error with WithStack at the point it is
// created or first observed records where that was; the rendering reads it
// back through StackFrames. The wrapper is transparent to errors.Is/As.
package xgxreport

// stackError decorates an error with a captured stack.
type stackError struct {
	err error
	stk Stack
}

func (e *stackError) Error() string      { return e.err.Error() }
func (e *stackError) Unwrap() error      { return e.err }
func (e *stackError) StackFrames() Stack { return e.stk }

// WithStack returns err annotated with the stack of its caller.
// WithStack(nil) returns nil.
func WithStack(err error) error {
	return WithStackSkip(err, 1)
}

// WithStackSkip is like WithStack but skips 'skip' additional frames above
// its caller (e.g., helper wrappers). WithStackSkip(err, 0) records the
// caller of WithStackSkip as the first frame.
func WithStackSkip(err error, skip int) error {
	if err == nil {
		return nil
	}
	return &stackError{err: err, stk: captureStackDefault(skip + 1)}
}
