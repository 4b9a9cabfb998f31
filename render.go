package xgxreport

import (
	"fmt"
	"strings"
)

// renderState tracks the key path of the entry being rendered so a failing
// builder can be located. The path is left in place when a panic unwinds.
type renderState struct {
	path []string
}

func (st *renderState) push(key string) { st.path = append(st.path, key) }
func (st *renderState) pop()            { st.path = st.path[:len(st.path)-1] }

// failure converts a recovered builder panic into a *RenderError.
func (st *renderState) failure(v any) *RenderError {
	path := make([]string, len(st.path))
	copy(path, st.path)
	return &RenderError{Path: path, Value: v, stk: captureStackDefault(1)}
}

// RenderError reports a ComplexDetail builder that panicked during Render.
type RenderError struct {
	// Path is the category name followed by the detail keys leading to the
	// failing builder.
	Path []string
	// Value is the value recovered from the panic.
	Value any

	stk Stack
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("xgxreport: render %s: %v", strings.Join(e.Path, "."), e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *RenderError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// StackFrames returns the stack captured where the panic was recovered.
func (e *RenderError) StackFrames() Stack { return e.stk }
