// stack.go — stack capture for raised reports, WithStack and recovered panics.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames so inlined frames resolve
//     correctly.
//   - Bounded depth; capture only happens on Raise, WithStack and panics.
//   - Frames render as "function(file:line)", one string per frame, which is
//     the shape the "stack" array of a rendered error uses.
package xgxreport

import (
	"runtime"
	"strconv"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as "function(file:line)".
func (f Frame) String() string {
	fn := f.Function
	if fn == "" {
		fn = "unknown"
	}
	return fn + "(" + f.File + ":" + strconv.Itoa(f.Line) + ")"
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// Strings renders every frame. The result is never nil so an empty stack
// encodes as [] rather than null.
func (s Stack) Strings() []string {
	out := make([]string, 0, len(s))
	for _, f := range s {
		out = append(out, f.String())
	}
	return out
}

const (
	// defaultMaxDepth bounds the number of captured frames.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames, with the
// default depth bound.
//
// Skip model:
//
//	Raise → captureStackDefault → captureStack → runtime.Callers
//
// With skip=0 the first recorded frame is the caller of captureStackDefault.
// Each extra unit of skip drops one more frame from the top.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +3 skips runtime.Callers, captureStack and captureStackDefault.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	return framesOf(pc[:n])
}

// framesOf resolves return PCs, as recorded by runtime.Callers, into frames.
// Inlined calls expand into their own frames.
func framesOf(pc []uintptr) Stack {
	if len(pc) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, len(pc))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
