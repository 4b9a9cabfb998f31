// throwable.go — error-chain rendering.
//
// Every error that reaches a report, either as the report cause or as a detail
// value, is rendered into:
//
//	type     fully-qualified dynamic type name
//	message  err.Error()
//	stack    frame strings, [] when the error carries none
//	cause    rendering of Unwrap() error, omitted when nil
//	causes   renderings of Unwrap() []error, omitted unless a multi-error
//
// Stacks are read from errors exposing StackFrames() Stack (this package) or
// StackTrace() errors.StackTrace (github.com/pkg/errors).
package xgxreport

import (
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

// defaultMaxCauseDepth bounds how many levels of a cause chain are rendered.
const defaultMaxCauseDepth = 32

// stackFramer is implemented by errors of this package that carry a stack.
type stackFramer interface {
	StackFrames() Stack
}

// stackTracer is the github.com/pkg/errors stack contract.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// renderError renders err and its causes. err must be non-nil.
func renderError(err error, maxDepth int) Object {
	g := newCauseGuard(maxDepth)
	g.mark(err)
	return g.render(err, 1)
}

func (g *causeGuard) render(err error, depth int) Object {
	obj := make(Object, 0, 4)
	obj = obj.add("type", typeName(err))
	obj = obj.add("message", err.Error())
	obj = obj.add("stack", stackOf(err))

	if depth >= g.maxDepth {
		return obj
	}

	kids, multi := children(err)
	if !multi {
		if len(kids) == 1 && g.mark(kids[0]) {
			obj = obj.add("cause", g.render(kids[0], depth+1))
		}
		return obj
	}

	causes := make([]Object, 0, len(kids))
	for _, k := range kids {
		if g.mark(k) {
			causes = append(causes, g.render(k, depth+1))
		}
	}
	if len(causes) > 0 {
		obj = obj.add("causes", causes)
	}
	return obj
}

// typeName returns the dynamic type of err qualified by its import path,
// e.g. "*errors.errorString" or "*github.com/pkg/errors.fundamental".
func typeName(err error) string {
	t := reflect.TypeOf(err)
	prefix := ""
	for t.Kind() == reflect.Pointer {
		prefix += "*"
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return prefix + t.String()
	}
	return prefix + t.PkgPath() + "." + t.Name()
}

func stackOf(err error) []string {
	switch s := err.(type) {
	case stackFramer:
		return s.StackFrames().Strings()
	case stackTracer:
		st := s.StackTrace()
		pc := make([]uintptr, len(st))
		for i, f := range st {
			pc[i] = uintptr(f)
		}
		return framesOf(pc).Strings()
	}
	return []string{}
}
