// doc.go — package documentation for xgx-report
//
// Package xgxreport builds structured diagnostic reports: a message, an
// optional causing error, and an ordered tree of named categories holding
// key/value details. A report renders to an ordered JSON tree, indented text,
// YAML or a slog.Value, and can be raised as an error that carries it so a
// caller further up the stack gets the same report back.
//
// # Building
//
//	r := xgxreport.New("boot failure").
//	        Category("disk").
//	            Detail("path", "/dev/sda1").
//	            Detail("errno", 5).
//	        Then()
//
// Category(name) is get-or-create: asking for "disk" again returns the same
// *Category, and categories render in the order they were first requested.
//
// # Detail Semantics
//
//	+------------------------------+----------------------------------------------+
//	| Call                         | Recorded value                               |
//	+------------------------------+----------------------------------------------+
//	| Detail(k, nil)               | "~~NULL~~" (NullMarker)                      |
//	| Detail(k, err)               | {type, message, stack, cause?} frozen now    |
//	| Detail(k, v)                 | fmt.Sprint(v) frozen now                     |
//	| Details(k1, v1, k2, v2, ...) | each pair as Detail; non-string keys dropped |
//	| DetailFunc(k, fn)            | fn() now; its error or panic is the value    |
//	| Supply(c, k, fn)             | generic DetailFunc for any T                 |
//	| ComplexDetail(k, build)      | build(child) on every render, nested under k |
//	+------------------------------+----------------------------------------------+
//
// Values are snapshotted when added: mutating the original afterwards does not
// change the report. Deferred builders are the exception: they run
// synchronously inside each render, and a panic in one aborts that render.
//
// # Rendering
//
//	{
//	  "instant":   "<RFC 3339, generated on every render>",
//	  "message":   "<message>",
//	  "throwable": { "type", "message", "stack", "cause"|"causes" },  // only with a cause
//	  "details":   { "<category>": { "<key>": <string|object>, ... }, ... }
//	}
//
//   - JSON() returns the tree; builder panics propagate.
//   - Render() returns the tree or a *RenderError naming the failing key path.
//   - String() is indented JSON; MarshalJSON is compact JSON.
//   - YAML() keeps the same key order.
//   - LogValue() makes *Report a slog.LogValuer.
//
// Error chains are rendered through Unwrap() error and Unwrap() []error with a
// cycle guard and a depth cap (WithMaxCauseDepth). Stacks come from errors
// implementing StackFrames() Stack (WithStack, Raise, recovered panics) or
// github.com/pkg/errors' StackTrace().
//
// # Raising
//
//	func load() error {
//		r := xgxreport.New("config invalid")
//		r.Category("file").Detail("path", path)
//		return r.Raise()
//	}
//
//	if err := load(); err != nil {
//		r := xgxreport.Wrap(err, "startup failed") // same *Report as raised
//		r.Category("startup").Detail("phase", "config")
//	}
//
// A raised error unwraps to the report cause, so errors.Is/As keep working.
// AsReport finds a raised report anywhere in a chain, and stops on chains
// that loop back on themselves.
//
// # Concurrency
//
// Reports and categories are built by one goroutine; there is no internal
// locking. Rendering a report nobody is mutating is a read and may run in
// parallel, provided the deferred builders are themselves safe.
package xgxreport
