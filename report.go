// report.go — the Report root: message, optional cause, ordered categories.
//
// Design tenets:
//   - Builders mutate in place and return the receiver for chaining; a report
//     is assembled by one goroutine and then rendered.
//   - Rendering is a pure read: every call produces a fresh tree, a fresh
//     "instant", and re-runs deferred builders.
//   - Policy-free: no logging, no transport. Output is handed to collaborators
//     as an Object, JSON, YAML, text, or a slog.Value.
package xgxreport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is a structured diagnostic report.
//
// The zero value is an empty report with no message, the default clock and
// depth cap, and no indentation in String. New and Wrap are the usual way to
// make one.
//
// A Report is not safe for concurrent mutation. Callers sharing one across
// goroutines must synchronize Category/Detail calls themselves.
type Report struct {
	message    string
	cause      error
	categories []*Category
	index      map[string]*Category
	cfg        config
}

// New creates a report with no cause.
func New(message string, opts ...Option) *Report {
	return newReport(message, nil, opts)
}

// Wrap creates a report caused by cause.
//
// If cause is, or wraps, an error produced by Report.Raise, the originally
// raised *Report is returned unchanged and message and opts are ignored.
// A nil cause is equivalent to New.
func Wrap(cause error, message string, opts ...Option) *Report {
	if r, ok := AsReport(cause); ok {
		return r
	}
	return newReport(message, cause, opts)
}

func newReport(message string, cause error, opts []Option) *Report {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Report{
		message: message,
		cause:   cause,
		index:   make(map[string]*Category),
		cfg:     cfg,
	}
}

// Message returns the report message.
func (r *Report) Message() string { return r.message }

// Cause returns the causing error, or nil.
func (r *Report) Cause() error { return r.cause }

// Category returns the category called name, creating it on first use.
// Categories render in the order they were first requested.
func (r *Report) Category(name string) *Category {
	if c, ok := r.index[name]; ok {
		return c
	}
	if r.index == nil {
		r.index = make(map[string]*Category)
	}
	c := &Category{name: name, report: r}
	r.index[name] = c
	r.categories = append(r.categories, c)
	return c
}

// Categories returns the category names in render order.
func (r *Report) Categories() []string {
	out := make([]string, len(r.categories))
	for i, c := range r.categories {
		out[i] = c.name
	}
	return out
}

// Raise converts the report into an error that carries it by reference.
// Wrap and AsReport recover the same *Report from that error.
func (r *Report) Raise() error {
	return &raisedError{report: r, stk: captureStackDefault(1)}
}

// JSON renders the report tree. A panic raised by a ComplexDetail builder
// propagates to the caller unchanged; use Render to receive it as an error.
func (r *Report) JSON() Object {
	return r.render(&renderState{})
}

// Render renders the report tree. If a ComplexDetail builder panics, Render
// returns a *RenderError and no tree.
func (r *Report) Render() (obj Object, err error) {
	st := &renderState{}
	defer func() {
		if v := recover(); v != nil {
			obj, err = nil, st.failure(v)
		}
	}()
	return r.render(st), nil
}

// String returns the report as indented JSON.
func (r *Report) String() string {
	return indentJSON(r.JSON(), r.cfg.indent)
}

func indentJSON(obj Object, indent string) string {
	b, err := json.MarshalIndent(obj, "", indent)
	if err != nil {
		return fmt.Sprintf("%%!s(xgxreport: %v)", err)
	}
	return string(b)
}

// MarshalJSON renders the report as compact JSON.
func (r *Report) MarshalJSON() ([]byte, error) {
	obj, err := r.Render()
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

// YAML renders the report as YAML, keys in the same order as JSON.
func (r *Report) YAML() ([]byte, error) {
	obj, err := r.Render()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(obj)
}

// LogValue renders the report for log/slog. A failing render is reported as
// the message plus a render_error attribute.
func (r *Report) LogValue() slog.Value {
	obj, err := r.Render()
	if err != nil {
		return slog.GroupValue(
			slog.String("message", r.message),
			slog.String("render_error", err.Error()),
		)
	}
	return obj.LogValue()
}

func (r *Report) render(st *renderState) Object {
	obj := make(Object, 0, 4)
	obj = obj.add("instant", r.cfg.now().UTC().Format(time.RFC3339Nano))
	obj = obj.add("message", r.message)
	if r.cause != nil {
		obj = obj.add("throwable", renderError(r.cause, r.cfg.maxCauseDepth))
	}
	details := make(Object, 0, len(r.categories))
	for _, c := range r.categories {
		st.push(c.name)
		details = details.add(c.name, c.render(st))
		st.pop()
	}
	return obj.add("details", details)
}

var (
	_ json.Marshaler = (*Report)(nil)
	_ slog.LogValuer = (*Report)(nil)
	_ fmt.Stringer   = (*Report)(nil)
)
