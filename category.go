// category.go — named, ordered collections of report details.
//
// Each detail is one of two entry shapes:
//   • scalarEntry:   the value frozen at Detail time (a string, or the
//                     rendered Object of an error).
//   • deferredEntry: a builder run against a fresh child category on every
//                     render, nested under the entry key.
//
// Entries are append-only. Duplicate keys are kept and render in order.
package xgxreport

import (
	"fmt"
	"reflect"
)

// NullMarker is the rendered value of a nil detail.
const NullMarker = "~~NULL~~"

// Category is a named, ordered list of details inside a Report.
// A zero Category works on its own: Then returns nil and errors render with
// the default depth cap.
type Category struct {
	name    string
	report  *Report
	entries []entry
}

type entry interface {
	entryKey() string
	resolve(c *Category, st *renderState) any
}

type scalarEntry struct {
	key string
	val any // string or Object
}

func (e scalarEntry) entryKey() string { return e.key }
func (e scalarEntry) resolve(*Category, *renderState) any { return e.val }

type deferredEntry struct {
	key   string
	build func(*Category)
}

func (e deferredEntry) entryKey() string { return e.key }

func (e deferredEntry) resolve(c *Category, st *renderState) any {
	child := &Category{name: e.key, report: c.report}
	e.build(child)
	return child.render(st)
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Then returns the report that owns the category.
func (c *Category) Then() *Report { return c.report }

// Detail appends key with value frozen to its current form:
//   - nil (including nil pointers, funcs and channels) → NullMarker
//   - an error → its rendered type/message/stack/cause tree
//   - anything else → fmt.Sprint(value)
//
// Later changes to value do not affect the report.
func (c *Category) Detail(key string, value any) *Category {
	c.entries = append(c.entries, scalarEntry{key: key, val: c.freeze(value)})
	return c
}

// DetailFunc appends key with the string returned by fn, which runs now.
// If fn returns an error or panics, that failure is recorded as the value
// instead; DetailFunc never fails.
func (c *Category) DetailFunc(key string, fn func() (string, error)) *Category {
	return Supply(c, key, fn)
}

// ComplexDetail appends key as a nested category built by fn. fn is not
// called now: it runs on every render against a fresh child category.
// A panic in fn aborts that render.
func (c *Category) ComplexDetail(key string, fn func(*Category)) *Category {
	c.entries = append(c.entries, deferredEntry{key: key, build: fn})
	return c
}

// Render renders the category's details, running deferred builders.
func (c *Category) Render() Object {
	return c.render(&renderState{})
}

func (c *Category) render(st *renderState) Object {
	obj := make(Object, 0, len(c.entries))
	for _, e := range c.entries {
		st.push(e.entryKey())
		obj = obj.add(e.entryKey(), e.resolve(c, st))
		st.pop()
	}
	return obj
}

func (c *Category) freeze(value any) any {
	if isNil(value) {
		return NullMarker
	}
	if err, ok := value.(error); ok {
		depth := 0
		if c.report != nil {
			depth = c.report.cfg.maxCauseDepth
		}
		return renderError(err, depth)
	}
	return fmt.Sprint(value)
}

// isNil reports whether v is nil or a nil reference that fmt would print
// as "<nil>". Nil maps and slices are values and render as such.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
