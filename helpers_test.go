package xgxreport

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test helpers shared across the package tests.

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fixedClock always returns testEpoch.
func fixedClock() time.Time { return testEpoch }

// tickingClock returns testEpoch advanced by one second per call.
func tickingClock() func() time.Time {
	n := 0
	return func() time.Time {
		t := testEpoch.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

// decode renders r as compact JSON and decodes it into generic maps.
func decode(t *testing.T, r *Report) map[string]any {
	t.Helper()
	b, err := r.MarshalJSON()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

// child returns the nested Object under key or fails the test.
func child(t *testing.T, obj Object, key string) Object {
	t.Helper()
	c, ok := obj.Child(key)
	require.Truef(t, ok, "no object under %q in %v", key, obj.Keys())
	return c
}

type leafErr struct{ s string }

func (e leafErr) Error() string { return e.s }

// pointer-typed single wrapper, good for cycles and identity checks
type wrap1 struct {
	msg   string
	cause error
}

func (w *wrap1) Error() string { return w.msg }
func (w *wrap1) Unwrap() error { return w.cause }

// build a single-unwrap chain of length n ending at leaf
func makeChain(n int, leaf error) error {
	e := leaf
	for i := 0; i < n; i++ {
		e = &wrap1{msg: "wrap", cause: e}
	}
	return e
}

// non-comparable dynamic type; must not be used as a map key
type sliceErr []string

func (e sliceErr) Error() string { return "slice error" }

// chainDepth counts the nodes along the "cause" path of a rendered error.
func chainDepth(obj Object) int {
	n := 0
	for obj != nil {
		n++
		next, _ := obj.Child("cause")
		obj = next
	}
	return n
}

// multiErr has an uncomparable type.
type multiErr struct{ errs []error }

func (e multiErr) Error() string   { return "multi" }
func (e multiErr) Unwrap() []error { return e.errs }

// holderErr has a comparable type, but hashing it panics when inner holds an
// uncomparable value such as a multiErr.
type holderErr struct{ inner error }

func (e holderErr) Error() string { return "holder: " + e.inner.Error() }
func (e holderErr) Unwrap() error { return e.inner }

func unhashable() error {
	return holderErr{inner: multiErr{errs: []error{errors.New("a"), nil}}}
}

// finishes runs fn and fails the test if it does not return within d.
func finishes(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %v", d)
	}
}
