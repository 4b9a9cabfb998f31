package xgxreport

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"testing/quick"
)

func TestQuickRaiseWrapReturnsSameReport(t *testing.T) {
	property := func(msg, other string, depth uint8) bool {
		r := New(msg)
		var err error = r.Raise()
		for i := 0; i < int(depth%8); i++ {
			err = &wrap1{msg: other, cause: err}
		}
		return Wrap(err, other) == r
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("Wrap(Raise) should recover the same report: %v", err)
	}
}

func TestQuickMessageSurvivesJSON(t *testing.T) {
	property := func(msg string) bool {
		b, err := New(msg, WithClock(fixedClock)).MarshalJSON()
		if err != nil {
			return false
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return false
		}
		return m["message"] == msg
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("message must survive a JSON round trip: %v", err)
	}
}

func TestQuickDetailsKeepInsertionOrder(t *testing.T) {
	property := func(keys []string) bool {
		cat := New("x").Category("c")
		for _, k := range keys {
			cat.Detail(k, k)
		}
		got := cat.Render().Keys()
		if len(keys) == 0 {
			return len(got) == 0
		}
		return reflect.DeepEqual(got, keys)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("details must render in insertion order: %v", err)
	}
}

func TestQuickStringAndMarshalJSONAgree(t *testing.T) {
	property := func(msg, key, val string) bool {
		r := Wrap(errors.New(val), msg, WithClock(fixedClock))
		r.Category(key).Detail(key, val)

		var a, b any
		if err := json.Unmarshal([]byte(r.String()), &a); err != nil {
			return false
		}
		compact, err := r.MarshalJSON()
		if err != nil {
			return false
		}
		if err := json.Unmarshal(compact, &b); err != nil {
			return false
		}
		return reflect.DeepEqual(a, b)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("String and MarshalJSON must describe the same tree: %v", err)
	}
}
