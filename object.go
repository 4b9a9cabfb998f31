// object.go — ordered rendered tree for xgx-report.
//
// Design:
//   • Internal representation: append-only []Field in insertion order.
//     Duplicate keys survive; output order is deterministic.
//   • Encoders (JSON, YAML, slog) walk the slice directly. A Go map would
//     lose both order and duplicates.
//
// Values stored in an Object are one of: string, nil, []string, []Object
// or a nested Object. Anything else is encoded by the target encoder as-is.
package xgxreport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Field is a single key/value pair of a rendered Object.
type Field struct {
	Key string
	Val any
}

// Object is an ordered key/value tree produced by rendering a Report.
type Object []Field

// add returns o with (key, val) appended.
func (o Object) add(key string, val any) Object {
	return append(o, Field{Key: key, Val: val})
}

// Len returns the number of fields, duplicates included.
func (o Object) Len() int { return len(o) }

// Keys returns the keys in insertion order, duplicates included.
func (o Object) Keys() []string {
	out := make([]string, len(o))
	for i, f := range o {
		out[i] = f.Key
	}
	return out
}

// Get returns the value of the first field named key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Val, true
		}
	}
	return nil, false
}

// Child returns the nested Object stored under key, if there is one.
func (o Object) Child(key string) (Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(Object)
	return obj, ok
}

// MarshalJSON writes the fields in order as a JSON object.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Val)
		if err != nil {
			return nil, fmt.Errorf("xgxreport: encode %q: %w", f.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns an ordered mapping node so yaml.v3 keeps key order.
func (o Object) MarshalYAML() (any, error) {
	return o.yamlNode()
}

func (o Object) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(o) == 0 {
		n.Style = yaml.FlowStyle
	}
	for _, f := range o {
		v, err := yamlValue(f.Val)
		if err != nil {
			return nil, fmt.Errorf("xgxreport: encode %q: %w", f.Key, err)
		}
		n.Content = append(n.Content, yamlString(f.Key), v)
	}
	return n, nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlValue(v any) (*yaml.Node, error) {
	switch tv := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return yamlString(tv), nil
	case Object:
		return tv.yamlNode()
	case []string:
		seq := yamlSeq(len(tv))
		for _, s := range tv {
			seq.Content = append(seq.Content, yamlString(s))
		}
		return seq, nil
	case []Object:
		seq := yamlSeq(len(tv))
		for _, obj := range tv {
			n, err := obj.yamlNode()
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func yamlSeq(n int) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if n == 0 {
		seq.Style = yaml.FlowStyle
	}
	return seq
}

// LogValue exposes the tree as nested slog groups, keys in order.
func (o Object) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(o))
	for _, f := range o {
		attrs = append(attrs, slog.Any(f.Key, f.Val))
	}
	return slog.GroupValue(attrs...)
}

var (
	_ json.Marshaler = Object(nil)
	_ yaml.Marshaler = Object(nil)
	_ slog.LogValuer = Object(nil)
)
