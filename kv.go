// kv.go — variadic key/value details.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • A non-string key drops the whole pair (key and the value after it), so
//     one bad key cannot shift every later pair out of alignment.
//   • A trailing key with no value records (key, nil), i.e. NullMarker.
//
//   cat.Details(123, "v1", "k2", "v2")   // records only k2=v2
package xgxreport

// Details appends every (key, value) pair in kv as if by Detail.
func (c *Category) Details(kv ...any) *Category {
	for _, f := range fieldsFromKV(kv) {
		c.Detail(f.Key, f.Val)
	}
	return c
}

// fieldsFromKV parses kv into ordered fields following the rules above.
func fieldsFromKV(kv []any) []Field {
	if len(kv) == 0 {
		return nil
	}
	out := make([]Field, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			i += 2
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		i += 2
		out = append(out, Field{Key: k, Val: v})
	}
	return out
}
