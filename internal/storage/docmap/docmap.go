// Package docmap coerces loosely-typed document fields into Go values.
//
// Records in the store carry arbitrary extra fields, numbers stored as
// strings, and timestamps in half a dozen encodings. Every read goes through
// these helpers so the rest of the codebase only sees typed records.
// Malformed values degrade to zero values; nothing here returns an error.
package docmap

import (
	"strconv"
	"time"
)

// Str reads a string field. Numeric and boolean values are stringified the
// way the dashboard historically rendered them; anything else is "".
func Str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int reads a numeric field as an int. Absent or non-numeric values are 0.
func Int(m map[string]any, key string) int {
	return int(Float(m, key))
}

// Float reads a numeric field. Numeric strings count; anything else is 0.
func Float(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool reads a boolean field. Only a stored true counts.
func Bool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

// StrSlice reads an array-of-strings field, skipping non-string members.
func StrSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Sub reads a nested document field.
func Sub(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

// StrMap reads a nested document of string values.
func StrMap(m map[string]any, key string) map[string]string {
	sub := Sub(m, key)
	if sub == nil {
		return nil
	}
	out := make(map[string]string, len(sub))
	for k := range sub {
		out[k] = Str(sub, k)
	}
	return out
}

// FloatMap reads a nested document of numeric values.
func FloatMap(m map[string]any, key string) map[string]float64 {
	sub, _ := m[key].(map[string]any)
	if sub == nil {
		return nil
	}
	out := make(map[string]float64, len(sub))
	for k := range sub {
		out[k] = Float(sub, k)
	}
	return out
}

// timeLayouts are tried in order for string-encoded timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time normalizes the timestamp encodings found in the store: a native
// timestamp, a {seconds} or {_seconds} document, a millisecond epoch number,
// or an ISO-ish string. Unparseable values normalize to absent, never panic.
func Time(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case map[string]any:
		for _, key := range []string{"seconds", "_seconds"} {
			if _, ok := t[key]; ok {
				if secs := Float(t, key); secs != 0 || isNumeric(t[key]) {
					return time.Unix(int64(secs), 0).UTC(), true
				}
			}
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	case int64:
		return time.UnixMilli(t).UTC(), true
	case int:
		return time.UnixMilli(int64(t)).UTC(), true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// TimeField reads a timestamp field as a nil-able pointer.
func TimeField(m map[string]any, key string) *time.Time {
	t, ok := Time(m[key])
	if !ok {
		return nil
	}
	return &t
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int64, int:
		return true
	default:
		return false
	}
}
