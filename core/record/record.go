// Package record provides the generic field-keyed record format used to
// assemble and disassemble pricing entities. Every reader degrades
// gracefully: a missing key or a value of the wrong shape yields the
// caller's default, never an error. This is the single boundary where
// malformed input is absorbed; everything past it works on clean types.
package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a field-keyed generic value carrier, the interchange form
// every entity can be built from and reduced to.
type Record map[string]any

// IsEmpty reports whether the record carries no fields at all.
func (r Record) IsEmpty() bool { return len(r) == 0 }

// String reads a string field, returning def when absent or mistyped.
func String(r Record, key, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}

// Bool reads a boolean field, returning def when absent or mistyped.
func Bool(r Record, key string, def bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return def
}

// Int reads an integer field. JSON decoding produces float64, so numeric
// variants are accepted; anything else yields def.
func Int(r Record, key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case decimal.Decimal:
		return int(v.IntPart())
	}
	return def
}

// Decimal reads a monetary field. Accepts decimal values, numeric strings,
// and raw numbers; unparseable input yields def.
func Decimal(r Record, key string, def decimal.Decimal) decimal.Decimal {
	switch v := r[key].(type) {
	case decimal.Decimal:
		return v
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return def
}

// Time reads a timestamp field. Accepts time.Time, RFC 3339 strings, and
// Unix-second numbers; anything else yields def.
func Time(r Record, key string, def time.Time) time.Time {
	if t, ok := parseTime(r[key]); ok {
		return t
	}
	return def
}

// TimePtr reads an optional timestamp field, returning nil when the field
// is absent or unreadable.
func TimePtr(r Record, key string) *time.Time {
	if t, ok := parseTime(r[key]); ok {
		return &t
	}
	return nil
}

func parseTime(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	}
	return time.Time{}, false
}

// Child reads a nested record, returning nil when the field is absent or
// not record-shaped.
func Child(r Record, key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	}
	return nil
}

// Children reads an array of nested records, skipping any element that is
// not record-shaped.
func Children(r Record, key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		if typed, ok := r[key].([]Record); ok {
			return typed
		}
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, e := range raw {
		switch v := e.(type) {
		case Record:
			out = append(out, v)
		case map[string]any:
			out = append(out, Record(v))
		}
	}
	return out
}

// StringMap reads a map of string fields, e.g. localized text. Values that
// are not strings are dropped; a missing or mistyped field yields nil.
func StringMap(r Record, key string) map[string]string {
	raw, ok := r[key].(map[string]any)
	if !ok {
		if typed, ok := r[key].(map[string]string); ok {
			return typed
		}
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// ChildMap reads a map of nested records keyed by string.
func ChildMap(r Record, key string) map[string]Record {
	var raw map[string]any
	switch v := r[key].(type) {
	case Record:
		raw = v
	case map[string]any:
		raw = v
	default:
		return nil
	}
	out := make(map[string]Record, len(raw))
	for k, v := range raw {
		switch c := v.(type) {
		case Record:
			out[k] = c
		case map[string]any:
			out[k] = Record(c)
		}
	}
	return out
}
