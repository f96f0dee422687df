package hcl

import (
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"tierpricing/core/pricing"
)

// Safe cty conversions. Catalog attributes are authored by hand, so every
// conversion tolerates null/unknown values and both spellings where two
// are natural (numbers vs strings for amounts and priorities).

func ctyPresent(v cty.Value) bool {
	return v != cty.NilVal && v.IsKnown() && !v.IsNull()
}

// ctyString extracts a string value; ok is false for anything else.
func ctyString(v cty.Value) (string, bool) {
	if !ctyPresent(v) || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// ctyDecimal extracts a monetary amount from a number or a decimal
// string.
func ctyDecimal(v cty.Value) (decimal.Decimal, bool) {
	if !ctyPresent(v) {
		return decimal.Zero, false
	}
	switch v.Type() {
	case cty.Number:
		text := v.AsBigFloat().Text('f', -1)
		if d, err := decimal.NewFromString(text); err == nil {
			return d, true
		}
	case cty.String:
		if d, err := decimal.NewFromString(v.AsString()); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}

// ctyPriority extracts a priority from a step name ("high") or a number,
// falling back to def for anything unreadable. Out-of-range numbers clamp
// like every other priority assignment.
func ctyPriority(v cty.Value, def pricing.Priority) pricing.Priority {
	if !ctyPresent(v) {
		return def
	}
	switch v.Type() {
	case cty.String:
		return pricing.ParsePriority(v.AsString(), def)
	case cty.Number:
		var n int
		if bf := v.AsBigFloat(); bf != nil {
			i64, _ := bf.Int64()
			n = int(i64)
			return pricing.ClampPriority(n)
		}
	}
	return def
}

// ctyStringMap extracts an object or map of strings, e.g. localized text.
// Non-string elements are dropped.
func ctyStringMap(v cty.Value) map[string]string {
	if !ctyPresent(v) || !v.CanIterateElements() {
		return nil
	}
	out := make(map[string]string)
	for it := v.ElementIterator(); it.Next(); {
		k, ev := it.Element()
		key, ok := ctyString(k)
		if !ok {
			continue
		}
		if s, ok := ctyString(ev); ok {
			out[key] = s
		}
	}
	return out
}
