// Package localized provides the language-keyed string type used for
// display copy such as override titles and tier data strings.
package localized

import (
	"sort"

	"tierpricing/core/record"
)

// DefaultLanguage is the language consulted when no explicit language is
// requested.
const DefaultLanguage = "en"

// String is a language-keyed piece of display text. A nil String means
// "no text"; resolution layers return nil rather than an empty value.
type String map[string]string

// New creates a String carrying text in the default language.
func New(text string) String {
	return String{DefaultLanguage: text}
}

// In returns the text for lang, falling back to the default language and
// then to any deterministic translation.
func (s String) In(lang string) string {
	if v, ok := s[lang]; ok {
		return v
	}
	if v, ok := s[DefaultLanguage]; ok {
		return v
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		return s[keys[0]]
	}
	return ""
}

// String returns the default-language text.
func (s String) String() string { return s.In(DefaultLanguage) }

// IsEmpty reports whether no translation is present.
func (s String) IsEmpty() bool { return len(s) == 0 }

// Clone returns an independent copy.
func (s String) Clone() String {
	if s == nil {
		return nil
	}
	c := make(String, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// IsDiffFrom reports a structural difference against other. Anything that
// is not a String is different.
func (s String) IsDiffFrom(other any) bool {
	o, ok := other.(String)
	if !ok {
		return true
	}
	if len(s) != len(o) {
		return true
	}
	for k, v := range s {
		if ov, ok := o[k]; !ok || ov != v {
			return true
		}
	}
	return false
}

// Record returns the record form: a plain language→text map.
func (s String) Record() record.Record {
	r := make(record.Record, len(s))
	for k, v := range s {
		r[k] = v
	}
	return r
}

// FromRecord rebuilds a String from its record form, returning nil when
// the record carries no usable translations.
func FromRecord(r record.Record) String {
	if len(r) == 0 {
		return nil
	}
	s := make(String, len(r))
	for k, v := range r {
		if text, ok := v.(string); ok {
			s[k] = text
		}
	}
	if len(s) == 0 {
		return nil
	}
	return s
}

// FromStringMap rebuilds a String from a plain map, returning nil for an
// empty input.
func FromStringMap(m map[string]string) String {
	if len(m) == 0 {
		return nil
	}
	s := make(String, len(m))
	for k, v := range m {
		s[k] = v
	}
	return s
}
