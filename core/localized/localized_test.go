package localized

import (
	"testing"

	"tierpricing/core/record"
)

func TestIn(t *testing.T) {
	s := String{"en": "hello", "de": "hallo", "fr": "bonjour"}

	if got := s.In("de"); got != "hallo" {
		t.Errorf("In(de) = %q, want hallo", got)
	}
	if got := s.In("it"); got != "hello" {
		t.Errorf("In(it) = %q, want the default-language fallback", got)
	}

	noDefault := String{"fr": "bonjour", "de": "hallo"}
	if got := noDefault.In("it"); got != "hallo" {
		t.Errorf("In(it) without default = %q, want the first language alphabetically", got)
	}

	var empty String
	if got := empty.In("en"); got != "" {
		t.Errorf("In on nil = %q, want empty", got)
	}
}

func TestNewAndString(t *testing.T) {
	s := New("hello")
	if s.String() != "hello" {
		t.Errorf("String() = %q, want hello", s.String())
	}
	if s.IsEmpty() {
		t.Error("fresh string reported empty")
	}
	if !String(nil).IsEmpty() {
		t.Error("nil string reported non-empty")
	}
}

func TestClone(t *testing.T) {
	s := String{"en": "hello"}
	c := s.Clone()
	c["en"] = "changed"
	if s["en"] != "hello" {
		t.Error("clone shares storage with the original")
	}

	if String(nil).Clone() != nil {
		t.Error("clone of nil must stay nil")
	}
}

func TestIsDiffFrom(t *testing.T) {
	s := String{"en": "hello", "de": "hallo"}

	if s.IsDiffFrom(String{"en": "hello", "de": "hallo"}) {
		t.Error("equal strings reported different")
	}
	if !s.IsDiffFrom(String{"en": "hello"}) {
		t.Error("missing language not detected")
	}
	if !s.IsDiffFrom(String{"en": "hello", "de": "servus"}) {
		t.Error("changed text not detected")
	}
	if !s.IsDiffFrom("hello") {
		t.Error("type mismatch must be different")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := String{"en": "hello", "de": "hallo"}
	rebuilt := FromRecord(s.Record())
	if s.IsDiffFrom(rebuilt) {
		t.Error("record round trip changed the string")
	}
}

func TestFromRecord(t *testing.T) {
	if got := FromRecord(nil); got != nil {
		t.Errorf("FromRecord(nil) = %v, want nil", got)
	}
	if got := FromRecord(record.Record{}); got != nil {
		t.Errorf("FromRecord(empty) = %v, want nil", got)
	}
	if got := FromRecord(record.Record{"en": 42}); got != nil {
		t.Errorf("FromRecord with no usable text = %v, want nil", got)
	}

	got := FromRecord(record.Record{"en": "hello", "count": 3})
	if len(got) != 1 || got["en"] != "hello" {
		t.Errorf("FromRecord = %v, want only the string entry", got)
	}
}

func TestFromStringMap(t *testing.T) {
	if got := FromStringMap(nil); got != nil {
		t.Errorf("FromStringMap(nil) = %v, want nil", got)
	}
	got := FromStringMap(map[string]string{"en": "hello"})
	if got.In("en") != "hello" {
		t.Errorf("FromStringMap = %v", got)
	}
}
