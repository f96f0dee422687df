package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// ts parses an RFC 3339 instant, failing the test on bad input.
func ts(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parsing instant %q: %v", s, err)
	}
	return at
}

func tsPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	at := ts(t, s)
	return &at
}

// newTestPrice builds a price with an amount and priority, optionally
// windowed.
func newTestPrice(t *testing.T, amount string, priority int) *Price {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("parsing amount %q: %v", amount, err)
	}
	return NewPrice(d, priority)
}

func TestPriceIsActive(t *testing.T) {
	at := ts(t, "2026-07-04T12:00:00Z")

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want bool
	}{
		{"no bounds", nil, nil, true},
		{"from before", tsPtr(t, "2026-07-01T00:00:00Z"), nil, true},
		{"from after", tsPtr(t, "2026-07-05T00:00:00Z"), nil, false},
		{"from equal is inclusive", tsPtr(t, "2026-07-04T12:00:00Z"), nil, true},
		{"to after", nil, tsPtr(t, "2026-07-31T00:00:00Z"), true},
		{"to before", nil, tsPtr(t, "2026-07-01T00:00:00Z"), false},
		{"to equal is inclusive", nil, tsPtr(t, "2026-07-04T12:00:00Z"), true},
		{"inside both", tsPtr(t, "2026-07-01T00:00:00Z"), tsPtr(t, "2026-07-31T00:00:00Z"), true},
		{"outside both", tsPtr(t, "2026-08-01T00:00:00Z"), tsPtr(t, "2026-08-31T00:00:00Z"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPrice(t, "10", int(PriorityNormal))
			p.Window(tt.from, tt.to)
			if got := p.IsActive(at); got != tt.want {
				t.Errorf("IsActive(%s) = %v, want %v", at, got, tt.want)
			}
		})
	}
}

func TestPricePriorityClamps(t *testing.T) {
	p := NewPrice(decimal.NewFromInt(10), 4000)
	if p.Priority() != PriorityHighest {
		t.Errorf("constructor priority = %d, want clamp to %d", p.Priority(), PriorityHighest)
	}

	p.SetPriority(-1)
	if p.Priority() != PriorityNone {
		t.Errorf("SetPriority(-1) priority = %d, want %d", p.Priority(), PriorityNone)
	}

	p.SetPriority(600)
	if p.Priority() != Priority(600) {
		t.Errorf("SetPriority(600) priority = %d, want 600", p.Priority())
	}
}

func TestPriceSetActivePrice(t *testing.T) {
	at := ts(t, "2026-07-04T12:00:00Z")

	t.Run("highest priority wins", func(t *testing.T) {
		set := NewPriceSet()
		set.Prices = []*Price{
			newTestPrice(t, "10", int(PriorityNormal)),
			newTestPrice(t, "20", int(PriorityHigh)),
			newTestPrice(t, "30", int(PriorityLow)),
		}
		got := set.ActivePrice(at)
		if got == nil {
			t.Fatal("ActivePrice returned nil")
		}
		if got.Amount.String() != "20" {
			t.Errorf("ActivePrice amount = %s, want 20", got.Amount)
		}
	})

	t.Run("declaration order breaks ties", func(t *testing.T) {
		set := NewPriceSet()
		first := newTestPrice(t, "10", int(PriorityNormal))
		second := newTestPrice(t, "20", int(PriorityNormal))
		set.Prices = []*Price{first, second}
		if got := set.ActivePrice(at); got != first {
			t.Errorf("ActivePrice = %v, want the first-declared price", got)
		}
	})

	t.Run("expired window yields nil", func(t *testing.T) {
		set := NewPriceSet()
		p := newTestPrice(t, "10", int(PriorityNormal))
		p.Window(tsPtr(t, "2025-01-01T00:00:00Z"), tsPtr(t, "2025-12-31T00:00:00Z"))
		set.Prices = []*Price{p}
		if got := set.ActivePrice(at); got != nil {
			t.Errorf("ActivePrice = %v, want nil for an expired window", got)
		}
	})

	t.Run("windowed price beats unwindowed on priority", func(t *testing.T) {
		set := NewPriceSet()
		always := newTestPrice(t, "20", int(PriorityNormal))
		windowed := newTestPrice(t, "15", int(PriorityHigh))
		windowed.Window(tsPtr(t, "2026-07-01T00:00:00Z"), tsPtr(t, "2026-07-31T00:00:00Z"))
		set.Prices = []*Price{always, windowed}

		if got := set.ActivePrice(at); got == nil || got.Amount.String() != "15" {
			t.Errorf("inside window got %v, want 15", got)
		}
		outside := ts(t, "2026-09-01T12:00:00Z")
		if got := set.ActivePrice(outside); got == nil || got.Amount.String() != "20" {
			t.Errorf("outside window got %v, want 20", got)
		}
	})

	t.Run("empty set yields nil", func(t *testing.T) {
		if got := NewPriceSet().ActivePrice(at); got != nil {
			t.Errorf("ActivePrice on empty set = %v, want nil", got)
		}
	})

	t.Run("nil set yields nil", func(t *testing.T) {
		var set *PriceSet
		if got := set.ActivePrice(at); got != nil {
			t.Errorf("ActivePrice on nil set = %v, want nil", got)
		}
	})
}

func TestPriceCloneAndDiff(t *testing.T) {
	p := newTestPrice(t, "12.50", int(PriorityHigh))
	p.Window(tsPtr(t, "2026-07-01T00:00:00Z"), tsPtr(t, "2026-07-31T00:00:00Z"))

	c := p.Clone()
	if p.IsDiffFrom(c) {
		t.Error("clone differs from original")
	}

	c.Amount = decimal.NewFromInt(99)
	if !p.IsDiffFrom(c) {
		t.Error("amount change not detected")
	}

	if !p.IsDiffFrom(nil) {
		t.Error("nil must be different")
	}
	if !p.IsDiffFrom("not a price") {
		t.Error("type mismatch must be different")
	}
	if !p.IsDiffFrom((*Price)(nil)) {
		t.Error("typed nil must be different")
	}
}

func TestPriceSetCloneAndDiff(t *testing.T) {
	set := NewPriceSet()
	set.Prices = []*Price{
		newTestPrice(t, "10", int(PriorityNormal)),
		newTestPrice(t, "20", int(PriorityHigh)),
	}

	c := set.Clone()
	if set.IsDiffFrom(c) {
		t.Error("clone differs from original")
	}

	c.Prices[0].SetPriority(int(PriorityHighest))
	if !set.IsDiffFrom(c) {
		t.Error("nested priority change not detected")
	}

	c = set.Clone()
	c.Prices = c.Prices[:1]
	if !set.IsDiffFrom(c) {
		t.Error("length change not detected")
	}
}
