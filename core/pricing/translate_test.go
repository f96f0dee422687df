package pricing

import (
	"testing"
	"time"

	"tierpricing/core/localized"
	"tierpricing/core/record"
)

// fullTree builds a tree exercising every entity and field for the
// round-trip tests.
func fullTree(t *testing.T) *Pricing {
	t.Helper()
	tree := NewPricing()
	tier := layeredTier(t)
	tier.SetPriority(int(PriorityHigh))
	tier.DataStrings["tagline"] = localized.String{"en": "All week", "de": "Die ganze Woche"}
	tier.Items[0].SetSlot(time.Saturday, newTestSet(t, "30"))

	promo := newTestPrice(t, "15", int(PriorityHigh))
	promo.Window(tsPtr(t, "2026-03-01T00:00:00Z"), tsPtr(t, "2026-03-31T23:59:59Z"))
	tier.Items[0].DefaultSlot.Prices = append(tier.Items[0].DefaultSlot.Prices, promo)

	tree.Tiers = []*PricingTier{tier}
	return tree
}

func TestPricingRecordRoundTrip(t *testing.T) {
	tree := fullTree(t)

	rebuilt := NewPricingFromRecord(tree.Record())
	if rebuilt == nil {
		t.Fatal("rebuilding from record returned nil")
	}
	if tree.IsDiffFrom(rebuilt) {
		t.Error("record round trip changed the tree")
	}

	// The resolution behavior must survive the trip, not just the shape.
	december := ts(t, "2026-12-25T12:00:00Z")
	if got := rebuilt.Price("standard", december); got == nil || got.Amount.String() != "30" {
		t.Errorf("rebuilt override price = %v, want 30", got)
	}
	saturday := ts(t, "2026-02-07T12:00:00Z")
	if got := rebuilt.Price("standard", saturday); got == nil || got.Amount.String() != "30" {
		t.Errorf("rebuilt Saturday price = %v, want 30", got)
	}
}

func TestPricingJSONRoundTrip(t *testing.T) {
	tree := fullTree(t)

	data, err := EncodePricing(tree)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	rebuilt, err := DecodePricing(data)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if rebuilt == nil {
		t.Fatal("decoding returned nil")
	}
	if tree.IsDiffFrom(rebuilt) {
		t.Error("JSON round trip changed the tree")
	}

	march := ts(t, "2026-03-10T12:00:00Z")
	got := rebuilt.Price("standard", march)
	if got == nil || got.Amount.String() != "15" || got.Priority() != PriorityHigh {
		t.Errorf("rebuilt promo price = %v, want 15 at high priority", got)
	}
}

func TestDecodePricingEmptyDocument(t *testing.T) {
	tree, err := DecodePricing([]byte("{}"))
	if err != nil {
		t.Fatalf("decoding empty object: %v", err)
	}
	if tree != nil {
		t.Errorf("empty object decoded to %v, want nil", tree)
	}

	if _, err := DecodePricing([]byte("not json")); err == nil {
		t.Error("malformed JSON must error")
	}
}

func TestRecordConstructionGraceful(t *testing.T) {
	t.Run("empty record yields nil", func(t *testing.T) {
		if got := NewPriceFromRecord(record.Record{}); got != nil {
			t.Errorf("empty record built %v, want nil", got)
		}
		if got := NewPricingTierFromRecord(nil); got != nil {
			t.Errorf("nil record built %v, want nil", got)
		}
	})

	t.Run("malformed fields fall back to defaults", func(t *testing.T) {
		p := NewPriceFromRecord(record.Record{
			"id":       "p1",
			"amount":   "not a number",
			"priority": "not a number either",
		})
		if p == nil {
			t.Fatal("partially malformed record must still build")
		}
		if p.ID != "p1" {
			t.Errorf("id = %q, want p1", p.ID)
		}
		if !p.Amount.IsZero() {
			t.Errorf("amount = %s, want the zero default", p.Amount)
		}
		if p.Priority() != PriorityNormal {
			t.Errorf("priority = %d, want the normal default", p.Priority())
		}
	})

	t.Run("out-of-range priority clamps", func(t *testing.T) {
		p := NewPriceFromRecord(record.Record{"id": "p1", "priority": 7777})
		if p.Priority() != PriorityHighest {
			t.Errorf("priority = %d, want clamp to %d", p.Priority(), PriorityHighest)
		}
	})

	t.Run("unknown day fields are ignored", func(t *testing.T) {
		it := NewPricingItemFromRecord(record.Record{
			"id":          "it1",
			"priceFunday": record.Record{"id": "s"},
		})
		if it == nil {
			t.Fatal("item must still build")
		}
		if len(it.Slots) != 0 {
			t.Errorf("slots = %v, want none", it.Slots)
		}
	})
}

func TestOverrideRecordKeepsSentinelWindow(t *testing.T) {
	ov := NewPricingOverride()
	ov.Enabled = true

	rebuilt := NewPricingOverrideFromRecord(ov.Record())
	if rebuilt == nil {
		t.Fatal("rebuilding from record returned nil")
	}
	if !rebuilt.StartTime.Equal(WindowOpen) || !rebuilt.EndTime.Equal(WindowClose) {
		t.Errorf("window = [%s, %s], want the untouched sentinels", rebuilt.StartTime, rebuilt.EndTime)
	}
	if !rebuilt.IsActive(ts(t, "2026-07-04T12:00:00Z")) {
		t.Error("rebuilt override lost its always-active window")
	}
}
