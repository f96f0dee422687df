package pricing

import "testing"

func TestPricingTierLookup(t *testing.T) {
	tree := NewPricing()

	if got := tree.Tier("standard"); got != nil {
		t.Errorf("tier on empty tree = %v, want nil", got)
	}

	first := NewPricingTier()
	first.ID = "standard"
	vipLow := NewPricingTier()
	vipLow.ID = "vip"
	vipLow.SetPriority(int(PriorityLow))
	vipHigh := NewPricingTier()
	vipHigh.ID = "vip"
	vipHigh.SetPriority(int(PriorityHigh))
	tree.Tiers = []*PricingTier{first, vipLow, vipHigh}

	if got := tree.Tier("standard"); got != first {
		t.Errorf("Tier(standard) = %v, want the exact match", got)
	}
	if got := tree.Tier("vip"); got != vipHigh {
		t.Errorf("Tier(vip) = %v, want the high-priority duplicate", got)
	}
	if got := tree.Tier("missing"); got != first {
		t.Errorf("Tier(missing) = %v, want the first tier as fallback", got)
	}
}

func TestPricingDelegation(t *testing.T) {
	at := ts(t, "2026-07-15T12:00:00Z")

	empty := NewPricing()
	if got := empty.Price("any", at); got != nil {
		t.Errorf("price on empty tree = %v, want nil", got)
	}
	if got := empty.ExceptionTitle("any", at); got != nil {
		t.Errorf("exception title on empty tree = %v, want nil", got)
	}
	if got := empty.DataStrings("any"); got == nil || len(got) != 0 {
		t.Errorf("data strings on empty tree = %v, want an empty map", got)
	}

	tree := NewPricing()
	tree.Tiers = []*PricingTier{layeredTier(t)}
	if got := tree.Price("standard", at); got == nil || got.Amount.String() != "20" {
		t.Errorf("delegated price = %v, want the tier's 20", got)
	}
	december := ts(t, "2026-12-25T12:00:00Z")
	title := tree.ExceptionTitle("standard", december)
	if title == nil || title.String() != "Holiday special" {
		t.Errorf("delegated exception title = %v, want Holiday special", title)
	}
}

func TestPricingNilReceiver(t *testing.T) {
	var tree *Pricing
	at := ts(t, "2026-07-15T12:00:00Z")

	if got := tree.Tier("any"); got != nil {
		t.Errorf("tier on nil tree = %v, want nil", got)
	}
	if got := tree.Price("any", at); got != nil {
		t.Errorf("price on nil tree = %v, want nil", got)
	}
}

func TestPricingCloneAndDiff(t *testing.T) {
	tree := NewPricing()
	tree.Tiers = []*PricingTier{layeredTier(t)}

	c := tree.Clone()
	if tree.IsDiffFrom(c) {
		t.Error("clone differs from original")
	}

	c.Tiers[0].Overrides[0].SetPriority(int(PriorityNone))
	if !tree.IsDiffFrom(c) {
		t.Error("deeply nested change not detected")
	}

	if !tree.IsDiffFrom(nil) {
		t.Error("nil must be different")
	}
}
