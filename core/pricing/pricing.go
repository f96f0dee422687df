package pricing

import (
	"sort"
	"time"

	"tierpricing/core/localized"
)

// Pricing is the root of the tree: the collection of addressable tiers.
// All lookups resolve the tier first and delegate, so a caller always
// gets some tier when any exist.
type Pricing struct {
	Base
	Tiers []*PricingTier
}

// NewPricing creates an empty tree with a fresh id.
func NewPricing() *Pricing {
	return &Pricing{Base: newBase()}
}

// NewPricingFrom creates a deep copy of other.
func NewPricingFrom(other *Pricing) *Pricing {
	p := &Pricing{}
	p.UpdateFrom(other)
	return p
}

// Tier returns the tier addressed by id: among matching ids the highest
// priority wins (declaration order on ties); when nothing matches, the
// first tier is returned as a best-effort default; nil only when the tier
// list is empty.
func (p *Pricing) Tier(id string) *PricingTier {
	if p == nil {
		return nil
	}
	var matches []*PricingTier
	for _, t := range p.Tiers {
		if t.ID == id {
			matches = append(matches, t)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].priority > matches[j].priority
	})
	if len(matches) > 0 {
		return matches[0]
	}
	if len(p.Tiers) > 0 {
		return p.Tiers[0]
	}
	return nil
}

// Price resolves the tier for id and asks it for the price at the
// instant.
func (p *Pricing) Price(id string, at time.Time) *Price {
	return p.Tier(id).Price(at)
}

// ExceptionTitle resolves the tier for id and returns the title of the
// override supplying its price at the instant, if any.
func (p *Pricing) ExceptionTitle(id string, at time.Time) localized.String {
	return p.Tier(id).ExceptionTitle(at)
}

// DataString resolves the tier for id and looks up its data string under
// key.
func (p *Pricing) DataString(id, key string) localized.String {
	return p.Tier(id).DataString(key)
}

// DataStrings returns all data strings of the tier for id; empty map when
// the tier is absent.
func (p *Pricing) DataStrings(id string) map[string]localized.String {
	t := p.Tier(id)
	if t == nil {
		return map[string]localized.String{}
	}
	return t.DataStrings
}

// Clone returns a deep copy of the whole tree.
func (p *Pricing) Clone() *Pricing { return NewPricingFrom(p) }

// UpdateFrom overwrites every field from other, deep-copying the tiers.
func (p *Pricing) UpdateFrom(other *Pricing) {
	if other == nil {
		return
	}
	p.Base.updateFrom(other.Base)
	p.Tiers = make([]*PricingTier, 0, len(other.Tiers))
	for _, t := range other.Tiers {
		p.Tiers = append(p.Tiers, t.Clone())
	}
}

// IsDiffFrom reports a structural difference against other.
func (p *Pricing) IsDiffFrom(other any) bool {
	o, ok := other.(*Pricing)
	if !ok || o == nil {
		return true
	}
	if p == o {
		return false
	}
	return p.Base.isDiffFrom(o.Base) || hasDiffElements(p.Tiers, o.Tiers)
}
