package pricing

import (
	"sort"
	"time"
)

// PricingItem is one full week's pricing plan: a price set per weekday
// plus a default set consulted when the day-specific slot yields nothing.
type PricingItem struct {
	Base
	Slots       map[time.Weekday]*PriceSet
	DefaultSlot *PriceSet

	priority Priority
}

// NewPricingItem creates an empty item with a fresh id and normal
// priority.
func NewPricingItem() *PricingItem {
	return &PricingItem{
		Base:     newBase(),
		Slots:    make(map[time.Weekday]*PriceSet),
		priority: PriorityNormal,
	}
}

// NewPricingItemFrom creates a deep copy of other.
func NewPricingItemFrom(other *PricingItem) *PricingItem {
	it := &PricingItem{}
	it.UpdateFrom(other)
	return it
}

// Priority returns the clamped priority.
func (it *PricingItem) Priority() Priority { return it.priority }

// SetPriority assigns the priority, clamping out-of-range values.
func (it *PricingItem) SetPriority(v int) { it.priority = ClampPriority(v) }

// SetSlot assigns the price set for one weekday.
func (it *PricingItem) SetSlot(day time.Weekday, set *PriceSet) {
	if it.Slots == nil {
		it.Slots = make(map[time.Weekday]*PriceSet)
	}
	it.Slots[day] = set
}

// Price resolves the item for an instant. The weekday slot is consulted
// first; if it exists but resolves to nil (e.g. an expired window) the
// default slot is still consulted. Day pricing overrides the default, it
// does not replace the whole plan.
func (it *PricingItem) Price(at time.Time) *Price {
	if it == nil {
		return nil
	}
	if slot := it.Slots[at.Weekday()]; slot != nil {
		if p := slot.ActivePrice(at); p != nil {
			return p
		}
	}
	return it.DefaultSlot.ActivePrice(at)
}

// Clone returns a deep copy.
func (it *PricingItem) Clone() *PricingItem { return NewPricingItemFrom(it) }

// UpdateFrom overwrites every field from other, deep-copying all slots.
func (it *PricingItem) UpdateFrom(other *PricingItem) {
	if other == nil {
		return
	}
	it.Base.updateFrom(other.Base)
	it.priority = other.priority
	it.Slots = make(map[time.Weekday]*PriceSet, len(other.Slots))
	for day, set := range other.Slots {
		if set != nil {
			it.Slots[day] = set.Clone()
		}
	}
	it.DefaultSlot = nil
	if other.DefaultSlot != nil {
		it.DefaultSlot = other.DefaultSlot.Clone()
	}
}

// IsDiffFrom reports a structural difference against other.
func (it *PricingItem) IsDiffFrom(other any) bool {
	o, ok := other.(*PricingItem)
	if !ok || o == nil {
		return true
	}
	if it == o {
		return false
	}
	if it.Base.isDiffFrom(o.Base) || it.priority != o.priority {
		return true
	}
	if diffSlot(it.DefaultSlot, o.DefaultSlot) {
		return true
	}
	if len(it.Slots) != len(o.Slots) {
		return true
	}
	for day, set := range it.Slots {
		if diffSlot(set, o.Slots[day]) {
			return true
		}
	}
	return false
}

func diffSlot(a, b *PriceSet) bool {
	if a == nil || b == nil {
		return (a == nil) != (b == nil)
	}
	return a.IsDiffFrom(b)
}

// itemAt returns the highest-priority item that can produce a price for
// the instant, preserving declaration order on ties.
func itemAt(items []*PricingItem, at time.Time) *PricingItem {
	ranked := make([]*PricingItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})
	for _, it := range ranked {
		if it.Price(at) != nil {
			return it
		}
	}
	return nil
}

// priceAt resolves items to a price via the same first-match rule.
func priceAt(items []*PricingItem, at time.Time) *Price {
	if it := itemAt(items, at); it != nil {
		return it.Price(at)
	}
	return nil
}
