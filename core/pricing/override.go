package pricing

import (
	"time"

	"tierpricing/core/localized"
)

// PricingOverride is the exception layer: season-shaped, but gated by an
// Enabled flag and consulted unconditionally by the tier, so its own
// activity check is embedded in resolution. A disabled override never
// participates regardless of its window. Title is the display copy
// surfaced as the tier's exception title when the override supplies the
// winning price.
type PricingOverride struct {
	Base
	Enabled   bool
	StartTime time.Time
	EndTime   time.Time
	Title     localized.String
	Items     []*PricingItem

	priority Priority
}

// NewPricingOverride creates a disabled override with a fresh id and the
// sentinel always-active window.
func NewPricingOverride() *PricingOverride {
	return &PricingOverride{
		Base:      newBase(),
		StartTime: WindowOpen,
		EndTime:   WindowClose,
		priority:  PriorityNormal,
	}
}

// NewPricingOverrideFrom creates a deep copy of other.
func NewPricingOverrideFrom(other *PricingOverride) *PricingOverride {
	ov := &PricingOverride{}
	ov.UpdateFrom(other)
	return ov
}

// Priority returns the clamped priority.
func (ov *PricingOverride) Priority() Priority { return ov.priority }

// SetPriority assigns the priority, clamping out-of-range values.
func (ov *PricingOverride) SetPriority(v int) { ov.priority = ClampPriority(v) }

// IsActive reports whether the override participates at the instant:
// never while disabled, otherwise by the same sentinel-default window
// rules as a season.
func (ov *PricingOverride) IsActive(at time.Time) bool {
	if !ov.Enabled {
		return false
	}
	return windowActive(at, ov.StartTime, ov.EndTime)
}

// Item returns the winning item for the instant, or nil immediately when
// the override is not active.
func (ov *PricingOverride) Item(at time.Time) *PricingItem {
	if !ov.IsActive(at) {
		return nil
	}
	return itemAt(ov.Items, at)
}

// Price resolves the override to a price for the instant, self-gating on
// IsActive before inspecting any item.
func (ov *PricingOverride) Price(at time.Time) *Price {
	if !ov.IsActive(at) {
		return nil
	}
	return priceAt(ov.Items, at)
}

// Clone returns a deep copy.
func (ov *PricingOverride) Clone() *PricingOverride { return NewPricingOverrideFrom(ov) }

// UpdateFrom overwrites every field from other, deep-copying children.
func (ov *PricingOverride) UpdateFrom(other *PricingOverride) {
	if other == nil {
		return
	}
	ov.Base.updateFrom(other.Base)
	ov.Enabled = other.Enabled
	ov.StartTime = other.StartTime
	ov.EndTime = other.EndTime
	ov.priority = other.priority
	ov.Title = other.Title.Clone()
	ov.Items = make([]*PricingItem, 0, len(other.Items))
	for _, it := range other.Items {
		ov.Items = append(ov.Items, it.Clone())
	}
}

// IsDiffFrom reports a structural difference against other.
func (ov *PricingOverride) IsDiffFrom(other any) bool {
	o, ok := other.(*PricingOverride)
	if !ok || o == nil {
		return true
	}
	if ov == o {
		return false
	}
	return ov.Base.isDiffFrom(o.Base) ||
		ov.Enabled != o.Enabled ||
		ov.priority != o.priority ||
		!ov.StartTime.Equal(o.StartTime) ||
		!ov.EndTime.Equal(o.EndTime) ||
		ov.Title.IsDiffFrom(o.Title) ||
		hasDiffElements(ov.Items, o.Items)
}
