package pricing

import "time"

// PricingSeason is a date-range-scoped list of pricing items. Untouched
// bounds (the sentinel window) mean the season is always active. The
// season does not gate its own resolution: the owning tier checks
// IsActive before asking it for a price.
type PricingSeason struct {
	Base
	StartTime time.Time
	EndTime   time.Time
	Items     []*PricingItem

	priority Priority
}

// NewPricingSeason creates a season with a fresh id and the sentinel
// always-active window.
func NewPricingSeason() *PricingSeason {
	return &PricingSeason{
		Base:      newBase(),
		StartTime: WindowOpen,
		EndTime:   WindowClose,
		priority:  PriorityNormal,
	}
}

// NewPricingSeasonFrom creates a deep copy of other.
func NewPricingSeasonFrom(other *PricingSeason) *PricingSeason {
	s := &PricingSeason{}
	s.UpdateFrom(other)
	return s
}

// Priority returns the clamped priority.
func (s *PricingSeason) Priority() Priority { return s.priority }

// SetPriority assigns the priority, clamping out-of-range values.
func (s *PricingSeason) SetPriority(v int) { s.priority = ClampPriority(v) }

// IsActive reports whether at falls inside the season's inclusive window,
// treating still-default bounds as unconstrained.
func (s *PricingSeason) IsActive(at time.Time) bool {
	return windowActive(at, s.StartTime, s.EndTime)
}

// Item returns the highest-priority item that yields a price for the
// instant, declaration order breaking ties. Nil when none do.
func (s *PricingSeason) Item(at time.Time) *PricingItem {
	return itemAt(s.Items, at)
}

// Price resolves the season's items to a price for the instant.
func (s *PricingSeason) Price(at time.Time) *Price {
	return priceAt(s.Items, at)
}

// Clone returns a deep copy.
func (s *PricingSeason) Clone() *PricingSeason { return NewPricingSeasonFrom(s) }

// UpdateFrom overwrites every field from other, deep-copying the items.
func (s *PricingSeason) UpdateFrom(other *PricingSeason) {
	if other == nil {
		return
	}
	s.Base.updateFrom(other.Base)
	s.StartTime = other.StartTime
	s.EndTime = other.EndTime
	s.priority = other.priority
	s.Items = make([]*PricingItem, 0, len(other.Items))
	for _, it := range other.Items {
		s.Items = append(s.Items, it.Clone())
	}
}

// IsDiffFrom reports a structural difference against other.
func (s *PricingSeason) IsDiffFrom(other any) bool {
	o, ok := other.(*PricingSeason)
	if !ok || o == nil {
		return true
	}
	if s == o {
		return false
	}
	return s.Base.isDiffFrom(o.Base) ||
		s.priority != o.priority ||
		!s.StartTime.Equal(o.StartTime) ||
		!s.EndTime.Equal(o.EndTime) ||
		hasDiffElements(s.Items, o.Items)
}
