package pricing

import (
	"sort"
	"time"

	"tierpricing/core/localized"
)

// PricingTier is the externally addressable pricing plan. It layers
// overrides over seasons over base items: the first layer that yields a
// price wins, and within a layer candidates are tried priority-descending
// with declaration order breaking ties.
type PricingTier struct {
	Base
	Overrides   []*PricingOverride
	Seasons     []*PricingSeason
	Items       []*PricingItem
	DataStrings map[string]localized.String

	priority Priority
}

// NewPricingTier creates an empty tier with a fresh id and normal
// priority.
func NewPricingTier() *PricingTier {
	return &PricingTier{
		Base:        newBase(),
		DataStrings: make(map[string]localized.String),
		priority:    PriorityNormal,
	}
}

// NewPricingTierFrom creates a deep copy of other.
func NewPricingTierFrom(other *PricingTier) *PricingTier {
	t := &PricingTier{}
	t.UpdateFrom(other)
	return t
}

// Priority returns the clamped priority.
func (t *PricingTier) Priority() Priority { return t.priority }

// SetPriority assigns the priority, clamping out-of-range values.
func (t *PricingTier) SetPriority(v int) { t.priority = ClampPriority(v) }

// Price resolves the tier for an instant with override → season → base
// precedence. Nil when no layer yields a price.
func (t *PricingTier) Price(at time.Time) *Price {
	if t == nil {
		return nil
	}
	if _, p := t.overrideAt(at); p != nil {
		return p
	}
	if p := t.seasonPrice(at); p != nil {
		return p
	}
	return priceAt(t.Items, at)
}

// ExceptionTitle returns the title of the override supplying the winning
// price at the instant, or nil when no override does. Seasons and base
// items carry no exception title.
func (t *PricingTier) ExceptionTitle(at time.Time) localized.String {
	if t == nil {
		return nil
	}
	if ov, p := t.overrideAt(at); p != nil {
		return ov.Title
	}
	return nil
}

// DataString returns the localized copy stored under key, nil when the
// key is absent.
func (t *PricingTier) DataString(key string) localized.String {
	if t == nil {
		return nil
	}
	return t.DataStrings[key]
}

// Season returns the season matching id with the highest priority, first
// season as a fallback when no id matches, nil when there are none.
func (t *PricingTier) Season(id string) *PricingSeason {
	var matches []*PricingSeason
	for _, s := range t.Seasons {
		if s.ID == id {
			matches = append(matches, s)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].priority > matches[j].priority
	})
	if len(matches) > 0 {
		return matches[0]
	}
	if len(t.Seasons) > 0 {
		return t.Seasons[0]
	}
	return nil
}

// overrideAt runs the override pass: priority-descending, first override
// whose resolution is non-nil. Overrides self-gate, so disabled or
// out-of-window overrides simply yield nil here.
func (t *PricingTier) overrideAt(at time.Time) (*PricingOverride, *Price) {
	ranked := make([]*PricingOverride, len(t.Overrides))
	copy(ranked, t.Overrides)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority > ranked[j].priority
	})
	for _, ov := range ranked {
		if p := ov.Price(at); p != nil {
			return ov, p
		}
	}
	return nil, nil
}

// seasonPrice runs the season pass over currently active seasons only.
func (t *PricingTier) seasonPrice(at time.Time) *Price {
	var active []*PricingSeason
	for _, s := range t.Seasons {
		if s.IsActive(at) {
			active = append(active, s)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].priority > active[j].priority
	})
	for _, s := range active {
		if p := s.Price(at); p != nil {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy.
func (t *PricingTier) Clone() *PricingTier { return NewPricingTierFrom(t) }

// UpdateFrom overwrites every field from other, deep-copying children.
func (t *PricingTier) UpdateFrom(other *PricingTier) {
	if other == nil {
		return
	}
	t.Base.updateFrom(other.Base)
	t.priority = other.priority
	t.Overrides = make([]*PricingOverride, 0, len(other.Overrides))
	for _, ov := range other.Overrides {
		t.Overrides = append(t.Overrides, ov.Clone())
	}
	t.Seasons = make([]*PricingSeason, 0, len(other.Seasons))
	for _, s := range other.Seasons {
		t.Seasons = append(t.Seasons, s.Clone())
	}
	t.Items = make([]*PricingItem, 0, len(other.Items))
	for _, it := range other.Items {
		t.Items = append(t.Items, it.Clone())
	}
	t.DataStrings = make(map[string]localized.String, len(other.DataStrings))
	for k, v := range other.DataStrings {
		t.DataStrings[k] = v.Clone()
	}
}

// IsDiffFrom reports a structural difference against other.
func (t *PricingTier) IsDiffFrom(other any) bool {
	o, ok := other.(*PricingTier)
	if !ok || o == nil {
		return true
	}
	if t == o {
		return false
	}
	if t.Base.isDiffFrom(o.Base) || t.priority != o.priority {
		return true
	}
	if hasDiffElements(t.Overrides, o.Overrides) ||
		hasDiffElements(t.Seasons, o.Seasons) ||
		hasDiffElements(t.Items, o.Items) {
		return true
	}
	if len(t.DataStrings) != len(o.DataStrings) {
		return true
	}
	for k, v := range t.DataStrings {
		if v.IsDiffFrom(o.DataStrings[k]) {
			return true
		}
	}
	return false
}
