package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Price is the atomic decision unit: one candidate monetary value, its
// tie-breaking priority, and an optional activity window. A nil bound is
// unconstrained on that side; with both bounds set the instant must fall
// in the inclusive range.
type Price struct {
	Base
	Amount     decimal.Decimal
	ActiveFrom *time.Time
	ActiveTo   *time.Time

	priority Priority
}

// NewPrice creates a price with a fresh id and an unconstrained window.
func NewPrice(amount decimal.Decimal, priority int) *Price {
	return &Price{
		Base:     newBase(),
		Amount:   amount,
		priority: ClampPriority(priority),
	}
}

// NewPriceFrom creates a deep copy of other.
func NewPriceFrom(other *Price) *Price {
	p := &Price{}
	p.UpdateFrom(other)
	return p
}

// Priority returns the clamped priority.
func (p *Price) Priority() Priority { return p.priority }

// SetPriority assigns the priority, clamping out-of-range values.
func (p *Price) SetPriority(v int) { p.priority = ClampPriority(v) }

// Window assigns the activity bounds. Either may be nil for "unbounded on
// that side".
func (p *Price) Window(from, to *time.Time) {
	p.ActiveFrom = cloneTime(from)
	p.ActiveTo = cloneTime(to)
}

// IsActive reports whether at falls inside the price's activity window.
func (p *Price) IsActive(at time.Time) bool {
	if p.ActiveFrom != nil && at.Before(*p.ActiveFrom) {
		return false
	}
	if p.ActiveTo != nil && at.After(*p.ActiveTo) {
		return false
	}
	return true
}

// Clone returns a deep copy.
func (p *Price) Clone() *Price { return NewPriceFrom(p) }

// UpdateFrom overwrites every field from other.
func (p *Price) UpdateFrom(other *Price) {
	if other == nil {
		return
	}
	p.Base.updateFrom(other.Base)
	p.Amount = other.Amount
	p.priority = other.priority
	p.ActiveFrom = cloneTime(other.ActiveFrom)
	p.ActiveTo = cloneTime(other.ActiveTo)
}

// IsDiffFrom reports a structural difference against other. Type mismatch
// and nil are different.
func (p *Price) IsDiffFrom(other any) bool {
	o, ok := other.(*Price)
	if !ok || o == nil {
		return true
	}
	if p == o {
		return false
	}
	return p.Base.isDiffFrom(o.Base) ||
		!p.Amount.Equal(o.Amount) ||
		p.priority != o.priority ||
		diffTime(p.ActiveFrom, o.ActiveFrom) ||
		diffTime(p.ActiveTo, o.ActiveTo)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func diffTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return (a == nil) != (b == nil)
	}
	return !a.Equal(*b)
}

// PriceSet holds the candidate prices for one day slot. Candidates are
// not mutually exclusive; selection is by priority with declaration order
// breaking ties.
type PriceSet struct {
	Base
	Prices []*Price
}

// NewPriceSet creates an empty price set with a fresh id.
func NewPriceSet() *PriceSet {
	return &PriceSet{Base: newBase()}
}

// NewPriceSetFrom creates a deep copy of other.
func NewPriceSetFrom(other *PriceSet) *PriceSet {
	s := &PriceSet{}
	s.UpdateFrom(other)
	return s
}

// ActivePrice resolves the set to at most one price for the instant:
// filter to prices whose window contains at, then take the highest
// priority, first-declared on ties. Nil when nothing is active. This is
// the base case every higher layer falls back onto.
func (s *PriceSet) ActivePrice(at time.Time) *Price {
	if s == nil {
		return nil
	}
	var active []*Price
	for _, p := range s.Prices {
		if p != nil && p.IsActive(at) {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].priority > active[j].priority
	})
	return active[0]
}

// Clone returns a deep copy.
func (s *PriceSet) Clone() *PriceSet { return NewPriceSetFrom(s) }

// UpdateFrom overwrites every field from other, deep-copying the prices.
func (s *PriceSet) UpdateFrom(other *PriceSet) {
	if other == nil {
		return
	}
	s.Base.updateFrom(other.Base)
	s.Prices = make([]*Price, 0, len(other.Prices))
	for _, p := range other.Prices {
		s.Prices = append(s.Prices, p.Clone())
	}
}

// IsDiffFrom reports a structural difference against other.
func (s *PriceSet) IsDiffFrom(other any) bool {
	o, ok := other.(*PriceSet)
	if !ok || o == nil {
		return true
	}
	if s == o {
		return false
	}
	return s.Base.isDiffFrom(o.Base) || hasDiffElements(s.Prices, o.Prices)
}
