package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"tierpricing/core/localized"
	"tierpricing/core/record"
)

// Record translation for every entity. Construction from a record is
// graceful: each field falls back to its default when malformed, and only
// a completely empty record yields no object. Record forms round-trip:
// NewXFromRecord(x.Record()) is structurally identical to x.

// slotFields maps weekdays to their wire names.
var slotFields = map[time.Weekday]string{
	time.Sunday:    "priceSunday",
	time.Monday:    "priceMonday",
	time.Tuesday:   "priceTuesday",
	time.Wednesday: "priceWednesday",
	time.Thursday:  "priceThursday",
	time.Friday:    "priceFriday",
	time.Saturday:  "priceSaturday",
}

// Record returns the price's generic-record form.
func (p *Price) Record() record.Record {
	r := p.baseRecord()
	r[fieldAmount] = p.Amount.String()
	r[fieldPriority] = int(p.priority)
	if p.ActiveFrom != nil {
		r[fieldActiveFrom] = p.ActiveFrom.Format(time.RFC3339)
	}
	if p.ActiveTo != nil {
		r[fieldActiveTo] = p.ActiveTo.Format(time.RFC3339)
	}
	return r
}

// NewPriceFromRecord builds a price from its record form, nil on an empty
// record.
func NewPriceFromRecord(r record.Record) *Price {
	if r.IsEmpty() {
		return nil
	}
	p := NewPrice(decimal.Zero, int(PriorityNormal))
	p.applyBaseRecord(r)
	p.Amount = record.Decimal(r, fieldAmount, p.Amount)
	p.SetPriority(record.Int(r, fieldPriority, int(p.priority)))
	p.ActiveFrom = record.TimePtr(r, fieldActiveFrom)
	p.ActiveTo = record.TimePtr(r, fieldActiveTo)
	return p
}

// Record returns the price set's generic-record form.
func (s *PriceSet) Record() record.Record {
	r := s.baseRecord()
	prices := make([]record.Record, 0, len(s.Prices))
	for _, p := range s.Prices {
		prices = append(prices, p.Record())
	}
	r[fieldPrices] = prices
	return r
}

// NewPriceSetFromRecord builds a price set from its record form, nil on
// an empty record.
func NewPriceSetFromRecord(r record.Record) *PriceSet {
	if r.IsEmpty() {
		return nil
	}
	s := NewPriceSet()
	s.applyBaseRecord(r)
	for _, pr := range record.Children(r, fieldPrices) {
		if p := NewPriceFromRecord(pr); p != nil {
			s.Prices = append(s.Prices, p)
		}
	}
	return s
}

// Record returns the item's generic-record form, one field per populated
// day slot.
func (it *PricingItem) Record() record.Record {
	r := it.baseRecord()
	r[fieldPriority] = int(it.priority)
	if it.DefaultSlot != nil {
		r[fieldDefaultSlot] = it.DefaultSlot.Record()
	}
	for day, field := range slotFields {
		if set := it.Slots[day]; set != nil {
			r[field] = set.Record()
		}
	}
	return r
}

// NewPricingItemFromRecord builds an item from its record form, nil on an
// empty record.
func NewPricingItemFromRecord(r record.Record) *PricingItem {
	if r.IsEmpty() {
		return nil
	}
	it := NewPricingItem()
	it.applyBaseRecord(r)
	it.SetPriority(record.Int(r, fieldPriority, int(it.priority)))
	it.DefaultSlot = NewPriceSetFromRecord(record.Child(r, fieldDefaultSlot))
	for day, field := range slotFields {
		if set := NewPriceSetFromRecord(record.Child(r, field)); set != nil {
			it.Slots[day] = set
		}
	}
	return it
}

// Record returns the season's generic-record form.
func (s *PricingSeason) Record() record.Record {
	r := s.baseRecord()
	r[fieldPriority] = int(s.priority)
	r[fieldStartTime] = s.StartTime.Format(time.RFC3339)
	r[fieldEndTime] = s.EndTime.Format(time.RFC3339)
	r[fieldItems] = itemRecords(s.Items)
	return r
}

// NewPricingSeasonFromRecord builds a season from its record form, nil on
// an empty record.
func NewPricingSeasonFromRecord(r record.Record) *PricingSeason {
	if r.IsEmpty() {
		return nil
	}
	s := NewPricingSeason()
	s.applyBaseRecord(r)
	s.SetPriority(record.Int(r, fieldPriority, int(s.priority)))
	s.StartTime = record.Time(r, fieldStartTime, s.StartTime)
	s.EndTime = record.Time(r, fieldEndTime, s.EndTime)
	s.Items = itemsFromRecords(record.Children(r, fieldItems))
	return s
}

// Record returns the override's generic-record form.
func (ov *PricingOverride) Record() record.Record {
	r := ov.baseRecord()
	r[fieldEnabled] = ov.Enabled
	r[fieldPriority] = int(ov.priority)
	r[fieldStartTime] = ov.StartTime.Format(time.RFC3339)
	r[fieldEndTime] = ov.EndTime.Format(time.RFC3339)
	r[fieldItems] = itemRecords(ov.Items)
	if !ov.Title.IsEmpty() {
		r[fieldTitle] = ov.Title.Record()
	}
	return r
}

// NewPricingOverrideFromRecord builds an override from its record form,
// nil on an empty record.
func NewPricingOverrideFromRecord(r record.Record) *PricingOverride {
	if r.IsEmpty() {
		return nil
	}
	ov := NewPricingOverride()
	ov.applyBaseRecord(r)
	ov.Enabled = record.Bool(r, fieldEnabled, ov.Enabled)
	ov.SetPriority(record.Int(r, fieldPriority, int(ov.priority)))
	ov.StartTime = record.Time(r, fieldStartTime, ov.StartTime)
	ov.EndTime = record.Time(r, fieldEndTime, ov.EndTime)
	ov.Title = localized.FromRecord(record.Child(r, fieldTitle))
	ov.Items = itemsFromRecords(record.Children(r, fieldItems))
	return ov
}

// Record returns the tier's generic-record form.
func (t *PricingTier) Record() record.Record {
	r := t.baseRecord()
	r[fieldPriority] = int(t.priority)
	overrides := make([]record.Record, 0, len(t.Overrides))
	for _, ov := range t.Overrides {
		overrides = append(overrides, ov.Record())
	}
	r[fieldOverrides] = overrides
	seasons := make([]record.Record, 0, len(t.Seasons))
	for _, s := range t.Seasons {
		seasons = append(seasons, s.Record())
	}
	r[fieldSeasons] = seasons
	r[fieldItems] = itemRecords(t.Items)
	strings := make(record.Record, len(t.DataStrings))
	for k, v := range t.DataStrings {
		strings[k] = v.Record()
	}
	r[fieldDataStrings] = strings
	return r
}

// NewPricingTierFromRecord builds a tier from its record form, nil on an
// empty record.
func NewPricingTierFromRecord(r record.Record) *PricingTier {
	if r.IsEmpty() {
		return nil
	}
	t := NewPricingTier()
	t.applyBaseRecord(r)
	t.SetPriority(record.Int(r, fieldPriority, int(t.priority)))
	for _, rr := range record.Children(r, fieldOverrides) {
		if ov := NewPricingOverrideFromRecord(rr); ov != nil {
			t.Overrides = append(t.Overrides, ov)
		}
	}
	for _, rr := range record.Children(r, fieldSeasons) {
		if s := NewPricingSeasonFromRecord(rr); s != nil {
			t.Seasons = append(t.Seasons, s)
		}
	}
	t.Items = itemsFromRecords(record.Children(r, fieldItems))
	for k, rr := range record.ChildMap(r, fieldDataStrings) {
		if v := localized.FromRecord(rr); v != nil {
			t.DataStrings[k] = v
		}
	}
	return t
}

// Record returns the whole tree's generic-record form.
func (p *Pricing) Record() record.Record {
	r := p.baseRecord()
	tiers := make([]record.Record, 0, len(p.Tiers))
	for _, t := range p.Tiers {
		tiers = append(tiers, t.Record())
	}
	r[fieldTiers] = tiers
	return r
}

// NewPricingFromRecord builds a tree from its record form, nil on an
// empty record.
func NewPricingFromRecord(r record.Record) *Pricing {
	if r.IsEmpty() {
		return nil
	}
	p := NewPricing()
	p.applyBaseRecord(r)
	for _, rr := range record.Children(r, fieldTiers) {
		if t := NewPricingTierFromRecord(rr); t != nil {
			p.Tiers = append(p.Tiers, t)
		}
	}
	return p
}

func itemRecords(items []*PricingItem) []record.Record {
	out := make([]record.Record, 0, len(items))
	for _, it := range items {
		out = append(out, it.Record())
	}
	return out
}

func itemsFromRecords(rs []record.Record) []*PricingItem {
	var out []*PricingItem
	for _, r := range rs {
		if it := NewPricingItemFromRecord(r); it != nil {
			out = append(out, it)
		}
	}
	return out
}
