// Package hcl loads pricing catalogs from HCL files.
//
// A catalog is a single pricing block holding tier blocks; tiers hold
// override, season, and base item blocks; items hold per-weekday slot
// blocks and a default_prices block; slots hold price blocks. Dates are
// RFC 3339, amounts are numbers or decimal strings, priorities are step
// names or integers.
package hcl

import (
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"tierpricing/core/localized"
	"tierpricing/core/pricing"
	"tierpricing/internal/errors"
)

type catalogFile struct {
	Pricings []*pricingBlock `hcl:"pricing,block"`
}

type pricingBlock struct {
	ID    string       `hcl:"id,label"`
	Tiers []*tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	ID          string           `hcl:"id,label"`
	Priority    cty.Value        `hcl:"priority,optional"`
	DataStrings cty.Value        `hcl:"data_strings,optional"`
	Overrides   []*overrideBlock `hcl:"override,block"`
	Seasons     []*seasonBlock   `hcl:"season,block"`
	Items       []*itemBlock     `hcl:"item,block"`
}

type overrideBlock struct {
	ID       string       `hcl:"id,label"`
	Enabled  bool         `hcl:"enabled,optional"`
	Priority cty.Value    `hcl:"priority,optional"`
	Title    cty.Value    `hcl:"title,optional"`
	Start    string       `hcl:"start,optional"`
	End      string       `hcl:"end,optional"`
	Items    []*itemBlock `hcl:"item,block"`
}

type seasonBlock struct {
	ID       string       `hcl:"id,label"`
	Priority cty.Value    `hcl:"priority,optional"`
	Start    string       `hcl:"start,optional"`
	End      string       `hcl:"end,optional"`
	Items    []*itemBlock `hcl:"item,block"`
}

type itemBlock struct {
	Priority cty.Value       `hcl:"priority,optional"`
	Default  *slotBlock      `hcl:"default_prices,block"`
	Slots    []*daySlotBlock `hcl:"slot,block"`
}

type slotBlock struct {
	Prices []*priceBlock `hcl:"price,block"`
}

type daySlotBlock struct {
	Day    string        `hcl:"day,label"`
	Prices []*priceBlock `hcl:"price,block"`
}

type priceBlock struct {
	Amount     cty.Value `hcl:"amount"`
	Priority   cty.Value `hcl:"priority,optional"`
	ActiveFrom string    `hcl:"active_from,optional"`
	ActiveTo   string    `hcl:"active_to,optional"`
}

// LoadFile reads and builds a pricing tree from an HCL catalog file.
func LoadFile(path string) (*pricing.Pricing, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading catalog file", err)
	}
	return Load(src, path)
}

// Load builds a pricing tree from HCL source. filename is used in
// diagnostics only.
func Load(src []byte, filename string) (*pricing.Pricing, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing catalog", diags)
	}

	var catalog catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &catalog); diags.HasErrors() {
		return nil, errors.Parsing("decoding catalog", diags)
	}

	if len(catalog.Pricings) == 0 {
		return nil, errors.Input("catalog contains no pricing block")
	}
	if len(catalog.Pricings) > 1 {
		return nil, errors.Input("catalog contains more than one pricing block")
	}

	return buildPricing(catalog.Pricings[0])
}

func buildPricing(b *pricingBlock) (*pricing.Pricing, error) {
	p := pricing.NewPricing()
	if b.ID != "" {
		p.ID = b.ID
	}
	for _, tb := range b.Tiers {
		t, err := buildTier(tb)
		if err != nil {
			return nil, err
		}
		p.Tiers = append(p.Tiers, t)
	}
	return p, nil
}

func buildTier(b *tierBlock) (*pricing.PricingTier, error) {
	t := pricing.NewPricingTier()
	t.ID = b.ID
	t.SetPriority(int(ctyPriority(b.Priority, t.Priority())))
	for k, v := range ctyStringMap(b.DataStrings) {
		t.DataStrings[k] = localized.New(v)
	}
	for _, ob := range b.Overrides {
		ov, err := buildOverride(ob)
		if err != nil {
			return nil, err
		}
		t.Overrides = append(t.Overrides, ov)
	}
	for _, sb := range b.Seasons {
		s, err := buildSeason(sb)
		if err != nil {
			return nil, err
		}
		t.Seasons = append(t.Seasons, s)
	}
	for _, ib := range b.Items {
		it, err := buildItem(ib)
		if err != nil {
			return nil, err
		}
		t.Items = append(t.Items, it)
	}
	return t, nil
}

func buildOverride(b *overrideBlock) (*pricing.PricingOverride, error) {
	ov := pricing.NewPricingOverride()
	ov.ID = b.ID
	ov.Enabled = b.Enabled
	ov.SetPriority(int(ctyPriority(b.Priority, ov.Priority())))
	if title := ctyStringMap(b.Title); len(title) > 0 {
		ov.Title = localized.FromStringMap(title)
	}
	var err error
	if ov.StartTime, err = parseBound(b.Start, ov.StartTime, "override "+b.ID+" start"); err != nil {
		return nil, err
	}
	if ov.EndTime, err = parseBound(b.End, ov.EndTime, "override "+b.ID+" end"); err != nil {
		return nil, err
	}
	for _, ib := range b.Items {
		it, err := buildItem(ib)
		if err != nil {
			return nil, err
		}
		ov.Items = append(ov.Items, it)
	}
	return ov, nil
}

func buildSeason(b *seasonBlock) (*pricing.PricingSeason, error) {
	s := pricing.NewPricingSeason()
	s.ID = b.ID
	s.SetPriority(int(ctyPriority(b.Priority, s.Priority())))
	var err error
	if s.StartTime, err = parseBound(b.Start, s.StartTime, "season "+b.ID+" start"); err != nil {
		return nil, err
	}
	if s.EndTime, err = parseBound(b.End, s.EndTime, "season "+b.ID+" end"); err != nil {
		return nil, err
	}
	for _, ib := range b.Items {
		it, err := buildItem(ib)
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, it)
	}
	return s, nil
}

func buildItem(b *itemBlock) (*pricing.PricingItem, error) {
	it := pricing.NewPricingItem()
	it.SetPriority(int(ctyPriority(b.Priority, it.Priority())))
	if b.Default != nil {
		set, err := buildPriceSet(b.Default.Prices)
		if err != nil {
			return nil, err
		}
		it.DefaultSlot = set
	}
	for _, sb := range b.Slots {
		day, ok := parseWeekday(sb.Day)
		if !ok {
			return nil, errors.Newf(errors.TypeInput, "unknown weekday %q in slot block", sb.Day)
		}
		set, err := buildPriceSet(sb.Prices)
		if err != nil {
			return nil, err
		}
		it.SetSlot(day, set)
	}
	return it, nil
}

func buildPriceSet(blocks []*priceBlock) (*pricing.PriceSet, error) {
	set := pricing.NewPriceSet()
	for _, pb := range blocks {
		amount, ok := ctyDecimal(pb.Amount)
		if !ok {
			return nil, errors.Input("price amount must be a number or decimal string")
		}
		p := pricing.NewPrice(amount, int(ctyPriority(pb.Priority, pricing.PriorityNormal)))
		if pb.ActiveFrom != "" {
			t, err := time.Parse(time.RFC3339, pb.ActiveFrom)
			if err != nil {
				return nil, errors.Parsing("parsing price active_from", err)
			}
			p.ActiveFrom = &t
		}
		if pb.ActiveTo != "" {
			t, err := time.Parse(time.RFC3339, pb.ActiveTo)
			if err != nil {
				return nil, errors.Parsing("parsing price active_to", err)
			}
			p.ActiveTo = &t
		}
		set.Prices = append(set.Prices, p)
	}
	return set, nil
}

// parseBound reads an RFC 3339 window bound, keeping the sentinel default
// when the attribute is absent.
func parseBound(raw string, def time.Time, what string) (time.Time, error) {
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Parsing("parsing "+what, err)
	}
	return t, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch s {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return time.Sunday, false
}
