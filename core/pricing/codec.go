package pricing

import (
	jsoniter "github.com/json-iterator/go"

	"tierpricing/core/record"
)

// JSON codec over the record forms. Entities serialize through their
// generic record, so the JSON wire format and the record format stay one
// and the same, and decoding inherits the record layer's graceful
// degradation.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalRecord(r record.Record) ([]byte, error) { return json.Marshal(r) }

func unmarshalRecord(data []byte) (record.Record, error) {
	var r record.Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// MarshalJSON encodes the price through its record form.
func (p *Price) MarshalJSON() ([]byte, error) { return marshalRecord(p.Record()) }

// UnmarshalJSON decodes the price from its record form.
func (p *Price) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPriceFromRecord(r); built != nil {
		p.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the price set through its record form.
func (s *PriceSet) MarshalJSON() ([]byte, error) { return marshalRecord(s.Record()) }

// UnmarshalJSON decodes the price set from its record form.
func (s *PriceSet) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPriceSetFromRecord(r); built != nil {
		s.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the item through its record form.
func (it *PricingItem) MarshalJSON() ([]byte, error) { return marshalRecord(it.Record()) }

// UnmarshalJSON decodes the item from its record form.
func (it *PricingItem) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPricingItemFromRecord(r); built != nil {
		it.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the season through its record form.
func (s *PricingSeason) MarshalJSON() ([]byte, error) { return marshalRecord(s.Record()) }

// UnmarshalJSON decodes the season from its record form.
func (s *PricingSeason) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPricingSeasonFromRecord(r); built != nil {
		s.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the override through its record form.
func (ov *PricingOverride) MarshalJSON() ([]byte, error) { return marshalRecord(ov.Record()) }

// UnmarshalJSON decodes the override from its record form.
func (ov *PricingOverride) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPricingOverrideFromRecord(r); built != nil {
		ov.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the tier through its record form.
func (t *PricingTier) MarshalJSON() ([]byte, error) { return marshalRecord(t.Record()) }

// UnmarshalJSON decodes the tier from its record form.
func (t *PricingTier) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPricingTierFromRecord(r); built != nil {
		t.UpdateFrom(built)
	}
	return nil
}

// MarshalJSON encodes the whole tree through its record form.
func (p *Pricing) MarshalJSON() ([]byte, error) { return marshalRecord(p.Record()) }

// UnmarshalJSON decodes the whole tree from its record form.
func (p *Pricing) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	if built := NewPricingFromRecord(r); built != nil {
		p.UpdateFrom(built)
	}
	return nil
}

// DecodePricing decodes a full tree from JSON bytes, nil (no error) when
// the document is an empty object.
func DecodePricing(data []byte) (*Pricing, error) {
	r, err := unmarshalRecord(data)
	if err != nil {
		return nil, err
	}
	return NewPricingFromRecord(r), nil
}

// EncodePricing encodes a full tree as indented JSON.
func EncodePricing(p *Pricing) ([]byte, error) {
	return json.MarshalIndent(p.Record(), "", "  ")
}
