package pricing

import (
	"time"

	"github.com/google/uuid"

	"tierpricing/core/record"
)

// Base carries the identity and bookkeeping fields shared by every
// pricing entity.
type Base struct {
	ID      string
	Created time.Time
	Updated time.Time
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:      uuid.NewString(),
		Created: now,
		Updated: now,
	}
}

func (b *Base) updateFrom(o Base) {
	*b = o
}

// isDiffFrom compares identity only; timestamps are bookkeeping, not
// structure.
func (b Base) isDiffFrom(o Base) bool {
	return b.ID != o.ID
}

func (b Base) baseRecord() record.Record {
	return record.Record{fieldID: b.ID}
}

func (b *Base) applyBaseRecord(r record.Record) {
	b.ID = record.String(r, fieldID, b.ID)
}

// Record field names shared across entities. These are the wire names the
// generic-record and JSON forms use.
const (
	fieldID          = "id"
	fieldPriority    = "priority"
	fieldPrices      = "prices"
	fieldAmount      = "amount"
	fieldActiveFrom  = "activeFrom"
	fieldActiveTo    = "activeTo"
	fieldStartTime   = "startTime"
	fieldEndTime     = "endTime"
	fieldEnabled     = "enabled"
	fieldTitle       = "title"
	fieldItems       = "items"
	fieldSeasons     = "seasons"
	fieldOverrides   = "overrides"
	fieldTiers       = "tiers"
	fieldDataStrings = "dataStrings"
	fieldDefaultSlot = "priceDefault"
)

// differ is implemented by every entity so container diffs can recurse.
type differ interface{ IsDiffFrom(other any) bool }

// hasDiffElements reports an element-wise structural difference between
// two entity slices. Length mismatch is a difference.
func hasDiffElements[T differ](a, b []T) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i].IsDiffFrom(b[i]) {
			return true
		}
	}
	return false
}
