package inventario

import (
	"slices"
	"strings"
)

// Ledger is an ordered sequence of count records.
//
// Records are kept in submission order. The ledger never reorders and never
// deduplicates: durability belongs to the Store, and the duplicate guard to
// the validator, which runs before anything is appended.
type Ledger struct {
	records []CountRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds a record after all existing ones.
func (l *Ledger) Append(r CountRecord) { l.records = append(l.records, r) }

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of the records in storage order.
func (l *Ledger) Records() []CountRecord { return slices.Clone(l.records) }

// Last returns the most recent record, if any.
func (l *Ledger) Last() (CountRecord, bool) {
	if len(l.records) == 0 {
		return CountRecord{}, false
	}
	return l.records[len(l.records)-1], true
}

// FilterByCode returns the records whose code contains substr,
// case-insensitively, preserving storage order. An empty substr returns the
// whole ledger.
func (l *Ledger) FilterByCode(substr string) []CountRecord {
	if substr == "" {
		return l.Records()
	}
	needle := strings.ToLower(substr)
	var out []CountRecord
	for _, r := range l.records {
		if strings.Contains(strings.ToLower(r.Code), needle) {
			out = append(out, r)
		}
	}
	return out
}
