package inventario

import "time"

// TimeFormat is the textual format used to persist record timestamps,
// in local time.
const TimeFormat = "2006-01-02 15:04:05"

// DisplayTimeFormat is the format used when records are shown to the operator.
const DisplayTimeFormat = "02/01/2006 15:04"

// CountRecord is one timestamped (code, quantity) entry in the ledger.
//
// Records are immutable once written. They carry no explicit key: their
// identity is their position in the ledger.
type CountRecord struct {
	Date     time.Time
	Code     string
	Quantity int
}

// NewCountRecord stamps a record at the given instant, truncated to the
// second to match the persisted format.
func NewCountRecord(on time.Time, code string, quantity int) CountRecord {
	return CountRecord{Date: on.Truncate(time.Second), Code: code, Quantity: quantity}
}

// Equal reports whether both records carry the same instant, code and quantity.
func (r CountRecord) Equal(o CountRecord) bool {
	return r.Date.Equal(o.Date) && r.Code == o.Code && r.Quantity == o.Quantity
}

// DisplayDate returns the record timestamp in the operator-facing format.
func (r CountRecord) DisplayDate() string { return r.Date.Format(DisplayTimeFormat) }
