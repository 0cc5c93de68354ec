package inventario

import (
	"fmt"
	"sort"
)

// SummaryRow is the aggregated total for one code. It is derived on demand
// from the full ledger and never persisted.
type SummaryRow struct {
	Code     string
	Quantity int
}

// Label returns the display string used by charts and spreadsheet exports.
func (r SummaryRow) Label() string {
	return fmt.Sprintf("%s – %d un.", r.Code, r.Quantity)
}

// Aggregate groups the ledger records by code and sums their quantities with
// exact integer arithmetic.
//
// Rows are sorted by total quantity, highest first. Ties keep the order in
// which the codes first appear in the ledger, so identical ledgers always
// aggregate to identical summaries.
func Aggregate(ledger *Ledger) []SummaryRow {
	totals := make(map[string]int)
	var order []string
	for _, r := range ledger.records {
		if _, seen := totals[r.Code]; !seen {
			order = append(order, r.Code)
		}
		totals[r.Code] += r.Quantity
	}

	rows := make([]SummaryRow, 0, len(order))
	for _, code := range order {
		rows = append(rows, SummaryRow{Code: code, Quantity: totals[code]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Quantity > rows[j].Quantity })
	return rows
}
