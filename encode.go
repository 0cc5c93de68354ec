package inventario

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"
)

// ledgerHeader is the mandatory header row of the persisted ledger.
// The code column is plain text on purpose: leading zeros must survive a
// round trip through storage.
var ledgerHeader = []string{"Data", "Código", "Quantidade"}

// DecodeLedger reads a CSV ledger stream and returns the records in storage
// order. A completely empty stream decodes to an empty ledger; anything else
// must start with the header row.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	ledger := NewLedger()
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger header: %w", err)
	}
	if !slices.Equal(header, ledgerHeader) {
		return nil, fmt.Errorf("unexpected ledger header %q, want %q", header, ledgerHeader)
	}

	for line := 2; ; line++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		on, err := time.ParseInLocation(TimeFormat, fields[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid date %q: %w", line, fields[0], err)
		}
		quantity, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid quantity %q: %w", line, fields[2], err)
		}
		ledger.Append(CountRecord{Date: on, Code: fields[1], Quantity: quantity})
	}
	return ledger, nil
}

// EncodeLedger writes the ledger in its flat CSV form: the header row first,
// then one record per row in storage order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	for _, r := range ledger.records {
		row := []string{r.Date.Format(TimeFormat), r.Code, strconv.Itoa(r.Quantity)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write record for code %q: %w", r.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
