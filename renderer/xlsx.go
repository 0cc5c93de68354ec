package renderer

import (
	"fmt"
	"time"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	"github.com/xuri/excelize/v2"
)

// SummaryWorkbook builds the "Resumo" workbook: one row per distinct code in
// the order produced by Aggregate (total quantity descending).
func SummaryWorkbook(rows []inventario.SummaryRow) (*excelize.File, error) {
	return workbook("Resumo", []string{"Código", "Quantidade", "Rótulo"}, len(rows), func(i int) []any {
		r := rows[i]
		return []any{r.Code, r.Quantity, r.Label()}
	})
}

// HistoryWorkbook builds the "Histórico" workbook: the full raw ledger in
// storage order, timestamps in the wire format.
func HistoryWorkbook(records []inventario.CountRecord) (*excelize.File, error) {
	return workbook("Histórico", []string{"Data", "Código", "Quantidade"}, len(records), func(i int) []any {
		r := records[i]
		return []any{r.Date.Format(inventario.TimeFormat), r.Code, r.Quantity}
	})
}

// workbook creates a single-sheet workbook with a bold header row. Codes are
// written as strings so leading zeros survive the export.
func workbook(sheet string, header []string, n int, row func(int) []any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for col, v := range row(i) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ExportTimeFormat stamps generated file names so successive exports in the
// same session do not collide.
const ExportTimeFormat = "20060102_1504"

// ExportFilename builds a timestamped file name such as
// "resumo_inventario_20240601_1000.xlsx".
func ExportFilename(prefix string, t time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format(ExportTimeFormat), ext)
}
