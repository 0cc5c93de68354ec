// Package renderer turns ledger data into operator-facing artifacts:
// markdown tables for the terminal, chart-ready series, spreadsheet
// workbooks and the paginated summary document.
//
// Everything here is a pure projection of the engine's data; nothing in this
// package touches storage.
package renderer

import (
	"bytes"
	"strconv"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the aggregated summary as a markdown table, one
// row per distinct code, in the order produced by Aggregate.
func SummaryMarkdown(rows []inventario.SummaryRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Resumo por Código")
	if len(rows) == 0 {
		doc.PlainText("Nenhuma contagem registrada.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Código", "Quantidade", "Rótulo"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Code, strconv.Itoa(r.Quantity), r.Label()})
	}
	doc.Table(table)
	return doc.String()
}

// HistoryMarkdown renders records for the operator: most recent first, with
// timestamps reformatted for display. The reversal is purely presentational;
// callers pass records in storage order.
func HistoryMarkdown(records []inventario.CountRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Relatório de Contagens")
	if len(records) == 0 {
		doc.PlainText("Nenhum registro encontrado.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Data", "Código", "Quantidade"},
	}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		table.Rows = append(table.Rows, []string{r.DisplayDate(), r.Code, strconv.Itoa(r.Quantity)})
	}
	doc.Table(table)
	return doc.String()
}
