package renderer

import (
	"bytes"
	"strconv"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ChartSlice is one (label, value) pair of the proportion chart, together
// with its share of the total. The chart widget itself is an external
// collaborator; the engine only hands it ready-made series.
type ChartSlice struct {
	Label string
	Value int
	Share decimal.Decimal // percentage of the total
}

// ChartSeries projects the summary rows into chart-ready slices, preserving
// their order. Shares are computed with decimal arithmetic so that display
// rounding is the only rounding that ever happens.
func ChartSeries(rows []inventario.SummaryRow) []ChartSlice {
	var total int64
	for _, r := range rows {
		total += int64(r.Quantity)
	}

	hundred := decimal.NewFromInt(100)
	series := make([]ChartSlice, 0, len(rows))
	for _, r := range rows {
		s := ChartSlice{Label: r.Label(), Value: r.Quantity}
		if total > 0 {
			s.Share = decimal.NewFromInt(int64(r.Quantity)).Mul(hundred).Div(decimal.NewFromInt(total))
		}
		series = append(series, s)
	}
	return series
}

// ChartMarkdown renders the chart series as a markdown table, shares rounded
// to one decimal place.
func ChartMarkdown(series []ChartSlice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Distribuição das Quantidades por Item")
	if len(series) == 0 {
		doc.PlainText("Nenhuma contagem registrada.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Rótulo", "Quantidade", "Percentual"},
	}
	for _, s := range series {
		table.Rows = append(table.Rows, []string{s.Label, strconv.Itoa(s.Value), s.Share.Round(1).String() + "%"})
	}
	doc.Table(table)
	return doc.String()
}
