package renderer

import (
	"strings"
	"testing"
	"time"

	inventario "github.com/breno-rodrigues17/inventario-simples"
)

func TestSummaryMarkdown(t *testing.T) {
	rows := []inventario.SummaryRow{
		{Code: "87654321", Quantity: 10},
		{Code: "12345678", Quantity: 8},
	}

	out := SummaryMarkdown(rows)
	if !strings.Contains(out, "Resumo por Código") {
		t.Errorf("missing title:\n%s", out)
	}
	for _, want := range []string{"87654321", "12345678", "12345678 – 8 un."} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	// Rows keep the aggregation order: highest total first.
	if strings.Index(out, "87654321") > strings.Index(out, "12345678 – 8 un.") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	out := SummaryMarkdown(nil)
	if !strings.Contains(out, "Nenhuma contagem registrada.") {
		t.Errorf("empty summary output:\n%s", out)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	on := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)
	records := []inventario.CountRecord{
		inventario.NewCountRecord(on, "12345678", 5),
		inventario.NewCountRecord(on.Add(time.Hour), "87654321", 3),
	}

	out := HistoryMarkdown(records)
	if !strings.Contains(out, "Relatório de Contagens") {
		t.Errorf("missing title:\n%s", out)
	}

	// Timestamps use the display format.
	if !strings.Contains(out, "01/06/2024 10:00") {
		t.Errorf("missing display-formatted date:\n%s", out)
	}

	// Most recent record comes first.
	newest := strings.Index(out, "01/06/2024 11:00")
	oldest := strings.Index(out, "01/06/2024 10:00")
	if newest == -1 || oldest == -1 || newest > oldest {
		t.Errorf("records are not most-recent-first:\n%s", out)
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	out := HistoryMarkdown(nil)
	if !strings.Contains(out, "Nenhum registro encontrado.") {
		t.Errorf("empty history output:\n%s", out)
	}
}
