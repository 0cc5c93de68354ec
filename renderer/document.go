package renderer

import (
	"fmt"
	"strings"

	inventario "github.com/breno-rodrigues17/inventario-simples"
)

// DocumentTitle is the title line of the exported summary document.
const DocumentTitle = "Resumo do Inventário"

// PageLayout describes the printable area of one page. All values share the
// same unit; the A4 default uses points.
type PageLayout struct {
	Height       int
	TopMargin    int
	BottomMargin int
	LineHeight   int
}

// A4 is the layout of the exported summary document: a portrait A4 page with
// the margins and line height of the original report.
var A4 = PageLayout{Height: 842, TopMargin: 72, BottomMargin: 50, LineHeight: 20}

// RowsPerPage returns how many rows fit in the printable area. A degenerate
// layout still fits one row per page so pagination always makes progress.
func (p PageLayout) RowsPerPage() int {
	if p.LineHeight <= 0 {
		return 1
	}
	n := (p.Height - p.TopMargin - p.BottomMargin) / p.LineHeight
	if n < 1 {
		return 1
	}
	return n
}

// Paginate computes page breaks for rowCount rows with at most perPage rows
// per page. It returns the half-open [start, end) row interval of each page,
// and is deliberately a pure function of the two counts.
func Paginate(rowCount, perPage int) [][2]int {
	if rowCount <= 0 {
		return nil
	}
	if perPage < 1 {
		perPage = 1
	}
	var pages [][2]int
	for start := 0; start < rowCount; start += perPage {
		pages = append(pages, [2]int{start, min(start+perPage, rowCount)})
	}
	return pages
}

// Document is the paginated text rendition of the summary.
type Document struct {
	Title string
	Pages [][]string
}

// SummaryDocument lays the summary rows out into pages, one line per row,
// top to bottom in the same order as the input.
func SummaryDocument(rows []inventario.SummaryRow, layout PageLayout) *Document {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%s: %d unidades", r.Code, r.Quantity)
	}

	doc := &Document{Title: DocumentTitle}
	for _, page := range Paginate(len(lines), layout.RowsPerPage()) {
		doc.Pages = append(doc.Pages, lines[page[0]:page[1]])
	}
	return doc
}

// Text flattens the document: the title, a blank line, then the pages
// separated by form feeds.
func (d *Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n\n")
	for i, page := range d.Pages {
		if i > 0 {
			b.WriteString("\f")
		}
		for _, line := range page {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
