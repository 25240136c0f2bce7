package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"restodesk/pricing"
)

// maroto lays rows out on a 12-column grid; a table wider than that cannot
// be rendered one field per grid column.
const maxPDFColumns = 12

// TablePDF renders a browsed table as a landscape PDF and returns the raw
// bytes.
func TablePDF(doc TableDocument) ([]byte, error) {
	n := len(doc.Snapshot.Headers)
	if n == 0 {
		return nil, fmt.Errorf("table pdf: no columns to export")
	}
	if n > maxPDFColumns {
		return nil, fmt.Errorf("table pdf: %d columns exceeds the %d-column page grid", n, maxPDFColumns)
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFTitle(m, doc.Title)
	addPDFTable(m, doc.Snapshot.Headers, doc.Snapshot.Rows)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate table pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

// EstimatePDF renders a complete estimate document: letterhead, client
// block, line items, and the cascading totals.
func EstimatePDF(doc EstimateDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, doc)
	addEstimateClientBlock(m, doc)
	addEstimateLineItems(m, doc)
	addEstimateTotals(m, doc)
	addEstimateFooter(m, doc)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate estimate pdf: %w", err)
	}
	return generated.GetBytes(), nil
}

func addPDFTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(3),
	)
}

func addPDFTable(m core.Maroto, headers []string, rows [][]string) {
	widths := gridWidths(len(headers))

	headerCols := make([]core.Col, len(headers))
	for i, h := range headers {
		headerCols[i] = col.New(widths[i]).Add(
			text.New(h, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		)
	}
	m.AddRows(row.New(7).Add(headerCols...))

	for _, r := range rows {
		cells := make([]core.Col, len(headers))
		for i := range headers {
			val := ""
			if i < len(r) {
				val = r[i]
			}
			cells[i] = col.New(widths[i]).Add(
				text.New(val, props.Text{Size: 7, Align: align.Left}),
			)
		}
		m.AddRows(row.New(5).Add(cells...))
	}
}

// gridWidths splits maroto's 12-column grid across n table columns.
func gridWidths(n int) []int {
	widths := make([]int, n)
	base := maxPDFColumns / n
	extra := maxPDFColumns % n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

func addEstimateHeader(m core.Maroto, doc EstimateDocument) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(doc.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("ESTIMATE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s | %s", doc.CompanyAddress, doc.CompanyPhone, doc.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Estimate #: %s", doc.Number), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
		row.New(3),
	)
}

func addEstimateClientBlock(m core.Maroto, doc EstimateDocument) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{Size: 8, Align: align.Left}
	rightValueStyle := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("Date: %s", doc.Date), rightValueStyle)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(doc.ClientName, valueStyle)),
			col.New(6).Add(text.New(validUntilLine(doc), rightValueStyle)),
		),
		row.New(5).Add(
			col.New(12).Add(text.New(doc.ClientAddress, valueStyle)),
		),
		row.New(4),
	)
}

func validUntilLine(doc EstimateDocument) string {
	if doc.ValidUntil == "" {
		return ""
	}
	return fmt.Sprintf("Valid until: %s", doc.ValidUntil)
}

func addEstimateLineItems(m core.Maroto, doc EstimateDocument) {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	rightHeaderStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Description", headerStyle)),
			col.New(2).Add(text.New("Qty", rightHeaderStyle)),
			col.New(2).Add(text.New("Unit Price", rightHeaderStyle)),
			col.New(2).Add(text.New("Line Total", rightHeaderStyle)),
		),
	)

	cellStyle := props.Text{Size: 8, Align: align.Left}
	rightCellStyle := props.Text{Size: 8, Align: align.Right}
	for _, item := range doc.Items {
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(item.Description, cellStyle)),
				col.New(2).Add(text.New(trimFloat(item.Quantity), rightCellStyle)),
				col.New(2).Add(text.New(pricing.FormatUSD(item.UnitPrice), rightCellStyle)),
				col.New(2).Add(text.New(pricing.FormatUSD(pricing.LineTotal(item)), rightCellStyle)),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addEstimateTotals(m core.Maroto, doc EstimateDocument) {
	totals := doc.Totals()

	addTotalRow(m, "Subtotal", totals.Subtotal, false)
	addTotalRow(m, fmt.Sprintf("Overhead (%s%%)", trimFloat(doc.Rates.OverheadPct)), totals.Overhead, false)
	addTotalRow(m, fmt.Sprintf("Profit (%s%%)", trimFloat(doc.Rates.ProfitPct)), totals.Profit, false)
	if doc.Rates.TaxPct > 0 {
		addTotalRow(m, fmt.Sprintf("Tax (%s%%)", trimFloat(doc.Rates.TaxPct)), totals.Tax, false)
	}
	addTotalRow(m, "Total", totals.Total, true)
}

func addTotalRow(m core.Maroto, label string, amount float64, grand bool) {
	style := props.Text{Size: 8, Align: align.Right}
	if grand {
		style = props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	}
	m.AddRows(
		row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New(label, style)),
			col.New(2).Add(text.New(pricing.FormatUSD(pricing.Round2(amount)), style)),
		),
	)
}

func addEstimateFooter(m core.Maroto, doc EstimateDocument) {
	noteStyle := props.Text{Size: 7, Align: align.Left, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	if doc.Notes != "" {
		m.AddRows(
			row.New(4),
			row.New(5).Add(col.New(12).Add(text.New("Notes: "+doc.Notes, noteStyle))),
		)
	}
	if doc.Terms != "" {
		m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New("Terms: "+doc.Terms, noteStyle))),
		)
	}
}
