// Package export produces the one-way artifacts the views offer: CSV-adjacent
// print HTML, Excel workbooks, and PDF documents. Every export operates on
// the browser's full filtered/sorted set or on a complete estimate; nothing
// here has a corresponding import path.
package export

import (
	"restodesk/pricing"
	"restodesk/tabular"
)

// TableDocument pairs a browser snapshot with presentation metadata.
type TableDocument struct {
	Title    string
	Snapshot tabular.Snapshot
}

// EstimateDocument carries everything needed to render a printable estimate:
// letterhead, client block, line items, and the rates for the totals cascade.
type EstimateDocument struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string

	Number     string
	Title      string
	Date       string
	ValidUntil string

	ClientName    string
	ClientAddress string

	Items []pricing.LineItem
	Rates pricing.Rates

	Notes string
	Terms string
}

// Totals recomputes the cascade from the document's items and rates.
func (d EstimateDocument) Totals() pricing.Totals {
	return pricing.ComputeTotals(d.Items, d.Rates)
}
