package export

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"restodesk/pricing"
)

// Print styling shared by the table and estimate documents.
const printCSS = `body { font-family: Arial, sans-serif; padding: 20px; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #4CAF50; color: white; }
tr:nth-child(even) { background-color: #f2f2f2; }
.totals td { border: none; text-align: right; }
.totals .grand { font-weight: bold; border-top: 2px solid #333; }`

// TableHTML builds the printable document for a browsed table. The record
// set is the snapshot's full filtered/sorted contents, never a single page.
func TableHTML(doc TableDocument) templ.Component {
	return htmlPage(doc.Title, func(w io.Writer) error {
		if err := writeTable(w, doc.Snapshot.Headers, doc.Snapshot.Rows); err != nil {
			return err
		}
		return nil
	})
}

// WriteTableHTML renders TableHTML to w.
func WriteTableHTML(ctx context.Context, w io.Writer, doc TableDocument) error {
	if err := TableHTML(doc).Render(ctx, w); err != nil {
		return fmt.Errorf("render table html: %w", err)
	}
	return nil
}

// EstimateHTML builds the printable estimate: letterhead, client block,
// line-item table, and the cascading totals footer.
func EstimateHTML(doc EstimateDocument) templ.Component {
	return htmlPage("Estimate "+doc.Number, func(w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(doc.CompanyName))
		fmt.Fprintf(w, "<p>%s | %s | %s</p>",
			templ.EscapeString(doc.CompanyAddress),
			templ.EscapeString(doc.CompanyPhone),
			templ.EscapeString(doc.CompanyEmail))
		fmt.Fprintf(w, "<h2>Estimate %s: %s</h2>",
			templ.EscapeString(doc.Number), templ.EscapeString(doc.Title))
		fmt.Fprintf(w, "<p>Prepared for %s<br>%s</p>",
			templ.EscapeString(doc.ClientName), templ.EscapeString(doc.ClientAddress))
		fmt.Fprintf(w, "<p>Date: %s", templ.EscapeString(doc.Date))
		if doc.ValidUntil != "" {
			fmt.Fprintf(w, " &middot; Valid until: %s", templ.EscapeString(doc.ValidUntil))
		}
		io.WriteString(w, "</p>")

		headers := []string{"Description", "Qty", "Unit Price", "Line Total"}
		rows := make([][]string, len(doc.Items))
		for i, item := range doc.Items {
			rows[i] = []string{
				item.Description,
				trimFloat(item.Quantity),
				pricing.FormatUSD(item.UnitPrice),
				pricing.FormatUSD(pricing.LineTotal(item)),
			}
		}
		if err := writeTable(w, headers, rows); err != nil {
			return err
		}

		totals := doc.Totals()
		io.WriteString(w, `<table class="totals">`)
		writeTotalRow(w, "Subtotal", totals.Subtotal, "")
		writeTotalRow(w, fmt.Sprintf("Overhead (%s%%)", trimFloat(doc.Rates.OverheadPct)), totals.Overhead, "")
		writeTotalRow(w, fmt.Sprintf("Profit (%s%%)", trimFloat(doc.Rates.ProfitPct)), totals.Profit, "")
		if doc.Rates.TaxPct > 0 {
			writeTotalRow(w, fmt.Sprintf("Tax (%s%%)", trimFloat(doc.Rates.TaxPct)), totals.Tax, "")
		}
		writeTotalRow(w, "Total", totals.Total, "grand")
		io.WriteString(w, "</table>")

		if doc.Notes != "" {
			fmt.Fprintf(w, "<p><strong>Notes:</strong> %s</p>", templ.EscapeString(doc.Notes))
		}
		if doc.Terms != "" {
			fmt.Fprintf(w, "<p><strong>Terms:</strong> %s</p>", templ.EscapeString(doc.Terms))
		}
		return nil
	})
}

// WriteEstimateHTML renders EstimateHTML to w.
func WriteEstimateHTML(ctx context.Context, w io.Writer, doc EstimateDocument) error {
	if err := EstimateHTML(doc).Render(ctx, w); err != nil {
		return fmt.Errorf("render estimate html: %w", err)
	}
	return nil
}

// htmlPage wraps a body writer in the shared print skeleton.
func htmlPage(title string, body func(io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<html><head><title>%s</title><style>%s</style></head><body>",
			templ.EscapeString(title), printCSS)
		if title != "" {
			fmt.Fprintf(w, "<h2>%s</h2>", templ.EscapeString(title))
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, "<table><thead><tr>"); err != nil {
		return err
	}
	for _, h := range headers {
		if _, err := fmt.Fprintf(w, "<th>%s</th>", templ.EscapeString(h)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</tr></thead><tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := io.WriteString(w, "<tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "<td>%s</td>", templ.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr>"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tbody></table>")
	return err
}

func writeTotalRow(w io.Writer, label string, amount float64, class string) {
	attr := ""
	if class != "" {
		attr = fmt.Sprintf(` class=%q`, class)
	}
	fmt.Fprintf(w, "<tr%s><td>%s</td><td>%s</td></tr>",
		attr, templ.EscapeString(label), pricing.FormatUSD(pricing.Round2(amount)))
}

// trimFloat renders a float without trailing zeros (4 → "4", 2.5 → "2.5").
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
