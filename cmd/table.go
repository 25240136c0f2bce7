package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"restodesk/models"
	"restodesk/tabular"
)

// tableQuery carries the browse/export flag values that shape a table view.
type tableQuery struct {
	search   string
	filters  []string
	sortKey  string
	desc     bool
	page     int
	pageSize int
}

// applyQuery drives a browser through the flag-selected view state.
func applyQuery[R any](b *tabular.Browser[R], q tableQuery) error {
	if q.pageSize > 0 {
		b.SetPageSize(q.pageSize)
	}
	if q.search != "" {
		b.SetSearch(q.search)
	}
	for _, f := range q.filters {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid --filter %q, want key=value", f)
		}
		b.SetFilter(key, value)
	}
	if q.sortKey != "" {
		b.ClickHeader(q.sortKey)
		if q.desc {
			b.ClickHeader(q.sortKey)
		}
	}
	if q.page > 1 {
		b.SetPage(q.page)
	}
	return nil
}

// validateFilters rejects filter values that cannot match any value of a
// dropdown-backed column. Filters match by substring, so a value is fine as
// long as some known option contains it; free-form columns are not checked.
func validateFilters(resource string, filters []string) error {
	for _, f := range filters {
		key, value, ok := strings.Cut(f, "=")
		if !ok || value == "" {
			continue
		}
		options := models.KnownOptions(resource, key)
		if options == nil {
			continue
		}
		matched := false
		for _, opt := range options {
			if strings.Contains(strings.ToLower(opt), strings.ToLower(value)) {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("unknown %s %q, want one of: %s", key, value, strings.Join(options, ", "))
		}
	}
	return nil
}

// renderPage prints the current page of a browser as an aligned text table,
// followed by the record count and the page-button window.
func renderPage[R any](w io.Writer, b *tabular.Browser[R], q tableQuery) error {
	if err := applyQuery(b, q); err != nil {
		return err
	}

	if len(b.VisibleRows()) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	cols := b.Columns()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.Label
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))

	for _, row := range b.PageRows() {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = tabular.DisplayCell(col, row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	fmt.Fprintf(w, "\nShowing %d of %d records (page %d of %d)\n",
		len(b.PageRows()), len(b.VisibleRows()), b.Page(), b.PageCount())
	if window := b.PageWindow(); len(window) > 1 {
		fmt.Fprintln(w, formatPageWindow(window, b.Page()))
	}
	return nil
}

// formatPageWindow renders the page buttons: "1 ... 4 [5] 6 ... 10".
func formatPageWindow(window []int, current int) string {
	parts := make([]string, len(window))
	for i, p := range window {
		switch {
		case p == tabular.Ellipsis:
			parts[i] = "..."
		case p == current:
			parts[i] = fmt.Sprintf("[%d]", p)
		default:
			parts[i] = fmt.Sprintf("%d", p)
		}
	}
	return strings.Join(parts, " ")
}

// querySnapshot applies the flags and captures the full filtered/sorted set.
func querySnapshot[R any](rows []R, cols []tabular.Column[R], q tableQuery) (tabular.Snapshot, error) {
	b := tabular.New(rows, cols)
	if err := applyQuery(b, q); err != nil {
		return tabular.Snapshot{}, err
	}
	return b.Snapshot(), nil
}
