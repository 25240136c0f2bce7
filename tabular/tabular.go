// Package tabular implements the data browser behind every list view:
// global substring search, per-column filters, stable single-key sort,
// fixed-size pagination, and one-way CSV export.
//
// A Browser owns its view state exclusively. Callers mutate it through
// intent methods (SetSearch, ClickHeader, SetPage, ...) and re-derive the
// visible rows afterwards; the derivation pipeline always runs in the same
// order: search, column filters, sort, paginate.
package tabular

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is the number of rows shown per page unless overridden.
const DefaultPageSize = 10

// actionsKey marks a view-only column (buttons, links) that never takes
// part in search, sort, or export.
const actionsKey = "actions"

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Column describes one column of a browsable table. Value extracts the raw
// cell value used for searching, filtering, sorting, and export; Render, if
// set, overrides how the cell is displayed. A column with a nil Value (such
// as an actions column) is skipped by the whole pipeline.
type Column[R any] struct {
	Key        string
	Label      string
	Value      func(R) any
	Render     func(R) string
	Sortable   bool
	Filterable bool
	// NoSearch excludes the column from global search matching.
	NoSearch bool
}

// Browser holds one table's records, column set, and view state.
// State is never shared between instances.
type Browser[R any] struct {
	rows     []R
	columns  []Column[R]
	pageSize int

	search  string
	filters map[string]string
	sortKey string
	sortDir Direction
	page    int

	// Row activation callbacks, invoked with the clicked record.
	OnRowClick       func(R)
	OnRowDoubleClick func(R)
}

// New creates a Browser over rows with the given columns, starting with
// default view state: no search, no filters, no sort, page 1.
func New[R any](rows []R, columns []Column[R]) *Browser[R] {
	return &Browser[R]{
		rows:     rows,
		columns:  columns,
		pageSize: DefaultPageSize,
		filters:  make(map[string]string),
		sortDir:  Asc,
		page:     1,
	}
}

// SetPageSize changes the rows-per-page count. Values below 1 restore the
// default. The current page is intentionally left alone; callers that shrink
// the page size mid-browse should follow up with SetPage.
func (b *Browser[R]) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	b.pageSize = n
}

// ── Intents ──────────────────────────────────────────────────────────────

// SetSearch replaces the global search term and resets to page 1.
func (b *Browser[R]) SetSearch(term string) {
	b.search = term
	b.page = 1
}

// SetFilter sets or clears (empty value) one column filter and resets to
// page 1. Filter values match by lowercase substring, the same semantics as
// global search.
func (b *Browser[R]) SetFilter(key, value string) {
	if value == "" {
		delete(b.filters, key)
	} else {
		b.filters[key] = value
	}
	b.page = 1
}

// ClearFilters drops every column filter and resets to page 1. The search
// term and sort state are untouched.
func (b *Browser[R]) ClearFilters() {
	b.filters = make(map[string]string)
	b.page = 1
}

// ClickHeader applies a header click: clicking the active sort column
// toggles its direction, clicking a different sortable column sorts by it
// ascending. Clicks on unknown or unsortable columns do nothing.
func (b *Browser[R]) ClickHeader(key string) {
	col := b.column(key)
	if col == nil || !col.Sortable {
		return
	}
	if b.sortKey == key {
		if b.sortDir == Asc {
			b.sortDir = Desc
		} else {
			b.sortDir = Asc
		}
		return
	}
	b.sortKey = key
	b.sortDir = Asc
}

// SetPage moves to page n, clamped into the valid range.
func (b *Browser[R]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if pc := b.PageCount(); pc > 0 && n > pc {
		n = pc
	}
	b.page = n
}

// NextPage advances one page, stopping at the last.
func (b *Browser[R]) NextPage() { b.SetPage(b.page + 1) }

// PrevPage goes back one page, stopping at the first.
func (b *Browser[R]) PrevPage() { b.SetPage(b.page - 1) }

// Reset restores the default view state: no search, no filters, no sort,
// page 1.
func (b *Browser[R]) Reset() {
	b.search = ""
	b.filters = make(map[string]string)
	b.sortKey = ""
	b.sortDir = Asc
	b.page = 1
}

// ClickRow invokes OnRowClick with the i-th row of the current page.
// Out-of-range indexes are ignored.
func (b *Browser[R]) ClickRow(i int) {
	rows := b.PageRows()
	if b.OnRowClick != nil && i >= 0 && i < len(rows) {
		b.OnRowClick(rows[i])
	}
}

// DoubleClickRow invokes OnRowDoubleClick with the i-th row of the current page.
func (b *Browser[R]) DoubleClickRow(i int) {
	rows := b.PageRows()
	if b.OnRowDoubleClick != nil && i >= 0 && i < len(rows) {
		b.OnRowDoubleClick(rows[i])
	}
}

// ── View state accessors ─────────────────────────────────────────────────

func (b *Browser[R]) SearchTerm() string       { return b.search }
func (b *Browser[R]) SortKey() string          { return b.sortKey }
func (b *Browser[R]) SortDirection() Direction { return b.sortDir }
func (b *Browser[R]) Page() int                { return b.page }
func (b *Browser[R]) PageSize() int            { return b.pageSize }

// Filter returns the current filter value for a column key.
func (b *Browser[R]) Filter(key string) string { return b.filters[key] }

// Columns returns the column descriptors.
func (b *Browser[R]) Columns() []Column[R] { return b.columns }

// TotalRows is the unfiltered record count.
func (b *Browser[R]) TotalRows() int { return len(b.rows) }

// ── Derivation pipeline ──────────────────────────────────────────────────

// VisibleRows returns the filtered and sorted record set, before pagination.
// CSV and print exports operate over exactly this set.
func (b *Browser[R]) VisibleRows() []R {
	term := strings.ToLower(b.search)
	out := make([]R, 0, len(b.rows))
	for _, row := range b.rows {
		if term != "" && !b.matchesSearch(row, term) {
			continue
		}
		if !b.matchesFilters(row) {
			continue
		}
		out = append(out, row)
	}
	b.sortRows(out)
	return out
}

// PageRows returns the current page's slice of VisibleRows. A page beyond
// the end of the data yields an empty slice, not an error.
func (b *Browser[R]) PageRows() []R {
	visible := b.VisibleRows()
	start := (b.page - 1) * b.pageSize
	if start >= len(visible) {
		return nil
	}
	end := start + b.pageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// PageCount returns the number of pages the visible set spans; 0 when empty.
func (b *Browser[R]) PageCount() int {
	n := len(b.VisibleRows())
	return (n + b.pageSize - 1) / b.pageSize
}

// PageWindow returns the page buttons to show: first, last, and the pages
// adjacent to the current one, with Ellipsis standing in for each gap.
func (b *Browser[R]) PageWindow() []int {
	pc := b.PageCount()
	var window []int
	for page := 1; page <= pc; page++ {
		switch {
		case page == 1 || page == pc || (page >= b.page-1 && page <= b.page+1):
			window = append(window, page)
		case page == b.page-2 || page == b.page+2:
			window = append(window, Ellipsis)
		}
	}
	return window
}

// Ellipsis marks a gap in PageWindow output.
const Ellipsis = -1

// FilterOptions returns the sorted unique non-empty values of a column
// across the full (unfiltered) record set, for populating a filter dropdown.
func (b *Browser[R]) FilterOptions(key string) []string {
	col := b.column(key)
	if col == nil || col.Value == nil {
		return nil
	}
	seen := make(map[string]bool)
	var options []string
	for _, row := range b.rows {
		s := cellText(col.Value(row))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		options = append(options, s)
	}
	sort.Strings(options)
	return options
}

// DisplayCell renders one cell for display: the Render override when set,
// otherwise the raw value, with "-" standing in for missing values.
func DisplayCell[R any](col Column[R], row R) string {
	if col.Render != nil {
		return col.Render(row)
	}
	if col.Value == nil {
		return "-"
	}
	s := cellText(col.Value(row))
	if s == "" {
		return "-"
	}
	return s
}

// ── Matching and sorting internals ───────────────────────────────────────

func (b *Browser[R]) column(key string) *Column[R] {
	for i := range b.columns {
		if b.columns[i].Key == key {
			return &b.columns[i]
		}
	}
	return nil
}

func (b *Browser[R]) matchesSearch(row R, lowerTerm string) bool {
	for _, col := range b.columns {
		if col.NoSearch || col.Value == nil {
			continue
		}
		s := cellText(col.Value(row))
		if s == "" {
			continue
		}
		if strings.Contains(strings.ToLower(s), lowerTerm) {
			return true
		}
	}
	return false
}

func (b *Browser[R]) matchesFilters(row R) bool {
	for key, want := range b.filters {
		col := b.column(key)
		if col == nil || col.Value == nil {
			// A filter on a column this table doesn't have matches nothing.
			return false
		}
		s := cellText(col.Value(row))
		if s == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(s), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func (b *Browser[R]) sortRows(rows []R) {
	if b.sortKey == "" {
		return
	}
	col := b.column(b.sortKey)
	if col == nil || col.Value == nil {
		return
	}
	desc := b.sortDir == Desc
	sort.SliceStable(rows, func(i, j int) bool {
		av := col.Value(rows[i])
		bv := col.Value(rows[j])

		// Missing values sort after everything, in both directions.
		if av == nil && bv == nil {
			return false
		}
		if av == nil {
			return false
		}
		if bv == nil {
			return true
		}

		c := compareValues(av, bv)
		if desc {
			c = -c
		}
		return c < 0
	})
}

// compareValues orders two non-nil cell values: numerically when both are
// numbers, chronologically for times, lexically otherwise.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(cellText(a), cellText(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// cellText coerces a raw cell value to its string form. Nil becomes "".
func cellText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case time.Time:
		return s.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}
