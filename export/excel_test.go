package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"restodesk/tabular"
)

func sampleSnapshot() tabular.Snapshot {
	return tabular.Snapshot{
		Headers: []string{"Work Order #", "Client", "Status", "Amount"},
		Rows: [][]string{
			{"WO-001", "Anderson Residence", "in_progress", "$1,250.00"},
			{"WO-002", "Baker Office Park", "completed", "$840.50"},
		},
	}
}

func TestTableExcel_BasicTable(t *testing.T) {
	doc := TableDocument{Title: "Work Orders", Snapshot: sampleSnapshot()}

	result, err := TableExcel(doc)
	if err != nil {
		t.Fatalf("TableExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("TableExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Work Orders" {
		t.Errorf("expected sheet name 'Work Orders', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Work Orders" {
		t.Errorf("expected title 'Work Orders', got %q", title)
	}

	// Header row lands on row 3, data starts on row 4.
	header, _ := f.GetCellValue(sheets[0], "A3")
	if header != "Work Order #" {
		t.Errorf("A3 = %q, want 'Work Order #'", header)
	}
	first, _ := f.GetCellValue(sheets[0], "B4")
	if first != "Anderson Residence" {
		t.Errorf("B4 = %q, want 'Anderson Residence'", first)
	}
}

func TestTableExcel_EmptyRows(t *testing.T) {
	doc := TableDocument{
		Title:    "Empty Export",
		Snapshot: tabular.Snapshot{Headers: []string{"A", "B"}},
	}

	result, err := TableExcel(doc)
	if err != nil {
		t.Fatalf("TableExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("TableExcel() returned empty bytes")
	}
}

func TestTableExcel_LongTitle(t *testing.T) {
	doc := TableDocument{
		Title:    "This is a very long title that exceeds thirty one characters",
		Snapshot: sampleSnapshot(),
	}

	result, err := TableExcel(doc)
	if err != nil {
		t.Fatalf("TableExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestTableExcel_EmptyTitle(t *testing.T) {
	doc := TableDocument{Title: "", Snapshot: sampleSnapshot()}

	result, err := TableExcel(doc)
	if err != nil {
		t.Fatalf("TableExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Export" {
		t.Errorf("expected default sheet name 'Export', got %q", sheets[0])
	}
}

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
