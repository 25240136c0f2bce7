package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableExcel creates an Excel workbook from a browsed table and returns the
// file contents as a byte slice.
func TableExcel(doc TableDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := doc.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Export"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4CAF50"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	// Title row.
	if err := f.SetCellValue(sheetName, "A1", doc.Title); err != nil {
		return nil, fmt.Errorf("set title cell: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, fmt.Errorf("style title cell: %w", err)
	}

	// Header row (row 3, leaving a spacer under the title).
	const headerRow = 3
	for i, h := range doc.Snapshot.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("style header cell: %w", err)
		}
	}

	// Data rows.
	for r, row := range doc.Snapshot.Rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err != nil {
				return nil, fmt.Errorf("data cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, sanitizeCell(val)); err != nil {
				return nil, fmt.Errorf("set data cell: %w", err)
			}
			if err := f.SetCellStyle(sheetName, cell, cell, dataStyle); err != nil {
				return nil, fmt.Errorf("style data cell: %w", err)
			}
		}
	}

	// Column widths sized to the longest value in each column.
	for i := range doc.Snapshot.Headers {
		width := float64(len(doc.Snapshot.Headers[i])) + 4
		for _, row := range doc.Snapshot.Rows {
			if i < len(row) && float64(len(row[i]))+4 > width {
				width = float64(len(row[i])) + 4
			}
		}
		if width > 60 {
			width = 60
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell prefixes values that spreadsheet apps would otherwise
// interpret as formulas.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	if strings.ContainsRune("=+-@\t\r|", rune(s[0])) {
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#999999", Style: 1},
		{Type: "right", Color: "#999999", Style: 1},
		{Type: "top", Color: "#999999", Style: 1},
		{Type: "bottom", Color: "#999999", Style: 1},
	}
}
