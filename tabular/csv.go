package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Snapshot is a stringly copy of the browser's filtered and sorted record
// set, ready to hand to an export writer. Actions columns and columns
// without a Value accessor are omitted; pagination never applies.
type Snapshot struct {
	Headers []string
	Rows    [][]string
}

// Snapshot captures the current visible set for export.
func (b *Browser[R]) Snapshot() Snapshot {
	var cols []Column[R]
	var headers []string
	for _, col := range b.columns {
		if col.Key == actionsKey || col.Value == nil {
			continue
		}
		cols = append(cols, col)
		headers = append(headers, col.Label)
	}

	visible := b.VisibleRows()
	rows := make([][]string, 0, len(visible))
	for _, row := range visible {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = cellText(col.Value(row))
		}
		rows = append(rows, cells)
	}
	return Snapshot{Headers: headers, Rows: rows}
}

// WriteCSV writes the full filtered/sorted set as CSV: column labels first,
// then one line per visible record. Values containing commas (or quotes or
// newlines) are quoted.
func (b *Browser[R]) WriteCSV(w io.Writer) error {
	return WriteSnapshotCSV(w, b.Snapshot())
}

// WriteSnapshotCSV writes an already-captured snapshot as CSV.
func WriteSnapshotCSV(w io.Writer, snap Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snap.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range snap.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// CSV returns the WriteCSV output as a byte slice.
func (b *Browser[R]) CSV() ([]byte, error) {
	return SnapshotCSV(b.Snapshot())
}

// SnapshotCSV returns the snapshot's CSV bytes.
func SnapshotCSV(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSnapshotCSV(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
