package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names required in the delimited input files.
const (
	ColumnMSKU      = "MSKU"
	ColumnSKU       = "SKU"
	ColumnQuantity  = "Quantity"
	ColumnAvailable = "Available Quantity"
)

// IngestError describes a malformed or unreadable input file. Loads that
// return an IngestError are atomic: no prior state has been replaced.
type IngestError struct {
	// File is the name of the offending file, for the audit trail.
	File string

	// Row is the 1-based data row that failed, or 0 for file-level problems
	// such as a missing column.
	Row int

	// Reason describes what was wrong.
	Reason string
}

func (e *IngestError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("ingest %s: row %d: %s", e.File, e.Row, e.Reason)
	}
	return fmt.Sprintf("ingest %s: %s", e.File, e.Reason)
}

// ReadMaster parses a master catalog file. It requires the MSKU and Quantity
// columns and rejects rows whose quantity is missing, non-numeric, or
// negative.
func ReadMaster(r io.Reader, name string) ([]CanonicalItem, error) {
	rows, idx, err := readTable(r, name, ColumnMSKU, ColumnQuantity)
	if err != nil {
		return nil, err
	}

	items := make([]CanonicalItem, 0, len(rows))
	for i, row := range rows {
		qty, err := strconv.Atoi(strings.TrimSpace(row[idx[ColumnQuantity]]))
		if err != nil {
			return nil, &IngestError{File: name, Row: i + 1, Reason: fmt.Sprintf("quantity %q is not an integer", row[idx[ColumnQuantity]])}
		}
		if qty < 0 {
			return nil, &IngestError{File: name, Row: i + 1, Reason: fmt.Sprintf("quantity %d is negative", qty)}
		}
		items = append(items, CanonicalItem{
			MSKU:     strings.TrimSpace(row[idx[ColumnMSKU]]),
			Quantity: qty,
		})
	}
	return items, nil
}

// ReadSales parses a sales batch file. It requires the SKU and Quantity
// columns; quantities may be negative (returns).
func ReadSales(r io.Reader, name string) ([]SalesRecord, error) {
	rows, idx, err := readTable(r, name, ColumnSKU, ColumnQuantity)
	if err != nil {
		return nil, err
	}

	records := make([]SalesRecord, 0, len(rows))
	for i, row := range rows {
		qty, err := strconv.Atoi(strings.TrimSpace(row[idx[ColumnQuantity]]))
		if err != nil {
			return nil, &IngestError{File: name, Row: i + 1, Reason: fmt.Sprintf("quantity %q is not an integer", row[idx[ColumnQuantity]])}
		}
		records = append(records, SalesRecord{
			SKU:      strings.TrimSpace(row[idx[ColumnSKU]]),
			Quantity: qty,
		})
	}
	return records, nil
}

// WriteInventory writes an inventory snapshot as CSV: the master columns plus
// Available Quantity, one row per catalog item in snapshot order.
func WriteInventory(w io.Writer, snapshot []InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnMSKU, ColumnQuantity, ColumnAvailable}); err != nil {
		return err
	}
	for _, item := range snapshot {
		record := []string{item.MSKU, strconv.Itoa(item.Quantity), strconv.Itoa(item.Available)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readTable reads a delimited file with a header row and resolves the index
// of each required column. Short rows are rejected by the csv reader itself
// (field count must match the header).
func readTable(r io.Reader, name string, required ...string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &IngestError{File: name, Reason: "file is empty"}
	}
	if err != nil {
		return nil, nil, &IngestError{File: name, Reason: err.Error()}
	}

	idx := make(map[string]int, len(required))
	for _, want := range required {
		found := -1
		for i, col := range header {
			if strings.TrimSpace(col) == want {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, nil, &IngestError{File: name, Reason: fmt.Sprintf("missing required column %q", want)}
		}
		idx[want] = found
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &IngestError{File: name, Reason: err.Error()}
	}
	return rows, idx, nil
}
