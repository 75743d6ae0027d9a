package mapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteTable exports table as a two-column CSV with header "SKU,MSKU", one
// row per association in insertion order.
func WriteTable(w io.Writer, table *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"SKU", "MSKU"}); err != nil {
		return err
	}
	for _, pair := range table.Pairs() {
		if err := cw.Write([]string{pair.SKU, pair.MSKU}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTable parses a two-column mapping CSV previously produced by
// WriteTable. The pair set round-trips exactly; row order becomes the new
// insertion order.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("mapping file is empty")
	}
	if err != nil {
		return nil, err
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "SKU" || strings.TrimSpace(header[1]) != "MSKU" {
		return nil, fmt.Errorf("mapping file must start with header SKU,MSKU")
	}

	table := NewTable()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		table.Set(strings.TrimSpace(row[0]), strings.TrimSpace(row[1]))
	}
	return table, nil
}
