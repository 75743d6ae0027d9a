package mapping_test

import (
	"bytes"
	"strings"
	"testing"

	"sku-mapper/core/mapping"

	"github.com/stretchr/testify/assert"
)

func TestWriteTable_InsertionOrder(t *testing.T) {
	table := mapping.NewTable()
	table.Set("B-SKU", "B-MSKU")
	table.Set("A-SKU", "A-MSKU")
	// Overwrite keeps the original position.
	table.Set("B-SKU", "B-MSKU-2")

	var buf bytes.Buffer
	assert.NoError(t, mapping.WriteTable(&buf, table))

	assert.Equal(t, "SKU,MSKU\nB-SKU,B-MSKU-2\nA-SKU,A-MSKU\n", buf.String())
}

func TestReadTable_RoundTrip(t *testing.T) {
	table := mapping.NewTable()
	table.Set("CST-01", "MSKU-CST-01")
	table.Set("ABC100", "ABC-100")
	table.Set("XYZ_9", "XYZ-900")

	var buf bytes.Buffer
	assert.NoError(t, mapping.WriteTable(&buf, table))

	restored, err := mapping.ReadTable(&buf)
	assert.NoError(t, err)

	// The pair sets must be identical, regardless of order.
	assert.ElementsMatch(t, table.Pairs(), restored.Pairs())
}

func TestReadTable_RejectsBadHeader(t *testing.T) {
	_, err := mapping.ReadTable(strings.NewReader("foo,bar\na,b\n"))
	assert.Error(t, err)

	_, err = mapping.ReadTable(strings.NewReader(""))
	assert.Error(t, err)
}
