package inventory_test

import (
	"testing"

	"sku-mapper/core/catalog"
	"sku-mapper/core/inventory"
	"sku-mapper/core/mapping"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func masterCatalog() []catalog.CanonicalItem {
	return []catalog.CanonicalItem{
		{MSKU: "ABC-100", Quantity: 20},
		{MSKU: "ABC-200", Quantity: 10},
		{MSKU: "XYZ-900", Quantity: 2},
	}
}

func TestReconcile_ManualMappingDecrement(t *testing.T) {
	table := mapping.NewTable()
	table.Set("CST-01", "ABC-100")

	batches := [][]catalog.SalesRecord{
		{{SKU: "CST-01", Quantity: 5}},
	}

	report := inventory.Reconcile(masterCatalog(), batches, table, zap.NewNop())

	assert.Equal(t, 15, report.Snapshot[0].Available)
	assert.Equal(t, 20, report.Snapshot[0].Quantity)
	assert.Equal(t, 1, report.Summary.MatchedSales)
}

func TestReconcile_BatchesAccumulate(t *testing.T) {
	table := mapping.NewTable()
	table.Set("sku-a", "ABC-200")

	// Two batches of 3 against a quantity of 10 leaves 4.
	batches := [][]catalog.SalesRecord{
		{{SKU: "sku-a", Quantity: 3}},
		{{SKU: "sku-a", Quantity: 3}},
	}

	report := inventory.Reconcile(masterCatalog(), batches, table, zap.NewNop())

	assert.Equal(t, 4, report.Snapshot[1].Available)
	assert.Equal(t, 2, report.Summary.MatchedSales)
}

func TestReconcile_OversoldIsNotClamped(t *testing.T) {
	table := mapping.NewTable()
	table.Set("sku-x", "XYZ-900")

	batches := [][]catalog.SalesRecord{
		{{SKU: "sku-x", Quantity: 5}},
	}

	report := inventory.Reconcile(masterCatalog(), batches, table, zap.NewNop())

	assert.Equal(t, -3, report.Snapshot[2].Available)
	assert.Equal(t, 1, report.Summary.Oversold)
	if assert.Len(t, report.Warnings, 1) {
		assert.Equal(t, inventory.WarningOversold, report.Warnings[0].Kind)
		assert.Equal(t, "XYZ-900", report.Warnings[0].MSKU)
	}
}

func TestReconcile_UnknownSKUIsSkipped(t *testing.T) {
	table := mapping.NewTable()

	batches := [][]catalog.SalesRecord{
		{{SKU: "never-observed", Quantity: 7}},
	}

	report := inventory.Reconcile(masterCatalog(), batches, table, zap.NewNop())

	for i, item := range report.Snapshot {
		assert.Equal(t, masterCatalog()[i].Quantity, item.Available)
	}
	assert.Equal(t, 1, report.Summary.SkippedUnmapped)
	assert.Empty(t, report.Warnings)
}

func TestReconcile_MappedMSKUMissingFromCatalog(t *testing.T) {
	table := mapping.NewTable()
	table.Set("sku-gone", "NOT-IN-CATALOG")

	batches := [][]catalog.SalesRecord{
		{{SKU: "sku-gone", Quantity: 1}},
	}

	report := inventory.Reconcile(masterCatalog(), batches, table, zap.NewNop())

	assert.Equal(t, 1, report.Summary.MissingInventory)
	if assert.Len(t, report.Warnings, 1) {
		assert.Equal(t, inventory.WarningMissingInventory, report.Warnings[0].Kind)
		assert.Equal(t, "NOT-IN-CATALOG", report.Warnings[0].MSKU)
	}
	for i, item := range report.Snapshot {
		assert.Equal(t, masterCatalog()[i].Quantity, item.Available)
	}
}

func TestReconcile_DuplicateCatalogRowsAllDecremented(t *testing.T) {
	items := []catalog.CanonicalItem{
		{MSKU: "DUP-1", Quantity: 5},
		{MSKU: "DUP-1", Quantity: 8},
	}
	table := mapping.NewTable()
	table.Set("sku-d", "DUP-1")

	batches := [][]catalog.SalesRecord{
		{{SKU: "sku-d", Quantity: 2}},
	}

	report := inventory.Reconcile(items, batches, table, zap.NewNop())

	assert.Equal(t, 3, report.Snapshot[0].Available)
	assert.Equal(t, 6, report.Snapshot[1].Available)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	items := masterCatalog()
	table := mapping.NewTable()
	table.Set("sku-a", "ABC-100")

	batches := [][]catalog.SalesRecord{
		{{SKU: "sku-a", Quantity: 4}},
	}

	_ = inventory.Reconcile(items, batches, table, zap.NewNop())

	assert.Equal(t, masterCatalog(), items)
	assert.Equal(t, 4, batches[0][0].Quantity)
}
