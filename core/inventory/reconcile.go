package inventory

import (
	"go.uber.org/zap"

	"sku-mapper/core/catalog"
	"sku-mapper/core/mapping"
)

// WarningKind classifies a non-fatal condition raised during reconciliation.
type WarningKind string

const (
	// WarningMissingInventory means a sale was mapped to an MSKU that no
	// catalog row carries; the sale was skipped.
	WarningMissingInventory WarningKind = "missing_inventory"

	// WarningOversold means an item's available quantity went below zero.
	WarningOversold WarningKind = "oversold"
)

// Warning describes one non-fatal condition from a reconcile pass.
type Warning struct {
	// Kind classifies the condition.
	Kind WarningKind `json:"kind"`

	// MSKU is the canonical code involved.
	MSKU string `json:"msku"`

	// Detail gives human-readable context.
	Detail string `json:"detail"`
}

// Summary provides aggregate counters for a reconcile pass.
type Summary struct {
	// TotalItems is the number of catalog rows in the snapshot.
	TotalItems int `json:"total_items"`

	// MatchedSales counts sales records that decremented inventory.
	MatchedSales int `json:"matched_sales"`

	// SkippedUnmapped counts sales records whose SKU had no mapping.
	SkippedUnmapped int `json:"skipped_unmapped"`

	// MissingInventory counts sales mapped to an MSKU absent from the catalog.
	MissingInventory int `json:"missing_inventory"`

	// Oversold counts catalog rows whose available quantity ended negative.
	Oversold int `json:"oversold"`
}

// Report is the output of a reconcile pass: the new inventory snapshot plus
// the warnings and counters accumulated while producing it.
type Report struct {
	// Snapshot holds one row per catalog item, in catalog order.
	Snapshot []catalog.InventoryItem `json:"snapshot"`

	// Warnings lists the non-fatal conditions encountered, in the order they
	// were raised.
	Warnings []Warning `json:"warnings"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Reconcile produces an inventory snapshot by subtracting every mapped sale
// from a copy of the catalog. The inputs are not mutated.
//
// Batches are processed in order, records within a batch in order. A record
// whose SKU is absent from table is skipped without a warning; a record
// mapped to an MSKU with no catalog row raises WarningMissingInventory. When
// several catalog rows share an MSKU, each matching row is decremented (the
// catalog key is expected unique but not enforced).
func Reconcile(items []catalog.CanonicalItem, batches [][]catalog.SalesRecord, table *mapping.Table, logger *zap.Logger) *Report {
	snapshot := make([]catalog.InventoryItem, len(items))
	index := make(map[string][]int, len(items))
	for i, item := range items {
		snapshot[i] = catalog.InventoryItem{
			MSKU:      item.MSKU,
			Quantity:  item.Quantity,
			Available: item.Quantity,
		}
		index[item.MSKU] = append(index[item.MSKU], i)
	}

	report := &Report{
		Snapshot: snapshot,
		Warnings: []Warning{},
		Summary:  Summary{TotalItems: len(snapshot)},
	}

	for _, batch := range batches {
		for _, record := range batch {
			msku, ok := table.Get(record.SKU)
			if !ok {
				// Never observed or still pending manual resolution; the
				// mapper already reported it.
				report.Summary.SkippedUnmapped++
				continue
			}

			rows, ok := index[msku]
			if !ok {
				logger.Warn("No inventory found for MSKU",
					zap.String("msku", msku),
					zap.String("sku", record.SKU),
				)
				report.Warnings = append(report.Warnings, Warning{
					Kind:   WarningMissingInventory,
					MSKU:   msku,
					Detail: "sale for SKU " + record.SKU + " has no catalog row",
				})
				report.Summary.MissingInventory++
				continue
			}

			for _, i := range rows {
				snapshot[i].Available -= record.Quantity
			}
			report.Summary.MatchedSales++
			logger.Info("Subtracted sale from MSKU",
				zap.String("msku", msku),
				zap.String("sku", record.SKU),
				zap.Int("quantity", record.Quantity),
			)
		}
	}

	for _, item := range snapshot {
		if item.Available < 0 {
			report.Warnings = append(report.Warnings, Warning{
				Kind:   WarningOversold,
				MSKU:   item.MSKU,
				Detail: "available quantity is negative",
			})
			report.Summary.Oversold++
			logger.Warn("MSKU oversold",
				zap.String("msku", item.MSKU),
				zap.Int("available", item.Available),
			)
		}
	}

	return report
}
