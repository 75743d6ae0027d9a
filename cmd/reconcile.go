package cmd

import (
	"fmt"
	"os"

	"sku-mapper/core/catalog"
	"sku-mapper/core/config"
	"sku-mapper/core/inventory"
	"sku-mapper/core/logger"
	"sku-mapper/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileMasterFile   string
	reconcileSalesFiles   []string
	reconcileMappingsFile string
	reconcileOutFile      string
)

// reconcileCmd recomputes available quantities from sales and mappings.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile inventory from sales and mappings",
	Long: `Reconcile the master catalog against sales batches: every sale whose SKU
has a mapping is subtracted from the mapped MSKU's quantity, and the result
is written as the master columns plus Available Quantity.

Sales with unmapped SKUs are skipped; sales mapped to an MSKU missing from
the catalog are skipped with a warning. Oversold items (negative available
quantity) are reported, never clamped.

Examples:
  sku-mapper reconcile --master master.csv --sales sales.csv \
    --mappings sku_mappings.csv --out updated_inventory.csv`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileMasterFile, "master", "", "Master catalog CSV (columns MSKU, Quantity)")
	reconcileCmd.Flags().StringArrayVar(&reconcileSalesFiles, "sales", nil, "Sales CSV (columns SKU, Quantity); repeatable")
	reconcileCmd.Flags().StringVar(&reconcileMappingsFile, "mappings", "", "Mapping CSV (header SKU,MSKU)")
	reconcileCmd.Flags().StringVar(&reconcileOutFile, "out", "updated_inventory.csv", "Output path for the inventory CSV")
	_ = reconcileCmd.MarkFlagRequired("master")
	_ = reconcileCmd.MarkFlagRequired("sales")
	_ = reconcileCmd.MarkFlagRequired("mappings")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	master, err := os.Open(reconcileMasterFile)
	if err != nil {
		return fmt.Errorf("failed to open master file: %w", err)
	}
	items, err := catalog.ReadMaster(master, reconcileMasterFile)
	master.Close()
	if err != nil {
		return err
	}

	var batches [][]catalog.SalesRecord
	for _, path := range reconcileSalesFiles {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open sales file: %w", err)
		}
		records, err := catalog.ReadSales(f, path)
		f.Close()
		if err != nil {
			return err
		}
		batches = append(batches, records)
	}

	mf, err := os.Open(reconcileMappingsFile)
	if err != nil {
		return fmt.Errorf("failed to open mappings file: %w", err)
	}
	table, err := mapping.ReadTable(mf)
	mf.Close()
	if err != nil {
		return fmt.Errorf("failed to read mappings: %w", err)
	}

	report := inventory.Reconcile(items, batches, table, l)
	printReconcileReport(l, report)

	out, err := os.Create(reconcileOutFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := catalog.WriteInventory(out, report.Snapshot); err != nil {
		out.Close()
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	l.Info("Saved inventory", zap.String("file", reconcileOutFile), zap.Int("items", len(report.Snapshot)))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, report *inventory.Report) {
	s := report.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("matched_sales", s.MatchedSales),
		zap.Int("skipped_unmapped", s.SkippedUnmapped),
		zap.Int("missing_inventory", s.MissingInventory),
		zap.Int("oversold", s.Oversold),
	)

	// Show sample of warnings (max 5 for logger)
	maxShow := 5
	if len(report.Warnings) < maxShow {
		maxShow = len(report.Warnings)
	}
	for i := 0; i < maxShow; i++ {
		w := report.Warnings[i]
		l.Warn("Reconcile warning",
			zap.String("kind", string(w.Kind)),
			zap.String("msku", w.MSKU),
			zap.String("detail", w.Detail),
		)
	}
	if len(report.Warnings) > maxShow {
		l.Warn("Additional warnings not shown", zap.Int("count", len(report.Warnings)-maxShow))
	}
}
