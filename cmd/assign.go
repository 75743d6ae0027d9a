package cmd

import (
	"fmt"
	"os"

	"sku-mapper/core/config"
	"sku-mapper/core/logger"
	"sku-mapper/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the assign command
	assignMappingsFile string
	assignSKU          string
	assignMSKU         string
)

// assignCmd adds or overwrites one manual mapping in a mappings CSV.
var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Manually map a SKU to an MSKU",
	Long: `Assign a manual SKU to MSKU mapping in a mapping CSV, creating the file
when it does not exist yet. This is the correction path for SKUs the fuzzy
pass could not resolve (or resolved wrongly).

Examples:
  sku-mapper assign --mappings sku_mappings.csv --sku CST-01 --msku ABC-100`,
	RunE: runAssign,
}

func init() {
	assignCmd.Flags().StringVar(&assignMappingsFile, "mappings", "sku_mappings.csv", "Mapping CSV to update")
	assignCmd.Flags().StringVar(&assignSKU, "sku", "", "Seller SKU to map")
	assignCmd.Flags().StringVar(&assignMSKU, "msku", "", "Canonical MSKU to map it to")
	_ = assignCmd.MarkFlagRequired("sku")
	_ = assignCmd.MarkFlagRequired("msku")

	RootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	table := mapping.NewTable()
	if f, err := os.Open(assignMappingsFile); err == nil {
		table, err = mapping.ReadTable(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read mappings: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to open mappings file: %w", err)
	}

	queue := mapping.NewQueue()
	mapping.Assign(assignSKU, assignMSKU, table, queue, l)

	if err := writeMappingsFile(assignMappingsFile, table); err != nil {
		return fmt.Errorf("failed to write mappings: %w", err)
	}

	l.Info("Saved mappings", zap.String("file", assignMappingsFile), zap.Int("entries", table.Len()))
	return nil
}
