package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"sku-mapper/core/config"
	"sku-mapper/core/logger"
	"sku-mapper/core/mapping"
	"sku-mapper/core/match"
	"sku-mapper/core/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the map command
	mapMasterFile  string
	mapSalesFiles  []string
	mapOutFile     string
	mapThreshold   int
	mapInteractive bool
)

// mapCmd runs the fuzzy mapping pass over sales files in one shot.
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map seller SKUs to canonical MSKUs",
	Long: `Map seller SKUs from sales CSVs against the master catalog using fuzzy
matching, then write the resolved mapping table as a two-column CSV.

SKUs the automatic pass cannot confidently resolve are reported; with
--interactive they can be assigned manually on the spot.

Examples:
  # Auto-map and write mappings
  sku-mapper map --master master.csv --sales sales.csv --out sku_mappings.csv

  # Multiple sales batches, stricter threshold
  sku-mapper map --master master.csv --sales jan.csv --sales feb.csv --threshold 90

  # Resolve leftovers interactively
  sku-mapper map --master master.csv --sales sales.csv --interactive`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&mapMasterFile, "master", "", "Master catalog CSV (columns MSKU, Quantity)")
	mapCmd.Flags().StringArrayVar(&mapSalesFiles, "sales", nil, "Sales CSV (columns SKU, Quantity); repeatable")
	mapCmd.Flags().StringVar(&mapOutFile, "out", "sku_mappings.csv", "Output path for the mapping CSV")
	mapCmd.Flags().IntVar(&mapThreshold, "threshold", 0, "Auto-map threshold override (default from config)")
	mapCmd.Flags().BoolVar(&mapInteractive, "interactive", false, "Prompt for manual mappings for unresolved SKUs")
	_ = mapCmd.MarkFlagRequired("master")
	_ = mapCmd.MarkFlagRequired("sales")

	RootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	threshold := cfg.Mapper.Threshold
	if mapThreshold > 0 {
		threshold = mapThreshold
	}

	sess := session.New(match.TokenSortScorer{}, threshold, l)
	if err := loadSessionFiles(sess, mapMasterFile, mapSalesFiles); err != nil {
		return err
	}

	sess.MapCodes()

	unmapped := sess.Unmapped()
	l.Info("Mapping pass finished",
		zap.Int("mapped", sess.Table.Len()),
		zap.Int("unmapped", len(unmapped)),
		zap.Int("threshold", threshold),
	)

	if mapInteractive && len(unmapped) > 0 {
		resolveInteractively(sess, unmapped)
	}

	if err := writeMappingsFile(mapOutFile, sess.Table); err != nil {
		return fmt.Errorf("failed to write mappings: %w", err)
	}
	l.Info("Saved mappings", zap.String("file", mapOutFile), zap.Int("entries", sess.Table.Len()))

	for _, sku := range sess.Unmapped() {
		l.Warn("SKU still requires manual mapping", zap.String("sku", sku))
	}
	return nil
}

// resolveInteractively prompts for an MSKU per unresolved SKU. A blank answer
// leaves the SKU in the queue.
func resolveInteractively(sess *session.Session, unmapped []string) {
	reader := bufio.NewReader(os.Stdin)
	for _, sku := range unmapped {
		fmt.Printf("MSKU for %q (blank to skip): ", sku)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		sess.Assign(sku, answer)
	}
}

// loadSessionFiles loads the master catalog and every sales batch into sess.
func loadSessionFiles(sess *session.Session, masterPath string, salesPaths []string) error {
	master, err := os.Open(masterPath)
	if err != nil {
		return fmt.Errorf("failed to open master file: %w", err)
	}
	defer master.Close()
	if err := sess.LoadMaster(master, masterPath); err != nil {
		return err
	}

	for _, path := range salesPaths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open sales file: %w", err)
		}
		err = sess.AddSalesBatch(f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeMappingsFile writes table to path as a SKU,MSKU CSV.
func writeMappingsFile(path string, table *mapping.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mapping.WriteTable(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
