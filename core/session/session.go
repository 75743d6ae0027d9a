package session

import (
	"io"

	"go.uber.org/zap"

	"sku-mapper/core/catalog"
	"sku-mapper/core/inventory"
	"sku-mapper/core/mapping"
	"sku-mapper/core/match"
)

// Session holds the state of one mapping session. The catalog and sales
// batches are immutable once loaded; MapCodes and Assign mutate only the
// mapping table and the unmapped queue.
type Session struct {
	Catalog []catalog.CanonicalItem
	Batches [][]catalog.SalesRecord
	Table   *mapping.Table
	Queue   *mapping.Queue

	scorer    match.Scorer
	threshold int
	logger    *zap.Logger
}

// New creates an empty session using scorer and threshold for auto-mapping.
func New(scorer match.Scorer, threshold int, logger *zap.Logger) *Session {
	return &Session{
		Table:     mapping.NewTable(),
		Queue:     mapping.NewQueue(),
		scorer:    scorer,
		threshold: threshold,
		logger:    logger,
	}
}

// Threshold returns the session's auto-mapping threshold.
func (s *Session) Threshold() int {
	return s.threshold
}

// LoadMaster replaces the session catalog with the contents of a master CSV.
// On a parse error the previous catalog is left untouched.
func (s *Session) LoadMaster(r io.Reader, name string) error {
	items, err := catalog.ReadMaster(r, name)
	if err != nil {
		s.logger.Error("Error loading master data", zap.String("file", name), zap.Error(err))
		return err
	}
	s.Catalog = items
	s.logger.Info("Loaded master SKU data", zap.String("file", name), zap.Int("items", len(items)))
	return nil
}

// AddSalesBatch appends one sales batch parsed from a sales CSV. On a parse
// error no batch is appended.
func (s *Session) AddSalesBatch(r io.Reader, name string) error {
	records, err := catalog.ReadSales(r, name)
	if err != nil {
		s.logger.Error("Error loading sales data", zap.String("file", name), zap.Error(err))
		return err
	}
	s.Batches = append(s.Batches, records)
	s.logger.Info("Loaded sales data", zap.String("file", name), zap.Int("records", len(records)))
	return nil
}

// MapCodes runs the fuzzy auto-mapping pass over every SKU observed in the
// loaded sales batches. Codes already resolved or queued are skipped, so
// repeated calls are idempotent.
func (s *Session) MapCodes() {
	observed := make([]string, 0)
	seen := make(map[string]struct{})
	for _, batch := range s.Batches {
		for _, record := range batch {
			if record.SKU == "" {
				continue
			}
			if _, ok := seen[record.SKU]; ok {
				continue
			}
			seen[record.SKU] = struct{}{}
			observed = append(observed, record.SKU)
		}
	}

	mapping.MapCodes(catalog.CleanCodes(s.Catalog), observed, s.Table, s.Queue, s.scorer, s.threshold, s.logger)
}

// Assign records a manual SKU → MSKU mapping.
func (s *Session) Assign(sku, msku string) {
	mapping.Assign(sku, msku, s.Table, s.Queue, s.logger)
}

// Reconcile recomputes available quantities from the catalog, the sales
// batches, and the current mapping table. The session state is not mutated.
func (s *Session) Reconcile() *inventory.Report {
	return inventory.Reconcile(s.Catalog, s.Batches, s.Table, s.logger)
}

// Unmapped returns the SKUs pending manual resolution.
func (s *Session) Unmapped() []string {
	return s.Queue.Codes()
}
