package mapping

import (
	"go.uber.org/zap"

	"sku-mapper/core/match"
)

// DefaultThreshold is the similarity score an auto-mapping must strictly
// exceed to be committed.
const DefaultThreshold = 80

// MapCodes resolves each observed SKU against the catalog codes, committing
// confident matches into table and routing the rest into queue.
//
// Per distinct observed code:
//   - codes already present in table are skipped entirely (idempotence)
//   - codes failing the format check go to queue without being scored
//   - otherwise the code is scored against every catalog code; the best
//     candidate (first-encountered wins ties) is committed iff its score is
//     strictly greater than threshold, else the code is queued
//
// An empty catalog routes every code to queue without invoking the scorer.
// catalogCodes must already be deduplicated and cleaned of empty entries
// (see catalog.CleanCodes). MapCodes mutates only table and queue.
func MapCodes(catalogCodes []string, observed []string, table *Table, queue *Queue, scorer match.Scorer, threshold int, logger *zap.Logger) {
	for _, sku := range observed {
		if table.Has(sku) || queue.Has(sku) {
			continue
		}

		if !IsValidCode(sku) {
			logger.Warn("Invalid SKU format", zap.String("sku", sku))
			queue.Add(sku)
			continue
		}

		if len(catalogCodes) == 0 {
			logger.Info("SKU unmapped, requires manual mapping", zap.String("sku", sku))
			queue.Add(sku)
			continue
		}

		best, score := bestMatch(sku, catalogCodes, scorer)
		if score > threshold {
			table.Set(sku, best)
			logger.Info("Auto-mapped SKU",
				zap.String("sku", sku),
				zap.String("msku", best),
				zap.Int("score", score),
			)
		} else {
			queue.Add(sku)
			logger.Info("SKU unmapped, requires manual mapping",
				zap.String("sku", sku),
				zap.String("closest", best),
				zap.Int("score", score),
			)
		}
	}
}

// bestMatch returns the highest-scoring catalog code for sku. Ties keep the
// earlier candidate.
func bestMatch(sku string, catalogCodes []string, scorer match.Scorer) (string, int) {
	best := catalogCodes[0]
	bestScore := scorer.Score(sku, best)
	for _, candidate := range catalogCodes[1:] {
		if s := scorer.Score(sku, candidate); s > bestScore {
			best = candidate
			bestScore = s
		}
	}
	return best, bestScore
}

// Assign records a manual SKU → MSKU mapping, overwriting any existing entry
// and removing the SKU from the unmapped queue. Assigning a code that is not
// pending is tolerated: the end state (mapping exists) is correct either way,
// so the stray removal is only noted at debug level.
func Assign(sku, msku string, table *Table, queue *Queue, logger *zap.Logger) {
	if !queue.Remove(sku) {
		logger.Debug("Manual assignment for SKU not pending resolution", zap.String("sku", sku))
	}
	table.Set(sku, msku)
	logger.Info("Manually mapped SKU", zap.String("sku", sku), zap.String("msku", msku))
}
