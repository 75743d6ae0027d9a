package main

import (
	"fmt"
	"log"
	"os"

	"sku-mapper/core/mapping"
	"sku-mapper/core/match"
)

// Small debug binary: score one SKU against candidate MSKUs and show which
// would be committed at the default threshold.
//
//	go run ./cmd/debug_match ABC100 ABC-100 ABC-200
func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <sku> <msku>...", os.Args[0])
	}

	sku := os.Args[1]
	candidates := os.Args[2:]
	scorer := match.TokenSortScorer{}

	if !mapping.IsValidCode(sku) {
		fmt.Printf("SKU %q fails the format check -> manual resolution\n", sku)
		return
	}

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		score := scorer.Score(sku, candidate)
		fmt.Printf("%-20s %3d\n", candidate, score)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	fmt.Printf("\nBest: %s (%d)\n", best, bestScore)
	if bestScore > mapping.DefaultThreshold {
		fmt.Printf("Would auto-map at threshold %d\n", mapping.DefaultThreshold)
	} else {
		fmt.Printf("Below threshold %d -> manual resolution\n", mapping.DefaultThreshold)
	}
}
