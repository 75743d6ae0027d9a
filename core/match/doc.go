// Package match provides approximate string similarity scoring for SKU
// resolution.
//
// The central abstraction is the Scorer interface, which maps a pair of
// strings to an integer score in [0, 100]. The mapping engine treats the
// scorer as a pluggable capability: any normalized edit-distance-based
// implementation can be substituted as long as callers recalibrate their
// acceptance thresholds.
//
// # Default Implementation
//
// TokenSortScorer is the default. It lowercases both inputs, computes a
// Levenshtein ratio on the raw normalized strings and on their token-sorted
// forms (alphanumeric runs, sorted, space-joined), and returns the better of
// the two. This makes scoring case-insensitive and tolerant of word-order
// differences while still rewarding near-exact matches.
//
// # Usage
//
//	scorer := match.TokenSortScorer{}
//	score := scorer.Score("ABC100", "ABC-100") // 86
package match
