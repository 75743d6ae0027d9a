package mapping_test

import (
	"testing"

	"sku-mapper/core/mapping"
	"sku-mapper/core/match"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// countingScorer wraps the default scorer and records how often it is asked.
type countingScorer struct {
	inner match.TokenSortScorer
	calls int
}

func (s *countingScorer) Score(a, b string) int {
	s.calls++
	return s.inner.Score(a, b)
}

// panicScorer fails the test if the mapper scores anything.
type panicScorer struct{ t *testing.T }

func (s panicScorer) Score(a, b string) int {
	s.t.Fatalf("scorer invoked for %q vs %q", a, b)
	return 0
}

func TestMapCodes_InvalidFormatGoesToQueue(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()
	catalogCodes := []string{"SKU-123"}

	// "SKU 123" is a near-perfect match, but the space fails the format
	// check, so it must never reach the table.
	mapping.MapCodes(catalogCodes, []string{"SKU 123", "SKU!123", ""}, table, queue, match.TokenSortScorer{}, mapping.DefaultThreshold, zap.NewNop())

	assert.Zero(t, table.Len())
	assert.True(t, queue.Has("SKU 123"))
	assert.True(t, queue.Has("SKU!123"))
	assert.True(t, queue.Has(""))
}

func TestMapCodes_GoldenAutoMap(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()

	mapping.MapCodes([]string{"ABC-100", "ABC-200"}, []string{"ABC100"}, table, queue, match.TokenSortScorer{}, 80, zap.NewNop())

	// Score against ABC-100 is 86 (> 80), against ABC-200 only 71.
	msku, ok := table.Get("ABC100")
	assert.True(t, ok)
	assert.Equal(t, "ABC-100", msku)
	assert.Zero(t, queue.Len())
}

func TestMapCodes_ThresholdIsExclusive(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()

	// Best score is exactly 86; a threshold of 86 must NOT commit.
	mapping.MapCodes([]string{"ABC-100"}, []string{"ABC100"}, table, queue, match.TokenSortScorer{}, 86, zap.NewNop())

	assert.False(t, table.Has("ABC100"))
	assert.True(t, queue.Has("ABC100"))
}

func TestMapCodes_EmptyCatalogSkipsScoring(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()

	mapping.MapCodes(nil, []string{"ABC100", "XYZ-1"}, table, queue, panicScorer{t}, mapping.DefaultThreshold, zap.NewNop())

	assert.Zero(t, table.Len())
	assert.Equal(t, 2, queue.Len())
}

func TestMapCodes_Idempotent(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()
	scorer := &countingScorer{}
	catalogCodes := []string{"ABC-100", "ABC-200"}
	observed := []string{"ABC100", "totally-different"}

	mapping.MapCodes(catalogCodes, observed, table, queue, scorer, 80, zap.NewNop())
	firstCalls := scorer.calls
	assert.Positive(t, firstCalls)

	// Second pass over the same codes must not score or move anything.
	mapping.MapCodes(catalogCodes, observed, table, queue, scorer, 80, zap.NewNop())

	assert.Equal(t, firstCalls, scorer.calls)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1, queue.Len())
}

func TestMapCodes_TieKeepsFirstCatalogCode(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()

	// "AAA-0" scores identically against both candidates; the first catalog
	// code in encounter order wins.
	mapping.MapCodes([]string{"AAA-1", "AAA-2"}, []string{"AAA-0"}, table, queue, match.TokenSortScorer{}, 50, zap.NewNop())

	msku, ok := table.Get("AAA-0")
	assert.True(t, ok)
	assert.Equal(t, "AAA-1", msku)
}

func TestMapCodes_ObservedCodeInExactlyOnePlace(t *testing.T) {
	table := mapping.NewTable()
	queue := mapping.NewQueue()
	observed := []string{"ABC100", "no-match-at-all", "BAD CODE"}

	mapping.MapCodes([]string{"ABC-100"}, observed, table, queue, match.TokenSortScorer{}, 80, zap.NewNop())

	for _, sku := range observed {
		inTable := table.Has(sku)
		inQueue := queue.Has(sku)
		assert.True(t, inTable != inQueue, "SKU %q must be in exactly one of table/queue", sku)
	}
}

func TestAssign(t *testing.T) {
	t.Run("ResolvesPendingCode", func(t *testing.T) {
		table := mapping.NewTable()
		queue := mapping.NewQueue()
		queue.Add("CST-01")

		mapping.Assign("CST-01", "MSKU-CST-01", table, queue, zap.NewNop())

		msku, ok := table.Get("CST-01")
		assert.True(t, ok)
		assert.Equal(t, "MSKU-CST-01", msku)
		assert.False(t, queue.Has("CST-01"))
	})

	t.Run("AbsentCodeIsNoop", func(t *testing.T) {
		table := mapping.NewTable()
		queue := mapping.NewQueue()

		assert.NotPanics(t, func() {
			mapping.Assign("never-seen", "MSKU-1", table, queue, zap.NewNop())
		})
		assert.True(t, table.Has("never-seen"))
	})

	t.Run("OverwritesAutoMapping", func(t *testing.T) {
		table := mapping.NewTable()
		queue := mapping.NewQueue()
		table.Set("ABC100", "ABC-100")

		mapping.Assign("ABC100", "ABC-999", table, queue, zap.NewNop())

		msku, _ := table.Get("ABC100")
		assert.Equal(t, "ABC-999", msku)
		assert.Equal(t, 1, table.Len())
	})
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ABC-100", true},
		{"abc_100", true},
		{"A1", true},
		{"-", true},
		{"SKU 123", false},
		{"SKU.123", false},
		{"", false},
		{" ABC", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapping.IsValidCode(tt.code), "code %q", tt.code)
	}
}
