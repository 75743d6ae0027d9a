package match_test

import (
	"testing"

	"sku-mapper/core/match"

	"github.com/stretchr/testify/assert"
)

func TestTokenSortScorer_GoldenValues(t *testing.T) {
	scorer := match.TokenSortScorer{}

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		// One hyphen of edit distance over seven runes.
		{"NearMatch", "ABC100", "ABC-100", 86},
		// Hyphen plus digit substitution.
		{"FurtherMatch", "ABC100", "ABC-200", 71},
		{"ExactMatch", "ABC-100", "ABC-100", 100},
		{"CaseInsensitive", "abc-100", "ABC-100", 100},
		// Same tokens in a different order collapse under token sort.
		{"TokenOrder", "BLU-GO-L", "GO-BLU-L", 100},
		{"EmptyLeft", "", "ABC-100", 0},
		{"EmptyRight", "ABC-100", "", 0},
		{"Disjoint", "XYZ-999", "ABC-100", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.a, tt.b))
		})
	}
}

func TestTokenSortScorer_Symmetry(t *testing.T) {
	scorer := match.TokenSortScorer{}

	pairs := [][2]string{
		{"ABC100", "ABC-100"},
		{"GO-BLU-L", "BLU-GO-L"},
		{"SKU_1", "MSKU_100"},
	}

	for _, p := range pairs {
		assert.Equal(t, scorer.Score(p[0], p[1]), scorer.Score(p[1], p[0]))
	}
}

func TestTokenSortScorer_PrefersCloserCatalogCode(t *testing.T) {
	scorer := match.TokenSortScorer{}

	// The scenario the mapper relies on: "ABC100" must score higher against
	// "ABC-100" than against "ABC-200", and clear the default threshold of 80.
	best := scorer.Score("ABC100", "ABC-100")
	other := scorer.Score("ABC100", "ABC-200")

	assert.Greater(t, best, other)
	assert.Greater(t, best, 80)
}
