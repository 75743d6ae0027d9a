package match

import (
	"math"
	"sort"
	"strings"
)

// Scorer computes the similarity between two strings as an integer in [0, 100].
// 100 means the strings are equivalent under the scorer's normalization.
type Scorer interface {
	Score(a, b string) int
}

// TokenSortScorer scores strings with a Levenshtein ratio, taking the better
// of the raw comparison and the token-sorted comparison. It is the default
// scorer for SKU auto-mapping.
type TokenSortScorer struct{}

// Score returns the similarity of a and b in [0, 100].
func (TokenSortScorer) Score(a, b string) int {
	na := normalize(a)
	nb := normalize(b)

	plain := ratio(na, nb)
	if plain == 100 {
		return plain
	}

	sorted := ratio(tokenSort(na), tokenSort(nb))
	if sorted > plain {
		return sorted
	}
	return plain
}

// normalize lowercases and trims surrounding whitespace.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenSort splits s into maximal alphanumeric runs, sorts them, and joins
// them with single spaces. "blu-go-l" and "go-blu-l" collapse to the same
// form, which is what makes the scorer word-order tolerant.
func tokenSort(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !isAlphanumeric(r)
	})
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ratio converts a Levenshtein distance into a similarity in [0, 100]:
// round(100 * (1 - dist/maxLen)), measured in runes.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	dist := levenshtein(a, b)
	n := len([]rune(a))
	if m := len([]rune(b)); m > n {
		n = m
	}

	return int(math.Round(100 * (1 - float64(dist)/float64(n))))
}

// levenshtein computes the edit distance between a and b using a two-row
// dynamic programming table.
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			ins := curr[j] + 1
			del := prev[j+1] + 1
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min3(ins, del, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
