/*
Package fuzzy implements approximate lookup of a query string against
the registered keyword set: a linear scan scoring each keyword with a
Levenshtein-normalized similarity, filtering by threshold and ranking
the survivors.

Ranking by (similarity descending, keyword ascending) without a full
sort call is exactly what the adapted priorityqueue container is for:
every keyword clearing the threshold is pushed once, then Sort drains
it in final order.
*/
package fuzzy

import (
	"errors"

	"github.com/Zubayear/textrush/fold"
	"github.com/Zubayear/textrush/internal/container/priorityqueue"
	"github.com/Zubayear/textrush/trie"
)

// ErrInvalidThreshold is returned by Search when threshold falls outside
// [0.0, 1.0].
var ErrInvalidThreshold = errors.New("fuzzy: threshold out of range")

// Match is one keyword clearing the similarity threshold.
type Match struct {
	Keyword    string
	Similarity float64
}

// Search scans every terminal node in a, scoring its original keyword
// against query using the same case folding the matcher applies, and
// returns every keyword at or above threshold, sorted by similarity
// descending and keyword ascending on ties.
func Search(a *trie.Arena, query string, threshold float64, caseSensitive bool) ([]Match, error) {
	if threshold < 0.0 || threshold > 1.0 {
		return nil, ErrInvalidThreshold
	}

	queryFolded := []rune(fold.FoldString(query, caseSensitive))

	heap := priorityqueue.New[Match](func(x, y Match) bool {
		if x.Similarity != y.Similarity {
			return x.Similarity > y.Similarity
		}
		return x.Keyword < y.Keyword
	})

	a.Each(func(_ int, original, _ string) {
		keywordFolded := []rune(fold.FoldString(original, caseSensitive))
		sim := similarity(queryFolded, keywordFolded)
		if sim >= threshold {
			heap.Add(Match{Keyword: original, Similarity: sim})
		}
	})

	return heap.Sort(), nil
}

func similarity(a, b []rune) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// levenshtein computes the edit distance between two scalar sequences
// using the standard two-row dynamic-programming recurrence.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				min := prev[j-1]
				if prev[j] < min {
					min = prev[j]
				}
				if curr[j-1] < min {
					min = curr[j-1]
				}
				curr[j] = min + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
