// Package ngram builds the N-gram multiset of a token sequence.
package ngram

import (
	"github.com/standardbeagle/clonedetect/internal/hashutil"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// Multiset maps an N-gram hash to the number of times it occurs in one
// token sequence. It is always computed on demand, never persisted
// alongside the sequence.
type Multiset map[types.NGramHash]int

// Size returns the total N-gram count (sum of multiplicities), i.e. |M|.
func (m Multiset) Size() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// Build computes the multiset of N-gram hashes for tokens with window
// size n. A sequence shorter than n yields the empty multiset.
func Build(tokens []types.TokenHash, n int) Multiset {
	length := len(tokens) - n + 1
	if length <= 0 {
		return Multiset{}
	}

	m := make(Multiset, length)
	for i := 0; i < length; i++ {
		h := hashutil.NGramHash(tokens[i : i+n])
		m[h]++
	}
	return m
}

// Count returns the N-gram count a sequence of the given token length and
// window size would produce, without materializing the multiset — used
// by the filtration/LCS ratio math which only needs |M_q| and |M_c|.
func Count(tokenLength, n int) int {
	c := tokenLength - n + 1
	if c < 0 {
		return 0
	}
	return c
}
