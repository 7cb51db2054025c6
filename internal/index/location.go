package index

import (
	"sort"

	"github.com/standardbeagle/clonedetect/internal/ngram"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// Candidate is one located clone candidate: a sequence id sharing N-grams
// with the query, and the shared N-gram count capped per-hash at the
// candidate's own multiplicity.
type Candidate struct {
	ID     types.SequenceID
	Shared int
}

// Locate walks the query's N-gram multiset against idx and returns one
// Candidate per distinct sequence id it shares N-grams with, subject to
// the ordering rule: only ids strictly less than queryID are emitted, so
// every unordered pair is considered exactly once regardless of which
// partition built idx. Results are sorted by id ascending.
func Locate(queryID types.SequenceID, queryTokens []types.TokenHash, n int, idx *InvertedIndex) []Candidate {
	ms := ngram.Build(queryTokens, n)
	if len(ms) == 0 {
		return nil
	}

	shared := make(map[types.SequenceID]int)
	for h, mq := range ms {
		bm, ok := idx.postings[h]
		if !ok {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			c := types.SequenceID(it.Next())
			if c >= queryID {
				continue
			}
			mc := idx.multiplicity(h, c)
			add := mq
			if mc < add {
				add = mc
			}
			shared[c] += add
		}
	}

	candidates := make([]Candidate, 0, len(shared))
	for id, s := range shared {
		candidates = append(candidates, Candidate{ID: id, Shared: s})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates
}

// QueryNGramCount returns |M_q| for the given query token length, without
// rebuilding the multiset — the filtration stage needs only the count.
func QueryNGramCount(tokenLength, n int) int {
	return ngram.Count(tokenLength, n)
}
