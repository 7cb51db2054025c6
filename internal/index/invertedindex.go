// Package index builds the partitioned inverted index and locates clone
// candidates against it.
package index

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/standardbeagle/clonedetect/internal/ngram"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// postingKey identifies one (n-gram hash, sequence id) pair whose
// multiplicity within that sequence exceeds 1 — the common case (exactly
// one occurrence) needs no entry here at all, keeping the overflow map
// small relative to the roaring bitmaps that carry the bulk of the index.
type postingKey struct {
	hash types.NGramHash
	id   types.SequenceID
}

// InvertedIndex maps each N-gram hash, within one partition of sequence
// ids, to the ascending set of sequence ids containing it. Ascending
// roaring bitmaps give compact storage and natural in-order iteration for
// the merge-style counting Location performs; multiplicities above 1 are
// rare enough (a function repeating the exact same 5-token window) that
// they're tracked in a side map instead of inflating every posting list.
type InvertedIndex struct {
	partitionStart types.SequenceID
	partitionSize  int

	postings map[types.NGramHash]*roaring.Bitmap
	overflow map[postingKey]int
}

// Build constructs the index over the partition [partitionStart,
// partitionStart+partitionSize) of sequences, given the full frozen
// corpus. n is the configured N-gram window size.
func Build(corpus []types.TokenSequence, partitionStart types.SequenceID, partitionSize int, n int) *InvertedIndex {
	idx := &InvertedIndex{
		partitionStart: partitionStart,
		partitionSize:  partitionSize,
		postings:       make(map[types.NGramHash]*roaring.Bitmap),
		overflow:       make(map[postingKey]int),
	}

	end := int(partitionStart) + partitionSize
	if end > len(corpus) {
		end = len(corpus)
	}

	for j := int(partitionStart); j < end; j++ {
		seq := corpus[j]
		ms := ngram.Build(seq.Tokens, n)
		for h, mult := range ms {
			bm, ok := idx.postings[h]
			if !ok {
				bm = roaring.New()
				idx.postings[h] = bm
			}
			bm.Add(uint32(seq.ID))
			if mult > 1 {
				idx.overflow[postingKey{hash: h, id: seq.ID}] = mult
			}
		}
	}

	return idx
}

// multiplicity returns how many times n-gram hash h occurs in sequence id,
// assuming id is present in h's posting list.
func (idx *InvertedIndex) multiplicity(h types.NGramHash, id types.SequenceID) int {
	if m, ok := idx.overflow[postingKey{hash: h, id: id}]; ok {
		return m
	}
	return 1
}

// Contains reports whether sequence id falls within this index's partition.
func (idx *InvertedIndex) Contains(id types.SequenceID) bool {
	return id >= idx.partitionStart && int(id) < int(idx.partitionStart)+idx.partitionSize
}
