// Package hashutil centralizes the three stable-hashing schemes the
// detector relies on: a 32-bit FNV-1a for individual tokens, a 64-bit
// xxhash fold for N-grams, and a BLAKE3 digest for the persisted
// token-sequence hash.
package hashutil

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/standardbeagle/clonedetect/internal/types"
)

// FNV-1a 32-bit constants. http://www.isthe.com/chongo/tech/comp/fnv/
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// TokenHash computes the FNV-1a hash of a normalized token's text. Equal
// token text always yields an equal hash within and across runs, which is
// the only property downstream components rely on.
func TokenHash(text string) types.TokenHash {
	h := uint32(fnvOffset32)
	for i := 0; i < len(text); i++ {
		h ^= uint32(text[i])
		h *= fnvPrime32
	}
	return types.TokenHash(h)
}

// NGramHash folds N successive token hashes, in order, into a single
// 64-bit xxhash digest. Order matters (an N-gram is a window, not a
// multiset), so each token hash is written to the digest in sequence
// rather than combined commutatively.
func NGramHash(window []types.TokenHash) types.NGramHash {
	var buf [4]byte
	d := xxhash.New()
	for _, t := range window {
		binary.LittleEndian.PutUint32(buf[:], uint32(t))
		_, _ = d.Write(buf[:])
	}
	return types.NGramHash(d.Sum64())
}

// SequenceDigest returns the hex-encoded BLAKE3 digest of a token sequence,
// used as the optional tokenHash field of a persisted code-block record.
func SequenceDigest(tokens []types.TokenHash) string {
	h := blake3.New()
	buf := make([]byte, 4)
	for _, t := range tokens {
		binary.LittleEndian.PutUint32(buf, uint32(t))
		_, _ = h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
