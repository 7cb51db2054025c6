package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/clonedetect/internal/types"
)

func tok(values ...int) []types.TokenHash {
	out := make([]types.TokenHash, len(values))
	for i, v := range values {
		out[i] = types.TokenHash(v)
	}
	return out
}

func TestLCSLengthIdentity(t *testing.T) {
	a := tok(1, 2, 3, 4, 5)
	require.Equal(t, len(a), LCSLength(a, a))
}

func TestLCSLengthSymmetry(t *testing.T) {
	a := tok(1, 2, 3, 4, 5, 6, 7, 8)
	b := tok(1, 9, 2, 3, 9, 4, 5, 6)
	require.Equal(t, LCSLength(a, b), LCSLength(b, a))
}

func TestLCSLengthEmptySequence(t *testing.T) {
	require.Equal(t, 0, LCSLength(nil, tok(1, 2, 3)))
	require.Equal(t, 0, LCSLength(tok(1, 2, 3), nil))
}

func TestLCSLengthOneSharedTokenAmongUnrelated(t *testing.T) {
	a := tok(1)
	b := tok(1, 2)
	require.Equal(t, 1, LCSLength(a, b))
	require.Equal(t, 100, LCSSimilarity(1, 1, 2))
}

// Scenario 3 from the end-to-end worked examples (N=2): A and B share a
// length-6 subsequence (1,2,3,4,5,6) despite interleaved distractor tokens.
func TestLCSLengthWorkedScenario(t *testing.T) {
	a := tok(1, 2, 3, 4, 5, 6, 7, 8)
	b := tok(1, 9, 2, 3, 9, 4, 5, 6)
	lcsLen := LCSLength(a, b)
	require.Equal(t, 6, lcsLen)
	require.Equal(t, 75, LCSSimilarity(lcsLen, len(a), len(b)))
}

func TestLCSSimilarityBounds(t *testing.T) {
	require.Equal(t, 100, LCSSimilarity(5, 5, 5))
	require.Equal(t, 0, LCSSimilarity(0, 5, 5))
	require.LessOrEqual(t, LCSSimilarity(5, 5, 10), 100)
}

func TestPassesVerification(t *testing.T) {
	require.True(t, PassesVerification(70, 70))
	require.False(t, PassesVerification(69, 70))
}
