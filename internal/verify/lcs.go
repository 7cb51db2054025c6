package verify

import (
	"sort"

	"github.com/standardbeagle/clonedetect/internal/types"
)

// LCSLength computes the length of the longest common subsequence of a
// and b via Hunt–Szymanski: O((r+n) log n) where r is the number of
// matching symbol-position pairs between the two sequences, rather than
// the classical O(|a|*|b|) dynamic program.
//
// The shorter sequence drives the outer loop; a position index is built
// for the longer sequence so each symbol of the shorter one resolves to
// its occurrence positions in the longer one in O(1). Positions for a
// given row are processed in descending order and folded into an
// increasing "thresholds" array via binary search — the same
// patience-sorting construction used for longest-increasing-subsequence,
// applied to the stream of matching (i, j) position pairs.
func LCSLength(a, b []types.TokenHash) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shorter, longer := a, b
	if len(longer) < len(shorter) {
		shorter, longer = longer, shorter
	}

	positions := make(map[types.TokenHash][]int, len(longer))
	for j, tok := range longer {
		positions[tok] = append(positions[tok], j)
	}

	var thresholds []int
	for _, tok := range shorter {
		posList := positions[tok]
		for k := len(posList) - 1; k >= 0; k-- {
			p := posList[k]
			idx := sort.Search(len(thresholds), func(x int) bool { return thresholds[x] >= p })
			if idx == len(thresholds) {
				thresholds = append(thresholds, p)
			} else {
				thresholds[idx] = p
			}
		}
	}

	return len(thresholds)
}

// LCSSimilarity computes the LCS length ratio as an integer percentage:
// 100 * lcsLength / min(lenA, lenB).
func LCSSimilarity(lcsLength, lenA, lenB int) int {
	denom := lenA
	if lenB < denom {
		denom = lenB
	}
	if denom <= 0 {
		return 0
	}
	return 100 * lcsLength / denom
}

// PassesVerification reports whether an LCS similarity clears the
// verification threshold (default 70). Exactly-at-threshold accepts.
func PassesVerification(simLCS, threshold int) bool {
	return simLCS >= threshold
}
