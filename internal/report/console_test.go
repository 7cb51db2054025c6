package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderConsoleNoPairs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderConsole(nil, &buf, false))
	require.Contains(t, buf.String(), "No clones found.")
}

func TestRenderConsoleListsPairLocations(t *testing.T) {
	pairs := []Pair{
		{
			ID1: 0, ID2: 1, NGramSim: 100,
			Block1: Block{FilePath: "a.kt", StartLine: 1, EndLine: 3},
			Block2: Block{FilePath: "b.kt", StartLine: 4, EndLine: 6},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderConsole(pairs, &buf, false))
	out := buf.String()
	require.Contains(t, out, "a.kt:1-3")
	require.Contains(t, out, "b.kt:4-6")
	require.Contains(t, out, "100%")
}

func TestAverageSimilarity(t *testing.T) {
	require.Equal(t, 0, averageSimilarity(nil))
	require.Equal(t, 75, averageSimilarity([]Pair{{NGramSim: 50}, {NGramSim: 100}}))
}

func TestLocationUnknownBlock(t *testing.T) {
	require.Equal(t, "?", location(Block{}))
}
