package preprocess

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/clonedetect/internal/config"
)

func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Root:      root,
		Language:  config.LanguageKotlin,
		MinLine:   1,
		MinToken:  1,
		N:         5,
		Threads:   2,
		PairsOut:  filepath.Join(dir, "pairs.csv"),
		BlocksOut: filepath.Join(dir, "blocks.csv"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunMergesFunctionsInWalkOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.kt"), "fun first() {\n    return 1\n}\n")
	writeFile(t, filepath.Join(root, "b.kt"), "fun second() {\n    return 2\n}\n")

	cfg := testConfig(t, root)
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, result.Corpus, 2)
	require.Equal(t, filepath.Join(root, "a.kt"), result.Corpus[0].FilePath)
	require.Equal(t, filepath.Join(root, "b.kt"), result.Corpus[1].FilePath)
	require.EqualValues(t, 0, result.Corpus[0].ID)
	require.EqualValues(t, 1, result.Corpus[1].ID)
}

func TestRunSkipsFunctionsBelowMinLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.kt"), "fun tiny() {\n    return 1\n}\n")

	cfg := testConfig(t, root)
	cfg.MinLine = 10
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Empty(t, result.Corpus)
}

func TestRunSkipsFunctionsBelowMinToken(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.kt"), "fun tiny() {\n    return 1\n}\n")

	cfg := testConfig(t, root)
	cfg.MinToken = 1000
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Empty(t, result.Corpus)
}

func TestRunWritesCodeBlocksFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.kt"), "fun greet() {\n    return \"hi\"\n}\n")

	cfg := testConfig(t, root)
	_, err := Run(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.BlocksOut)
	require.NoError(t, err)
	require.Contains(t, string(data), filepath.Join(root, "a.kt"))
	require.Contains(t, string(data), "greet")
}

func TestRunEmptyTreeProducesEmptyCorpus(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(t, root)
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Empty(t, result.Corpus)
}

func TestRunExcludeGlobFiltersFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.kt"), "fun keep() {\n    return 1\n}\n")
	writeFile(t, filepath.Join(root, "vendor", "skip.kt"), "fun skip() {\n    return 1\n}\n")

	cfg := testConfig(t, root)
	cfg.Exclude = []string{"vendor/**"}
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, result.Corpus, 1)
	require.Equal(t, filepath.Join(root, "keep.kt"), result.Corpus[0].FilePath)
}

func TestRunIncludeGlobRestrictsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.kt"), "fun a() {\n    return 1\n}\n")
	writeFile(t, filepath.Join(root, "sub", "b.kt"), "fun b() {\n    return 1\n}\n")

	cfg := testConfig(t, root)
	cfg.Include = []string{"sub/**"}
	result, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, result.Corpus, 1)
	require.Equal(t, filepath.Join(root, "sub", "b.kt"), result.Corpus[0].FilePath)
}
