// Package preprocess walks the source tree, drives the configured
// Tokenizer concurrently across files, and merges the results into the
// frozen, dense-ID TokenSequence corpus the rest of the pipeline
// consumes.
package preprocess

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/conc/pool"

	"github.com/standardbeagle/clonedetect/internal/config"
	clonedetecterrors "github.com/standardbeagle/clonedetect/internal/errors"
	"github.com/standardbeagle/clonedetect/internal/hashutil"
	"github.com/standardbeagle/clonedetect/internal/lang"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// Result is the preprocessor's output: the frozen, dense-id corpus, ready
// to be shared read-only across the rest of the pipeline.
type Result struct {
	Corpus []types.TokenSequence
}

// fileFunctions is the per-file tokenization outcome, indexed by the
// file's position in walk order so the sequential merge stays
// deterministic regardless of which goroutine finished first.
type fileFunctions struct {
	path      string
	functions []lang.Function
}

// Run walks cfg.Root, tokenizes every matching file (in parallel, up to
// cfg.Threads workers), and merges the accepted function-level records
// into a dense-id corpus in (file walk order, function source order).
// It also writes the code-blocks side-output file named by cfg.BlocksOut.
func Run(cfg *config.Config) (*Result, error) {
	tokenizer, err := lang.New(cfg.Language)
	if err != nil {
		return nil, clonedetecterrors.NewConfigError("select tokenizer", err)
	}

	paths, err := discoverFiles(cfg)
	if err != nil {
		return nil, clonedetecterrors.NewSourceError("walk source tree", err)
	}

	perFile := make([]fileFunctions, len(paths))
	p := pool.New().WithMaxGoroutines(cfg.Threads)
	for i, path := range paths {
		i, path := i, path
		p.Go(func() {
			content, err := os.ReadFile(path)
			if err != nil {
				slog.Warn("preprocess: skipping unreadable file", "file", path, "error", err)
				return
			}
			functions, err := tokenizer.ExtractFunctions(content)
			if err != nil {
				slog.Warn("preprocess: skipping file that failed to parse", "file", path, "error", err)
				return
			}
			perFile[i] = fileFunctions{path: path, functions: functions}
		})
	}
	p.Wait()

	return merge(cfg, perFile)
}

// discoverFiles walks cfg.Root in deterministic lexical order, keeping
// files whose extension matches the configured language and whose
// root-relative path clears the include/exclude doublestar globs.
func discoverFiles(cfg *config.Config) ([]string, error) {
	extensions := make(map[string]bool, len(cfg.Language.Extensions()))
	for _, ext := range cfg.Language.Extensions() {
		extensions[ext] = true
	}

	var paths []string
	err := filepath.WalkDir(cfg.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(cfg.Exclude, rel) {
			return nil
		}
		if len(cfg.Include) > 0 && !matchesAny(cfg.Include, rel) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// merge sequentially folds per-file tokenization results into the dense
// corpus, applying the minLine/minToken acceptance test and writing the
// code-blocks side-output file as it goes.
func merge(cfg *config.Config, perFile []fileFunctions) (*Result, error) {
	blocksFile, err := os.Create(cfg.BlocksOut)
	if err != nil {
		return nil, clonedetecterrors.NewIOError("create code-blocks file", err)
	}
	defer blocksFile.Close()
	w := bufio.NewWriter(blocksFile)

	commitHash := resolveCommitHash(cfg.Root)

	var corpus []types.TokenSequence
	for _, ff := range perFile {
		for _, fn := range ff.functions {
			lines := fn.EndLine - fn.StartLine + 1
			if lines < cfg.MinLine {
				continue // TOO_SHORT: silently skip
			}

			tokens := lang.Normalize(fn.Source, cfg.Language)
			if len(tokens) < cfg.MinToken {
				continue // TOO_SHORT: silently skip
			}

			id := types.SequenceID(len(corpus))
			corpus = append(corpus, types.TokenSequence{
				ID:        id,
				FilePath:  ff.path,
				StartLine: fn.StartLine,
				EndLine:   fn.EndLine,
				Tokens:    tokens,
			})

			block := types.CodeBlock{
				FilePath:   ff.path,
				StartLine:  fn.StartLine,
				EndLine:    fn.EndLine,
				MethodName: fn.Name,
				CommitHash: commitHash,
				TokenHash:  hashutil.SequenceDigest(tokens),
			}
			if err := writeCodeBlock(w, block); err != nil {
				return nil, clonedetecterrors.NewIOError("write code-blocks file", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return nil, clonedetecterrors.NewIOError("flush code-blocks file", err)
	}

	return &Result{Corpus: corpus}, nil
}
