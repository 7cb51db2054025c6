// Package config loads and validates the detector's run configuration: the
// thresholds, language, partitioning and path options, sourced from an
// optional ".clonedetect.kdl" file and overridden by the corresponding CLI
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	clonedetecterrors "github.com/standardbeagle/clonedetect/internal/errors"
)

// Language selects both the tree-sitter/fallback tokenizer variant and the
// file-extension filter.
type Language string

const (
	LanguageJava   Language = "java"
	LanguageC      Language = "c"
	LanguageCPP    Language = "cpp"
	LanguageCSharp Language = "csharp"
	LanguagePython Language = "python"
	LanguageKotlin Language = "kotlin"
)

// Extensions returns the file extensions (including the leading dot)
// selected by a language.
func (l Language) Extensions() []string {
	switch l {
	case LanguageJava:
		return []string{".java"}
	case LanguageC:
		return []string{".c", ".h"}
	case LanguageCPP:
		return []string{".cpp", ".hpp"}
	case LanguageCSharp:
		return []string{".cs"}
	case LanguagePython:
		return []string{".py"}
	case LanguageKotlin:
		return []string{".kt"}
	default:
		return nil
	}
}

// Valid reports whether l is one of the six supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageJava, LanguageC, LanguageCPP, LanguageCSharp, LanguagePython, LanguageKotlin:
		return true
	default:
		return false
	}
}

// Config is the merged, validated configuration for one run. It is
// immutable once Validate succeeds and is shared by reference into every
// pipeline component.
type Config struct {
	Root     string
	Language Language

	MinLine  int
	MinToken int
	N        int

	PartitionCount        int
	FiltrationThreshold   int
	VerificationThreshold int

	Threads int

	Include []string
	Exclude []string

	PairsOut  string
	BlocksOut string

	Format string // "console" or "json"
}

// Default returns a Config populated with the detector's default thresholds
// and run options.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		Root:                  cwd,
		Language:              LanguageJava,
		MinLine:               6,
		MinToken:              50,
		N:                     5,
		PartitionCount:        10,
		FiltrationThreshold:   10,
		VerificationThreshold: 70,
		Threads:               runtime.NumCPU(),
		PairsOut:              "clone-pairs.csv",
		BlocksOut:             "code-blocks.csv",
		Format:                "console",
	}
}

// Load reads the KDL config file at path (if it exists) layered over the
// defaults, resolves Root to an absolute path, folds in build-artifact
// exclusions, and returns the result. A missing file is not an error; it
// simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.Root, ".clonedetect.kdl")
	}

	if _, err := os.Stat(path); err == nil {
		loaded, err := loadKDL(path, cfg)
		if err != nil {
			return nil, clonedetecterrors.NewConfigError("load config", err)
		}
		cfg = loaded
	} else if !os.IsNotExist(err) {
		return nil, clonedetecterrors.NewConfigError("stat config", err)
	}

	absRoot, err := filepath.Abs(cfg.Root)
	if err == nil {
		cfg.Root = filepath.Clean(absRoot)
	}

	exclusions := NewBuildArtifactDetector(cfg.Root).DetectOutputDirectories()
	cfg.Exclude = dedupe(append(cfg.Exclude, exclusions...))

	return cfg, nil
}

func dedupe(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Validate rejects any configuration that would make the pipeline's
// arithmetic ill-defined or that names an unsupported language, returning
// a CONFIG_ERROR-kind error describing the offending field.
func (c *Config) Validate() error {
	switch {
	case c.N <= 0:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("N must be positive, got %d", c.N))
	case !c.Language.Valid():
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("unknown language %q", string(c.Language)))
	case c.PartitionCount <= 0:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("partitionCount must be positive, got %d", c.PartitionCount))
	case c.MinLine <= 0:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("minLine must be positive, got %d", c.MinLine))
	case c.MinToken <= 0:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("minToken must be positive, got %d", c.MinToken))
	case c.FiltrationThreshold < 0 || c.FiltrationThreshold > 100:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("filtrationThreshold must be in [0,100], got %d", c.FiltrationThreshold))
	case c.VerificationThreshold < 0 || c.VerificationThreshold > 100:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("verificationThreshold must be in [0,100], got %d", c.VerificationThreshold))
	case c.Threads <= 0:
		return clonedetecterrors.NewConfigError("validate", fmt.Errorf("threads must be positive, got %d", c.Threads))
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return clonedetecterrors.NewSourceError("stat root", err)
	}
	if !info.IsDir() {
		return clonedetecterrors.NewSourceError("stat root", fmt.Errorf("root %q is not a directory", c.Root))
	}

	return nil
}
