// Package lang implements the Tokenizer capability: one variant per
// supported language, each responsible for deciding which AST sub-trees
// constitute a "function" and handing the core a finite sequence of
// function-level records. The core never branches on language beyond
// selecting a variant here.
package lang

import (
	"fmt"

	"github.com/standardbeagle/clonedetect/internal/config"
)

// Function is one function-level record extracted from a source file:
// its 1-indexed inclusive line range, its name (best-effort, for the
// code-block record only — never fed into tokenization), and the raw
// source bytes spanning the function body for the normalizer to consume.
type Function struct {
	Name      string
	StartLine int
	EndLine   int
	Source    []byte
}

// Tokenizer is the per-language capability: given a source file's
// content, produce the function-level sub-trees the preprocessor will
// normalize and assemble into TokenSequences.
type Tokenizer interface {
	// ExtractFunctions returns one Function per function-like node found
	// in content. Implementations recover from AST-library panics
	// internally and return an error instead of crashing the caller.
	ExtractFunctions(content []byte) ([]Function, error)
}

// New returns the Tokenizer variant for the given language.
func New(l config.Language) (Tokenizer, error) {
	switch l {
	case config.LanguageJava:
		return newTreeSitterTokenizer(javaGrammar())
	case config.LanguageCPP:
		return newTreeSitterTokenizer(cppGrammar())
	case config.LanguageC:
		return newTreeSitterTokenizer(cGrammar())
	case config.LanguageCSharp:
		return newTreeSitterTokenizer(csharpGrammar())
	case config.LanguagePython:
		return newTreeSitterTokenizer(pythonGrammar())
	case config.LanguageKotlin:
		return newKotlinTokenizer(), nil
	default:
		return nil, fmt.Errorf("lang: no tokenizer for language %q", string(l))
	}
}
