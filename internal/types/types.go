// Package types holds the data model shared across the clone-detection
// pipeline: token sequences, N-gram hashes, and the pair/record shapes that
// flow between components.
package types

// SequenceID is the dense, zero-based, run-immutable identifier assigned to
// a TokenSequence by the preprocessor in merge order.
type SequenceID uint32

// TokenHash is the stable 32-bit hash of one normalized lexical token,
// produced by the token normalizer (FNV-1a over the token's UTF-8 bytes).
type TokenHash uint32

// NGramHash is the 64-bit hash identifying one N-gram window within a
// token sequence.
type NGramHash uint64

// TokenSequence is a function-level record produced by the preprocessor.
// Once appended to the frozen corpus it is read-only for the rest of the run.
type TokenSequence struct {
	ID        SequenceID
	FilePath  string
	StartLine int
	EndLine   int
	Tokens    []TokenHash
}

// Lines returns the inclusive line count of the fragment.
func (s *TokenSequence) Lines() int {
	return s.EndLine - s.StartLine + 1
}

// ClonePair is an accepted result from the pipeline driver: two sequence
// ids, the N-gram similarity that triggered acceptance, and an optional LCS
// similarity (absent when accepted through the fast path).
type ClonePair struct {
	ID1        SequenceID
	ID2        SequenceID
	NGramSim   int
	LCSSim     int
	HasLCSSim  bool
}

// CodeBlock is the persisted side-output record for one TokenSequence,
// index-aligned to SequenceID. Method metadata, commit hash and token hash
// are optional and only populated when the tokenizer/enrichment step
// supplies them.
type CodeBlock struct {
	FilePath   string
	StartLine  int
	EndLine    int
	MethodName string
	ReturnType string
	ParamList  string
	CommitHash string
	TokenHash  string
}

// HasMetadata reports whether any optional trailing field was populated.
func (c *CodeBlock) HasMetadata() bool {
	return c.MethodName != "" || c.ReturnType != "" || c.ParamList != "" || c.CommitHash != "" || c.TokenHash != ""
}
