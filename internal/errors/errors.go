// Package errors defines the clone detector's typed error taxonomy and the
// exit-code mapping the CLI applies to it.
package errors

import "fmt"

// Kind classifies a detector error into one of the policy buckets from the
// error handling design: each kind maps to exactly one process exit code.
type Kind string

const (
	KindConfig      Kind = "config"
	KindSource      Kind = "source"
	KindParse       Kind = "parse"
	KindIO          Kind = "io"
	KindInterrupted Kind = "interrupted"
)

// ExitCode returns the process exit code associated with a Kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindConfig:
		return 1
	case KindSource:
		return 2
	case KindIO:
		return 3
	case KindInterrupted:
		return 130
	default:
		return 1
	}
}

// DetectorError is the single error type surfaced across kind boundaries.
// It mirrors the reference indexer's builder-style IndexingError: construct
// with New, optionally attach the file it concerns with WithFile.
type DetectorError struct {
	Kind       Kind
	Operation  string
	FilePath   string
	Underlying error
}

// New creates a DetectorError of the given kind for the named operation.
func New(kind Kind, op string, err error) *DetectorError {
	return &DetectorError{Kind: kind, Operation: op, Underlying: err}
}

// WithFile attaches the file path the error concerns and returns the
// receiver for chaining.
func (e *DetectorError) WithFile(path string) *DetectorError {
	e.FilePath = path
	return e
}

func (e *DetectorError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("%s %s failed for %s: %v", e.Kind, e.Operation, e.FilePath, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Operation, e.Underlying)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *DetectorError) Unwrap() error {
	return e.Underlying
}

// NewConfigError wraps err as a CONFIG_ERROR for the given option/operation.
func NewConfigError(op string, err error) *DetectorError {
	return New(KindConfig, op, err)
}

// NewSourceError wraps err as a SOURCE_ERROR (unreadable source tree).
func NewSourceError(op string, err error) *DetectorError {
	return New(KindSource, op, err)
}

// NewParseError wraps err as a PARSE_ERROR; the preprocessor recovers these
// locally (logs and skips the file) and they never reach the CLI boundary.
func NewParseError(op string, err error) *DetectorError {
	return New(KindParse, op, err)
}

// NewIOError wraps err as an IO_ERROR (pair file or code-blocks write failure).
func NewIOError(op string, err error) *DetectorError {
	return New(KindIO, op, err)
}

// NewInterrupted reports an external interrupt (SIGINT-style) during a run.
func NewInterrupted(op string) *DetectorError {
	return New(KindInterrupted, op, fmt.Errorf("run interrupted"))
}

// ExitCodeFor maps an arbitrary error to the process exit code it should
// produce. Errors that are not a *DetectorError default to CONFIG_ERROR's
// code (1), matching "surface, exit" for any unclassified fatal condition.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	de, ok := err.(*DetectorError)
	if !ok {
		return 1
	}
	return de.Kind.ExitCode()
}
