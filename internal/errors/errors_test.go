package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodeForKinds(t *testing.T) {
	require.Equal(t, 0, ExitCodeFor(nil))
	require.Equal(t, 1, ExitCodeFor(NewConfigError("op", errors.New("x"))))
	require.Equal(t, 2, ExitCodeFor(NewSourceError("op", errors.New("x"))))
	require.Equal(t, 3, ExitCodeFor(NewIOError("op", errors.New("x"))))
	require.Equal(t, 130, ExitCodeFor(NewInterrupted("op")))
}

func TestExitCodeForUnclassifiedErrorDefaultsToConfig(t *testing.T) {
	require.Equal(t, 1, ExitCodeFor(errors.New("plain")))
}

func TestWithFileChainsAndFormats(t *testing.T) {
	err := NewSourceError("walk tree", errors.New("permission denied")).WithFile("/src/a.go")
	require.Contains(t, err.Error(), "/src/a.go")
	require.Contains(t, err.Error(), "permission denied")
}

func TestErrorWithoutFile(t *testing.T) {
	err := NewConfigError("validate", errors.New("bad n"))
	require.NotContains(t, err.Error(), "for ")
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := NewIOError("write", cause)
	require.Equal(t, cause, errors.Unwrap(err))
}
