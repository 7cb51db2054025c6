package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectOutputDirectoriesIncludesDefaults(t *testing.T) {
	dir := t.TempDir()
	patterns := NewBuildArtifactDetector(dir).DetectOutputDirectories()
	require.Contains(t, patterns, "**/node_modules/**")
	require.Contains(t, patterns, "**/target/**")
}

func TestDetectRustOutputsFromCargoToml(t *testing.T) {
	dir := t.TempDir()
	content := "[profile.release]\ntarget-dir = \"dist/rust\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0o644))

	patterns := NewBuildArtifactDetector(dir).DetectOutputDirectories()
	require.Contains(t, patterns, "**/dist/rust/**")
}

func TestDetectPythonOutputsFromPyprojectToml(t *testing.T) {
	dir := t.TempDir()
	content := "[tool.poetry.build]\ntarget-dir = \"dist/py\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0o644))

	patterns := NewBuildArtifactDetector(dir).DetectOutputDirectories()
	require.Contains(t, patterns, "**/dist/py/**")
}

func TestDetectNodeOutputsFromPackageJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{"build": {"outDir": "dist/electron"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644))

	patterns := NewBuildArtifactDetector(dir).DetectOutputDirectories()
	require.Contains(t, patterns, "**/dist/electron/**")
}

func TestDetectOutputDirectoriesNoManifestsIsJustDefaults(t *testing.T) {
	dir := t.TempDir()
	patterns := NewBuildArtifactDetector(dir).DetectOutputDirectories()
	require.Equal(t, defaultExclusions, patterns)
}
