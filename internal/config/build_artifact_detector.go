// Build artifact detection from language-adjacent configuration files:
// folds generated-output directories into the walk's exclusion globs so the
// detector never reports clones inside build output.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// BuildArtifactDetector finds language-specific build output directories.
type BuildArtifactDetector struct {
	projectRoot string
}

// NewBuildArtifactDetector creates a new build artifact detector.
func NewBuildArtifactDetector(projectRoot string) *BuildArtifactDetector {
	return &BuildArtifactDetector{projectRoot: projectRoot}
}

// defaultExclusions are generated-output directories common enough across
// all six supported languages that they are always excluded, independent
// of whether a manifest confirms them.
var defaultExclusions = []string{
	"**/.git/**",
	"**/build/**",
	"**/target/**",
	"**/bin/**",
	"**/obj/**",
	"**/__pycache__/**",
	"**/node_modules/**",
}

// DetectOutputDirectories scans for build configuration files and extracts
// additional output directories beyond the language-agnostic defaults.
// Returns doublestar glob patterns to exclude (e.g. "**/dist/**").
func (bad *BuildArtifactDetector) DetectOutputDirectories() []string {
	patterns := append([]string{}, defaultExclusions...)
	patterns = append(patterns, bad.detectRustOutputs()...)
	patterns = append(patterns, bad.detectPythonOutputs()...)
	patterns = append(patterns, bad.detectNodeOutputs()...)
	return patterns
}

// detectRustOutputs finds a custom Cargo.toml release target directory.
// Not one of the six supported clone-detection languages, but a
// polyglot repo scanning C/C++ alongside a Rust workspace still benefits
// from excluding its build output.
func (bad *BuildArtifactDetector) detectRustOutputs() []string {
	var patterns []string
	cargoTOML := filepath.Join(bad.projectRoot, "Cargo.toml")
	data, err := os.ReadFile(cargoTOML)
	if err != nil {
		return nil
	}
	var cargo map[string]any
	if toml.Unmarshal(data, &cargo) != nil {
		return nil
	}
	if profile, ok := cargo["profile"].(map[string]any); ok {
		if release, ok := profile["release"].(map[string]any); ok {
			if targetDir, ok := release["target-dir"].(string); ok {
				patterns = append(patterns, "**/"+targetDir+"/**")
			}
		}
	}
	return patterns
}

// detectPythonOutputs finds a custom Poetry build target directory.
func (bad *BuildArtifactDetector) detectPythonOutputs() []string {
	var patterns []string
	pyprojectTOML := filepath.Join(bad.projectRoot, "pyproject.toml")
	data, err := os.ReadFile(pyprojectTOML)
	if err != nil {
		return nil
	}
	var pyproject map[string]any
	if toml.Unmarshal(data, &pyproject) != nil {
		return nil
	}
	if tool, ok := pyproject["tool"].(map[string]any); ok {
		if poetry, ok := tool["poetry"].(map[string]any); ok {
			if build, ok := poetry["build"].(map[string]any); ok {
				if targetDir, ok := build["target-dir"].(string); ok {
					patterns = append(patterns, "**/"+targetDir+"/**")
				}
			}
		}
	}
	return patterns
}

// detectNodeOutputs finds a custom Electron-builder/webpack output
// directory declared in package.json. Complements node_modules already
// being in defaultExclusions: a polyglot repo scanning a C# or C++
// codebase alongside an Electron front end also generates a
// package.json-declared outDir (e.g. "dist") that the language-agnostic
// defaults don't name.
func (bad *BuildArtifactDetector) detectNodeOutputs() []string {
	var patterns []string
	packageJSON := filepath.Join(bad.projectRoot, "package.json")
	data, err := os.ReadFile(packageJSON)
	if err != nil {
		return nil
	}
	var pkg map[string]any
	if json.Unmarshal(data, &pkg) != nil {
		return nil
	}
	if buildConfig, ok := pkg["build"].(map[string]any); ok {
		if outDir, ok := buildConfig["outDir"].(string); ok {
			patterns = append(patterns, "**/"+outDir+"/**")
		}
	}
	return patterns
}
