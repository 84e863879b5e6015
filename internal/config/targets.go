package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Target is one fixed cleanup entry, addressed relative to the project root.
type Target struct {
	// Name is the unique identifier for this target.
	Name string

	// Path is the location to remove, relative to the project root.
	Path string

	// Description is a human-readable description for the run summary.
	Description string
}

// ArtifactTargets returns the artifact paths removed by every run, in order.
// The list is fixed to the pyddp layout on purpose; this tool is not a
// general cleanup engine and the paths are not user-configurable.
func ArtifactTargets() []Target {
	return []Target{
		{
			Name:        "Coverage",
			Path:        ".coverage",
			Description: "coverage data",
		},
		{
			Name:        "Build",
			Path:        "build",
			Description: "build output",
		},
		{
			Name:        "Dist",
			Path:        "dist",
			Description: "distribution packages",
		},
		{
			Name:        "EggInfo",
			Path:        "pyddp.egg-info",
			Description: "packaging metadata",
		},
		{
			Name:        "DocsBuild",
			Path:        filepath.Join("docs", "build"),
			Description: "documentation build output",
		},
	}
}

// CacheRoots returns the subtrees swept recursively for compiled cache files.
func CacheRoots() []string {
	return []string{"ddp", "tests"}
}

// CacheExt is the extension of compiled cache files removed under CacheRoots.
const CacheExt = ".pyc"

// VenvTarget returns the local virtual environment, removed only on a deep clean.
func VenvTarget() Target {
	return Target{
		Name:        "Venv",
		Path:        filepath.Join("local", "venv"),
		Description: "local virtual environment",
	}
}

// ProjectRoot resolves the project root: the parent of the directory holding
// the running executable, with symlinks resolved. All targets are built as
// absolute paths against it, so the tool cleans the right tree no matter
// which directory it is invoked from.
func ProjectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	root := filepath.Dir(filepath.Dir(exe))
	if err := ValidateRoot(root); err != nil {
		return "", err
	}
	return root, nil
}

// ValidateRoot rejects roots no cleanup should ever run against.
func ValidateRoot(root string) error {
	if root == "" {
		return errors.New("project root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve project root %q: %w", root, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("refusing to clean filesystem root %q", abs)
	}
	return nil
}
