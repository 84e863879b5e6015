package clean

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/foxdog-studios/ddpclean/internal/config"
)

// Options select what a run removes.
type Options struct {
	// Root is the absolute project root all targets are resolved against.
	Root string

	// Deep also removes the local virtual environment.
	Deep bool

	// DryRun sizes and reports targets without deleting anything.
	DryRun bool
}

// Removal describes one path a run removed (or, under DryRun, would remove).
type Removal struct {
	Path        string
	Description string
	Size        int64
}

// Result summarizes a completed run.
type Result struct {
	Removed    []Removal
	TotalBytes int64
}

func (r *Result) add(rm Removal) {
	r.Removed = append(r.Removed, rm)
	r.TotalBytes += rm.Size
}

// ─── Cleanup Sequence ────────────────────────────────────────────────────────

// Run executes the cleanup sequence against opts.Root: fixed artifact
// targets, then the compiled-cache sweep, then (with Deep) the virtual
// environment. Missing targets are never an error; the first real deletion
// or traversal failure aborts the whole run so a partial cleanup is never
// reported as success.
func Run(opts Options) (*Result, error) {
	res := &Result{}

	for _, t := range config.ArtifactTargets() {
		if err := removeTarget(opts, t, res); err != nil {
			return nil, err
		}
	}

	for _, sub := range config.CacheRoots() {
		if err := sweepCacheFiles(opts, filepath.Join(opts.Root, sub), res); err != nil {
			return nil, err
		}
	}

	if opts.Deep {
		if err := removeTarget(opts, config.VenvTarget(), res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// removeTarget forcibly removes one fixed target, file or directory.
// Absence is success: the postcondition (path gone) already holds.
func removeTarget(opts Options, t config.Target, res *Result) error {
	path := filepath.Join(opts.Root, t.Path)

	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("target already absent")
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	size := sizeOf(path, info)
	if !opts.DryRun {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}

	log.Debug().
		Str("path", path).
		Int64("bytes", size).
		Bool("dry_run", opts.DryRun).
		Msg("removed target")

	res.add(Removal{Path: path, Description: t.Description, Size: size})
	return nil
}

// sweepCacheFiles removes every compiled cache file found recursively under
// root. A missing subtree yields no matches and no error.
func sweepCacheFiles(opts Options, root string, res *Result) error {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", root).Msg("cache subtree absent")
			return nil
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != config.CacheExt {
			return nil
		}

		// Sizing is reporting only; a failed stat must not fail the sweep.
		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		if !opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}

		log.Debug().
			Str("path", path).
			Int64("bytes", size).
			Bool("dry_run", opts.DryRun).
			Msg("removed cache file")

		res.add(Removal{Path: path, Description: "compiled cache file", Size: size})
		return nil
	})
	if err != nil {
		return fmt.Errorf("sweep %s: %w", root, err)
	}
	return nil
}
