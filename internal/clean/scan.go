package clean

import (
	"io/fs"
	"path/filepath"
)

// sizeOf measures a target before removal so the run summary can report
// reclaimed bytes. Traversal errors are skipped rather than failed, since an
// unreadable entry is still about to be deleted.
func sizeOf(path string, info fs.FileInfo) int64 {
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}
