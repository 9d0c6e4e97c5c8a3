package planner

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// ListLocal recursively enumerates root, including directories. Exclusion
// patterns are deliberately not applied here; they filter entries while the
// sync maps are built, after the full walk. Any stat failure aborts the
// enumeration with no partial result.
func ListLocal(root string) ([]LocalFile, error) {
	var files []LocalFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		size := info.Size()
		if d.IsDir() {
			size = 0
		}

		files = append(files, LocalFile{
			Path:        path,
			RelPath:     relPath,
			IsDirectory: d.IsDir(),
			ModTime:     info.ModTime().UTC(),
			Size:        size,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}
