package folder

import (
	"cmp"
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// FindLargeOld returns every regular file below path that was last modified
// before olderThan and is at least minSize bytes, largest first.
func FindLargeOld(ctx context.Context, path string, olderThan time.Time, minSize int64, opts Options) ([]Entry, error) {
	if err := RequireDir(path); err != nil {
		return nil, err
	}

	root, err := resolveRoot(path)
	if err != nil {
		return nil, err
	}

	c := &collector{}

	err = walk(ctx, root, opts, c, func(p string, info fs.FileInfo) {
		if !info.Mode().IsRegular() || info.Size() < minSize || !info.ModTime().Before(olderThan) {
			return
		}

		c.addFile(Entry{
			Name:     info.Name(),
			Path:     displayPath(path, root, p),
			Size:     info.Size(),
			Created:  createdTime(info),
			Modified: info.ModTime(),
		})
	})
	if err != nil {
		return nil, err
	}

	files := c.files

	slices.SortFunc(files, func(a, b Entry) int {
		if n := cmp.Compare(b.Size, a.Size); n != 0 {
			return n
		}

		return strings.Compare(a.Path, b.Path)
	})

	return files, nil
}

// displayPath rewrites a walked path so it starts with the path the caller passed,
// even when the walk ran on a resolved link target.
func displayPath(path, root, walked string) string {
	rel, err := filepath.Rel(root, walked)
	if err != nil {
		return walked
	}

	return filepath.Join(path, rel)
}
