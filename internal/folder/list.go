package folder

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/idelchi/folderstat/internal/log"
)

// Stat builds the Entry for a single path. Symbolic links are resolved;
// a dangling link is described by the link itself.
// Directories get no recursive size or count here.
func Stat(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		linkInfo, lerr := os.Lstat(path)
		if lerr != nil {
			return Entry{}, &AccessError{Path: path, Err: err}
		}

		info = linkInfo
	}

	entry := Entry{
		Name:     filepath.Base(path),
		Path:     path,
		IsDir:    info.IsDir(),
		Created:  createdAt(path, info),
		Modified: info.ModTime(),
	}

	if !entry.IsDir {
		entry.Size = info.Size()
	}

	return entry, nil
}

// ListImmediateEntries returns one Entry per direct child of path.
//
// Directory children carry their recursive size and entry count; files carry
// their own byte length and no count. Children that cannot be read are logged
// and skipped. The result is ordered files first, then directories, each by
// ascending size.
func ListImmediateEntries(ctx context.Context, path string, opts Options) ([]Entry, error) {
	if err := RequireDir(path); err != nil {
		return nil, err
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", path, &AccessError{Path: path, Err: err})
	}

	logger := log.Component("folder")
	entries := make([]Entry, 0, len(children))

	for _, child := range children {
		childPath := filepath.Join(path, child.Name())

		entry, err := Stat(childPath)
		if err != nil {
			logger.Debug("skipping unreadable entry", "path", childPath, "error", err)

			continue
		}

		if entry.IsDir {
			summary, err := Summarize(ctx, childPath, opts)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}

				logger.Debug("skipping unreadable directory", "path", childPath, "error", err)

				continue
			}

			count := summary.FileCount
			entry.Size = summary.TotalSize
			entry.FileCount = &count
		}

		entries = append(entries, entry)
	}

	SortEntries(entries)

	return entries, nil
}

// SortEntries orders entries files first, then directories, each by ascending size.
// Equal keys keep their relative order.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return 1
			}

			return -1
		}

		return cmp.Compare(a.Size, b.Size)
	})
}
