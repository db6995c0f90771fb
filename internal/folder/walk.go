package folder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/folderstat/internal/log"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// visitFunc receives every readable entry below the walk root.
type visitFunc func(path string, info fs.FileInfo)

// Summarize walks path recursively and returns its total size and entry count.
func Summarize(ctx context.Context, path string, opts Options) (*Summary, error) {
	if err := RequireDir(path); err != nil {
		return nil, err
	}

	root, err := resolveRoot(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}

	c := &collector{}

	if err := walk(ctx, root, opts, c, nil); err != nil {
		return nil, err
	}

	files, bytes := c.snapshot()

	return &Summary{
		Path:      path,
		TotalSize: bytes,
		FileCount: files,
		Errors:    c.skipped(),
		Created:   createdTime(info),
	}, nil
}

// TotalSize returns the byte sum of every regular file below path, at any depth.
func TotalSize(ctx context.Context, path string, opts Options) (int64, error) {
	s, err := Summarize(ctx, path, opts)
	if err != nil {
		return 0, err
	}

	return s.TotalSize, nil
}

// FileCount returns the number of entries below path, at any depth.
//
// Directories are counted as well as files: a tree holding x.txt, y.txt and
// sub/z.txt has a count of 4. This matches the long-standing "Num Files"
// column and is kept on purpose.
func FileCount(ctx context.Context, path string, opts Options) (int64, error) {
	s, err := Summarize(ctx, path, opts)
	if err != nil {
		return 0, err
	}

	return s.FileCount, nil
}

// resolveRoot cleans path and resolves it when the root itself is a symbolic link,
// so that a linked directory is walked like the directory it points to.
func resolveRoot(path string) (string, error) {
	root := filepath.Clean(path)

	info, err := os.Lstat(root)
	if err != nil {
		return "", &AccessError{Path: path, Err: err}
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", &AccessError{Path: path, Err: err}
	}

	return resolved, nil
}

// dirEntryInfo reads the metadata of a walked entry without following links.
//
//nolint:gochecknoglobals // Replaced in tests to simulate entries vanishing mid-walk
var dirEntryInfo = func(d fs.DirEntry) (fs.FileInfo, error) {
	return d.Info()
}

// entryInfo returns the metadata of a walked entry, resolving links when following them.
func entryInfo(path string, d fs.DirEntry, follow bool) (fs.FileInfo, error) {
	if follow && d.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}

	return dirEntryInfo(d)
}

// walk visits every entry below root, feeding sizes and counts to c.
// Unreadable entries are logged and counted, never fatal. When following
// links, a directory reached a second time is counted as an entry but not
// descended into again. The walk stops early only when ctx is cancelled.
func walk(ctx context.Context, root string, opts Options, c *collector, visit visitFunc) error {
	logger := log.Component("folder")

	stop := startProgressReporter(c, opts.ProgressHook, opts.ProgressInterval)
	defer stop()

	if opts.Follow {
		if info, err := os.Stat(root); err == nil {
			if id, ok := identify(root, info); ok {
				c.claimDir(id)
			}
		}
	}

	conf := &fastwalk.Config{
		Follow: opts.Follow,
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("skipping unreadable entry", "path", path, "error", err)
			c.addError()

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root {
			return nil
		}

		info, err := entryInfo(path, d, opts.Follow)
		if err != nil {
			logger.Debug("skipping entry without metadata", "error", &AccessError{Path: path, Err: err})
			c.addError()

			return nil
		}

		var size int64
		if info.Mode().IsRegular() {
			size = info.Size()
		}

		c.addEntry(size)

		if opts.Follow && info.IsDir() {
			if id, ok := identify(path, info); ok && !c.claimDir(id) {
				logger.Debug("skipping directory already visited",
					"error", &AccessError{Path: path, Err: errAlreadyVisited})
				c.addError()

				return filepath.SkipDir
			}
		}

		if visit != nil {
			visit(path, info)
		}

		logger.Log(ctx, log.LevelTrace, "visited", "path", path, "size", size)

		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %q: %w", root, err)
	}

	return nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until the
// returned stop function is called. stop waits for the reporter to exit, so
// no hook call happens after it returns.
func startProgressReporter(c *collector, hook func(int64, int64), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-quit:
				return
			}
		}
	}()

	return func() {
		close(quit)
		<-finished
	}
}
