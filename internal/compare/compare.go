package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/idelchi/folderstat/internal/folder"
	"github.com/idelchi/folderstat/internal/log"
)

// Mode selects how common names are examined.
type Mode string

const (
	// ModeName matches entries by name only.
	ModeName Mode = "name"
	// ModeContent matches by name, then flags common entries whose type, size or content hash differ.
	ModeContent Mode = "content"
)

// Modes lists the accepted comparison modes.
//
//nolint:gochecknoglobals // Constant list
var Modes = []Mode{ModeName, ModeContent}

// ParseMode validates a mode name. An empty string selects ModeName.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeName, nil
	}

	if !slices.Contains(Modes, Mode(s)) {
		return "", fmt.Errorf("invalid compare mode %q: must be one of %v", s, Modes)
	}

	return Mode(s), nil
}

// Options configures a comparison.
type Options struct {
	// Mode selects name-only or content comparison. Empty means ModeName.
	Mode Mode
	// Walk configures the recursive size walks of directory entries.
	Walk folder.Options
}

// Result is the outcome of comparing two directories.
type Result struct {
	// PathA is the first compared directory.
	PathA string `json:"path_a"`
	// PathB is the second compared directory.
	PathB string `json:"path_b"`
	// Mode is the comparison mode used.
	Mode Mode `json:"mode"`
	// CommonNames holds the names present in both directories, sorted.
	CommonNames []string `json:"common_names"`
	// OnlyInFirst holds the entries of PathA whose names are not common, in listing order.
	OnlyInFirst []folder.Entry `json:"only_in_first"`
	// OnlyInSecond holds the entries of PathB whose names are not common, in listing order.
	OnlyInSecond []folder.Entry `json:"only_in_second"`
	// Differing holds common names whose two sides differ. Only set in ModeContent.
	Differing []string `json:"differing,omitempty"`
}

// Compare lists the immediate children of pathA and pathB and partitions them
// into common names and the entries exclusive to each side.
func Compare(ctx context.Context, pathA, pathB string, opts Options) (*Result, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	for _, p := range []string{pathA, pathB} {
		if err := folder.RequireDir(p); err != nil {
			return nil, err
		}
	}

	entriesA, err := shallow(ctx, pathA, opts.Walk)
	if err != nil {
		return nil, err
	}

	entriesB, err := shallow(ctx, pathB, opts.Walk)
	if err != nil {
		return nil, err
	}

	byNameA := index(entriesA)
	byNameB := index(entriesB)

	result := &Result{
		PathA:        pathA,
		PathB:        pathB,
		Mode:         mode,
		CommonNames:  []string{},
		OnlyInFirst:  []folder.Entry{},
		OnlyInSecond: []folder.Entry{},
	}

	for name := range byNameA {
		if _, ok := byNameB[name]; ok {
			result.CommonNames = append(result.CommonNames, name)
		}
	}

	slices.Sort(result.CommonNames)

	for _, e := range entriesA {
		if _, ok := byNameB[e.Name]; !ok {
			result.OnlyInFirst = append(result.OnlyInFirst, e)
		}
	}

	for _, e := range entriesB {
		if _, ok := byNameA[e.Name]; !ok {
			result.OnlyInSecond = append(result.OnlyInSecond, e)
		}
	}

	if mode == ModeContent {
		result.Differing, err = differing(ctx, result.CommonNames, byNameA, byNameB)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// shallow lists the immediate children of path. Directories carry their
// recursive total size; unreadable children are logged and skipped.
func shallow(ctx context.Context, path string, opts folder.Options) ([]folder.Entry, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", path, &folder.AccessError{Path: path, Err: err})
	}

	logger := log.Component("compare")
	entries := make([]folder.Entry, 0, len(children))

	for _, child := range children {
		childPath := filepath.Join(path, child.Name())

		entry, err := folder.Stat(childPath)
		if err != nil {
			logger.Debug("skipping unreadable entry", "path", childPath, "error", err)

			continue
		}

		if entry.IsDir {
			size, err := folder.TotalSize(ctx, childPath, opts)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}

				logger.Debug("skipping unreadable directory", "path", childPath, "error", err)

				continue
			}

			entry.Size = size
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func index(entries []folder.Entry) map[string]folder.Entry {
	m := make(map[string]folder.Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}

	return m
}
