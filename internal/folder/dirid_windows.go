//go:build windows

package folder

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// dirID identifies a directory by its fully resolved, case-folded path.
type dirID struct {
	Path string
}

// identify resolves path to the directory it finally points to.
func identify(path string, _ fs.FileInfo) (dirID, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return dirID{}, false
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return dirID{}, false
	}

	return dirID{Path: strings.ToLower(abs)}, true
}
