package folder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound is returned when a path does not exist or is not a directory
// where a directory was required.
var ErrNotFound = errors.New("directory not found")

// errAlreadyVisited marks a followed link leading to a directory the walk has already covered.
var errAlreadyVisited = errors.New("directory already visited")

// AccessError describes an entry below a traversed root that could not be read.
// Walks skip such entries and continue.
type AccessError struct {
	// Path is the entry that could not be read.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("accessing %q: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// RequireDir validates that path exists and is a directory.
// Missing paths and non-directories wrap ErrNotFound; any other stat failure
// is reported as an *AccessError.
func RequireDir(path string) error {
	info, err := os.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q", ErrNotFound, path)
	case err != nil:
		return &AccessError{Path: path, Err: err}
	case !info.IsDir():
		return fmt.Errorf("%w: %q is not a directory", ErrNotFound, path)
	}

	return nil
}
