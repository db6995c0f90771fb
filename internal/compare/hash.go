package compare

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/idelchi/folderstat/internal/folder"
)

// Digest streams the file at path through xxHash64 and returns the sum.
func Digest(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, fmt.Errorf("reading %q: %w", path, err)
	}

	return d.Sum64(), nil
}

// differing returns the common names whose two sides are not the same:
// a type mismatch, a size mismatch, or (for files) a content hash mismatch.
func differing(ctx context.Context, common []string, a, b map[string]folder.Entry) ([]string, error) {
	var out []string

	for _, name := range common {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ea, eb := a[name], b[name]

		same, err := sameEntry(ea, eb)
		if err != nil {
			return nil, err
		}

		if !same {
			out = append(out, name)
		}
	}

	return out, nil
}

func sameEntry(a, b folder.Entry) (bool, error) {
	if a.IsDir != b.IsDir || a.Size != b.Size {
		return false, nil
	}

	if a.IsDir {
		return true, nil
	}

	// Equal sizes of zero need no read.
	if a.Size == 0 {
		return true, nil
	}

	sumA, err := Digest(a.Path)
	if err != nil {
		return false, fmt.Errorf("comparing %q: %w", a.Name, err)
	}

	sumB, err := Digest(b.Path)
	if err != nil {
		return false, fmt.Errorf("comparing %q: %w", b.Name, err)
	}

	return sumA == sumB, nil
}
