// Package generate writes dummy files for exercising the other commands.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/idelchi/folderstat/internal/log"
)

// Naming selects how generated files are named.
type Naming string

const (
	// NamingLetter names each file after a single random lowercase letter.
	// Names collide and later files overwrite earlier ones.
	NamingLetter Naming = "letter"
	// NamingUUID gives every file a unique random UUID name.
	NamingUUID Naming = "uuid"
)

// Defaults.
const (
	DefaultCount   = 20
	DefaultContent = "This is a test file."
)

// DefaultExtensions are the extensions drawn from when none are given.
//
//nolint:gochecknoglobals // Config constant
var DefaultExtensions = []string{".txt", ".py", ".md"}

// Options configures file generation.
type Options struct {
	// Count is the number of files to write (0 = DefaultCount).
	Count int
	// Extensions are drawn at random for every file.
	Extensions []string
	// Content is written to every file.
	Content string
	// Naming selects the name strategy (empty = NamingLetter).
	Naming Naming
	// Seed makes runs reproducible (0 = time based).
	Seed uint64
}

// Files writes dummy files into dir, creating it if needed, and returns the
// distinct paths written, sorted.
func Files(dir string, opts Options) ([]string, error) {
	if opts.Count < 0 {
		return nil, errors.New("count cannot be negative")
	}

	if opts.Count == 0 {
		opts.Count = DefaultCount
	}

	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}

	if opts.Content == "" {
		opts.Content = DefaultContent
	}

	if opts.Naming == "" {
		opts.Naming = NamingLetter
	}

	if opts.Naming != NamingLetter && opts.Naming != NamingUUID {
		return nil, fmt.Errorf("invalid naming %q: must be %q or %q", opts.Naming, NamingLetter, NamingUUID)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // Seed only
	}

	rng := rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // Test data, not security sensitive

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %q: %w", dir, err)
	}

	logger := log.Component("generate")
	written := make(map[string]struct{}, opts.Count)

	for range opts.Count {
		name := randomName(rng, opts.Naming) + opts.Extensions[rng.IntN(len(opts.Extensions))]
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, []byte(opts.Content), 0o644); err != nil { //nolint:gosec // Readable test files
			return nil, fmt.Errorf("writing %q: %w", path, err)
		}

		logger.Debug("wrote file", "path", path)

		written[path] = struct{}{}
	}

	paths := make([]string, 0, len(written))
	for p := range written {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths, nil
}

func randomName(rng *rand.Rand, naming Naming) string {
	if naming == NamingUUID {
		var b [16]byte
		for i := range b {
			b[i] = byte(rng.UintN(256))
		}

		id, _ := uuid.NewRandomFromReader(bytes.NewReader(b[:]))

		return id.String()
	}

	return string(rune('a' + rng.IntN(26)))
}
