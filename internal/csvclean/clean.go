// Package csvclean strips unwanted symbols from every field of a CSV file.
package csvclean

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/folderstat/internal/log"
)

// ErrInputNotFound is returned when the input file does not exist or is a directory.
var ErrInputNotFound = errors.New("input file not found")

// DefaultSymbols are removed when no symbols are configured.
const DefaultSymbols = "()+&*"

// OutputSuffix is appended to the input stem to name the cleaned file.
const OutputSuffix = "_cleaned.csv"

// Options configures cleaning.
type Options struct {
	// Comma is the field delimiter for input and output (0 = ';').
	Comma rune
	// Symbols lists every character to remove (empty = DefaultSymbols).
	Symbols string
}

// Strip removes every rune of symbols from field.
func Strip(field, symbols string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(symbols, r) {
			return -1
		}

		return r
	}, field)
}

// OutputPath returns the path the cleaned copy of input is written to.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + OutputSuffix
}

// File writes a cleaned copy of input next to it and returns the output path.
func File(input string, opts Options) (string, error) {
	if opts.Comma == 0 {
		opts.Comma = ';'
	}

	if opts.Symbols == "" {
		opts.Symbols = DefaultSymbols
	}

	info, err := os.Stat(input)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrInputNotFound, input)
	case err != nil:
		return "", fmt.Errorf("accessing %q: %w", input, err)
	case info.IsDir():
		return "", fmt.Errorf("%w: %q is a directory", ErrInputNotFound, input)
	}

	in, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = in.Close() }()

	output := OutputPath(input)

	out, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("creating output: %w", err)
	}

	rows, err := clean(in, out, opts)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}

	if err != nil {
		return "", err
	}

	log.Component("csvclean").Info("cleaned csv", "input", input, "output", output, "rows", rows)

	return output, nil
}

// clean copies records from r to w with symbols stripped and returns the row count.
func clean(r io.Reader, w io.Writer, opts Options) (int, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	writer := csv.NewWriter(w)
	writer.Comma = opts.Comma

	rows := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return rows, fmt.Errorf("reading csv: %w", err)
		}

		for i, field := range record {
			record[i] = Strip(field, opts.Symbols)
		}

		if err := writer.Write(record); err != nil {
			return rows, fmt.Errorf("writing csv: %w", err)
		}

		rows++
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return rows, fmt.Errorf("writing csv: %w", err)
	}

	return rows, nil
}
