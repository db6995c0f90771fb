package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/folderstat/internal/compare"
	"github.com/idelchi/folderstat/internal/folder"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// DateLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
	DateLayout = "2006-01-02 15:04:05"
)

// PrintJSON outputs v as indented JSON.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}

func numFiles(e folder.Entry) string {
	if e.FileCount == nil {
		return ""
	}

	return strconv.FormatInt(*e.FileCount, 10)
}

// ListingView is the JSON shape of the list command.
type ListingView struct {
	Path    string         `json:"path"`
	Entries []folder.Entry `json:"entries"`
	Disk    *folder.Disk   `json:"disk,omitempty"`
}

// PrintEntries outputs a directory listing as a table, with an optional disk footer.
//
//nolint:errcheck // Errors surface through Flush
func PrintEntries(view ListingView, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Name\tSize\tNum Files\tIs Folder\tCreated Date\tModified Date")

	for _, e := range view.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			folder.FormatSize(e.Size),
			numFiles(e),
			yesNo(e.IsDir),
			e.Created.Format(DateLayout),
			e.Modified.Format(DateLayout))
	}

	if view.Disk != nil {
		fmt.Fprintf(w, "\nFilesystem:\t%s free of %s (%.1f%% used, %s)\n",
			humanize.IBytes(view.Disk.Free), humanize.IBytes(view.Disk.Total),
			view.Disk.UsedPercent, view.Disk.Filesystem)
	}

	return w.Flush()
}

// PrintEntriesTSV outputs one tab-separated line per entry: name, bytes, count, is-dir.
// It is meant for scripts such as the shell integration.
//
//nolint:errcheck // Write errors are not actionable for scripted output
func PrintEntriesTSV(entries []folder.Entry, writer io.Writer) error {
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%d\t%s\t%t\n", e.Name, e.Size, numFiles(e), e.IsDir)
	}

	return nil
}

// PrintComparison outputs the common count and the two exclusion tables.
//
//nolint:errcheck // Errors surface through Flush
func PrintComparison(r *compare.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Compare:\n  %s\n  %s\n\n", r.PathA, r.PathB)
	fmt.Fprintf(w, "Number of common files: %d\n\n", len(r.CommonNames))

	exclusive := func(entries []folder.Entry, in, notIn string) {
		if len(entries) == 0 {
			fmt.Fprintf(w, "No files in %s but not in %s\n\n", in, notIn)

			return
		}

		fmt.Fprintf(w, "Files in %s but not in %s: %d\n", in, notIn, len(entries))
		fmt.Fprintln(w, "Name\tIsFolder\tSize\tCreated")

		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%t\t%s\t%s\n",
				e.Name, e.IsDir, folder.FormatSize(e.Size), e.Created.Format(DateLayout))
		}

		fmt.Fprintln(w)
	}

	exclusive(r.OnlyInFirst, r.PathA, r.PathB)
	exclusive(r.OnlyInSecond, r.PathB, r.PathA)

	if r.Mode == compare.ModeContent {
		fmt.Fprintf(w, "Common entries with different content: %d\n", len(r.Differing))

		for _, name := range r.Differing {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	return w.Flush()
}

// PrintComparisonTSV outputs one line per exclusive entry prefixed with '<' (first) or '>' (second),
// then one '!' line per differing common name.
//
//nolint:errcheck // Write errors are not actionable for scripted output
func PrintComparisonTSV(r *compare.Result, writer io.Writer) error {
	for _, e := range r.OnlyInFirst {
		fmt.Fprintf(writer, "<\t%s\t%t\t%d\n", e.Name, e.IsDir, e.Size)
	}

	for _, e := range r.OnlyInSecond {
		fmt.Fprintf(writer, ">\t%s\t%t\t%d\n", e.Name, e.IsDir, e.Size)
	}

	for _, name := range r.Differing {
		fmt.Fprintf(writer, "!\t%s\n", name)
	}

	return nil
}

// PrintOld outputs large old files with their age relative to now.
//
//nolint:errcheck // Errors surface through Flush
func PrintOld(entries []folder.Entry, now time.Time, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No matching files")

		return w.Flush()
	}

	fmt.Fprintln(w, "Path\tSize\tModified Date\tAge")

	var total int64

	for _, e := range entries {
		total += e.Size
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Path, folder.FormatSize(e.Size), e.Modified.Format(DateLayout),
			humanize.RelTime(e.Modified, now, "ago", "from now"))
	}

	fmt.Fprintf(w, "\nTotal:\t%d files, %s\n", len(entries), folder.FormatSize(total))

	return w.Flush()
}

// PrintOldTSV outputs path and size of each large old file.
//
//nolint:errcheck // Write errors are not actionable for scripted output
func PrintOldTSV(entries []folder.Entry, writer io.Writer) error {
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%d\n", e.Path, e.Size)
	}

	return nil
}
