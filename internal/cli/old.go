package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/folderstat/internal/folder"
)

// now is the time source, replaceable in tests.
//
//nolint:gochecknoglobals // Test seam
var now = time.Now

func oldCommand(g *globals) *cobra.Command {
	var (
		years      int
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "old [path]",
		Short: "Find large files that have not been modified for years",
		Long: heredoc.Doc(`
			Walk a directory recursively (default: current directory) and list the
			files last modified more than --years ago that are at least --min-size,
			largest first.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if years < 0 {
				return errors.New("years cannot be negative")
			}

			minSize, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			current := now()
			cutoff := current.AddDate(-years, 0, 0)

			opts, done := walkOptions(g)
			entries, err := folder.FindLargeOld(cmd.Context(), pathArg(args), cutoff,
				int64(minSize), opts) //nolint:gosec // Size conversion from humanize is safe

			done()

			if err != nil {
				return err
			}

			return emit(g, cmd.OutOrStdout(), entries,
				func(w io.Writer) error { return PrintOld(entries, current, w) },
				func(w io.Writer) error { return PrintOldTSV(entries, w) },
			)
		},
	}

	cmd.Flags().IntVarP(&years, "years", "y", 1, "Minimum age in years since last modification")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "1MB", "Minimum file size (e.g., 200KB)")

	return cmd
}
