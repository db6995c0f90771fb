package cli

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/folderstat/internal/folder"
	"github.com/idelchi/folderstat/internal/log"
)

func listCommand(g *globals) *cobra.Command {
	var showDisk bool

	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List the entries of a directory with size and dates",
		Long: heredoc.Doc(`
			List the immediate entries of a directory (default: current directory).

			Folders show their recursive size and the number of entries below them,
			folders included. Files are listed first, then folders, each by size.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathArg(args)

			opts, done := walkOptions(g)
			entries, err := folder.ListImmediateEntries(cmd.Context(), path, opts)

			done()

			if err != nil {
				return err
			}

			view := ListingView{Path: path, Entries: entries}

			if showDisk {
				disk, err := folder.DiskUsage(path)
				if err != nil {
					log.Warn("disk usage unavailable", "path", path, "error", err)
				} else {
					view.Disk = disk
				}
			}

			return emit(g, cmd.OutOrStdout(), view,
				func(w io.Writer) error { return PrintEntries(view, w) },
				func(w io.Writer) error { return PrintEntriesTSV(entries, w) },
			)
		},
	}

	cmd.Flags().BoolVar(&showDisk, "disk", true, "Show free space of the volume holding the directory")

	return cmd
}
