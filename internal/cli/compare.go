package cli

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/folderstat/internal/compare"
)

func compareCommand(g *globals) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Show the entries exclusive to each of two directories",
		Long: heredoc.Doc(`
			Compare the immediate entries of two directories by name.

			An entry is common when both directories hold an entry of that name,
			whatever its type or content. With '--mode content', common entries
			are additionally checked for type, size and xxHash64 content changes.
		`),
		Args: cobra.ExactArgs(2), //nolint:mnd // Two directories
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := compare.ParseMode(mode)
			if err != nil {
				return err
			}

			walk, done := walkOptions(g)
			result, err := compare.Compare(cmd.Context(), args[0], args[1], compare.Options{Mode: m, Walk: walk})

			done()

			if err != nil {
				return err
			}

			return emit(g, cmd.OutOrStdout(), result,
				func(w io.Writer) error { return PrintComparison(result, w) },
				func(w io.Writer) error { return PrintComparisonTSV(result, w) },
			)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(compare.ModeName), "Comparison mode: name or content")

	return cmd
}
