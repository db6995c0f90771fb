package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/folderstat/internal/generate"
)

func createCommand(g *globals) *cobra.Command {
	var (
		opts   generate.Options
		naming string
	)

	cmd := &cobra.Command{
		Use:   "create <dir>",
		Short: "Generate dummy test files",
		Long: heredoc.Doc(`
			Write dummy files into a directory, creating it if needed.

			With the default 'letter' naming every file is named after one random
			lowercase letter, so collisions overwrite and fewer files may remain.
			Use '--naming uuid' for unique names and '--seed' for repeatable runs.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Naming = generate.Naming(naming)

			paths, err := generate.Files(args[0], opts)
			if err != nil {
				return err
			}

			if g.output == OutputJSON {
				return PrintJSON(paths, cmd.OutOrStdout())
			}

			for _, p := range paths {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", generate.DefaultCount, "Number of files to write")
	cmd.Flags().StringSliceVarP(&opts.Extensions, "ext", "x", generate.DefaultExtensions, "Extensions to draw from")
	cmd.Flags().StringVar(&opts.Content, "content", generate.DefaultContent, "Content of every file")
	cmd.Flags().StringVar(&naming, "naming", string(generate.NamingLetter), "File naming: letter or uuid")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed (0 = time based)")

	return cmd
}
