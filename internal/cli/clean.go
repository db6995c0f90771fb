package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/folderstat/internal/csvclean"
)

func cleanCommand(g *globals) *cobra.Command {
	var (
		delimiter string
		symbols   string
	)

	cmd := &cobra.Command{
		Use:   "clean-csv <file>",
		Short: "Strip symbols from every field of a CSV file",
		Long: heredoc.Doc(`
			Remove the characters given by --symbols from every field of a CSV file
			and write the result next to it as '<name>_cleaned.csv'.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comma, size := utf8.DecodeRuneInString(delimiter)
			if size == 0 || size != len(delimiter) {
				return errors.New("delimiter must be a single character")
			}

			output, err := csvclean.File(args[0], csvclean.Options{Comma: comma, Symbols: symbols})
			if err != nil {
				return err
			}

			if g.output == OutputJSON {
				return PrintJSON(map[string]string{"input": args[0], "output": output}, cmd.OutOrStdout())
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %s into %s\n", args[0], output)

			return err
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ";", "Field delimiter")
	cmd.Flags().StringVar(&symbols, "symbols", csvclean.DefaultSymbols, "Characters to remove")

	return cmd
}
