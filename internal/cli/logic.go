package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/folderstat/internal/folder"
	"github.com/idelchi/folderstat/internal/log"
)

// walkOptions builds the folder walk options, with a progress line on stderr
// when stderr is a terminal, output is a table and debug output is off.
// The returned function clears the progress line and must be called once the
// walk is done.
func walkOptions(g *globals) (folder.Options, func()) {
	opts := folder.Options{Follow: g.follow}

	enableProgress := g.output == OutputTable &&
		g.verbosity < log.VerbosityDebug &&
		isatty.IsTerminal(os.Stderr.Fd())

	if !enableProgress {
		return opts, func() {}
	}

	// Hide cursor for in-place updates; restore on exit.
	fmt.Fprint(os.Stderr, "\033[?25l")

	opts.ProgressHook = func(files, bytes int64) {
		msg := fmt.Sprintf("Scanning… %d entries, %s",
			files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
		fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
	}

	return opts, func() {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
		fmt.Fprint(os.Stderr, "\033[?25h")
	}
}

// pathArg returns the first positional argument, or "." when none is given.
func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}

// emit writes v in the selected output format using the table/tsv printers given.
func emit(g *globals, w io.Writer, v any, table, tsv func(io.Writer) error) error {
	switch g.output {
	case OutputJSON:
		return PrintJSON(v, w)
	case OutputTSV:
		return tsv(w)
	default:
		return table(w)
	}
}
