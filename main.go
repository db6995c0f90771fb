// Command folderstat inspects, compares and tidies directories.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/folderstat/internal/cli"
)

// Set by the build process via ldflags.
//
//nolint:gochecknoglobals // Build-time variable
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
