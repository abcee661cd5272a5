package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/vitex/cmd/vitex"
)

// With a directory argument one page per command is written there,
// otherwise the root page goes to stdout.
func main() {
	rootCmd := vitex.NewRootCmd()
	header := vitex.ManHeader()

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
