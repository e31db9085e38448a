// Command ordsort sorts typed values read from a file or stdin, or prints the
// least or greatest of them.
//
//	ordsort [sort|min|max] [FILE] [--kind KIND] [--desc] [--by-length] [--format lines|yaml]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/amp-ordering/cli"
	"github.com/amp-labs/amp-ordering/logger"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	a := &app{
		log:        logger.ConfigureLogging(ctx, "ordsort"),
		isTerminal: stdinIsTerminal,
		selectKind: cli.Select,
	}

	root, err := newRootCommand(ctx, a)
	if err == nil {
		err = root.ExecuteContext(ctx)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "ordsort:", err) //nolint:errcheck

		os.Exit(1)
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
