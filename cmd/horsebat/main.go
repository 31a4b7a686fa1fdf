package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code. Nothing is written
// to stdout unless a password (or version/help text) is produced.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 1
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		fmt.Fprintln(stderr, renderError(err, shouldColorize(stderr)))
		return 1
	}
	return 0
}
