package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mortea15/juicer/logger"
	"github.com/mortea15/juicer/types"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, defaultDependencies())
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, deps dependencies) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, deps: deps}
	cmd := a.command()
	if len(args) == 0 {
		_ = cmd.Usage()
		return exitUsage
	}

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	if !a.logged {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, types.ErrInput),
		errors.Is(err, types.ErrArgument),
		errors.Is(err, types.ErrResourceUnavailable),
		errors.Is(err, types.ErrExternalToolUnavailable):
		return exitUsage
	default:
		return exitError
	}
}
