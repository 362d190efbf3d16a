// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Func is a driver body: read the problem from in, write answers to out.
type Func func(ctx context.Context, in *Reader, out *bufio.Writer, log *slog.Logger) error

// Main runs fn against the process's stdio and exits with Run's code.
func Main(name string, fn Func) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, name, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, fn)
	stop()
	os.Exit(code)
}

// Run resolves configuration, builds the logger, executes fn with a
// buffered stdout and maps the outcome to an exit code. Output written
// before a failure is still flushed.
func Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer, fn Func) int {
	cfg, err := LoadConfig(name, args)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)

		return ExitUsage
	}

	log, closer, err := NewLogger(name, cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)

		return ExitUsage
	}
	defer closer.Close()

	out := bufio.NewWriterSize(stdout, readerSize)
	runErr := fn(ctx, NewReader(stdin), out, log)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush stdout: %w", err)
	}
	if runErr != nil {
		log.ErrorContext(ctx, "run failed", slog.Any("error", runErr))

		return ExitError
	}
	log.DebugContext(ctx, "done")

	return ExitOK
}
