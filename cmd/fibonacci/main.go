// SPDX-License-Identifier: MIT

// Command fibonacci prints F(n) mod 10⁹+7 for 0 ≤ n < 2⁶⁴.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/matrix"
)

func main() { cli.Main("fibonacci", run) }

func run(ctx context.Context, in *cli.Reader, out *bufio.Writer, log *slog.Logger) error {
	n, err := in.Uint64()
	if err != nil {
		return fmt.Errorf("read n: %w", err)
	}
	f := matrix.Fibonacci(n)
	log.DebugContext(ctx, "fibonacci", slog.Uint64("n", n))
	_, err = out.WriteString(strconv.FormatInt(f, 10) + "\n")

	return err
}
