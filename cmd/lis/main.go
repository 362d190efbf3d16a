// SPDX-License-Identifier: MIT

// Command lis prints the length of the longest strictly increasing
// subsequence of N integers.
//
// Input: N, then N integers.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/lis"
)

func main() { cli.Main("lis", run) }

func run(ctx context.Context, in *cli.Reader, out *bufio.Writer, log *slog.Logger) error {
	n, err := in.Int()
	if err != nil {
		return fmt.Errorf("read N: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: N=%d", cli.ErrBadToken, n)
	}
	nums := make([]int64, n)
	for i := range nums {
		if nums[i], err = in.Int64(); err != nil {
			return fmt.Errorf("read a[%d]: %w", i+1, err)
		}
	}

	length := lis.Length(nums)
	log.DebugContext(ctx, "lis computed", slog.Int("n", n), slog.Int("length", length))
	_, err = out.WriteString(strconv.Itoa(length) + "\n")

	return err
}
