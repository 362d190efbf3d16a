// SPDX-License-Identifier: MIT

// Command segtree answers point-update / range-sum queries.
//
// Input: N Q, then N integers, then Q lines "1 i v" (set a[i] = v) or
// "2 l r" (print a[l] + … + a[r]); positions are 1-based.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/segtree"
)

const (
	opUpdate = 1
	opQuery  = 2
)

var errBadOp = errors.New("segtree: unknown operation")

func main() { cli.Main("segtree", run) }

func run(ctx context.Context, in *cli.Reader, out *bufio.Writer, log *slog.Logger) error {
	n, err := in.Int()
	if err != nil {
		return fmt.Errorf("read N: %w", err)
	}
	q, err := in.Int()
	if err != nil {
		return fmt.Errorf("read Q: %w", err)
	}
	if n < 0 || q < 0 {
		return fmt.Errorf("%w: N=%d Q=%d", cli.ErrBadToken, n, q)
	}

	values := make([]int64, n)
	for i := range values {
		if values[i], err = in.Int64(); err != nil {
			return fmt.Errorf("read a[%d]: %w", i+1, err)
		}
	}
	tree := segtree.New(values, segtree.WithOneBased())
	log.DebugContext(ctx, "tree built", slog.Int("n", n), slog.Int("q", q))

	var line []byte
	for k := 1; k <= q; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		op, err := in.Int()
		if err != nil {
			return fmt.Errorf("op %d: %w", k, err)
		}
		switch op {
		case opUpdate:
			i, err := in.Int()
			if err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
			v, err := in.Int64()
			if err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
			if err := tree.Update(i, v); err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
		case opQuery:
			l, err := in.Int()
			if err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
			r, err := in.Int()
			if err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
			sum, err := tree.Query(l, r)
			if err != nil {
				return fmt.Errorf("op %d: %w", k, err)
			}
			line = strconv.AppendInt(line[:0], sum, 10)
			line = append(line, '\n')
			if _, err := out.Write(line); err != nil {
				return err
			}
		default:
			return fmt.Errorf("op %d: %w: %d", k, errBadOp, op)
		}
	}

	return nil
}
