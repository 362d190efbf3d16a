// SPDX-License-Identifier: MIT

// Command dijkstra prints the shortest distance from vertex 1 to vertex N
// of a directed graph with non-negative weights, or -1 if N is unreachable.
//
// Input: N M, then M lines "u v w" with 1-based vertices.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/classics/dijkstra"
	"github.com/katalvlaran/classics/internal/cli"
)

func main() { cli.Main("dijkstra", run) }

func run(ctx context.Context, in *cli.Reader, out *bufio.Writer, log *slog.Logger) error {
	n, err := in.Int()
	if err != nil {
		return fmt.Errorf("read N: %w", err)
	}
	m, err := in.Int()
	if err != nil {
		return fmt.Errorf("read M: %w", err)
	}
	if n <= 0 || m < 0 {
		return fmt.Errorf("%w: N=%d M=%d", cli.ErrBadToken, n, m)
	}

	g := dijkstra.NewGraph(n)
	for k := 1; k <= m; k++ {
		u, err := in.Int()
		if err != nil {
			return fmt.Errorf("edge %d: %w", k, err)
		}
		v, err := in.Int()
		if err != nil {
			return fmt.Errorf("edge %d: %w", k, err)
		}
		w, err := in.Int64()
		if err != nil {
			return fmt.Errorf("edge %d: %w", k, err)
		}
		if err := g.AddEdge(u-1, v-1, w); err != nil {
			return fmt.Errorf("edge %d: %w", k, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.WithTarget(n-1))
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "search finished",
		slog.Int("vertices", g.Vertices()), slog.Int("edges", g.Edges()),
		slog.Bool("reachable", res.Reachable(n-1)))

	answer := int64(-1)
	if res.Reachable(n - 1) {
		answer = res.Dist[n-1]
	}
	_, err = out.WriteString(strconv.FormatInt(answer, 10) + "\n")

	return err
}
