// SPDX-License-Identifier: MIT

// Command kmp lists every (possibly overlapping) occurrence of a pattern
// in a text.
//
// Input: the text on line 1, the pattern on line 2. Output: the match
// count, then the 0-based start positions separated by spaces (an empty
// line when there are none). An empty pattern matches nothing.
package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/classics/internal/cli"
	"github.com/katalvlaran/classics/kmp"
)

func main() { cli.Main("kmp", run) }

func run(ctx context.Context, in *cli.Reader, out *bufio.Writer, log *slog.Logger) error {
	text, err := readLine(in)
	if err != nil {
		return err
	}
	pattern, err := readLine(in)
	if err != nil {
		return err
	}

	var matches []int
	m, err := kmp.Compile([]byte(pattern))
	switch {
	case errors.Is(err, kmp.ErrEmptyPattern):
		log.WarnContext(ctx, "empty pattern")
	case err != nil:
		return err
	default:
		matches = m.FindAll([]byte(text))
	}
	log.DebugContext(ctx, "scan finished",
		slog.Int("text", len(text)), slog.Int("pattern", len(pattern)), slog.Int("matches", len(matches)))

	buf := strconv.AppendInt(nil, int64(len(matches)), 10)
	buf = append(buf, '\n')
	for i, pos := range matches {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(pos), 10)
	}
	buf = append(buf, '\n')
	_, err = out.Write(buf)

	return err
}

// readLine treats a missing line as empty.
func readLine(in *cli.Reader) (string, error) {
	s, err := in.Line()
	if errors.Is(err, io.EOF) {
		return "", nil
	}

	return s, err
}
