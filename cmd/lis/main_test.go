// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/classics/internal/cli"
)

func TestRun(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"classic":    {"8\n10 9 2 5 3 7 101 18\n", "4\n"},
		"empty":      {"0\n", "0\n"},
		"constant":   {"4\n7 7 7 7\n", "1\n"},
		"decreasing": {"5\n5 4 3 2 1\n", "1\n"},
		"negatives":  {"6\n-3 -2 -5 0 -1 4\n", "4\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := cli.Run(context.Background(), "lis", nil, strings.NewReader(tc.input), &stdout, &stderr, run)
			assert.Equal(t, cli.ExitOK, code)
			assert.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestRun_Truncated(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), "lis", nil, strings.NewReader("3\n1 2"), &stdout, &stderr, run)

	assert.Equal(t, cli.ExitError, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "read a[3]")
}
