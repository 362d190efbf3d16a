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
	cases := map[string]string{
		"0":    "0\n",
		"1":    "1\n",
		"10":   "55\n",
		"50":   "586268941\n",
		"1000": "517691607\n",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := cli.Run(context.Background(), "fibonacci", nil, strings.NewReader(in+"\n"), &stdout, &stderr, run)
			assert.Equal(t, cli.ExitOK, code)
			assert.Equal(t, want, stdout.String())
		})
	}
}

func TestRun_Rejects(t *testing.T) {
	for _, in := range []string{"", "-1", "abc"} {
		var stdout, stderr bytes.Buffer
		code := cli.Run(context.Background(), "fibonacci", nil, strings.NewReader(in), &stdout, &stderr, run)
		assert.Equal(t, cli.ExitError, code, "input %q", in)
		assert.Empty(t, stdout.String())
	}
}
