// SPDX-License-Identifier: MIT

// Package cli holds the plumbing shared by the stdin→stdout programs
// under cmd/: flag and environment configuration (pflag + viper), the
// structured logger (slog, optionally rotated by lumberjack), a
// whitespace token reader and the Run wrapper that ties them together.
//
// Results are written to stdout only; diagnostics go to the logger.
package cli
