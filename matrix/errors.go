// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and operations return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ErrX)); callers match them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is non-positive or the
	// supplied rows are ragged / not square.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadModulus is returned when the modulus is ≤ 1 or too large for
	// the product of two residues to fit in an int64.
	ErrBadModulus = errors.New("matrix: invalid modulus")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different order or modulus.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadRecurrence indicates a recurrence whose coefficient and initial
	// term counts are zero or differ.
	ErrBadRecurrence = errors.New("matrix: invalid recurrence")
)
