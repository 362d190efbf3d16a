// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	// Modulus is the default prime modulus, 10⁹+7.
	Modulus int64 = 1_000_000_007

	// MaxModulus is the largest modulus whose residues multiply without
	// overflowing int64: ⌊√(2⁶³-1)⌋.
	MaxModulus int64 = 3_037_000_499
)

// Matrix is a k×k matrix of residues modulo mod, stored row-major.
type Matrix struct {
	n    int     // order
	mod  int64   // modulus, 2 ≤ mod ≤ MaxModulus
	data []int64 // flat backing storage, len == n*n
}

// New returns the n×n zero matrix modulo mod.
// Stage 1 (Validate): n > 0, 2 ≤ mod ≤ MaxModulus.
// Stage 2 (Prepare): allocate flat backing slice.
func New(n int, mod int64) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: order %d", ErrBadShape, n)
	}
	if err := validateModulus(mod); err != nil {
		return nil, err
	}

	return &Matrix{n: n, mod: mod, data: make([]int64, n*n)}, nil
}

// Identity returns the n×n identity matrix modulo mod.
func Identity(n int, mod int64) (*Matrix, error) {
	m, err := New(n, mod)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a matrix from a square slice of rows. Each value is
// reduced into [0, mod); the input is not retained.
func FromRows(rows [][]int64, mod int64) (*Matrix, error) {
	m, err := New(len(rows), mod)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(row), m.n)
		}
		for j, v := range row {
			m.data[i*m.n+j] = reduce(v, mod)
		}
	}

	return m, nil
}

// Order returns k for a k×k matrix.
func (m *Matrix) Order() int { return m.n }

// Modulus returns the modulus the entries are reduced by.
func (m *Matrix) Modulus() int64 { return m.mod }

// At returns the residue at (i, j).
func (m *Matrix) At(i, j int) (int64, error) {
	k, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Set stores v reduced modulo the matrix modulus at (i, j).
func (m *Matrix) Set(i, j int, v int64) error {
	k, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[k] = reduce(v, m.mod)

	return nil
}

// Rows returns a copy of the entries as a slice of rows.
func (m *Matrix) Rows() [][]int64 {
	out := make([][]int64, m.n)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{n: m.n, mod: m.mod, data: append([]int64(nil), m.data...)}
}

// Equal reports whether m and o have the same order, modulus and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n || m.mod != o.mod {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the rows, e.g. [[1 1] [1 0]].
func (m *Matrix) String() string {
	return fmt.Sprint(m.Rows())
}

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("matrix.At(%d,%d) on %d×%d: %w", i, j, m.n, m.n, ErrOutOfRange)
	}

	return i*m.n + j, nil
}

func validateModulus(mod int64) error {
	if mod < 2 || mod > MaxModulus {
		return fmt.Errorf("%w: %d not in [2, %d]", ErrBadModulus, mod, MaxModulus)
	}

	return nil
}

// reduce maps any int64 into [0, mod).
func reduce(v, mod int64) int64 {
	v %= mod
	if v < 0 {
		v += mod
	}

	return v
}
