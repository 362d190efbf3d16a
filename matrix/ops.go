// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Mul returns a·b modulo their shared modulus.
// Both operands must be non-nil, of equal order and equal modulus.
// Complexity: O(k³).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.n != b.n || a.mod != b.mod {
		return nil, fmt.Errorf("%w: %d×%d mod %d vs %d×%d mod %d",
			ErrDimensionMismatch, a.n, a.n, a.mod, b.n, b.n, b.mod)
	}

	return mul(a, b), nil
}

// mul assumes validated operands. i-k-j loop order keeps b's row hot.
func mul(a, b *Matrix) *Matrix {
	n, mod := a.n, a.mod
	c := &Matrix{n: n, mod: mod, data: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		ci := c.data[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*n : (k+1)*n]
			for j, bkj := range bk {
				ci[j] = (ci[j] + aik*bkj%mod) % mod
			}
		}
	}

	return c
}

// Pow returns mⁿ by binary exponentiation; m⁰ is the identity.
// m itself is not modified. Complexity: O(k³ log n).
func Pow(m *Matrix, n uint64) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	result, err := Identity(m.n, m.mod)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = mul(base, base)
		}
	}

	return result, nil
}
