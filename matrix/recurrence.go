// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Recurrence describes f(n) = Σ Coeffs[i]·f(n-1-i) for n ≥ k, with
// f(i) = Initial[i] for i < k, where k = len(Coeffs) = len(Initial).
// All arithmetic is modulo Mod; a zero Mod means Modulus.
type Recurrence struct {
	Coeffs  []int64
	Initial []int64
	Mod     int64
}

// Nth returns f(n) modulo r.Mod.
func (r Recurrence) Nth(n uint64) (int64, error) {
	mod := r.Mod
	if mod == 0 {
		mod = Modulus
	}
	k := len(r.Coeffs)
	if k == 0 || len(r.Initial) != k {
		return 0, fmt.Errorf("%w: %d coefficients, %d initial terms", ErrBadRecurrence, k, len(r.Initial))
	}
	if err := validateModulus(mod); err != nil {
		return 0, err
	}
	if n < uint64(k) {
		return reduce(r.Initial[n], mod), nil
	}

	c, err := r.companion(mod)
	if err != nil {
		return 0, err
	}
	// Cⁿ⁻⁽ᵏ⁻¹⁾ maps [f(k-1) … f(0)] to [f(n) … f(n-k+1)]; row 0 is f(n).
	p, err := Pow(c, n-uint64(k-1))
	if err != nil {
		return 0, err
	}
	var f int64
	for j := 0; j < k; j++ {
		f = (f + p.data[j]*reduce(r.Initial[k-1-j], mod)%mod) % mod
	}

	return f, nil
}

// companion builds the k×k matrix whose first row is Coeffs and whose
// sub-diagonal shifts the state window down by one.
func (r Recurrence) companion(mod int64) (*Matrix, error) {
	k := len(r.Coeffs)
	c, err := New(k, mod)
	if err != nil {
		return nil, err
	}
	for j, v := range r.Coeffs {
		c.data[j] = reduce(v, mod)
	}
	for i := 1; i < k; i++ {
		c.data[i*k+i-1] = 1
	}

	return c, nil
}

// fibonacci is the Fibonacci transition matrix [[1 1] [1 0]] mod Modulus.
var fibonacci = &Matrix{n: 2, mod: Modulus, data: []int64{1, 1, 1, 0}}

// Fibonacci returns F(n) mod 10⁹+7 with F(0)=0 and F(1)=1, reading F(n)
// off the top-right entry of [[1 1] [1 0]]ⁿ.
func Fibonacci(n uint64) int64 {
	if n < 2 {
		return int64(n)
	}
	// fibonacci is valid by construction, so Pow cannot fail.
	p, _ := Pow(fibonacci, n)

	return p.data[1]
}
