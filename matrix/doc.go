// SPDX-License-Identifier: MIT

// Package matrix provides square int64 matrices over the integers modulo m,
// binary exponentiation, and the evaluation of constant-coefficient linear
// recurrences (Fibonacci included) in O(k³ log n).
//
// Representation:
//
//   - A *Matrix is k×k, row-major, stored in one flat []int64.
//   - Every stored entry is a residue in [0, mod). Constructors reduce
//     their input, so negative values are normalised.
//   - mod must satisfy 2 ≤ mod ≤ MaxModulus so that the product of two
//     residues fits in an int64; every product is reduced before it is
//     accumulated.
//
// Exponentiation:
//
//	Pow(m, n) computes mⁿ by repeated squaring: O(k³ log n), m⁰ = I.
//
// Recurrences:
//
//	f(n) = c₀·f(n-1) + c₁·f(n-2) + … + c_{k-1}·f(n-k)   (mod m)
//
//	is evaluated through the k×k companion matrix C:
//
//	    [f(n+k-1) … f(n)]ᵀ = Cⁿ · [f(k-1) … f(0)]ᵀ
//
// Fibonacci is the k=2 case with c = (1, 1), f(0)=0, f(1)=1:
//
//	| F(n+1) F(n)   |   | 1 1 |ⁿ
//	| F(n)   F(n-1) | = | 1 0 |
//
// Errors: see errors.go. All operations are pure; a *Matrix is never
// mutated after construction except through Set.
package matrix
