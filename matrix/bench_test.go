// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/classics/matrix"
)

var sinkI int64

func BenchmarkFibonacci(b *testing.B) {
	for _, n := range []uint64{1e3, 1e9, 1e18} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkI += matrix.Fibonacci(n)
			}
		})
	}
}

func BenchmarkRecurrence(b *testing.B) {
	for _, k := range []int{2, 8, 32} {
		r := matrix.Recurrence{Coeffs: make([]int64, k), Initial: make([]int64, k)}
		for i := 0; i < k; i++ {
			r.Coeffs[i] = int64(i + 1)
			r.Initial[i] = int64(i)
		}
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v, _ := r.Nth(1 << 40)
				sinkI += v
			}
		})
	}
}
