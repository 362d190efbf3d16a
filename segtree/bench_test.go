// SPDX-License-Identifier: MIT

package segtree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/classics/segtree"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sink defeats dead-code elimination.
var sink int64

func benchValues(n int) []int64 {
	r := rand.New(rand.NewSource(1))
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = r.Int63n(2_000_001) - 1_000_000
	}

	return vals
}

func BenchmarkNew(b *testing.B) {
	for _, n := range benchSizes {
		vals := benchValues(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sink += segtree.New(vals).Total()
			}
		})
	}
}

func BenchmarkUpdate(b *testing.B) {
	for _, n := range benchSizes {
		t := segtree.New(benchValues(n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = t.Update(i%n, int64(i))
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	for _, n := range benchSizes {
		t := segtree.New(benchValues(n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l := i % n
				s, _ := t.Query(l, n-1-l%(n/2))
				sink += s
			}
		})
	}
}
