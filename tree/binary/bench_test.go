package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The other two are self-balancing, so they pay on every insert
// what Tree only pays on Rebalance.

var benchSizes = []int{100, 10000}

func benchKeys(size int) []int {
	rd := rand.New(rand.NewSource(int64(size)))
	return rd.Perm(size)
}

func BenchmarkInsert(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		b.Run(fmt.Sprintf("size=%d/bst", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := &Tree[int]{}
				for _, k := range keys {
					tr.Insert(k)
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/bst+rebalance", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := &Tree[int]{}
				for _, k := range keys {
					tr.Insert(k)
				}
				tr.Rebalance()
			}
		})

		b.Run(fmt.Sprintf("size=%d/btree", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := btree.NewOrderedG[int](32)
				for _, k := range keys {
					tr.ReplaceOrInsert(k)
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/llrb", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := llrb.New()
				for _, k := range keys {
					tr.ReplaceOrInsert(llrb.Int(k))
				}
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		bst := Build(keys)
		bt := btree.NewOrderedG[int](32)
		lt := llrb.New()
		for _, k := range keys {
			bt.ReplaceOrInsert(k)
			lt.ReplaceOrInsert(llrb.Int(k))
		}

		b.Run(fmt.Sprintf("size=%d/bst", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bst.Find(keys[i%size])
			}
		})

		b.Run(fmt.Sprintf("size=%d/btree", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bt.Has(keys[i%size])
			}
		})

		b.Run(fmt.Sprintf("size=%d/llrb", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				lt.Has(llrb.Int(keys[i%size]))
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		b.Run(fmt.Sprintf("size=%d/bst", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tr := Build(keys)
				b.StartTimer()
				for _, k := range keys {
					tr.Delete(k)
				}
			}
		})

		b.Run(fmt.Sprintf("size=%d/llrb", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tr := llrb.New()
				for _, k := range keys {
					tr.ReplaceOrInsert(llrb.Int(k))
				}
				b.StartTimer()
				for _, k := range keys {
					tr.Delete(llrb.Int(k))
				}
			}
		})
	}
}

func BenchmarkIsBalanced(b *testing.B) {
	for _, size := range benchSizes {
		tr := Build(benchKeys(size))

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr.IsBalanced()
			}
		})
	}
}
