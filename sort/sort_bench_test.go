package sort

import (
	"fmt"
	"math/rand"
	"testing"
)

var benchSizes = []int{1_000, 10_000, 100_000}

func generateInts(n int) []int {
	r := rand.New(rand.NewSource(42))
	return randomInts(r, n, 10_000_000)
}

func benchmarkSort(b *testing.B, n int, fn func([]int) int64) {
	original := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(data, original)
		b.StartTimer()
		fn(data)
	}
}

func BenchmarkHybridSort(b *testing.B) {
	for _, n := range benchSizes {
		for _, s := range []int{1, 8, 32} {
			b.Run(fmt.Sprintf("copy/n=%d/S=%d", n, s), func(b *testing.B) {
				benchmarkSort(b, n, func(a []int) int64 { return HybridSort(a, s) })
			})
			b.Run(fmt.Sprintf("buffered/n=%d/S=%d", n, s), func(b *testing.B) {
				benchmarkSort(b, n, func(a []int) int64 { return HybridSortBuffered(a, s) })
			})
		}
	}
}

func BenchmarkMergeSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("copy/n=%d", n), func(b *testing.B) {
			benchmarkSort(b, n, MergeSort)
		})
		b.Run(fmt.Sprintf("buffered/n=%d", n), func(b *testing.B) {
			benchmarkSort(b, n, MergeSortBuffered)
		})
	}
}

func BenchmarkHybridSortIterative(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSort(b, n, func(a []int) int64 { return HybridSortIterative(a, 8, BufferedMerge) })
		})
	}
}

func BenchmarkInsertionSort_N32(b *testing.B) {
	benchmarkSort(b, 32, func(a []int) int64 { return InsertionSort(a, 0, len(a)-1) })
}
