package vector

import (
	"testing"
)

// BenchmarkPush compares pushing into a Vector with appending to a slice
func BenchmarkPush(b *testing.B) {
	const n = 1000

	b.Run("Vector/Heap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int64]()
			for j := 0; j < n; j++ {
				v.Push(int64(j))
			}
			v.Release()
		}
	})

	b.Run("Vector/Arena", func(b *testing.B) {
		a := NewArenaAllocator(64 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			v := New[int64](WithAllocator(a))
			for j := 0; j < n; j++ {
				v.Push(int64(j))
			}
			v.Release()
			a.Reset()
		}
	})

	b.Run("Vector/GoBytes", func(b *testing.B) {
		a := NewGoAllocator()
		for i := 0; i < b.N; i++ {
			v := New[int64](WithAllocator(a))
			for j := 0; j < n; j++ {
				v.Push(int64(j))
			}
			v.Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int64
			for j := 0; j < n; j++ {
				s = append(s, int64(j))
			}
			_ = s
		}
	})
}

func BenchmarkGet(b *testing.B) {
	v := New[int64]()
	for j := 0; j < 1024; j++ {
		v.Push(int64(j))
	}
	b.ResetTimer()

	var sum int64
	for i := 0; i < b.N; i++ {
		x, _ := v.Get(i & 1023)
		sum += x
	}
	_ = sum
}

func BenchmarkSearch(b *testing.B) {
	v := New[int64]()
	for j := 0; j < 1024; j++ {
		v.Push(int64(j))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Search(v, 1023)
	}
}
