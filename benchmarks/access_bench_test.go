// Package benchmarks provides performance benchmarks for access and traversal.
package benchmarks

import "testing"

var sinkInt int

func BenchmarkGetSequential(b *testing.B) {
	for _, n := range Sizes {
		b.Run(SizeLabel(n), func(b *testing.B) {
			l := GenSequential(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := l.Get(i % n)
				if err != nil {
					b.Fatal(err)
				}
				sinkInt = v
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	for _, n := range Sizes {
		b.Run(SizeLabel(n), func(b *testing.B) {
			l := GenSequential(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := l.Set(i%n, i); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	const n = 65536
	l := GenSequential(n)

	b.Run("cursor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			total := 0
			it := l.Iterator()
			for it.HasNext() {
				total += it.Next()
			}
			sinkInt = total
		}
	})

	b.Run("range_values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			total := 0
			for v := range l.Values() {
				total += v
			}
			sinkInt = total
		}
	})

	b.Run("for_each", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			total := 0
			l.ForEach(func(v int) { total += v })
			sinkInt = total
		}
	})

	b.Run("indexed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			total := 0
			for j := 0; j < l.Size(); j++ {
				v, _ := l.Get(j)
				total += v
			}
			sinkInt = total
		}
	})
}

func BenchmarkRemoveLast(b *testing.B) {
	const n = 1024
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := GenSequential(n)
		b.StartTimer()
		for !l.IsEmpty() {
			if _, err := l.RemoveLast(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRemoveFirst(b *testing.B) {
	const n = 1024
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := GenSequential(n)
		b.StartTimer()
		for !l.IsEmpty() {
			if _, err := l.RemoveFirst(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
