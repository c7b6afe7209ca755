// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"runtime"
	"testing"

	"github.com/SarthakMakhija/golist"
	"github.com/SarthakMakhija/golist/alloc"
)

func BenchmarkMemoryFootprint(b *testing.B) {
	const numLists = 1000
	const elementsPerList = 1000

	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	lists := make([]*golist.List[int], numLists)
	for i := 0; i < numLists; i++ {
		l := golist.NewWithCapacity[int](elementsPerList)
		for j := 0; j < elementsPerList; j++ {
			l.Add(j)
		}
		lists[i] = l
	}
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	bytesPerList := (after.TotalAlloc - before.TotalAlloc) / numLists
	b.ReportMetric(float64(bytesPerList)/1024, "KB/list")
	b.ReportMetric(float64(bytesPerList)/elementsPerList, "B/element")
	runtime.KeepAlive(lists)
}

func BenchmarkMemoryPoolReuse(b *testing.B) {
	const n = 4096
	pool := alloc.NewPool[int]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := golist.NewWithCapacity[int](n, golist.WithAllocator[int](pool))
		for j := 0; j < n; j++ {
			l.Add(j)
		}
		l.Release()
	}
}
