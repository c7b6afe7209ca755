// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/SarthakMakhija/golist"
	"gopkg.in/yaml.v3"
)

// Sizes are the workload sizes shared across benchmarks.
var Sizes = []int{16, 1024, 65536}

// SizeLabel names a subtest after its workload size.
func SizeLabel(n int) string {
	return fmt.Sprintf("n=%d", n)
}

// GenSequential creates a list holding the ints [0, n) at exact capacity.
func GenSequential(n int) *golist.List[int] {
	if n < 0 {
		n = 0
	}
	l := golist.NewWithCapacity[int](n)
	for i := 0; i < n; i++ {
		l.Add(i)
	}
	return l
}

// GenLabels creates a list of n distinct label strings at exact capacity.
func GenLabels(n int) *golist.List[string] {
	if n < 0 {
		n = 0
	}
	l := golist.NewWithCapacity[string](n)
	for i := 0; i < n; i++ {
		l.Add(fmt.Sprintf("label_%d", i))
	}
	return l
}

// GenJSON generates the JSON encoding of a sequential list of size n.
func GenJSON(n int) []byte {
	data, err := GenSequential(n).ToJSON()
	if err != nil {
		panic(err)
	}
	return data
}

// GenYAML generates the YAML encoding of a sequential list of size n.
func GenYAML(n int) []byte {
	data, err := yaml.Marshal(GenSequential(n))
	if err != nil {
		panic(err)
	}
	return data
}
