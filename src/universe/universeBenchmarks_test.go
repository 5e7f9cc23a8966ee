package universe

import (
	"fmt"
	"testing"
)

var benchHeights = []int{64, 200, 400}

func Benchmark_Tick(b *testing.B) {
	for _, h := range benchHeights {
		b.Run(fmt.Sprintf("%vx%v", DefWidth, h), func(b *testing.B) {
			u := New(h)
			u.Randomize()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

func Benchmark_Render(b *testing.B) {
	u := New(200)
	u.Randomize()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Render()
	}
}

func Benchmark_Randomize(b *testing.B) {
	u := New(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Randomize()
	}
}
