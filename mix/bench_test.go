package mix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/liquify/fluid"
	"github.com/katalvlaran/liquify/mix"
)

// benchSpec builds n fluids alternating strong and neutral concentrations.
func benchSpec(n int, step float64) mix.Spec {
	fs := make([]fluid.Fluid, n)
	for i := range fs {
		if i%2 == 0 {
			fs[i] = fluid.NewBase("shot", 100, float64(12+i))
		} else {
			fs[i] = fluid.NewFlavor("flavor", 60, 0, "t")
		}
	}
	return mix.NewSpec(mix.Target{Volume: 120, Concentration: 6, Tolerance: 0.1, Step: step}, fs...)
}

// BenchmarkSolveExact_Steps grows the grid resolution to watch memo growth.
func BenchmarkSolveExact_Steps(b *testing.B) {
	for _, tc := range []struct {
		name string
		step float64
	}{{"1ml", 1}, {"0.1ml", 0.1}, {"0.01ml", 0.01}} {
		spec := benchSpec(4, tc.step)
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = mix.SolveExact(spec)
			}
		})
	}
}

// BenchmarkSolveEvolutionary_Fluids grows the candidate count.
func BenchmarkSolveEvolutionary_Fluids(b *testing.B) {
	for _, n := range []int{2, 4, 8} {
		spec := benchSpec(n, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = mix.SolveEvolutionary(spec, mix.WithSeed(seedDet))
			}
		})
	}
}

