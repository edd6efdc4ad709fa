package obst_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/obst"
)

// benchmarkInput builds n sorted key labels with deterministic pseudo-varied
// frequencies, so runs are reproducible without any randomness.
func benchmarkInput(n int) ([]string, []float64) {
	keys := make([]string, n)
	freqs := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("k%03d", i)
		freqs[i] = float64((i*7)%13 + 1)
	}

	return keys, freqs
}

// benchmarkEngine runs the engine on n keys with the given trace mode.
func benchmarkEngine(b *testing.B, n int, mode obst.TraceMode) {
	keys, freqs := benchmarkInput(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := obst.ComputeWithTrace(keys, freqs, obst.WithTraceMode(mode))
		if err != nil {
			b.Fatalf("ComputeWithTrace failed: %v", err)
		}
	}
}

// BenchmarkComputeWithTrace_Full_N8 measures the full per-candidate trace
// on a small instance (snapshot cost dominates).
func BenchmarkComputeWithTrace_Full_N8(b *testing.B) {
	benchmarkEngine(b, 8, obst.FullTrace)
}

// BenchmarkComputeWithTrace_Full_N16 doubles the keys; trace memory grows
// with O(n³) snapshots of O(n²) cells.
func BenchmarkComputeWithTrace_Full_N16(b *testing.B) {
	benchmarkEngine(b, 16, obst.FullTrace)
}

// BenchmarkComputeWithTrace_FinalSteps_N32 records only base and final
// steps, dropping the per-candidate snapshot cost.
func BenchmarkComputeWithTrace_FinalSteps_N32(b *testing.B) {
	benchmarkEngine(b, 32, obst.FinalSteps)
}

// BenchmarkComputeWithTrace_NoTrace_N64 isolates the raw O(n³) fill.
func BenchmarkComputeWithTrace_NoTrace_N64(b *testing.B) {
	benchmarkEngine(b, 64, obst.NoTrace)
}

// BenchmarkCompute_N128 measures the answer-only entry point, including
// reconstruction of the tree text.
func BenchmarkCompute_N128(b *testing.B) {
	keys, freqs := benchmarkInput(128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := obst.Compute(keys, freqs); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}
