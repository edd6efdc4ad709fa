package obst

// Test-bridge exposing the private prefix-sum kernel to obst_test only.
// This file is compiled for tests exclusively; the prod API stays narrow.

// NewPrefixSum_TestOnly builds the internal prefix-sum index.
func NewPrefixSum_TestOnly(freqs []float64) []float64 {
	return newPrefixSum(freqs)
}

// RangeSum_TestOnly answers an inclusive range-sum query on an index
// previously built by NewPrefixSum_TestOnly.
func RangeSum_TestOnly(ps []float64, i, j int) float64 {
	return prefixSum(ps).rangeSum(i, j)
}
