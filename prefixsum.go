package obst

// prefixSum is the cumulative-frequency index: prefixSum[0] == 0 and
// prefixSum[t] == freqs[0] + … + freqs[t-1], so any inclusive range sum
// over frequencies resolves in O(1).
type prefixSum []float64

// newPrefixSum builds the index in O(n) for n frequencies.
func newPrefixSum(freqs []float64) prefixSum {
	ps := make(prefixSum, len(freqs)+1)
	for t, f := range freqs {
		ps[t+1] = ps[t] + f
	}

	return ps
}

// rangeSum returns freqs[i] + … + freqs[j] inclusive, 0 ≤ i ≤ j < n.
// Bounds are guaranteed by the engine's own loop limits; no validation here.
// Complexity: O(1).
func (ps prefixSum) rangeSum(i, j int) float64 {
	return ps[j+1] - ps[i]
}
