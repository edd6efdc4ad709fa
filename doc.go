// Package obst computes Optimal Binary Search Trees (OBST) via dynamic
// programming, with a complete step-by-step trace of the table fill.
//
// 🚀 What is OBST?
//
//	Given keys in sorted order and how often each one is looked up, OBST
//	finds the BST shape minimizing the expected search cost: hot keys
//	float toward the root, cold keys sink toward the leaves. It's the
//	classic O(n³) interval dynamic program, and this package exposes not
//	just the answer but every intermediate cost/root table state, so the
//	whole computation can be replayed one justified step at a time.
//
// ✨ Key features:
//   - full replayable trace: every base case, candidate evaluation and
//     interval finalization as an immutable snapshot with a human-readable
//     explanation and the exact set of cells it changed
//   - deterministic tie-break: among equally cheap roots the smallest
//     index wins, so the reported structure is stable
//   - O(1) range sums via a prefix-sum index
//   - infix tree reconstruction from the finished root table
//   - TraceMode (FullTrace / FinalSteps / NoTrace) to bound trace memory
//   - OnStep hook for streaming consumers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/obst"
//
//	keys := []string{"A", "B", "C"}
//	freqs := []float64{1, 2, 3}
//
//	// full trace, one step at a time
//	trace, err := obst.ComputeWithTrace(keys, freqs)
//
//	// or just the answer
//	res, err := obst.Compute(keys, freqs)
//	fmt.Println(res.Cost, res.Tree)
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) tables; a FullTrace holds O(n³) snapshots of O(n²)
//     cells each, so bound n (or pick FinalSteps/NoTrace) for large inputs.
//
// See examples in example_test.go for detailed walkthroughs.
package obst
