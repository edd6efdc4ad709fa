// Package obst implements the Optimal Binary Search Tree dynamic program.
//
// Given keys[0..n-1] in sorted order with access frequencies freqs[0..n-1],
// the engine fills cost[i][j] (minimum expected search cost of a BST over
// keys[i..j]) and root[i][j] (the index chosen as that subtree's root)
// bottom-up by increasing interval length, so every subinterval an interval
// depends on is finalized before the interval itself is evaluated.
//
// Recurrence:
//
//	cost[i][i] = freqs[i]                                  (base case)
//	cost[i][j] = min over k in [i,j] of
//	             left(k) + right(k) + rangeSum(i,j)
//	  left(k)  = cost[i][k-1] if k > i, else 0
//	  right(k) = cost[k+1][j] if k < j, else 0
//
// Tie-break: strictly-less comparison only — among equally cheap roots the
// smallest k wins, which pins down the reported structure.
//
// Notes on implementation choices:
//
//   - All mutable state lives in a per-call runner; the engine is reentrant
//     and safe for concurrent independent invocations.
//   - Before candidates are evaluated, cost[i][j] is seeded with the +Inf
//     working sentinel so the first real candidate always improves it.
//   - We pre-scan frequencies for negative values and fail fast.
//   - Every recorded step deep-copies both tables and both input slices,
//     so emitted history is immune to later mutation.
package obst

import (
	"fmt"
	"math"
)

// ComputeWithTrace runs the OBST dynamic program over keys/freqs and
// returns the full ordered trace: n base-case steps, then for each interval
// (in increasing length, increasing start) one candidate step per root in
// increasing k followed by one final step.
//
// Candidate steps snapshot the tables before the candidate's own potential
// improvement is applied, so each reads as "current best vs. this
// candidate"; the first candidate of every interval therefore sees the +Inf
// working sentinel in cell (i,j).
//
// n == 0 yields an empty trace and a nil error.
//
// Errors: ErrOptionViolation, ErrLengthMismatch, ErrNegativeFrequency.
//
// Complexity: O(n³) time; O(n³·n²) trace memory under FullTrace
// (see WithTraceMode to bound it).
func ComputeWithTrace(keys []string, freqs []float64, opts ...Option) ([]TraceStep, error) {
	r, err := run(keys, freqs, opts)
	if err != nil {
		return nil, err
	}

	return r.trace, nil
}

// Compute runs the same dynamic program but materializes no trace,
// returning only the finished answer: the minimum expected cost, a copy of
// the finalized root table, and the reconstructed tree text over [0, n-1].
//
// Any WithTraceMode passed by the caller is overridden to NoTrace.
func Compute(keys []string, freqs []float64, opts ...Option) (Result, error) {
	// Force NoTrace last so it wins over caller-supplied modes.
	local := make([]Option, 0, len(opts)+1)
	local = append(local, opts...)
	local = append(local, WithTraceMode(NoTrace))

	r, err := run(keys, freqs, local)
	if err != nil {
		return Result{}, err
	}

	n := len(keys)
	if n == 0 {
		return Result{Cost: 0, Root: nil, Tree: NullMarker}, nil
	}

	return Result{
		Cost: r.cost[0][n-1],
		Root: copyRootTable(r.root),
		Tree: Reconstruct(r.root, keys, 0, n-1),
	}, nil
}

// run validates inputs, builds a runner and executes both passes.
func run(keys []string, freqs []float64, opts []Option) (*runner, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate parallel-slice lengths.
	if len(keys) != len(freqs) {
		return nil, fmt.Errorf("%w: %d keys vs %d frequencies", ErrLengthMismatch, len(keys), len(freqs))
	}

	// 3) Pre-scan frequencies for negative values. Fail fast.
	for idx, f := range freqs {
		if f < 0 {
			return nil, fmt.Errorf("%w: freqs[%d]=%v", ErrNegativeFrequency, idx, f)
		}
	}

	// 4) Initialize the runner (tables, prefix sums).
	r := newRunner(keys, freqs, cfg)

	// 5) The zero-key boundary: nothing to compute, empty trace.
	if len(keys) == 0 {
		return r, nil
	}

	// 6) Base cases, then the main interval pass.
	r.baseCases()
	r.intervals()

	return r, nil
}

// runner holds the mutable state for a single engine execution.
// Tables are exclusively owned by this runner for the duration of one run;
// nothing package-level is ever touched.
type runner struct {
	keys    []string    // key labels, index-aligned with freqs; read-only
	freqs   []float64   // access frequencies; read-only
	options Options     // configuration (trace mode, hooks)
	ps      prefixSum   // O(1) inclusive range sums over freqs
	cost    [][]float64 // cost[i][j] = min expected cost over keys[i..j]
	root    [][]int     // root[i][j] = chosen root index, UnsetRoot until finalized
	trace   []TraceStep // emitted steps, in order
}

// newRunner allocates the n×n tables (cost zeroed, root all UnsetRoot)
// and the prefix-sum index.
func newRunner(keys []string, freqs []float64, cfg Options) *runner {
	n := len(keys)
	cost := make([][]float64, n)
	root := make([][]int, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]float64, n)
		root[i] = make([]int, n)
		for j := 0; j < n; j++ {
			root[i][j] = UnsetRoot
		}
	}

	return &runner{
		keys:    keys,
		freqs:   freqs,
		options: cfg,
		ps:      newPrefixSum(freqs),
		cost:    cost,
		root:    root,
	}
}

// baseCases establishes cost[i][i] = freqs[i] and root[i][i] = i for every
// key, emitting one step per key before any multi-key interval is touched.
func (r *runner) baseCases() {
	for i := range r.keys {
		r.cost[i][i] = r.freqs[i]
		r.root[i][i] = i
		r.emit(StepBase, i, i, i, r.freqs[i], []Cell{{Row: i, Col: i}},
			fmt.Sprintf("base case [%d,%d]: single key %q costs its own frequency %s",
				i, i, r.keys[i], FormatCost(r.freqs[i])))
	}
}

// intervals is the main pass: lengths 2..n, start indices left to right.
// Processing by increasing length guarantees every cost[i][k-1] and
// cost[k+1][j] a candidate needs is already finalized.
func (r *runner) intervals() {
	n := len(r.keys)
	var i, j, k, l int
	var sumFreq, left, right, total float64
	for l = 2; l <= n; l++ {
		for i = 0; i+l-1 < n; i++ {
			j = i + l - 1

			// 1) Every root choice over [i,j] pays the full frequency sum once.
			sumFreq = r.ps.rangeSum(i, j)

			// 2) Seed the working sentinel: the first candidate must improve it.
			r.cost[i][j] = math.Inf(1)

			// 3) Evaluate every candidate root, smallest k first.
			for k = i; k <= j; k++ {
				left = 0
				if k > i {
					left = r.cost[i][k-1]
				}
				right = 0
				if k < j {
					right = r.cost[k+1][j]
				}
				total = left + right + sumFreq

				// Strictly-less comparison: ties keep the earliest root.
				improved := total < r.cost[i][j]

				// 4) Snapshot BEFORE applying the improvement, so the step
				//    shows this candidate against the pre-update best.
				var updated []Cell
				verdict := fmt.Sprintf("keeps current best %s", FormatCost(r.cost[i][j]))
				if improved {
					updated = []Cell{{Row: i, Col: j}}
					verdict = fmt.Sprintf("improves on current best %s", FormatCost(r.cost[i][j]))
				}
				r.emit(StepCandidate, i, j, k, total, updated,
					fmt.Sprintf("interval [%d,%d]: try root %d (%q): left %s cost %s + right %s cost %s + freq sum %s = %s; %s",
						i, j, k, r.keys[k],
						rangeLabel(i, k-1), FormatCost(left),
						rangeLabel(k+1, j), FormatCost(right),
						FormatCost(sumFreq), FormatCost(total), verdict))

				// 5) Apply the improvement after the snapshot.
				if improved {
					r.cost[i][j] = total
					r.root[i][j] = k
				}
			}

			// 6) Finalize [i,j]: reconstruct the winner's arithmetic.
			r.emitFinal(i, j, sumFreq)
		}
	}
}

// emitFinal emits the finalization step for [i,j] from the winning root.
func (r *runner) emitFinal(i, j int, sumFreq float64) {
	k := r.root[i][j]
	left := 0.0
	if k > i {
		left = r.cost[i][k-1]
	}
	right := 0.0
	if k < j {
		right = r.cost[k+1][j]
	}
	r.emit(StepFinal, i, j, k, r.cost[i][j], []Cell{{Row: i, Col: j}},
		fmt.Sprintf("interval [%d,%d] finalized: root %d (%q) wins with left %s cost %s + right %s cost %s + freq sum %s = %s",
			i, j, k, r.keys[k],
			rangeLabel(i, k-1), FormatCost(left),
			rangeLabel(k+1, j), FormatCost(right),
			FormatCost(sumFreq), FormatCost(r.cost[i][j])))
}

// emit appends one immutable step to the trace if the configured TraceMode
// retains its kind, invoking the OnStep hook with the same record.
func (r *runner) emit(kind StepKind, i, j, k int, total float64, updated []Cell, explanation string) {
	if r.options.Mode == NoTrace {
		return
	}
	if kind == StepCandidate && r.options.Mode != FullTrace {
		return
	}

	step := TraceStep{
		Kind:        kind,
		I:           i,
		J:           j,
		K:           k,
		TotalCost:   total,
		Cost:        copyCostTable(r.cost),
		Root:        copyRootTable(r.root),
		Updated:     updated,
		Explanation: explanation,
		Keys:        append([]string(nil), r.keys...),
		Freqs:       append([]float64(nil), r.freqs...),
	}
	r.trace = append(r.trace, step)

	if r.options.OnStep != nil {
		r.options.OnStep(step)
	}
}

// rangeLabel renders an inclusive index range, or the null marker for an
// empty one (used for the absent side of an extreme root).
func rangeLabel(lo, hi int) string {
	if lo > hi {
		return NullMarker
	}

	return fmt.Sprintf("[%d,%d]", lo, hi)
}

// copyCostTable deep-copies an n×n cost table row by row.
func copyCostTable(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = append([]float64(nil), row...)
	}

	return dst
}

// copyRootTable deep-copies an n×n root table row by row.
func copyRootTable(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = append([]int(nil), row...)
	}

	return dst
}
