// Package obst defines core types and sentinel errors for the Optimal
// Binary Search Tree (OBST) dynamic-programming engine.
//
// OBST takes a sorted sequence of keys together with their access
// frequencies and finds the binary search tree arrangement minimizing the
// expected search cost. The engine fills two n×n tables (minimum cost,
// chosen root) bottom-up by increasing interval length and records a
// complete, replayable trace of every table mutation with a human-readable
// justification per step.
//
// Complexity:
//
//	– Time:  O(n³)   triple-nested interval/candidate-root evaluation.
//	– Space: O(n²)   for the two tables; O(n³·n²) worst case for a full
//	  trace, since every one of the O(n³) steps carries O(n²) snapshots.
//	  Use TraceMode to bound trace memory (see options.go).
//
// Errors (sentinel):
//
//	– ErrLengthMismatch    if len(keys) != len(freqs).
//	– ErrNegativeFrequency if any frequency is negative.
//	– ErrOptionViolation   if an invalid Option is supplied.
package obst

import "errors"

// Sentinel errors returned by the OBST engine.
var (
	// ErrLengthMismatch indicates keys and frequencies differ in length.
	ErrLengthMismatch = errors.New("obst: keys and frequencies must have equal length")

	// ErrNegativeFrequency indicates a negative access frequency was detected.
	ErrNegativeFrequency = errors.New("obst: frequencies must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obst: invalid option supplied")
)

// UnsetRoot is the sentinel stored in root-table cells that have not been
// finalized yet. Consumers must never index keys with it.
const UnsetRoot = -1

// StepKind classifies a TraceStep within the engine's strict phase order:
// base cases first, then per interval (in increasing length, increasing
// start) every candidate step followed by one final step.
type StepKind int

const (
	// StepBase marks a base-case step: cost[i][i] = freqs[i], root[i][i] = i.
	StepBase StepKind = iota

	// StepCandidate marks the evaluation of one candidate root k for an
	// interval [i,j]. The snapshot shows the tables BEFORE this candidate's
	// own potential improvement is applied, so the step reads as
	// "current best vs. this candidate".
	StepCandidate

	// StepFinal marks the finalization of an interval [i,j]: all candidates
	// have been evaluated and cost[i][j]/root[i][j] hold the winner.
	StepFinal
)

// String returns a short human-readable name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepBase:
		return "base"
	case StepCandidate:
		return "candidate"
	case StepFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Cell addresses one table cell (Row, Col) = (i, j).
type Cell struct {
	Row int
	Col int
}

// TraceStep is one immutable point-in-time capture of the engine's state.
//
// Both tables, the key labels and the frequencies are deep copies taken at
// capture time: later engine mutations (or caller edits to the original
// input slices) can never retroactively alter an emitted step, and every
// step is self-contained for replay.
//
// Coordinates:
//
//	– I, J    — the interval [i,j] under consideration.
//	– K       — the candidate root being evaluated (StepCandidate), the
//	            finalized root (StepFinal), or the key index itself (StepBase).
//	– TotalCost — this candidate's total (StepCandidate), the finalized
//	            minimum (StepFinal), or the base frequency (StepBase).
//
// Updated lists exactly the cells mutated in this step: {(i,i)} for a base
// step, {(i,j)} for an improving candidate or a finalization, empty for a
// candidate that kept the current best.
type TraceStep struct {
	Kind        StepKind    // phase of this step
	I, J        int         // interval [i,j] under consideration
	K           int         // candidate or finalized root index
	TotalCost   float64     // cost associated with this candidate/final answer
	Cost        [][]float64 // deep copy of the cost table at capture time
	Root        [][]int     // deep copy of the root table at capture time
	Updated     []Cell      // cells mutated in this exact step
	Explanation string      // natural-language justification
	Keys        []string    // copy of the key labels used
	Freqs       []float64   // copy of the frequencies used
}

// Result holds the outcome of a full OBST computation.
type Result struct {
	// Cost is the minimum expected search cost over all n keys,
	// i.e. the finalized cost[0][n-1]. Zero when n == 0.
	Cost float64

	// Root is the finalized root table: Root[i][j] is the index chosen as
	// the root of the optimal subtree over keys[i..j]. Nil when n == 0.
	Root [][]int

	// Tree is the infix parenthesized rendering of the optimal tree over
	// [0, n-1], as produced by Reconstruct. The null marker when n == 0.
	Tree string
}
