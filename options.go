// Package obst: functional configuration for the OBST engine.
//
// The full per-candidate trace is exact but heavy: O(n³) steps, each
// carrying O(n²) table snapshots. TraceMode lets callers trade replay
// granularity for memory without touching the computation itself — the
// tables are filled identically in every mode.
package obst

// TraceMode controls which steps the engine materializes into the trace.
//
//   - FullTrace  — record every base, candidate and final step.
//     The complete replayable history; memory O(n³·n²).
//
//   - FinalSteps — record base and final steps only; candidate
//     evaluations are computed but not snapshotted. Memory O(n²·n²).
//
//   - NoTrace    — record nothing. Use when only the finished tables
//     matter (Compute uses this mode).
type TraceMode int

const (
	// FullTrace records every step, candidates included.
	FullTrace TraceMode = iota

	// FinalSteps records base-case and finalization steps only.
	FinalSteps

	// NoTrace records no steps at all.
	NoTrace
)

// Options holds parameters and callbacks that customize one engine run.
type Options struct {
	// Mode selects how much of the computation history is recorded.
	Mode TraceMode

	// OnStep, if non-nil, is invoked for every step retained by Mode,
	// in emission order, with the same immutable record appended to the
	// trace. Useful for streaming consumers that render steps as they
	// are produced instead of holding the whole trace.
	OnStep func(TraceStep)

	// internal error recorded during option parsing
	err error
}

// Option configures the engine via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the engine is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - Mode:   FullTrace (the complete per-candidate history)
//   - OnStep: nil (no streaming callback)
func DefaultOptions() Options {
	return Options{
		Mode:   FullTrace,
		OnStep: nil,
		err:    nil,
	}
}

// WithTraceMode selects which steps are materialized into the trace.
// Modes outside [FullTrace, NoTrace] are invalid → ErrOptionViolation.
func WithTraceMode(m TraceMode) Option {
	return func(o *Options) {
		if m < FullTrace || m > NoTrace {
			o.err = ErrOptionViolation
			return
		}
		o.Mode = m
	}
}

// WithOnStep registers a callback invoked for each recorded step.
func WithOnStep(fn func(TraceStep)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
