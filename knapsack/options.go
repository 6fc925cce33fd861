// SPDX-License-Identifier: MIT

package knapsack

// Option mutates Options. Constructors panic on nonsensical arguments
// (programmer error); Solve itself never panics.
type Option func(*Options)

// Options is the resolved configuration of one Solve call.
type Options struct {
	// KeepTable retains the full dp table in Result.Table (diagnostics/tests).
	KeepTable bool

	// MaxCells caps (n+1)·(capacity+1) for Solve and capacity+1 for
	// SolveValue. Zero means unlimited.
	MaxCells int64
}

// DefaultOptions returns KeepTable=false, MaxCells=0 (unlimited).
func DefaultOptions() Options {
	return Options{}
}

// WithTable asks Solve to return its dp table in Result.Table.
func WithTable() Option {
	return func(o *Options) {
		o.KeepTable = true
	}
}

// WithMaxCells refuses tables larger than limit cells with ErrTableTooLarge.
// limit == 0 disables the check. Panics on a negative limit.
func WithMaxCells(limit int64) Option {
	if limit < 0 {
		panic("knapsack: WithMaxCells: limit must be non-negative")
	}
	return func(o *Options) {
		o.MaxCells = limit
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
