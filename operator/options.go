// SPDX-License-Identifier: MIT

// Package operator: functional configuration for invariant tolerances.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.

package operator

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultOddTol is the absolute tolerance for the S·D·S = −D check on
	// the base operator. Violations beyond it are construction defects.
	DefaultOddTol = 1e-10

	// DefaultPerturbationOddTol is the absolute tolerance for the
	// S·V·S = −V check on the scaled perturbation. Tighter than
	// DefaultOddTol because V carries an explicit small amplitude.
	DefaultPerturbationOddTol = 1e-12
)

// options carries the resolved numeric policy for a single construction.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	oddTol float64
}

// Option mutates the internal options of a single builder call.
type Option func(*options)

// WithOddTolerance overrides the absolute tolerance used for the
// grading-odd invariant check of the construction it is passed to.
//
// Panics if tol is not strictly positive (programmer error: a zero or
// negative tolerance makes every construction fail vacuously).
func WithOddTolerance(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("operator: WithOddTolerance(%v): tolerance must be > 0", tol))
	}

	return func(o *options) { o.oddTol = tol }
}

// gatherOptions resolves the default policy for the given construction and
// applies user overrides in order.
func gatherOptions(defaultTol float64, opts []Option) options {
	o := options{oddTol: defaultTol}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
