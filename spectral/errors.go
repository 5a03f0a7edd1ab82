// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set. Evaluators MUST return these
// sentinels (wrapped with an operation tag) and tests MUST check them via
// errors.Is.

package spectral

import "errors"

var (
	// ErrNilMatrix indicates a nil operator argument.
	ErrNilMatrix = errors.New("spectral: nil matrix")

	// ErrEigenFailed signals that the symmetric eigensolver did not
	// converge. Fatal: the run cannot proceed without a spectrum.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")

	// ErrNotFinite signals NaN or ±Inf in eigenvalues or eigenvectors,
	// a numeric-instability condition. Fatal.
	ErrNotFinite = errors.New("spectral: non-finite value in decomposition")

	// ErrBadLambda is returned when the regulator scale Λ is zero, NaN
	// or ±Inf; f(x) = x·exp(−x²/Λ²) is undefined or degenerate there.
	ErrBadLambda = errors.New("spectral: regulator scale must be finite and nonzero")

	// ErrLengthMismatch indicates that eigenvalue and eigenvector counts
	// disagree during reconstruction.
	ErrLengthMismatch = errors.New("spectral: eigenvalue/eigenvector length mismatch")
)
