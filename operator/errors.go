// SPDX-License-Identifier: MIT
// Package operator: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// operator package. All builders MUST return these sentinels and tests MUST
// check them via errors.Is. Builders never panic on user-triggered error
// conditions; panics are reserved for nonsensical functional options
// (programmer error).

package operator

import "errors"

var (
	// ErrBlockSize is returned when a requested block size is not positive.
	// Builders must validate before any allocation.
	ErrBlockSize = errors.New("operator: block size must be positive")

	// ErrNilRand is returned when a random construction receives a nil
	// *rand.Rand. The source is always explicit; there is no fallback.
	ErrNilRand = errors.New("operator: nil random source")

	// ErrNilOperator indicates that a nil operator argument was passed where
	// a constructed matrix was required.
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrNotInvolution signals that a grading operator failed S·S = I.
	// This is a construction logic defect, never a recoverable condition.
	ErrNotInvolution = errors.New("operator: grading does not square to identity")

	// ErrNotGradingOdd signals that S·M·S = −M was violated beyond the
	// configured tolerance for an operator built to be grading-odd.
	ErrNotGradingOdd = errors.New("operator: grading-odd symmetry violated")

	// ErrBadAmplitude is returned when a scaling amplitude is NaN or ±Inf.
	ErrBadAmplitude = errors.New("operator: amplitude must be finite")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// grading operator and the operator checked or conjugated against it.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrEigenFailed signals that the symmetric eigendecomposition used to
	// exponentiate a generator did not converge.
	ErrEigenFailed = errors.New("operator: generator eigendecomposition failed")
)
