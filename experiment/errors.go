// SPDX-License-Identifier: MIT
// Package experiment: sentinel error set for parameter validation.

package experiment

import "errors"

var (
	// ErrBlockSize is returned when Params.BlockSize is not positive.
	ErrBlockSize = errors.New("experiment: block size must be positive")

	// ErrLambda is returned when Params.Lambda is zero, NaN or ±Inf.
	ErrLambda = errors.New("experiment: Lambda must be finite and nonzero")

	// ErrAmplitude is returned when a perturbation or unitary amplitude is
	// NaN or ±Inf. Zero amplitudes are legal degenerate cases.
	ErrAmplitude = errors.New("experiment: amplitude must be finite")

	// ErrResultsDir is returned when no results directory is configured.
	ErrResultsDir = errors.New("experiment: results directory must be set")
)
