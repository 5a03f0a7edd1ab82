// SPDX-License-Identifier: MIT
// Package invariance: sentinel error set.

package invariance

import "errors"

var (
	// ErrLengthMismatch indicates eigenvalue and regulated-value slices of
	// different lengths.
	ErrLengthMismatch = errors.New("invariance: eigenvalue/value length mismatch")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("invariance: nil matrix")

	// ErrDimensionMismatch indicates incompatible matrix dimensions.
	ErrDimensionMismatch = errors.New("invariance: dimension mismatch")
)
