// SPDX-License-Identifier: MIT
// Package operator: canonical validation checks shared by the builders.
// Validators return plain sentinels (no wrapping) so call sites can wrap
// uniformly with their operation tag.

package operator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateGrading ensures g is non-nil.
func validateGrading(g *Grading) error {
	if g == nil {
		return ErrNilOperator
	}

	return nil
}

// validateRand ensures the explicit random source is present.
func validateRand(rng randSource) error {
	if rng == nil {
		return ErrNilRand
	}

	return nil
}

// validateAmplitude rejects NaN and ±Inf amplitudes. Zero is legal: a zero
// perturbation or a zero rotation angle is a meaningful degenerate case.
func validateAmplitude(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return ErrBadAmplitude
	}

	return nil
}

// gradingOddDefect returns max_{i,j} |S_ii·M_ij·S_jj + M_ij|, the entrywise
// magnitude of S·M·S + M. Evaluating through the diagonal ±1 signs is
// algebraically identical to forming the two products and avoids O(N³) work.
// Assumes m is N×N with N = g.Dim(); callers validate dimensions first.
func gradingOddDefect(g *Grading, m mat.Matrix) float64 {
	n := g.Dim()
	defect := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if d := math.Abs(g.Sign(i)*v*g.Sign(j) + v); d > defect {
				defect = d
			}
		}
	}

	return defect
}

// sameDim reports whether m is square with dimension g.Dim().
func sameDim(g *Grading, m mat.Matrix) bool {
	r, c := m.Dims()

	return r == g.Dim() && c == g.Dim()
}
