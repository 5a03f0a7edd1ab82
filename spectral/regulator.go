// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
)

// Regulator is the odd scalar function
//
//	f(x) = x·exp(−x²/Λ²)
//
// used to produce a finite, convergent trace from an operator's spectrum.
// It is smooth, vanishes at 0 and at ±∞, and satisfies f(−x) = −f(x) for
// every finite x, so a spectrum symmetric about zero regulates to a trace
// near zero.
type Regulator struct {
	lambda float64
}

// NewRegulator validates the scale Λ and returns the regulator.
// Λ must be finite and nonzero (ErrBadLambda otherwise); the sign of Λ is
// irrelevant since only Λ² enters.
func NewRegulator(lambda float64) (Regulator, error) {
	if lambda == 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return Regulator{}, fmt.Errorf("NewRegulator(%v): %w", lambda, ErrBadLambda)
	}

	return Regulator{lambda: lambda}, nil
}

// Lambda returns the regulator scale Λ.
func (r Regulator) Lambda() float64 { return r.lambda }

// Apply evaluates f at a single point.
func (r Regulator) Apply(x float64) float64 {
	return x * math.Exp(-x*x/(r.lambda*r.lambda))
}

// ApplyAll evaluates f elementwise over a spectrum, preserving order.
// A fresh slice is returned; the input is not mutated.
func (r Regulator) ApplyAll(evals []float64) []float64 {
	out := make([]float64, len(evals))
	for i, x := range evals {
		out[i] = r.Apply(x)
	}

	return out
}
