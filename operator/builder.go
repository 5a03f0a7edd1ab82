// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opOdd          = "NewOdd"
	opPerturbation = "NewPerturbation"
	opGenerator    = "NewGenerator"
	opUnitary      = "NewUnitary"
	opConjugate    = "Conjugate"
)

// Source yields standard-normal draws for the random constructions.
// *math/rand.Rand satisfies it; tests may substitute a scripted source.
// The source is threaded explicitly through every builder so that a run is
// reproducible from its seed alone and tests never share hidden state.
type Source interface {
	NormFloat64() float64
}

// randSource is the internal alias used by validators.
type randSource = Source

// symmetricBlock draws a b×b standard-normal matrix row by row and returns
// its symmetrization (A + Aᵗ)/2. Draw order is fixed (row-major) so a given
// source position always yields the same block.
func symmetricBlock(block int, rng Source) *mat.SymDense {
	raw := make([]float64, block*block)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}

	a := mat.NewSymDense(block, nil)
	for i := 0; i < block; i++ {
		for j := i; j < block; j++ {
			a.SetSym(i, j, 0.5*(raw[i*block+j]+raw[j*block+i]))
		}
	}

	return a
}

// offDiagonal assembles the grading-odd shape scale·[[0, A], [A, 0]] for a
// symmetric block A: entries D[i][b+j] = D[b+j][i] = scale·A_ij.
func offDiagonal(block int, a *mat.SymDense, scale float64) *mat.SymDense {
	d := mat.NewSymDense(2*block, nil)
	for i := 0; i < block; i++ {
		for j := 0; j < block; j++ {
			d.SetSym(i, block+j, scale*a.At(i, j))
		}
	}

	return d
}

// NewOdd builds the real symmetric base operator
//
//	D = [[0, A], [A, 0]],  A = (A₀ + A₀ᵗ)/2,  A₀ ~ N(0,1) entrywise,
//
// and verifies the grading-odd invariant S·D·S = −D within DefaultOddTol
// (override with WithOddTolerance). A violation is a construction logic
// defect and is returned as a wrapped ErrNotGradingOdd; callers must abort.
//
// Complexity: O(N²) construction and check.
func NewOdd(g *Grading, rng Source, opts ...Option) (*mat.SymDense, error) {
	if err := validateGrading(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opOdd, err)
	}
	if err := validateRand(rng); err != nil {
		return nil, fmt.Errorf("%s: %w", opOdd, err)
	}

	o := gatherOptions(DefaultOddTol, opts)
	d := offDiagonal(g.Block(), symmetricBlock(g.Block(), rng), 1.0)
	if defect := gradingOddDefect(g, d); defect > o.oddTol {
		return nil, fmt.Errorf("%s: defect %.3e exceeds tolerance %.1e: %w", opOdd, defect, o.oddTol, ErrNotGradingOdd)
	}

	return d, nil
}

// NewPerturbation builds the grading-odd perturbation
//
//	V = ε·[[0, B], [B, 0]],  B = (B₀ + B₀ᵗ)/2,
//
// from an independent draw of the source, and verifies S·V·S = −V within
// DefaultPerturbationOddTol (override with WithOddTolerance).
//
// eps may be zero (degenerate but legal); NaN/±Inf are rejected with
// ErrBadAmplitude.
func NewPerturbation(g *Grading, eps float64, rng Source, opts ...Option) (*mat.SymDense, error) {
	if err := validateGrading(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opPerturbation, err)
	}
	if err := validateRand(rng); err != nil {
		return nil, fmt.Errorf("%s: %w", opPerturbation, err)
	}
	if err := validateAmplitude(eps); err != nil {
		return nil, fmt.Errorf("%s(eps=%v): %w", opPerturbation, eps, err)
	}

	o := gatherOptions(DefaultPerturbationOddTol, opts)
	v := offDiagonal(g.Block(), symmetricBlock(g.Block(), rng), eps)
	if defect := gradingOddDefect(g, v); defect > o.oddTol {
		return nil, fmt.Errorf("%s: defect %.3e exceeds tolerance %.1e: %w", opPerturbation, defect, o.oddTol, ErrNotGradingOdd)
	}

	return v, nil
}

// NewGenerator builds the block-diagonal symmetric generator
//
//	H = diag(H₊, H₋)
//
// from two independent symmetrized draws. H commutes with the grading by
// construction (both blocks live inside a single S-eigenspace); the caller
// measures the residual [U, S] of the derived unitary as a diagnostic.
func NewGenerator(g *Grading, rng Source) (*mat.SymDense, error) {
	if err := validateGrading(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerator, err)
	}
	if err := validateRand(rng); err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerator, err)
	}

	b := g.Block()
	top := symmetricBlock(b, rng)
	bottom := symmetricBlock(b, rng)

	h := mat.NewSymDense(2*b, nil)
	for i := 0; i < b; i++ {
		for j := i; j < b; j++ {
			h.SetSym(i, j, top.At(i, j))
			h.SetSym(b+i, b+j, bottom.At(i, j))
		}
	}

	return h, nil
}
