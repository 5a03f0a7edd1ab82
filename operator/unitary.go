// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewUnitary exponentiates a real symmetric generator into the unitary
//
//	U = exp(iε·H) = Q·diag(exp(iε·θ_k))·Qᵀ,  H = Q·diag(θ)·Qᵀ,
//
// computed through the eigenbasis of H rather than a series expansion: one
// symmetric eigendecomposition plus two real products assemble the real and
// imaginary parts C = Q·cos(εθ)·Qᵀ and W = Q·sin(εθ)·Qᵀ, with U = C + iW.
//
// Unitarity U·U† = I and commutation [U, S] ≈ 0 hold by construction; they
// are measured by the caller (UnitarityDefect, invariance.CommutatorNorm)
// and reported as diagnostics, not enforced here.
//
// Returns ErrEigenFailed if the decomposition does not converge and
// ErrBadAmplitude for NaN/±Inf eps. Complexity: O(N³).
func NewUnitary(h *mat.SymDense, eps float64) (*mat.CDense, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w", opUnitary, ErrNilOperator)
	}
	if err := validateAmplitude(eps); err != nil {
		return nil, fmt.Errorf("%s(eps=%v): %w", opUnitary, eps, err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(h, true); !ok {
		return nil, fmt.Errorf("%s: %w", opUnitary, ErrEigenFailed)
	}
	theta := eig.Values(nil)
	var q mat.Dense
	eig.VectorsTo(&q)

	n := len(theta)
	cosv := make([]float64, n)
	sinv := make([]float64, n)
	for k, t := range theta {
		cosv[k] = math.Cos(eps * t)
		sinv[k] = math.Sin(eps * t)
	}

	var qc, qs, c, w mat.Dense
	qc.Mul(&q, mat.NewDiagDense(n, cosv))
	c.Mul(&qc, q.T())
	qs.Mul(&q, mat.NewDiagDense(n, sinv))
	w.Mul(&qs, q.T())

	u := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u.Set(i, j, complex(c.At(i, j), w.At(i, j)))
		}
	}

	return u, nil
}

// Conjugate applies the unitary change of basis U·D·U† to a real symmetric
// operator, returning a complex Hermitian matrix (Hermitian up to floating
// rounding of the two products).
//
// Returns ErrDimensionMismatch when U and D disagree in size.
func Conjugate(u *mat.CDense, d mat.Symmetric) (*mat.CDense, error) {
	if u == nil || d == nil {
		return nil, fmt.Errorf("%s: %w", opConjugate, ErrNilOperator)
	}
	ur, uc := u.Dims()
	n := d.SymmetricDim()
	if ur != n || uc != n {
		return nil, fmt.Errorf("%s: U is %d×%d, D is %d×%d: %w", opConjugate, ur, uc, n, n, ErrDimensionMismatch)
	}

	dc := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dc.Set(i, j, complex(d.At(i, j), 0))
		}
	}

	var ud, out mat.CDense
	ud.Mul(u, dc)
	out.Mul(&ud, u.H())

	return &out, nil
}

// UnitarityDefect measures ‖U·U† − I‖_F, the Frobenius distance of U from
// exact unitarity. Expected near machine epsilon scaled by dimension;
// large values indicate a construction defect and should be surfaced.
func UnitarityDefect(u *mat.CDense) float64 {
	n, _ := u.Dims()
	var p mat.CDense
	p.Mul(u, u.H())

	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := p.At(i, j)
			if i == j {
				v -= 1
			}
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}

	return math.Sqrt(sum)
}
