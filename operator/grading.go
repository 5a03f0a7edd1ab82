// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Grading is the involutive, self-adjoint grading operator
// S = diag(+I_b, −I_b) acting on a space of dimension N = 2·b.
// Its +1/−1 eigenspaces are the first and second half of the basis.
//
// A Grading is immutable after construction; accessors return copies or
// scalars, never aliases into internal storage.
type Grading struct {
	block int
	signs []float64
	m     *mat.SymDense
}

// NewGrading builds the grading operator for the given block size and
// verifies the involution S·S = I by an explicit matrix product. The product
// of 0/±1 entries is exact in floating point, so the check is exact too.
//
// Inputs:
//   - block: half-dimension b > 0; the full dimension is N = 2·b.
//
// Returns:
//   - *Grading on success.
//   - ErrBlockSize if block <= 0; ErrNotInvolution on a construction defect.
//
// Complexity: O(N³) for the involution check, O(N²) storage.
func NewGrading(block int) (*Grading, error) {
	if block <= 0 {
		return nil, fmt.Errorf("NewGrading(block=%d): %w", block, ErrBlockSize)
	}

	n := 2 * block
	signs := make([]float64, n)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s := 1.0
		if i >= block {
			s = -1.0
		}
		signs[i] = s
		m.SetSym(i, i, s)
	}

	g := &Grading{block: block, signs: signs, m: m}
	if err := g.checkInvolution(); err != nil {
		return nil, err
	}

	return g, nil
}

// checkInvolution verifies S·S = I entry by exact entry.
func (g *Grading) checkInvolution() error {
	n := g.Dim()
	var sq mat.Dense
	sq.Mul(g.m, g.m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if sq.At(i, j) != want {
				return fmt.Errorf("NewGrading: S² entry (%d,%d) = %v: %w", i, j, sq.At(i, j), ErrNotInvolution)
			}
		}
	}

	return nil
}

// Block returns the half-dimension b.
func (g *Grading) Block() int { return g.block }

// Dim returns the full dimension N = 2·b.
func (g *Grading) Dim() int { return 2 * g.block }

// Sign returns the diagonal entry S_ii ∈ {+1, −1}.
// Panics if i is out of range (programmer error on an internal index).
func (g *Grading) Sign(i int) float64 { return g.signs[i] }

// Matrix returns a fresh symmetric copy of S; mutating it does not affect
// the Grading.
func (g *Grading) Matrix() *mat.SymDense {
	c := mat.NewSymDense(g.Dim(), nil)
	c.CopySym(g.m)

	return c
}
