// SPDX-License-Identifier: MIT

package invariance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PairingStatus reports whether the ±eigenvalue pairing was possible.
type PairingStatus int

const (
	// Paired: equal counts of strictly positive and strictly negative
	// eigenvalues; Max carries the diagnostic value.
	Paired PairingStatus = iota

	// ZeroModes: unequal counts, eigenvalues at (or crossing) zero broke
	// the exact ± symmetry; Max is NaN. Diagnostic, never fatal.
	ZeroModes
)

// String renders the status for logs and reports.
func (s PairingStatus) String() string {
	switch s {
	case Paired:
		return "paired"
	case ZeroModes:
		return "zero modes present"
	default:
		return fmt.Sprintf("PairingStatus(%d)", int(s))
	}
}

// Pairing is the outcome of the ±eigenvalue symmetry diagnostic.
type Pairing struct {
	Status PairingStatus
	// Max is max_k |f(λ⁺_k) + f(λ⁻_k)| when Status == Paired, NaN otherwise.
	Max float64
}

// PairedSymmetry partitions the spectrum into strictly positive and strictly
// negative eigenvalues. With equal cardinalities it pairs the k-th smallest
// positive against the k-th largest-magnitude negative (reverse index order
// over the ascending input) and returns the maximum |f(λ⁺)+f(λ⁻)|; with
// unequal cardinalities it reports ZeroModes with a NaN value.
//
// evals must be ascending (the Decompose contract); fvals must align with
// evals elementwise, else ErrLengthMismatch.
func PairedSymmetry(evals, fvals []float64) (Pairing, error) {
	if len(evals) != len(fvals) {
		return Pairing{}, fmt.Errorf("PairedSymmetry: %d eigenvalues, %d values: %w", len(evals), len(fvals), ErrLengthMismatch)
	}

	var pos, neg []int
	for i, v := range evals {
		switch {
		case v > 0:
			pos = append(pos, i)
		case v < 0:
			neg = append(neg, i)
		}
	}

	if len(pos) != len(neg) {
		return Pairing{Status: ZeroModes, Max: math.NaN()}, nil
	}

	maxAbs := 0.0
	for k := range pos {
		// Ascending input: neg[len-1-k] is the k-th smallest-magnitude
		// negative, the mirror of the k-th smallest positive pos[k].
		sum := math.Abs(fvals[pos[k]] + fvals[neg[len(neg)-1-k]])
		if sum > maxAbs {
			maxAbs = sum
		}
	}

	return Pairing{Status: Paired, Max: maxAbs}, nil
}

// CommutatorNorm computes the Frobenius norm ‖U·S − S·U‖_F with complex
// products. Large values flag a construction defect in the unitary and are
// surfaced by the caller as a diagnostic.
func CommutatorNorm(u *mat.CDense, s mat.Symmetric) (float64, error) {
	if u == nil || s == nil {
		return 0, fmt.Errorf("CommutatorNorm: %w", ErrNilMatrix)
	}
	ur, uc := u.Dims()
	n := s.SymmetricDim()
	if ur != n || uc != n {
		return 0, fmt.Errorf("CommutatorNorm: U is %d×%d, S is %d×%d: %w", ur, uc, n, n, ErrDimensionMismatch)
	}

	sc := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sc.Set(i, j, complex(s.At(i, j), 0))
		}
	}

	var us, su mat.CDense
	us.Mul(u, sc)
	su.Mul(sc, u)

	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := us.At(i, j) - su.At(i, j)
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}

	return math.Sqrt(sum), nil
}

// TraceDelta is the signed comparison b − a between two regulated traces.
func TraceDelta(a, b float64) float64 { return b - a }
