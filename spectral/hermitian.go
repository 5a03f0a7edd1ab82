// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// HermitianValues computes the ascending real eigenvalues of a complex
// Hermitian matrix M = X + iY through the real symmetric embedding
//
//	E = [[X, −Y], [Y, X]],
//
// which carries the spectrum of M with every eigenvalue doubled. The
// ascending 2N-spectrum of E is collapsed back to N values by averaging
// adjacent pairs, suppressing the O(ulp) splitting the embedding introduces.
//
// The input is Hermitized first — X ← (X + Xᵀ)/2, Y ← (Y − Yᵀ)/2 — so the
// rounding asymmetry of an operator product like U·D·U† cannot leak into an
// asymmetric embedding. Callers needing a strict Hermiticity check must
// perform it separately.
//
// Returns ErrNilMatrix for nil input, ErrEigenFailed / ErrNotFinite from the
// underlying symmetric decomposition. Complexity: O((2N)³) time.
func HermitianValues(m *mat.CDense) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opHermitian, ErrNilMatrix)
	}
	n, c := m.Dims()
	if n != c {
		return nil, fmt.Errorf("%s: %d×%d input: %w", opHermitian, n, c, ErrLengthMismatch)
	}

	e := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x := 0.5 * (real(m.At(i, j)) + real(m.At(j, i)))
			e.SetSym(i, j, x)
			e.SetSym(n+i, n+j, x)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			y := 0.5 * (imag(m.At(i, j)) - imag(m.At(j, i)))
			e.SetSym(i, n+j, -y)
		}
	}

	dec, err := Decompose(e)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHermitian, err)
	}

	vals := make([]float64, n)
	for k := 0; k < n; k++ {
		vals[k] = 0.5 * (dec.Values[2*k] + dec.Values[2*k+1])
	}

	return vals, nil
}
