// Package invariance_test contains unit tests for the diagnostic layer:
// paired ±eigenvalue symmetry, commutator norm and trace deltas.
package invariance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectra/invariance"
	"github.com/katalvlaran/spectra/operator"
	"github.com/katalvlaran/spectra/spectral"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPairedSymmetryExactSpectrum verifies a perfectly symmetric spectrum
// under an odd function pairs to exactly zero.
func TestPairedSymmetryExactSpectrum(t *testing.T) {
	evals := []float64{-2, -1, 1, 2} // ascending, symmetric about zero
	r, err := spectral.NewRegulator(3.0)
	require.NoError(t, err)
	fvals := r.ApplyAll(evals)

	p, err := invariance.PairedSymmetry(evals, fvals)
	require.NoError(t, err)
	require.Equal(t, invariance.Paired, p.Status) // equal ± counts
	require.Zero(t, p.Max)                        // f odd ⇒ exact cancellation
}

// TestPairedSymmetryReverseOrder verifies the index pairing: ascending
// positives against reverse-order negatives, not same-order.
func TestPairedSymmetryReverseOrder(t *testing.T) {
	// Asymmetric spectrum under f = id: reverse-order pairing gives
	// (1, −0.5) and (2, −1.5), both summing to 0.5; a same-order pairing
	// would give sums {−0.5, 1.5} with max 1.5 instead.
	evals := []float64{-1.5, -0.5, 1, 2}
	fvals := []float64{-1.5, -0.5, 1, 2} // identity keeps the arithmetic visible

	p, err := invariance.PairedSymmetry(evals, fvals)
	require.NoError(t, err)
	require.Equal(t, invariance.Paired, p.Status)
	require.Equal(t, 0.5, p.Max) // max over {|1 − 0.5|, |2 − 1.5|}
}

// TestPairedSymmetryZeroModes verifies unequal ± counts yield the status
// with a NaN value, not an error.
func TestPairedSymmetryZeroModes(t *testing.T) {
	evals := []float64{-1, 0, 1} // the zero eigenvalue joins neither side
	fvals := []float64{-0.5, 0, 0.5}

	p, err := invariance.PairedSymmetry(evals, fvals)
	require.NoError(t, err)                          // diagnostic, never fatal
	require.Equal(t, invariance.ZeroModes, p.Status) // unequal counts reported
	require.True(t, math.IsNaN(p.Max))               // sentinel value
	require.Equal(t, "zero modes present", p.Status.String())
}

// TestPairedSymmetryLengthMismatch rejects misaligned slices.
func TestPairedSymmetryLengthMismatch(t *testing.T) {
	_, err := invariance.PairedSymmetry([]float64{1, -1}, []float64{1})
	require.ErrorIs(t, err, invariance.ErrLengthMismatch)
}

// TestCommutatorNormCommutingUnitary verifies ‖U·S − S·U‖ < 1e-8 for
// unitaries built from block-diagonal generators, across the contract grid
// of block sizes and amplitudes.
func TestCommutatorNormCommutingUnitary(t *testing.T) {
	for _, b := range []int{1, 10, 100} {
		for _, eps := range []float64{0, 0.1, 1.0} {
			g, err := operator.NewGrading(b)
			require.NoError(t, err)
			rng := rand.New(rand.NewSource(2025))
			h, err := operator.NewGenerator(g, rng)
			require.NoError(t, err)
			u, err := operator.NewUnitary(h, eps)
			require.NoError(t, err)

			norm, err := invariance.CommutatorNorm(u, g.Matrix())
			require.NoError(t, err)
			require.Less(t, norm, 1e-8) // commutation to numerical precision
		}
	}
}

// TestCommutatorNormDetectsNonCommuting verifies a grading-odd unitary-like
// matrix yields a norm far from zero.
func TestCommutatorNormDetectsNonCommuting(t *testing.T) {
	g, err := operator.NewGrading(1)
	require.NoError(t, err)

	// The flip [[0,1],[1,0]] anticommutes with S = diag(+1,−1):
	// ‖U·S − S·U‖_F = ‖2·U·S‖_F = 2·√2.
	u := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	norm, err := invariance.CommutatorNorm(u, g.Matrix())
	require.NoError(t, err)
	require.InDelta(t, 2*math.Sqrt2, norm, 1e-12)
}

// TestCommutatorNormValidation exercises nil and dimension sentinels.
func TestCommutatorNormValidation(t *testing.T) {
	g, err := operator.NewGrading(2)
	require.NoError(t, err)

	_, err = invariance.CommutatorNorm(nil, g.Matrix())
	require.ErrorIs(t, err, invariance.ErrNilMatrix)

	u := mat.NewCDense(2, 2, nil) // 2×2 against a 4-dimensional grading
	_, err = invariance.CommutatorNorm(u, g.Matrix())
	require.ErrorIs(t, err, invariance.ErrDimensionMismatch)
}

// TestTraceDelta verifies the signed difference orientation.
func TestTraceDelta(t *testing.T) {
	require.Equal(t, 0.5, invariance.TraceDelta(1.0, 1.5))  // b − a
	require.Equal(t, -0.5, invariance.TraceDelta(1.5, 1.0)) // antisymmetric
	require.Zero(t, invariance.TraceDelta(2.0, 2.0))        // identical traces
}
