// Package operator_test contains unit tests for the structured-matrix
// builders: grading, odd operator, perturbation, generator and unitary.
package operator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectra/operator"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// newRand returns a deterministic source for a single test.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TestNewGradingInvalidBlock ensures non-positive block sizes are rejected.
func TestNewGradingInvalidBlock(t *testing.T) {
	_, err := operator.NewGrading(0)                 // zero block size
	require.ErrorIs(t, err, operator.ErrBlockSize)   // expect ErrBlockSize
	_, err = operator.NewGrading(-3)                 // negative block size
	require.ErrorIs(t, err, operator.ErrBlockSize)   // expect ErrBlockSize
}

// TestGradingInvolutionAndSymmetry verifies S² = I exactly and S = Sᵗ for a
// range of block sizes.
func TestGradingInvolutionAndSymmetry(t *testing.T) {
	for _, b := range []int{1, 2, 5, 10, 37} {
		g, err := operator.NewGrading(b) // construction runs the involution check
		require.NoError(t, err)
		require.Equal(t, b, g.Block())  // half-dimension preserved
		require.Equal(t, 2*b, g.Dim())  // full dimension N = 2b

		s := g.Matrix()
		var sq mat.Dense
		sq.Mul(s, s) // S·S with 0/±1 entries is exact
		for i := 0; i < 2*b; i++ {
			for j := 0; j < 2*b; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				require.Equal(t, want, sq.At(i, j))   // S² = I exactly
				require.Equal(t, s.At(i, j), s.At(j, i)) // S symmetric
			}
		}
	}
}

// TestGradingSigns verifies the +1/−1 split across the two half-spaces.
func TestGradingSigns(t *testing.T) {
	g, err := operator.NewGrading(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.Equal(t, 1.0, g.Sign(i)) // first block carries +1
	}
	for i := 4; i < 8; i++ {
		require.Equal(t, -1.0, g.Sign(i)) // second block carries −1
	}
}

// TestGradingMatrixIsCopy ensures Matrix() does not alias internal storage.
func TestGradingMatrixIsCopy(t *testing.T) {
	g, err := operator.NewGrading(2)
	require.NoError(t, err)

	m := g.Matrix()
	m.SetSym(0, 0, 42) // mutate the copy

	require.Equal(t, 1.0, g.Matrix().At(0, 0)) // original unchanged
}

// gradingOddDefect recomputes max |S·M·S + M| entrywise through the signs.
func gradingOddDefect(g *operator.Grading, m mat.Matrix) float64 {
	defect := 0.0
	for i := 0; i < g.Dim(); i++ {
		for j := 0; j < g.Dim(); j++ {
			if d := math.Abs(g.Sign(i)*m.At(i, j)*g.Sign(j) + m.At(i, j)); d > defect {
				defect = d
			}
		}
	}

	return defect
}

// TestNewOddGradingSymmetry verifies S·D·S = −D within 1e-10 and that D is
// symmetric with vanishing diagonal blocks.
func TestNewOddGradingSymmetry(t *testing.T) {
	for _, b := range []int{1, 3, 20} {
		g, err := operator.NewGrading(b)
		require.NoError(t, err)

		d, err := operator.NewOdd(g, newRand(7)) // fresh deterministic draw
		require.NoError(t, err)

		require.LessOrEqual(t, gradingOddDefect(g, d), 1e-10) // grading-odd within tolerance
		for i := 0; i < 2*b; i++ {
			for j := 0; j < 2*b; j++ {
				require.Equal(t, d.At(i, j), d.At(j, i)) // D symmetric
			}
		}
		for i := 0; i < b; i++ {
			for j := 0; j < b; j++ {
				require.Zero(t, d.At(i, j))     // top-left block vanishes
				require.Zero(t, d.At(b+i, b+j)) // bottom-right block vanishes
			}
		}
	}
}

// TestNewOddValidation exercises the nil-argument sentinels.
func TestNewOddValidation(t *testing.T) {
	g, err := operator.NewGrading(2)
	require.NoError(t, err)

	_, err = operator.NewOdd(nil, newRand(1))      // nil grading
	require.ErrorIs(t, err, operator.ErrNilOperator)
	_, err = operator.NewOdd(g, nil)               // nil random source
	require.ErrorIs(t, err, operator.ErrNilRand)
}

// TestNewPerturbationScaleAndSymmetry verifies S·V·S = −V within 1e-12 and
// that the amplitude scales every entry linearly.
func TestNewPerturbationScaleAndSymmetry(t *testing.T) {
	g, err := operator.NewGrading(5)
	require.NoError(t, err)

	const eps = 1e-2
	v, err := operator.NewPerturbation(g, eps, newRand(11))
	require.NoError(t, err)
	require.LessOrEqual(t, gradingOddDefect(g, v), 1e-12) // tighter tolerance holds

	// The same draw at unit amplitude differs exactly by the factor eps.
	unit, err := operator.NewPerturbation(g, 1.0, newRand(11))
	require.NoError(t, err)
	for i := 0; i < g.Dim(); i++ {
		for j := 0; j < g.Dim(); j++ {
			require.InDelta(t, eps*unit.At(i, j), v.At(i, j), 1e-15) // linear in amplitude
		}
	}
}

// TestNewPerturbationBadAmplitude rejects non-finite amplitudes.
func TestNewPerturbationBadAmplitude(t *testing.T) {
	g, err := operator.NewGrading(2)
	require.NoError(t, err)

	for _, eps := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = operator.NewPerturbation(g, eps, newRand(1))
		require.ErrorIs(t, err, operator.ErrBadAmplitude) // expect ErrBadAmplitude
	}
}

// TestNewGeneratorBlockStructure verifies H is symmetric, block-diagonal and
// therefore commutes with S exactly.
func TestNewGeneratorBlockStructure(t *testing.T) {
	g, err := operator.NewGrading(4)
	require.NoError(t, err)

	h, err := operator.NewGenerator(g, newRand(3))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Zero(t, h.At(i, 4+j)) // off-diagonal blocks vanish
			require.Zero(t, h.At(4+i, j))
			require.Equal(t, h.At(i, j), h.At(j, i)) // symmetric
		}
	}

	// Block-diagonal + diagonal S ⇒ H·S − S·H = 0 exactly.
	s := g.Matrix()
	var hs, sh mat.Dense
	hs.Mul(h, s)
	sh.Mul(s, h)
	for i := 0; i < g.Dim(); i++ {
		for j := 0; j < g.Dim(); j++ {
			require.Zero(t, hs.At(i, j)-sh.At(i, j)) // exact commutation
		}
	}
}

// TestNewUnitaryUnitarity verifies ‖U·U† − I‖_F stays near machine epsilon
// across block sizes and amplitudes.
func TestNewUnitaryUnitarity(t *testing.T) {
	for _, b := range []int{1, 10} {
		for _, eps := range []float64{0, 0.1, 1.0} {
			g, err := operator.NewGrading(b)
			require.NoError(t, err)
			h, err := operator.NewGenerator(g, newRand(5))
			require.NoError(t, err)

			u, err := operator.NewUnitary(h, eps)
			require.NoError(t, err)
			require.Less(t, operator.UnitarityDefect(u), 1e-10) // unitary to rounding
		}
	}
}

// TestNewUnitaryZeroAmplitude verifies exp(0) = I.
func TestNewUnitaryZeroAmplitude(t *testing.T) {
	g, err := operator.NewGrading(3)
	require.NoError(t, err)
	h, err := operator.NewGenerator(g, newRand(9))
	require.NoError(t, err)

	u, err := operator.NewUnitary(h, 0)
	require.NoError(t, err)
	for i := 0; i < g.Dim(); i++ {
		for j := 0; j < g.Dim(); j++ {
			want := complex(0, 0)
			if i == j {
				want = complex(1, 0)
			}
			require.InDelta(t, real(want), real(u.At(i, j)), 1e-12) // identity real part
			require.InDelta(t, imag(want), imag(u.At(i, j)), 1e-12) // vanishing imaginary part
		}
	}
}

// TestNewUnitaryBadInputs exercises the sentinel paths.
func TestNewUnitaryBadInputs(t *testing.T) {
	_, err := operator.NewUnitary(nil, 0.1) // nil generator
	require.ErrorIs(t, err, operator.ErrNilOperator)

	g, err := operator.NewGrading(2)
	require.NoError(t, err)
	h, err := operator.NewGenerator(g, newRand(1))
	require.NoError(t, err)
	_, err = operator.NewUnitary(h, math.NaN()) // non-finite amplitude
	require.ErrorIs(t, err, operator.ErrBadAmplitude)
}

// TestConjugatePreservesHermiticity verifies U·D·U† is Hermitian to rounding.
func TestConjugatePreservesHermiticity(t *testing.T) {
	g, err := operator.NewGrading(4)
	require.NoError(t, err)
	rng := newRand(13)
	d, err := operator.NewOdd(g, rng)
	require.NoError(t, err)
	h, err := operator.NewGenerator(g, rng)
	require.NoError(t, err)
	u, err := operator.NewUnitary(h, 0.1)
	require.NoError(t, err)

	du, err := operator.Conjugate(u, d)
	require.NoError(t, err)
	for i := 0; i < g.Dim(); i++ {
		for j := 0; j < g.Dim(); j++ {
			lhs := du.At(i, j)
			rhs := du.At(j, i)
			require.InDelta(t, real(lhs), real(rhs), 1e-12)  // Re symmetric
			require.InDelta(t, imag(lhs), -imag(rhs), 1e-12) // Im antisymmetric
		}
	}
}

// TestConjugateDimensionMismatch rejects incompatible sizes.
func TestConjugateDimensionMismatch(t *testing.T) {
	g2, err := operator.NewGrading(2)
	require.NoError(t, err)
	g3, err := operator.NewGrading(3)
	require.NoError(t, err)

	rng := newRand(1)
	d, err := operator.NewOdd(g3, rng)
	require.NoError(t, err)
	h, err := operator.NewGenerator(g2, rng)
	require.NoError(t, err)
	u, err := operator.NewUnitary(h, 0.1)
	require.NoError(t, err)

	_, err = operator.Conjugate(u, d) // 4×4 unitary against 6×6 operator
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)
}

// TestWithOddTolerancePanicsOnNonsense documents the options contract.
func TestWithOddTolerancePanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { operator.WithOddTolerance(0) })  // zero tolerance is programmer error
	require.Panics(t, func() { operator.WithOddTolerance(-1) }) // negative tolerance likewise
}

// TestDeterministicDraws verifies identical sources yield identical operators.
func TestDeterministicDraws(t *testing.T) {
	g, err := operator.NewGrading(6)
	require.NoError(t, err)

	d1, err := operator.NewOdd(g, newRand(2025))
	require.NoError(t, err)
	d2, err := operator.NewOdd(g, newRand(2025))
	require.NoError(t, err)
	require.True(t, mat.Equal(d1, d2)) // same seed ⇒ same operator
}
