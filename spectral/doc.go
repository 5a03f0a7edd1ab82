// SPDX-License-Identifier: MIT

// Package spectral evaluates scalar functions of symmetric and Hermitian
// operators through their eigendecomposition (functional calculus) and
// derives regulated spectral traces from the result.
//
// The pipeline for a real symmetric M:
//
//	Decompose(M)            → ascending eigenvalues λ, orthonormal basis Q
//	Regulator{Λ}.ApplyAll(λ) → f(λ) with f(x) = x·exp(−x²/Λ²)
//	Reconstruct(Q, f(λ))    → f(M) = Q·diag(f(λ))·Qᵀ
//	Trace(f(λ))             → Tr f(M) = Σ f(λ_k)
//
// The trace is summed directly over the regulated eigenvalues: it equals the
// trace of the reconstructed matrix exactly in exact arithmetic and avoids
// an O(N²) pass over f(M).
//
// Complex Hermitian input (the conjugated operator U·D·U†) is handled by
// HermitianValues through the standard real symmetric embedding
//
//	M = X + iY  →  E = [[X, −Y], [Y, X]],
//
// whose spectrum is that of M with every eigenvalue doubled; adjacent pairs
// of the ascending embedded spectrum are averaged back to the N true values.
//
// Non-finite decomposition output is a fatal numeric-instability error
// (ErrNotFinite); callers abort the run.
package spectral
