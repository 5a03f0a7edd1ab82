// SPDX-License-Identifier: MIT

// Package operator constructs the structured dense matrices of a graded
// operator pair and verifies their algebraic invariants at build time.
//
// The five constructions, in the order a run uses them:
//
//	NewGrading(block)            → S = diag(+I_b, −I_b), S² = I exactly
//	NewOdd(S, rng)               → D = [[0, A], [A, 0]], S·D·S = −D (tol 1e-10)
//	NewPerturbation(S, ε, rng)   → V = ε·[[0, B], [B, 0]], S·V·S = −V (tol 1e-12)
//	NewGenerator(S, rng)         → H = diag(H₊, H₋), [H, S] = 0 by construction
//	NewUnitary(H, ε)             → U = exp(iε·H) via the eigenbasis of H
//
// Design rules:
//   - Every random construction takes an explicit *rand.Rand; no package or
//     process-global randomness, so runs are reproducible and tests isolated.
//   - Invariant violations are construction errors (logic defects), returned
//     as wrapped sentinels from this package's errors.go; callers abort.
//   - Unitarity of U and its commutation with S are diagnostics measured by
//     the caller (see invariance.CommutatorNorm), not build-time gates.
//
// Matrices are gonum dense types: real symmetric operators are *mat.SymDense,
// the unitary is a *mat.CDense. Returned matrices are owned by the caller.
package operator
