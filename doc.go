// Package spectra is a reproducible numerical laboratory for graded
// operator pairs: a grading operator S (S² = I) and a grading-odd
// operator D (S·D·S = −D), explored at finite dimension with dense
// double-precision linear algebra.
//
// 🚀 What does spectra compute?
//
//	A single deterministic run builds the structured matrices, evaluates
//	a regulated spectral trace Tr[f(D)] with f(x) = x·exp(−x²/Λ²) via
//	eigenbasis functional calculus, and checks two invariance properties:
//		• stability of the trace under a small grading-odd perturbation V
//		• exact invariance under grading-preserving unitary conjugation U·D·U†
//
// ✨ Why choose spectra?
//
//   - Reproducible – an explicit random source threaded through every
//     construction; identical seed ⇒ identical scalars
//   - Verified by construction – every algebraic invariant (S²=I, S·D·S=−D,
//     S·V·S=−V, [U,S]≈0) is checked at build time with explicit tolerances
//   - Provenance-tagged – each run persists a timestamped JSON + CSV record
//     with commit, branch, runtime and numeric-library versions
//   - Pure batch – single-threaded, run-to-completion, no services
//
// Everything is organized under six packages:
//
//	operator/   — grading, odd operator, perturbation, generator & unitary builders
//	spectral/   — symmetric/Hermitian eigendecomposition, regulator, reconstruction
//	invariance/ — paired ±eigenvalue symmetry, commutator norm, trace deltas
//	record/     — run records, provenance lookup, JSON/CSV persistence
//	checksum/   — SHA-256 manifest verification for released artifacts
//	experiment/ — parameters, the orchestrated run pipeline, optional plots
//
// Quick sketch of a run:
//
//	S = diag(+I_b, −I_b)          D = [[0, A], [A, 0]],  A = (A₀+A₀ᵗ)/2
//	Tr[f(D)]  vs  Tr[f(D+V)]  vs  Tr[f(U·D·U†)],  U = exp(iε·H), [H,S] = 0
//
// Start with experiment.DefaultParams and experiment.Run, or the
// cmd/spectra binary (`spectra run`, `spectra verify`).
package spectra
