// SPDX-License-Identifier: MIT

// Package experiment orchestrates a complete spectral signature run:
// construction, functional calculus, invariance diagnostics, and the
// persisted provenance-tagged record.
//
// A run is single-threaded, synchronous and run-to-completion; the only
// mutable state is the explicit random source derived from Params.Seed, so
// identical parameters reproduce identical scalars (only timestamp and
// provenance fields vary across runs).
//
// The pipeline, in order:
//
//	S ← NewGrading            D ← NewOdd            (S·D·S = −D checked)
//	Tr f(D), Σf(λ), pairing diagnostic
//	V ← NewPerturbation       Tr f(D+V)             (S·V·S = −V checked)
//	H ← NewGenerator          U ← NewUnitary        ‖[U,S]‖ diagnostic
//	Tr f(U·D·U†) via the Hermitian embedding
//	RunRecord → JSON + CSV under Params.ResultsDir
//
// Construction-invariant violations and non-finite spectra abort the run;
// zero modes and small commutator norms are recorded, not fatal. The
// optional eigenvalue histogram is best-effort and silently skipped when it
// cannot be produced.
package experiment
