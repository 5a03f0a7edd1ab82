// SPDX-License-Identifier: MIT

// Package invariance derives the diagnostic quantities of a spectral
// signature run and compares regulated traces across its variants.
//
//   - PairedSymmetry measures how far the regulated spectrum is from exact
//     ±pairing: max_k |f(λ⁺_k) + f(λ⁻_k)|, pairing ascending positives with
//     reverse-order negatives. Unequal positive/negative counts ("zero
//     modes") yield a status, not an error — a reported condition only.
//   - CommutatorNorm measures ‖U·S − S·U‖_F; near machine epsilon scaled by
//     dimension when U was built from a grading-commuting generator.
//   - TraceDelta is the signed difference b − a used for perturbed-minus-
//     baseline and conjugated-minus-baseline comparisons. Nothing forces the
//     perturbed delta to vanish; the conjugated delta vanishes to numerical
//     precision because conjugation preserves the spectrum exactly.
//
// The pairing heuristic is index-based by construction and deliberately does
// not verify per-pair magnitude closeness; it assumes a spectral density
// symmetric about zero.
package invariance
