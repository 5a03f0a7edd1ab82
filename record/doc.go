// SPDX-License-Identifier: MIT

// Package record assembles and persists the immutable result record of a
// spectral signature run.
//
// A RunRecord is a snapshot of all input parameters, all computed scalars
// and the run's provenance (timestamp, best-effort commit/branch, runtime
// and numeric-library versions, platform). It is created once at the end of
// a run and never mutated.
//
// Persist writes the record twice under a shared timestamp-derived file stem
// `spectral_signature_sigma_<stamp>`: an indented JSON document and a
// single-row CSV whose column order follows the record's field order. The
// two outputs carry identical field sets and values; `paired_max` may be
// NaN, which both formats serialize as the string "NaN" (JSON has no NaN
// literal).
//
// Provenance lookup is an injected capability (Provider). The git-backed
// implementation shells out and substitutes the sentinel NA on any failure;
// it never aborts a run. Persistence I/O failures, by contrast, propagate:
// a run whose record cannot be written has lost its result.
package record
