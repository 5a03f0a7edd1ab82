// SPDX-License-Identifier: MIT

// Package checksum verifies SHA-256 manifests over released run artifacts.
//
// Manifest format (one entry per line):
//
//	<hex sha256> <whitespace> <relative path>
//
// Empty lines and lines starting with '#' are ignored; malformed lines are
// skipped with a warning rather than failing the whole manifest. Paths are
// resolved relative to the manifest file's directory, and entries are
// verified in path order with a streaming 64 KiB hash so large artifacts
// never load fully into memory.
//
// Each entry yields one of three statuses:
//
//	OK       — file present, hash matches (case-insensitive hex compare)
//	MISMATCH — file present, hash differs
//	MISSING  — file absent
//
// A verification run succeeds only when every entry is OK.
package checksum
