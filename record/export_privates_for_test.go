// SPDX-License-Identifier: MIT
// Test-only exports: expose the clock-injected persistence entry point so
// tests can pin the file stem.

package record

// PersistAt is the test alias of persistAt.
var PersistAt = persistAt
