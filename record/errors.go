// SPDX-License-Identifier: MIT
// Package record: sentinel error set.

package record

import "errors"

// ErrNilRecord indicates that a nil *RunRecord was passed to Persist.
var ErrNilRecord = errors.New("record: nil run record")
