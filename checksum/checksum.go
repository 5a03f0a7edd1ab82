// SPDX-License-Identifier: MIT

package checksum

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultManifestName is the conventional manifest file at a repo root.
const DefaultManifestName = "CHECKSUMS.txt"

// bufferSize is the streaming-hash chunk size.
const bufferSize = 64 * 1024

// Sentinel errors.
var (
	// ErrNoEntries indicates a manifest with no usable entries.
	ErrNoEntries = errors.New("checksum: no entries in manifest")
)

// Entry is one parsed manifest line.
type Entry struct {
	// Sum is the expected hash, lowercased hex.
	Sum string
	// Path is the file path as written in the manifest, relative to the
	// manifest's directory. Remaining whitespace-separated fields are joined
	// so names containing spaces survive.
	Path string
	// Line is the 1-based manifest line number, for warnings.
	Line int
}

// Status classifies one verified entry.
type Status int

const (
	// StatusOK: file present and hash matched.
	StatusOK Status = iota
	// StatusMismatch: file present, hash differed.
	StatusMismatch
	// StatusMissing: file absent.
	StatusMissing
	// StatusError: file present but unreadable.
	StatusError
)

// String renders the fixed-width report tag of a status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMismatch:
		return "MISMATCH"
	case StatusMissing:
		return "MISSING"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the verification outcome of a single entry.
type Result struct {
	Entry  Entry
	Status Status
	// Found is the computed hash when the file was readable.
	Found string
	// Err carries the read failure for StatusError.
	Err error
}

// Parse reads manifest entries from r. Blank lines and '#' comments are
// skipped silently; lines with fewer than two fields are skipped through the
// warn callback (nil to discard warnings). The expected hash is lowercased.
func Parse(r io.Reader, warn func(line int, raw string)) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) < 2 {
			if warn != nil {
				warn(line, raw)
			}
			continue
		}
		entries = append(entries, Entry{
			Sum:  strings.ToLower(fields[0]),
			Path: strings.Join(fields[1:], " "),
			Line: line,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return entries, nil
}

// HashFile computes the streaming SHA-256 of path as lowercase hex.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("HashFile: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.CopyBuffer(h, f, make([]byte, bufferSize)); err != nil {
		return "", fmt.Errorf("HashFile %q: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyFile parses the manifest at manifestPath and verifies every entry
// against the filesystem, resolving paths relative to the manifest's
// directory. Results come back sorted by resolved path. The returned error
// covers manifest-level failures only (unreadable or empty manifest);
// per-entry failures live in the results.
func VerifyFile(manifestPath string, warn func(line int, raw string)) ([]Result, error) {
	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("VerifyFile: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f, warn)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("VerifyFile %q: %w", manifestPath, ErrNoEntries)
	}

	base := filepath.Dir(manifestPath)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, verifyEntry(base, e))
	}

	return results, nil
}

func verifyEntry(base string, e Entry) Result {
	full := filepath.Join(base, filepath.FromSlash(e.Path))
	if _, err := os.Stat(full); err != nil {
		return Result{Entry: e, Status: StatusMissing}
	}

	found, err := HashFile(full)
	if err != nil {
		return Result{Entry: e, Status: StatusError, Err: err}
	}
	if found != e.Sum {
		return Result{Entry: e, Status: StatusMismatch, Found: found}
	}

	return Result{Entry: e, Status: StatusOK, Found: found}
}

// AllOK reports whether every result is StatusOK; the process exit
// contract is success only when AllOK holds.
func AllOK(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return false
		}
	}

	return len(results) > 0
}
