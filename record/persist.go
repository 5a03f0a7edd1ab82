// SPDX-License-Identifier: MIT

package record

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStemPrefix is the shared prefix of both persisted artifacts.
const FileStemPrefix = "spectral_signature_sigma"

// stampLayout shapes the timestamp embedded in file names.
const stampLayout = "20060102_150405"

// Persist writes rec under dir as an indented JSON document and a single-row
// CSV sharing the stem `spectral_signature_sigma_<stamp>`. The directory is
// created when absent; any creation or write failure propagates — a run
// whose record cannot be written is a failed run.
//
// Returns the two paths written.
func Persist(rec *RunRecord, dir string) (jsonPath, csvPath string, err error) {
	return persistAt(rec, dir, time.Now())
}

// persistAt is the clock-injected body of Persist, exercised directly by
// tests that need a fixed stem.
func persistAt(rec *RunRecord, dir string, now time.Time) (jsonPath, csvPath string, err error) {
	if rec == nil {
		return "", "", fmt.Errorf("Persist: %w", ErrNilRecord)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("Persist: create %q: %w", dir, err)
	}

	stem := fmt.Sprintf("%s_%s", FileStemPrefix, now.Format(stampLayout))
	jsonPath = filepath.Join(dir, stem+".json")
	csvPath = filepath.Join(dir, stem+".csv")

	if err = writeJSON(rec, jsonPath); err != nil {
		return "", "", err
	}
	if err = writeCSV(rec, csvPath); err != nil {
		return "", "", err
	}

	return jsonPath, csvPath, nil
}

func writeJSON(rec *RunRecord, path string) error {
	buf, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("Persist: encode %q: %w", path, err)
	}
	if err = os.WriteFile(path, append(buf, '\n'), 0o644); err != nil {
		return fmt.Errorf("Persist: write %q: %w", path, err)
	}

	return nil
}

func writeCSV(rec *RunRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Persist: create %q: %w", path, err)
	}
	defer f.Close()

	fields := rec.Fields()
	header := make([]string, len(fields))
	row := make([]string, len(fields))
	for i, fld := range fields {
		header[i] = fld.Name
		row[i] = fld.Value
	}

	w := csv.NewWriter(f)
	if err = w.WriteAll([][]string{header, row}); err != nil {
		return fmt.Errorf("Persist: write %q: %w", path, err)
	}

	return f.Close()
}
