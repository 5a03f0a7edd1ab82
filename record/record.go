// SPDX-License-Identifier: MIT

package record

import (
	"math"
	"strconv"
)

// NAFloat is a float64 whose JSON and CSV forms spell NaN as the string
// "NaN". encoding/json rejects NaN outright; the tabular form mirrors the
// same spelling so both files stay field-for-field identical.
type NAFloat float64

// MarshalJSON renders the value as a plain number, or as "NaN" when not a
// number.
func (f NAFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte(`"NaN"`), nil
	}

	return []byte(strconv.FormatFloat(float64(f), 'g', -1, 64)), nil
}

// UnmarshalJSON accepts both the numeric and the "NaN" form.
func (f *NAFloat) UnmarshalJSON(b []byte) error {
	if string(b) == `"NaN"` {
		*f = NAFloat(math.NaN())

		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = NAFloat(v)

	return nil
}

// String renders the CSV cell form.
func (f NAFloat) String() string {
	if math.IsNaN(float64(f)) {
		return "NaN"
	}

	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// RunRecord is the immutable result snapshot of a single run. Field order is
// the serialization order of both output formats; do not reorder fields
// without versioning the downstream manifest tooling.
type RunRecord struct {
	Timestamp  string  `json:"timestamp"`
	Commit     string  `json:"commit"`
	Branch     string  `json:"branch"`
	GoVersion  string  `json:"go"`
	Gonum      string  `json:"gonum"`
	Platform   string  `json:"platform"`
	NBlock     int     `json:"N_block"`
	N          int     `json:"N"`
	Seed       int64   `json:"seed"`
	Lambda     float64 `json:"Lambda"`
	PerturbEps float64 `json:"perturb_eps"`
	UnitaryEps float64 `json:"unitary_eps"`
	TraceFD    float64 `json:"trace_fD"`
	TraceFDP   float64 `json:"trace_fD_pert"`
	TraceFDU   float64 `json:"trace_fD_U"`
	SumFEigs   float64 `json:"sum_f_eigs"`
	PairedMax  NAFloat `json:"paired_max"`
	CommNorm   float64 `json:"comm_norm"`
}

// Field is one (name, rendered value) cell of the tabular form.
type Field struct {
	Name  string
	Value string
}

// Fields returns the record as an ordered field list, one entry per struct
// field, names matching the JSON keys. The CSV writer consumes this directly
// so the two formats cannot drift apart in order or content.
func (r *RunRecord) Fields() []Field {
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	return []Field{
		{"timestamp", r.Timestamp},
		{"commit", r.Commit},
		{"branch", r.Branch},
		{"go", r.GoVersion},
		{"gonum", r.Gonum},
		{"platform", r.Platform},
		{"N_block", strconv.Itoa(r.NBlock)},
		{"N", strconv.Itoa(r.N)},
		{"seed", strconv.FormatInt(r.Seed, 10)},
		{"Lambda", g(r.Lambda)},
		{"perturb_eps", g(r.PerturbEps)},
		{"unitary_eps", g(r.UnitaryEps)},
		{"trace_fD", g(r.TraceFD)},
		{"trace_fD_pert", g(r.TraceFDP)},
		{"trace_fD_U", g(r.TraceFDU)},
		{"sum_f_eigs", g(r.SumFEigs)},
		{"paired_max", r.PairedMax.String()},
		{"comm_norm", g(r.CommNorm)},
	}
}
