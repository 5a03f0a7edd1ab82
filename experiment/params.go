// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DEFAULTS - single source of truth, mirrored by DefaultParams.
const (
	// DefaultBlockSize is the half-dimension b; the full dimension is 2b.
	DefaultBlockSize = 300

	// DefaultSeed seeds the explicit random source of a run.
	DefaultSeed = 2025

	// DefaultLambda is the regulator scale in f(x) = x·exp(−x²/Λ²).
	DefaultLambda = 5.0

	// DefaultPerturbEps is the amplitude of the grading-odd perturbation V.
	DefaultPerturbEps = 1e-2

	// DefaultUnitaryEps is the rotation amplitude of U = exp(iε·H).
	DefaultUnitaryEps = 1e-1

	// DefaultResultsDir receives the persisted record files.
	DefaultResultsDir = "results"
)

// Params are the complete inputs of a run. There is no external
// operator-loading path: every matrix is generated from Seed.
type Params struct {
	BlockSize  int     `yaml:"block_size"`
	Seed       int64   `yaml:"seed"`
	Lambda     float64 `yaml:"lambda"`
	PerturbEps float64 `yaml:"perturb_eps"`
	UnitaryEps float64 `yaml:"unitary_eps"`
	ResultsDir string  `yaml:"results_dir"`
	// Plot toggles the best-effort eigenvalue histogram.
	Plot bool `yaml:"plot"`
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		BlockSize:  DefaultBlockSize,
		Seed:       DefaultSeed,
		Lambda:     DefaultLambda,
		PerturbEps: DefaultPerturbEps,
		UnitaryEps: DefaultUnitaryEps,
		ResultsDir: DefaultResultsDir,
	}
}

// Load reads a YAML parameter file over the defaults: absent keys keep their
// default values, unknown keys are rejected. The result is validated.
func Load(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	p := DefaultParams()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("Load %q: %w", path, err)
	}

	return p, p.Validate()
}

// Validate checks every parameter against its sentinel. Matches the builder
// preconditions so a validated Params cannot fail construction validation
// downstream.
func (p Params) Validate() error {
	if p.BlockSize <= 0 {
		return fmt.Errorf("Validate(block_size=%d): %w", p.BlockSize, ErrBlockSize)
	}
	if p.Lambda == 0 || math.IsNaN(p.Lambda) || math.IsInf(p.Lambda, 0) {
		return fmt.Errorf("Validate(lambda=%v): %w", p.Lambda, ErrLambda)
	}
	if math.IsNaN(p.PerturbEps) || math.IsInf(p.PerturbEps, 0) {
		return fmt.Errorf("Validate(perturb_eps=%v): %w", p.PerturbEps, ErrAmplitude)
	}
	if math.IsNaN(p.UnitaryEps) || math.IsInf(p.UnitaryEps, 0) {
		return fmt.Errorf("Validate(unitary_eps=%v): %w", p.UnitaryEps, ErrAmplitude)
	}
	if p.ResultsDir == "" {
		return fmt.Errorf("Validate: %w", ErrResultsDir)
	}

	return nil
}
