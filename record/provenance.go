// SPDX-License-Identifier: MIT

package record

import (
	"os/exec"
	"runtime"
	"runtime/debug"
	"strings"
)

// NA is the sentinel substituted for any provenance field whose best-effort
// lookup failed. Lookups never abort a run.
const NA = "NA"

// Provider supplies version-control provenance for a run. Implementations
// must be infallible: on any underlying failure they return NA, never an
// error, so ResultRecorder assembly stays pure and total.
type Provider interface {
	// Commit returns the current source revision id, or NA.
	Commit() string
	// Branch returns the current branch name, or NA.
	Branch() string
}

// GitProvider resolves provenance by invoking git in Dir (the process
// working directory when Dir is empty). Every failure mode — git absent, not
// a repository, detached output, non-zero exit — collapses to NA.
type GitProvider struct {
	Dir string
}

// Commit implements Provider via `git rev-parse HEAD`.
func (p GitProvider) Commit() string {
	return p.git("rev-parse", "HEAD")
}

// Branch implements Provider via `git rev-parse --abbrev-ref HEAD`.
func (p GitProvider) Branch() string {
	return p.git("rev-parse", "--abbrev-ref", "HEAD")
}

func (p GitProvider) git(args ...string) string {
	cmd := exec.Command("git", args...)
	cmd.Dir = p.Dir
	out, err := cmd.Output() // stderr discarded; diagnostics are not provenance
	if err != nil {
		return NA
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return NA
	}

	return s
}

// StaticProvider returns fixed provenance values; the test seam for
// ResultRecorder without a live version-control environment.
type StaticProvider struct {
	CommitID   string
	BranchName string
}

// Commit implements Provider.
func (p StaticProvider) Commit() string { return p.CommitID }

// Branch implements Provider.
func (p StaticProvider) Branch() string { return p.BranchName }

// GonumVersion resolves the linked gonum module version from build info,
// NA when the binary carries none (e.g. under `go test` of this package
// alone or a stripped build).
func GonumVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return NA
	}
	for _, dep := range info.Deps {
		if dep.Path == "gonum.org/v1/gonum" {
			return dep.Version
		}
	}

	return NA
}

// Platform returns the GOOS/GOARCH descriptor of the running binary.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// GoVersion returns the runtime version string.
func GoVersion() string {
	return runtime.Version()
}
