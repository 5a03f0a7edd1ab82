// SPDX-License-Identifier: MIT

// Command spectra runs the graded-operator spectral signature experiment
// and verifies checksum manifests over its released artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/spectra/checksum"
	"github.com/katalvlaran/spectra/experiment"
	"github.com/katalvlaran/spectra/record"
)

var (
	// Global flags.
	verbose bool

	// run flags.
	configPath string
	blockSize  int
	seed       int64
	lambda     float64
	perturbEps float64
	unitaryEps float64
	resultsDir string
	plotHist   bool

	// verify flags.
	manifestPath string
	quiet        bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Finite-N spectral signature experiment for graded operator pairs",
	Long: `spectra numerically explores a graded operator pair (grading S, odd D):
it computes the regulated spectral trace Tr[f(D)] with f(x) = x·exp(−x²/Λ²)
and checks its stability under a grading-odd perturbation and its exact
invariance under grading-preserving unitary conjugation.

Every run is deterministic in its seed and persists a provenance-tagged
JSON + CSV record under the results directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		if logger, err = cfg.Build(); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one spectral signature run and persist its record",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams(cmd)
		if err != nil {
			return err
		}

		outcome, err := experiment.Run(params, logger, record.GitProvider{})
		if err != nil {
			return err
		}
		fmt.Print(outcome.Summary())

		return nil
	},
}

// resolveParams layers explicit flags over an optional YAML file over the
// documented defaults.
func resolveParams(cmd *cobra.Command) (experiment.Params, error) {
	params := experiment.DefaultParams()
	if configPath != "" {
		var err error
		if params, err = experiment.Load(configPath); err != nil {
			return experiment.Params{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("block") {
		params.BlockSize = blockSize
	}
	if flags.Changed("seed") {
		params.Seed = seed
	}
	if flags.Changed("lambda") {
		params.Lambda = lambda
	}
	if flags.Changed("perturb-eps") {
		params.PerturbEps = perturbEps
	}
	if flags.Changed("unitary-eps") {
		params.UnitaryEps = unitaryEps
	}
	if flags.Changed("out") {
		params.ResultsDir = resultsDir
	}
	if flags.Changed("plot") {
		params.Plot = plotHist
	}

	return params, params.Validate()
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a SHA-256 checksum manifest over released artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		warn := func(line int, raw string) {
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed line %d: %s\n", line, raw)
		}

		results, err := checksum.VerifyFile(manifestPath, warn)
		if err != nil {
			return err
		}

		ok := 0
		for _, r := range results {
			switch r.Status {
			case checksum.StatusOK:
				ok++
				if !quiet {
					fmt.Printf("%-8s: %s\n", r.Status, r.Entry.Path)
				}
			case checksum.StatusError:
				fmt.Fprintf(os.Stderr, "%-8s: %s (%v)\n", r.Status, r.Entry.Path, r.Err)
			case checksum.StatusMismatch:
				fmt.Fprintf(os.Stderr, "%-8s: %s\n", r.Status, r.Entry.Path)
				fmt.Fprintf(os.Stderr, "    expected: %s\n    found   : %s\n", r.Entry.Sum, r.Found)
			default:
				fmt.Fprintf(os.Stderr, "%-8s: %s\n", r.Status, r.Entry.Path)
			}
		}
		if !quiet {
			fmt.Printf("\nSummary: %d / %d files matched\n", ok, len(results))
		}

		if !checksum.AllOK(results) {
			fmt.Fprintln(os.Stderr, "SOME FILES FAILED (missing or checksum mismatch)")
			os.Exit(1)
		}
		fmt.Println("ALL OK")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML parameter file")
	runCmd.Flags().IntVar(&blockSize, "block", experiment.DefaultBlockSize, "block size b (dimension N = 2b)")
	runCmd.Flags().Int64Var(&seed, "seed", experiment.DefaultSeed, "random seed")
	runCmd.Flags().Float64Var(&lambda, "lambda", experiment.DefaultLambda, "regulator scale Λ")
	runCmd.Flags().Float64Var(&perturbEps, "perturb-eps", experiment.DefaultPerturbEps, "perturbation amplitude ε_p")
	runCmd.Flags().Float64Var(&unitaryEps, "unitary-eps", experiment.DefaultUnitaryEps, "unitary amplitude ε_u")
	runCmd.Flags().StringVar(&resultsDir, "out", experiment.DefaultResultsDir, "results directory")
	runCmd.Flags().BoolVar(&plotHist, "plot", false, "write the eigenvalue histogram (best effort)")

	verifyCmd.Flags().StringVarP(&manifestPath, "file", "f", checksum.DefaultManifestName, "path to the checksum manifest")
	verifyCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary and failures")

	rootCmd.AddCommand(runCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
