package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alloc-sim/alloc-sim/alloc"
	"github.com/alloc-sim/alloc-sim/alloc/workload"
)

var (
	// CLI flags for the evaluation scenario
	seed         int64    // Seed for scenario generation and the random baseline
	trials       int      // Number of evaluation trials
	numSystems   int      // Autonomous Systems per trial
	numBlocks    int      // Allocatable blocks per trial
	prefixMin    int      // Minimum generated prefix length
	prefixMax    int      // Maximum generated prefix length
	baseNetworks []string // Base networks addresses are drawn from
	logLevel     string   // Log verbosity level
	scenarioFile string   // Optional YAML scenario file (overrides the flags above)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "alloc-sim",
	Short: "Stable-matching simulator for IP address block allocation",
}

// runCmd evaluates stable matching against a random baseline using
// parameters from CLI flags or a scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the allocation evaluation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := resolveScenario()
		logrus.Infof("Starting evaluation: %d trials, %d systems x %d blocks, prefixes /%d../%d, seed=%d",
			spec.Trials, spec.Systems, spec.Blocks, spec.PrefixMin, spec.PrefixMax, spec.Seed)

		rng := alloc.NewPartitionedRNG(alloc.NewTrialKey(spec.Seed))
		workloadRNG := rng.ForSubsystem(alloc.SubsystemWorkload)
		baselineRNG := rng.ForSubsystem(alloc.SubsystemBaseline)

		var summary alloc.Summary
		for i := 0; i < spec.Trials; i++ {
			systems, blocks, err := workload.GenerateScenario(spec, workloadRNG)
			if err != nil {
				logrus.Fatalf("Scenario generation failed: %v", err)
			}
			result, err := alloc.RunTrial(systems, blocks, baselineRNG)
			if err != nil {
				logrus.Fatalf("Trial %d failed: %v", i, err)
			}
			summary.Add(result)
			fmt.Printf("Trial %d: aggregatable pairs stable=%d random=%d\n",
				i, result.StableAggregations, result.RandomAggregations)
		}

		fmt.Printf("Stable matching: %d aggregatable pairs over %d trials (mean %.2f)\n",
			summary.StableTotal, summary.Trials, summary.StableMean())
		fmt.Printf("Random baseline: %d aggregatable pairs over %d trials (mean %.2f)\n",
			summary.RandomTotal, summary.Trials, summary.RandomMean())

		logrus.Info("Evaluation complete.")
	},
}

// resolveScenario builds the effective ScenarioSpec: the YAML file wins if
// given, otherwise the CLI flags fill in the spec.
func resolveScenario() *workload.ScenarioSpec {
	if scenarioFile != "" {
		spec, err := workload.LoadScenarioSpec(scenarioFile)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		logrus.Infof("Using scenario file %s", scenarioFile)
		return spec
	}
	spec := &workload.ScenarioSpec{
		Seed:         seed,
		Trials:       trials,
		Systems:      numSystems,
		Blocks:       numBlocks,
		PrefixMin:    prefixMin,
		PrefixMax:    prefixMax,
		BaseNetworks: baseNetworks,
	}
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid scenario flags: %v", err)
	}
	return spec
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := workload.DefaultScenarioSpec()

	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for scenario generation and the random baseline")
	runCmd.Flags().IntVar(&trials, "trials", defaults.Trials, "Number of evaluation trials")
	runCmd.Flags().IntVar(&numSystems, "systems", defaults.Systems, "Autonomous Systems per trial")
	runCmd.Flags().IntVar(&numBlocks, "blocks", defaults.Blocks, "Allocatable blocks per trial")
	runCmd.Flags().IntVar(&prefixMin, "prefix-min", defaults.PrefixMin, "Minimum generated prefix length")
	runCmd.Flags().IntVar(&prefixMax, "prefix-max", defaults.PrefixMax, "Maximum generated prefix length")
	runCmd.Flags().StringSliceVar(&baseNetworks, "base-networks", defaults.BaseNetworks, "Comma-separated base networks to draw addresses from")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (overrides scenario flags)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
