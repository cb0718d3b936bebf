package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
	"github.com/metroxylon/kho-bwa-core-voc/simulate"
)

var (
	simOutdir  string
	simCount   int
	simDistr   string
	simSpread  int
	simMean    int
	simSeed    uint64
	simLinkage bool
	simMethod  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] <data.csv>",
	Short: "Create plots simulating random variation",
	Long: `Create plots simulating random variation.

Produces heatmap and dendrogram plots (default: 1) for the given data while
introducing random variation, to check by eye whether slightly different
cognacy decisions would change the subgrouping. Output is written to the
--outdir directory, created if missing.

Note that 100 simulations can take a few minutes to complete.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simOutdir, "outdir", "simulations", "output directory")
	simulateCmd.Flags().IntVar(&simCount, "count", 1, "number of simulations to run")
	simulateCmd.Flags().StringVar(&simDistr, "distr", "uniform", "probability distribution: uniform or binomial")
	simulateCmd.Flags().IntVar(&simSpread, "spread", 20, "maximum offset around a value")
	simulateCmd.Flags().IntVar(&simMean, "mean", 0, "systematic deviation from the value")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "random seed (0 = nondeterministic)")
	simulateCmd.Flags().BoolVar(&simLinkage, "linkage", false, "print the linkage merge table per simulation")
	simulateCmd.Flags().StringVar(&simMethod, "method", "average", "linkage method: average, single or complete")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	distr, err := simulate.ParseDistr(simDistr)
	if err != nil {
		return err
	}
	method, err := cluster.ParseMethod(simMethod)
	if err != nil {
		return err
	}
	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	m, _, err := loadSimilarity(infileArg(args), logger)
	if err != nil {
		return err
	}

	opts := simulate.Options{
		Count:  simCount,
		Spread: simSpread,
		Mean:   simMean,
		Distr:  distr,
		Seed:   simSeed,
		OutDir: simOutdir,
	}

	start := time.Now()
	err = simulate.Run(m, opts, func(perturbed *cluster.Matrix, path string) error {
		return plotOne(renderer, perturbed, method, path, simLinkage, logger)
	}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "--- %.2f seconds ---\n", time.Since(start).Seconds())
	return nil
}
