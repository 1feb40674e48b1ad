// Command mclgo clusters a CSV similarity matrix with Markov Clustering
// and prints one cluster per line.
//
//	mclgo matrix.csv
//	cat matrix.csv | mclgo --inflation 1.6 --labels nodes.txt
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mclgo/matrixio"
	"github.com/katalvlaran/mclgo/mcl"
)

var (
	expansion  int
	inflation  float64
	loopValue  float64
	iterations int
	threshold  float64
	pruneEvery int
	checkEvery int
	labelsPath string
	verbose    bool
)

func main() {
	defaults := mcl.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "mclgo [matrix.csv]",
		Short: "Cluster a similarity matrix with Markov Clustering (MCL)",
		Long: "mclgo reads a square CSV similarity matrix (from the given file, or stdin\n" +
			"when omitted or \"-\"), runs the MCL convergence loop, and prints the\n" +
			"resulting clusters one per line, members tab-separated.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&expansion, "expansion", "e", defaults.Expansion, "matrix power of the expansion step (>= 1)")
	rootCmd.Flags().Float64VarP(&inflation, "inflation", "i", defaults.Inflation, "elementwise power of the inflation step (> 0)")
	rootCmd.Flags().Float64Var(&loopValue, "loop-value", defaults.LoopValue, "diagonal self-loop seed, 0 disables")
	rootCmd.Flags().IntVar(&iterations, "iterations", defaults.MaxIterations, "iteration cap")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", defaults.PruningThreshold, "pruning threshold (column max always survives)")
	rootCmd.Flags().IntVar(&pruneEvery, "prune-every", defaults.PruningFrequency, "prune every Nth iteration")
	rootCmd.Flags().IntVar(&checkEvery, "check-every", defaults.ConvergenceCheckFrequency, "test convergence every Nth iteration")
	rootCmd.Flags().StringVarP(&labelsPath, "labels", "l", "", "file with one node label per line, used in the output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	m, err := readMatrix(args)
	if err != nil {
		return err
	}
	r, _ := m.Dims()
	log.Debugf("loaded %d×%d matrix", r, r)

	labels, err := readLabels(labelsPath)
	if err != nil {
		return err
	}

	opts := mcl.DefaultOptions()
	opts.Expansion = expansion
	opts.Inflation = inflation
	opts.LoopValue = loopValue
	opts.MaxIterations = iterations
	opts.PruningThreshold = threshold
	opts.PruningFrequency = pruneEvery
	opts.ConvergenceCheckFrequency = checkEvery
	if verbose {
		opts.OnIteration = func(iteration int, converged bool) {
			log.Debugf("iteration %d converged=%v", iteration, converged)
		}
	}

	result, status, err := mcl.MCL(m, &opts)
	if err != nil {
		return err
	}
	log.Debugf("loop finished: %s", status)

	clusters, err := mcl.Clusters(result)
	if err != nil {
		return err
	}
	log.Debugf("%d clusters", len(clusters))

	return matrixio.WriteClusters(cmd.OutOrStdout(), clusters, labels)
}

// readMatrix loads the CSV matrix from the positional argument, or stdin
// when the argument is absent or "-".
func readMatrix(args []string) (*mat.Dense, error) {
	if len(args) == 1 && args[0] != "-" {
		return matrixio.ReadDenseFile(args[0])
	}

	return matrixio.ReadDense(os.Stdin)
}

// readLabels loads one label per line; an empty path means index output.
func readLabels(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	return strings.Fields(string(b)), nil
}
