// Command osalg computes Orlik–Solomon algebras of matroids described in YAML.
//
//	osalg -m triangle.yaml basis
//	osalg -m triangle.yaml reduce b c
//	osalg -m triangle.yaml product a,b c
//	osalg -m triangle.yaml invariant --parallel 4
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	matroidPath string

	// invariant flags
	parallelism int
	checkClosed bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "osalg",
	Short: "Orlik–Solomon algebras of finite matroids",
	Long: `osalg reads a matroid description (circuits, uniform or graphic) from a
YAML file and computes its Orlik–Solomon algebra over the chosen ring:
the no-broken-circuit basis, reductions of monomials, products, defining
relations, Aomoto complexes and invariant subalgebras.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&matroidPath, "matroid", "m", "matroid.yaml", "Matroid description file")

	invariantCmd.Flags().IntVar(&parallelism, "parallel", 1, "Degrees computed concurrently")
	invariantCmd.Flags().BoolVar(&checkClosed, "check", false, "Verify the invariants are closed under products")

	rootCmd.AddCommand(basisCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(relationsCmd)
	rootCmd.AddCommand(invariantCmd)
	rootCmd.AddCommand(aomotoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
