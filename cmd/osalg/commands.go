package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Print the no-broken-circuit basis",
	Args:  cobra.NoArgs,
	RunE:  runBasis,
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [element...]",
	Short: "Express the monomial e_S in the basis",
	Long: `Reduces the exterior monomial of the given ground elements, taken in
ordering position, to a combination of no-broken-circuit basis elements.
No arguments reduces the empty monomial, the unit.`,
	RunE: runReduce,
}

var productCmd = &cobra.Command{
	Use:   "product [left] [right]",
	Short: "Multiply two monomials given as comma-separated elements",
	Example: `  osalg -m k4.yaml product e1,e2 e4
  osalg -m k4.yaml product "" e3`,
	Args: cobra.ExactArgs(2),
	RunE: runProduct,
}

var relationsCmd = &cobra.Command{
	Use:   "relations",
	Short: "Print the defining relations, one per circuit",
	Args:  cobra.NoArgs,
	RunE:  runRelations,
}

var invariantCmd = &cobra.Command{
	Use:   "invariant",
	Short: "Compute the subalgebra fixed by the group in the description",
	Args:  cobra.NoArgs,
	RunE:  runInvariant,
}

var aomotoCmd = &cobra.Command{
	Use:   "aomoto [weight...]",
	Short: "Betti numbers of the Aomoto complex of ω = Σ w_i e_i",
	Long: `Builds ω from one integer weight per ground element, in ground-set order,
and prints the cohomology dimensions of (A, ω·). Requires a field.`,
	RunE: runAomoto,
}

// load opens the engine for the description named by --matroid.
func load() (engine, error) {
	cfg, err := LoadConfig(matroidPath)
	if err != nil {
		return nil, err
	}
	return newEngine(cfg, logger)
}

func runBasis(cmd *cobra.Command, args []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	return e.basis(cmd.OutOrStdout())
}

func runReduce(cmd *cobra.Command, args []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	return e.reduce(cmd.OutOrStdout(), args)
}

func runProduct(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("product needs 2 arguments, got %d", len(args))
	}
	e, err := load()
	if err != nil {
		return err
	}
	return e.product(cmd.OutOrStdout(), splitElements(args[0]), splitElements(args[1]))
}

func runRelations(cmd *cobra.Command, args []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	return e.relations(cmd.OutOrStdout())
}

func runInvariant(cmd *cobra.Command, args []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return e.invariants(ctx, cmd.OutOrStdout(), parallelism, checkClosed)
}

func runAomoto(cmd *cobra.Command, args []string) error {
	weights := make([]int64, len(args))
	for i, a := range args {
		w, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("weight #%d: %w", i, err)
		}
		weights[i] = w
	}
	e, err := load()
	if err != nil {
		return err
	}
	return e.aomoto(cmd.OutOrStdout(), weights)
}

// splitElements parses "a,b,c"; the empty string and "{}" are the empty set.
func splitElements(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "{}" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
