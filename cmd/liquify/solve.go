package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/liquify/metrics"
	"github.com/katalvlaran/liquify/mix"
	"github.com/katalvlaran/liquify/recipe"
)

type solveOptions struct {
	recipePath string
	algorithm  algorithmFlag
	seed       int64
	sorted     bool
	metrics    bool
}

// algorithmFlag overrides the recipe's solver.algorithm when set.
type algorithmFlag struct {
	set  bool
	algo mix.Algorithm
}

var _ pflag.Value = (*algorithmFlag)(nil)

func (f *algorithmFlag) String() string {
	if !f.set {
		return ""
	}
	return f.algo.String()
}

func (f *algorithmFlag) Set(s string) error {
	algo, err := mix.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	f.algo, f.set = algo, true
	return nil
}

func (f *algorithmFlag) Type() string { return "algorithm" }

// newSolveCmd returns a command that prints the mixing steps for a recipe.
func newSolveCmd() *cobra.Command {
	o := &solveOptions{}
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the mixing steps for a recipe",
		Long: `The liquify solve command loads a recipe file and prints one
        "Add <amount> ml of <name>." line per fluid to draw.

        $ liquify solve --recipe recipe.yaml --algorithm fallback --seed 42

        The command exits with status 1 when no mix reaches the target.
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	flags := solveCmd.Flags()
	flags.StringVarP(&o.recipePath, "recipe", "r", "", "Path to the recipe file.")
	if err := solveCmd.MarkFlagRequired("recipe"); err != nil {
		log.Fatalf("Failed to mark `recipe` flag for `solve` subcommand as required")
	}
	flags.VarP(&o.algorithm, "algorithm", "a", "Solver to run. One of: [exact, evolutionary, fallback]")
	flags.Int64Var(&o.seed, "seed", 0, "Seed for the evolutionary solver.")
	flags.BoolVar(&o.sorted, "sorted", false, "Print steps in recipe order.")
	flags.BoolVar(&o.metrics, "metrics", false, "Append solver metrics in Prometheus text format.")

	return solveCmd
}

func (o *solveOptions) run(cmd *cobra.Command) error {
	r, err := recipe.Load(o.recipePath)
	if err != nil {
		return err
	}
	spec, err := r.Spec()
	if err != nil {
		return errors.Wrap(err, o.recipePath)
	}
	opts, err := r.Options()
	if err != nil {
		return errors.Wrap(err, o.recipePath)
	}
	if o.algorithm.set {
		opts = append(opts, mix.WithAlgorithm(o.algorithm.algo))
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, mix.WithSeed(o.seed))
	}
	opts = append(opts,
		mix.WithContext(cmd.Context()),
		mix.WithOnGeneration(logGeneration),
	)

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	start := time.Now()
	res, err := mix.Solve(spec, opts...)
	elapsed := time.Since(start)
	rec.Observe(res, err, elapsed)

	if err != nil && !errors.Is(err, mix.ErrInfeasible) {
		return errors.Wrap(err, "solve")
	}

	log.WithFields(log.Fields{
		"strategy": res.Strategy,
		"within":   res.WithinTolerance,
		"nodes":    res.Stats.Nodes,
		"elapsed":  elapsed,
	}).Debug("solved")

	if o.sorted {
		res.Plan = res.Plan.InCandidateOrder()
	}
	out := cmd.OutOrStdout()
	for _, line := range mix.Format(res, err) {
		fmt.Fprintln(out, line)
	}
	if o.metrics {
		if werr := metrics.Write(out, reg); werr != nil {
			return werr
		}
	}

	return err
}

func logGeneration(gen int, best float64) {
	log.WithFields(log.Fields{
		"generation": gen,
		"fitness":    best,
	}).Debug("evolution progress")
}
