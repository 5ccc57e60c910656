package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/search"
	"github.com/katalvlaran/lvroute/validate"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		count     int
		seed      int64
		reachable bool
		failOn    bool
	)
	cmd := &cobra.Command{
		Use:   "validate [network.geojson]",
		Short: "Compare path costs of several engines over random queries",
		Long: `validate builds the raw graph, the segment-deduplicated graph and the
edge-deduplicated graph of a network, then runs random origin/destination
queries through Dijkstra, gonum A* and (with heuristic_metres_per_cost set)
great-circle A*. Every query whose costs differ by more than the tolerance,
or that only some engines can route, is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("queries") {
				a.cfg.Queries = count
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed = seed
			}
			if cmd.Flags().Changed("reachable") {
				a.cfg.ReachableOnly = reachable
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			n, err := a.load(args)
			if err != nil {
				return err
			}
			r, err := validate.NewRunner(a.engines(n),
				validate.WithTolerance(a.cfg.Tolerance),
				validate.WithWorkers(a.cfg.Workers),
				validate.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			gen := queryGen{graph: n.raw, seed: a.cfg.Seed, reachable: a.cfg.ReachableOnly}
			queries, err := gen.draw(cmd.Context(), a.cfg.Queries)
			if err != nil {
				return err
			}
			sum, err := r.Run(cmd.Context(), queries)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), sum)
			if failOn && sum.Errors() > 0 {
				return fmt.Errorf("%d of %d queries disagree", sum.Errors(), sum.Queries)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "queries", "n", 0, "number of random queries (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "query generator seed (overrides config)")
	cmd.Flags().BoolVar(&reachable, "reachable", false, "draw destinations reachable from the origin (overrides config)")
	cmd.Flags().BoolVar(&failOn, "fail", true, "exit non-zero when any query disagrees")

	return cmd
}

// engines lists the engine set for a loaded network.
func (a *app) engines(n *network) []validate.Engine {
	out := []validate.Engine{
		{Name: "dijkstra-raw", Graph: n.raw, Finder: search.New()},
		{Name: "dijkstra-dedup", Graph: n.deduped, Finder: search.New()},
		{Name: "dijkstra-edges", Graph: n.edges, Finder: search.New()},
		{Name: "gonum-dedup", Graph: n.deduped, Finder: search.NewGonum()},
	}
	if m := a.cfg.MetresPerCost; m > 0 {
		out = append(out, validate.Engine{
			Name:   "astar-dedup",
			Graph:  n.deduped,
			Finder: search.New(search.WithHeuristic(search.GreatCircle(m))),
		})
	}

	return out
}

func printSummary(w io.Writer, sum *validate.Summary) {
	for _, f := range sum.Findings {
		fmt.Fprintf(w, "query %d: %s -> %s\n", f.Index, f.Query.Origin, f.Query.Destination)
		for _, err := range f.Report.Findings() {
			fmt.Fprintf(w, "  %v\n", err)
		}
	}
	fmt.Fprintf(w, "%d queries, tolerance exceeded %d, no path %d, failed %d\n",
		sum.Queries, sum.ToleranceExceeded, sum.NoPath, sum.Failed)
	fmt.Fprintf(w, "There were %d errors\n", sum.Errors())
}
