package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/ingest"
	"github.com/katalvlaran/lvroute/segment"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [network.geojson]",
		Short: "Print node, edge and duplicate counts of a network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "segments:            %d (skipped features: %d)\n", len(n.segments), n.skipped)
			fmt.Fprintf(w, "nodes:               %d\n", n.raw.NodeCount())
			fmt.Fprintf(w, "edges raw:           %d\n", n.raw.EdgeCount())
			fmt.Fprintf(w, "edges deduplicated:  %d (%s)\n", n.deduped.EdgeCount(), a.cfg.DedupPolicy)
			fmt.Fprintf(w, "edges min per pair:  %d\n", n.edges.EdgeCount())
			fmt.Fprintf(w, "forward discarded:   %d\n", n.resolved.ForwardDiscarded)
			fmt.Fprintf(w, "backward discarded:  %d\n", n.resolved.BackwardDiscarded)
			fmt.Fprintf(w, "segments narrowed:   %d\n", n.resolved.Narrowed)
			fmt.Fprintf(w, "segments dropped:    %d\n", n.resolved.Dropped)

			return nil
		},
	}
}

func (a *app) dedupCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dedup [network.geojson]",
		Short: "Write the deduplicated segments as GeoJSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args)
			if err != nil {
				return err
			}

			return writeSegments(cmd, out, n.resolved.Segments)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file, - for stdout")

	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
		out        string
		oneWay     float64
		dups       float64
		overrides  float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic street grid with one-ways and duplicate segments as GeoJSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for name, p := range map[string]float64{"one-way": oneWay, "duplicates": dups, "overrides": overrides} {
				if !(p >= 0 && p <= 1) {
					return fmt.Errorf("--%s=%v: probability outside [0,1]", name, p)
				}
			}
			segs, err := builder.Grid(rows, cols,
				builder.WithSeed(seed),
				builder.WithCostRange(1, 10),
				builder.WithOneWay(oneWay),
				builder.WithDuplicates(dups, 0.5),
				builder.WithOverrides(overrides),
			)
			if err != nil {
				return err
			}
			a.logger.Info("grid generated", "rows", rows, "cols", cols, "segments", len(segs))

			return writeSegments(cmd, out, segs)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 10, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 10, "grid columns")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().Float64Var(&oneWay, "one-way", 0.2, "probability that a street is one-way")
	cmd.Flags().Float64Var(&dups, "duplicates", 0.3, "probability that a street is duplicated")
	cmd.Flags().Float64Var(&overrides, "overrides", 0.1, "probability of a per-direction cost override")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file, - for stdout")

	return cmd
}

// writeSegments writes GeoJSON to path, or to the command output for "" and "-".
func writeSegments(cmd *cobra.Command, path string, segs []segment.Segment) error {
	if path == "" || path == "-" {
		return ingest.WriteSegments(cmd.OutOrStdout(), segs)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = ingest.WriteSegments(f, segs); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
