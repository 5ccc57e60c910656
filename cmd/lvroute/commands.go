package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dedup"
	"github.com/katalvlaran/lvroute/ingest"
	"github.com/katalvlaran/lvroute/segment"
)

// errNoNetwork is returned when neither an argument nor the config names a network.
var errNoNetwork = errors.New("no network file: pass one as argument or set network in the config")

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Build road graphs from GeoJSON and cross-check shortest paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log_level (debug, info, warn, error)")

	root.AddCommand(a.validateCmd(), a.statsCmd(), a.dedupCmd(), a.generateCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	return nil
}

// network is one loaded input together with the graphs derived from it.
type network struct {
	segments []segment.Segment
	skipped  int

	raw      *core.Graph // every segment as given
	resolved *dedup.Result
	deduped  *core.Graph // built from resolved segments
	edges    *core.Graph // raw graph deduplicated at edge level
}

// load reads the network named by args[0] or the config and builds every graph.
func (a *app) load(args []string) (*network, error) {
	path := a.cfg.Network
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errNoNetwork
	}

	opts := []ingest.Option{ingest.WithCostProperty(a.cfg.CostProperty)}
	if a.cfg.Strict {
		opts = append(opts, ingest.WithStrict())
	}
	in, err := ingest.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	for _, s := range in.Skipped {
		a.logger.Debug("feature skipped", "feature", s.Feature, "reason", s.Err)
	}
	a.logger.Info("network loaded", "path", path, "segments", len(in.Segments), "skipped", len(in.Skipped))

	n := &network{segments: in.Segments, skipped: len(in.Skipped)}
	prec := a.cfg.Precision
	if n.raw, err = core.Build(n.segments, core.WithPrecision(prec)); err != nil {
		return nil, fmt.Errorf("raw graph: %w", err)
	}
	n.resolved, err = dedup.Resolve(n.segments, dedup.WithPolicy(a.cfg.Policy()), dedup.WithPrecision(prec))
	if err != nil {
		return nil, fmt.Errorf("dedup: %w", err)
	}
	if n.deduped, err = core.Build(n.resolved.Segments, core.WithPrecision(prec)); err != nil {
		return nil, fmt.Errorf("deduplicated graph: %w", err)
	}
	if n.edges, err = dedup.Graph(n.raw); err != nil {
		return nil, fmt.Errorf("edge dedup: %w", err)
	}
	a.logger.Info("graphs built",
		"nodes", n.raw.NodeCount(),
		"raw_edges", n.raw.EdgeCount(),
		"dedup_edges", n.deduped.EdgeCount(),
		"policy", a.cfg.DedupPolicy,
	)

	return n, nil
}
