// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rpgsack/catalog"
	"github.com/katalvlaran/rpgsack/config"
	"github.com/katalvlaran/rpgsack/knapsack"
	"github.com/katalvlaran/rpgsack/loot"
	"github.com/katalvlaran/rpgsack/metrics"
	"github.com/katalvlaran/rpgsack/persona"
)

var errUsage = errors.New("usage: rpgsack <solve|loot|catalog|slots> [flags]")

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	persona persona.Persona
	log     logr.Logger
	out     io.Writer
	cat     *catalog.Catalog
	rec     *loot.Reconciler
	reg     *prometheus.Registry
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"solve":   runSolve,
	"loot":    runLoot,
	"catalog": runCatalog,
	"slots":   runSlots,
}

// run parses args, wires the app and dispatches to a subcommand.
func run(ctx context.Context, args []string, out io.Writer) (err error) {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	fs := pflag.NewFlagSet("rpgsack "+args[0], pflag.ContinueOnError)
	config.BindFlags(fs)
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	zl, err := newZap(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	a := &app{
		cfg: cfg,
		log: zapr.NewLogger(zl).WithName("rpgsack"),
		out: out,
		reg: prometheus.NewRegistry(),
	}
	var known bool
	if a.persona, known = cfg.PersonaValue(); !known {
		a.log.Info("unknown persona, using balanced", "persona", cfg.Persona)
	}
	if a.cat, err = loadCatalog(cfg.Catalog); err != nil {
		return err
	}
	rm, err := metrics.NewRecorder(a.reg)
	if err != nil {
		return err
	}
	a.rec = loot.NewReconciler(
		loot.WithLogger(a.log.WithName("loot")),
		loot.WithObserver(rm),
		loot.WithRescoreKept(),
		loot.WithSolverOptions(knapsack.WithMaxCells(cfg.MaxCells)),
	)

	a.log.V(1).Info("configured",
		"command", args[0],
		"persona", a.persona.String(),
		"capacity", cfg.Capacity,
		"catalog", a.cat.Len())

	if err = cmd(ctx, a, fs.Args()); err != nil {
		return err
	}

	if cfg.Metrics != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics, a.reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// newZap builds a production logger, or a development one at debug level.
func newZap(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lvl.Level() == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl
	return zc.Build()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
