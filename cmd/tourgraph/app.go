package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/internal/config"
	"github.com/katalvlaran/tourgraph/internal/logging"
	"github.com/katalvlaran/tourgraph/internal/portal"
	"github.com/katalvlaran/tourgraph/internal/render"
	"github.com/katalvlaran/tourgraph/store"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	output     string
	verbose    bool

	cfg    *config.Config
	logger *logging.Logger
	out    *render.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tourgraph",
		Short:         "Scenic-area spots, paths and route planning",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml/json/toml); env TOURGRAPH_* always applies")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "table", "output format: table|json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newServeCmd(a),
		newSpotCmd(a),
		newPathCmd(a),
		newRouteCmd(a),
		newSeedCmd(a),
		newStatsCmd(a),
		newImportCmd(a),
	)

	return root
}

// init loads config and builds the logger and renderer. One-shot commands
// log at warn unless --verbose, so tables are not buried in log lines.
func (a *app) init(cmd *cobra.Command) error {
	format, err := render.ParseFormat(a.output)
	if err != nil {
		return err
	}
	a.out = render.New(cmd.OutOrStdout(), format)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	switch {
	case a.verbose:
		level = "debug"
	case cmd.Name() != "serve" && level != "error":
		level = "warn"
	}
	logger, err := logging.New(level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// withService opens the configured store, runs fn and closes the service
// with a final save.
func (a *app) withService(ctx context.Context, fn func(*portal.Service) error) (err error) {
	st, err := store.Open(a.cfg.StoreConfig(), a.logger.Logger)
	if err != nil {
		return err
	}
	svc, err := portal.New(ctx, st, portal.WithLogger(a.logger.Logger))
	if err != nil {
		_ = st.Close()
		return err
	}
	defer func() {
		if cerr := svc.Close(context.WithoutCancel(ctx)); cerr != nil {
			a.logger.Error("close service", zap.Error(cerr))
			err = errors.Join(err, cerr)
		}
	}()

	return fn(svc)
}

// succeed prints a confirmation through the renderer.
func (a *app) succeed(format string, args ...any) error {
	return a.out.Success(format, args...)
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("expected %s", usage)
		}
		return nil
	}
}
