package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/internal/config"
	"github.com/katalvlaran/tourgraph/internal/httpapi"
	"github.com/katalvlaran/tourgraph/internal/observability"
	"github.com/katalvlaran/tourgraph/internal/portal"
	"github.com/katalvlaran/tourgraph/store"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// serve wires tracing, metrics, storage, the portal service and the HTTP
// router, then blocks until ctx is cancelled. The graph is saved one last
// time on the way out.
func (a *app) serve(ctx context.Context) (err error) {
	cfg := a.cfg
	logger := a.logger.Logger

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRate:     cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		if serr := tp.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			logger.Warn("tracer shutdown", zap.Error(serr))
		}
	}()

	metrics := observability.NewCollector("")

	st, err := store.Open(cfg.StoreConfig(), logger)
	if err != nil {
		return err
	}
	svc, err := portal.New(ctx, st,
		portal.WithLogger(logger),
		portal.WithMetrics(metrics),
		portal.WithTracer(tp),
	)
	if err != nil {
		_ = st.Close()
		return err
	}
	defer func() {
		if cerr := svc.Close(context.WithoutCancel(ctx)); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if cfg.Demo.SeedOnEmpty {
		seeded, serr := svc.SeedIfEmpty(ctx, cfg.Demo.Seed)
		if serr != nil {
			return fmt.Errorf("seed demo area: %w", serr)
		}
		if seeded {
			logger.Info("seeded demo area", zap.Int64("seed", cfg.Demo.Seed))
		}
	}

	if a.configPath != "" {
		w, werr := config.NewWatcher(a.configPath, cfg, logger)
		if werr != nil {
			return werr
		}
		defer func() { _ = w.Stop() }()
		w.OnChange(func(next *config.Config) {
			if lerr := a.logger.SetLevel(next.Log.Level); lerr != nil {
				logger.Warn("config reload: keep log level", zap.Error(lerr))
			}
		})
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	router := httpapi.NewRouter(svc, httpapi.Options{
		Logger:      logger,
		Metrics:     metrics,
		Tracer:      tp,
		MetricsPath: metricsPath,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	return httpapi.Serve(ctx, httpapi.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router.Handler(), logger, nil)
}
