package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"phishguard/internal/api"
	"phishguard/internal/checker"
	"phishguard/internal/config"
	"phishguard/internal/fetcher"
	"phishguard/internal/worker"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/similarity/phashsvc"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context, cfg *config.Config, jobsUI http.Handler) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{JobsUI: jobsUI}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupJobsUI builds the riverui dashboard handler. The dashboard is a
// nicety; failures are logged and the service runs without it.
func setupJobsUI(ctx context.Context, riverClient *river.Client[pgx.Tx], pool *pgxpool.Pool) http.Handler {
	ui, err := riverui.NewServer(&riverui.ServerOpts{
		Client: riverClient,
		DB:     pool,
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix: "/riverui",
	})
	if err != nil {
		logger.Warn(ctx, "could not create riverui server", zap.Error(err))

		return nil
	}

	go func() {
		if err := ui.Start(ctx); err != nil {
			logger.Warn(ctx, "could not start riverui server", zap.Error(err))
		}
	}()

	return ui
}

func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Starts the blocklist refresher, member-check workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			prom, err := metrics.NewPrometheus(prometheus.DefaultRegisterer, mp)
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}

			similarityClient := phashsvc.New(&http.Client{}, cfg.Checker.ServiceURL)
			chk := checker.New(strg, strg, similarityClient, prom, checker.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, chk, prom, cfg.Worker.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, setupJobsUI(ctx, riverClient, strg.Pool))

			blocklist := fetcher.New(strg, prom, fetcher.NewOptions(cfg))
			blocklist.Start(ctx)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			blocklist.Stop()
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
