package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/tickets/internal/adapters/repository"
	app "github.com/okian/tickets/internal/app"
	"github.com/okian/tickets/internal/config"
	"github.com/okian/tickets/pkg/logger"
	"github.com/okian/tickets/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run wires the analyses and returns the process exit code.
func run(ctx context.Context) int {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// One decoder for the process, handed to the store explicitly.
	decoder := repository.NewDecoder()
	store := repository.NewFileStore(cfg.TicketsPath, repository.WithDecoder(decoder))
	svc := app.New(
		app.WithStore(store),
		app.WithRoute(cfg.Route()),
		app.WithLogger(log),
	)

	log.Debug(ctx, "analysing tickets",
		logger.String("tickets_path", cfg.TicketsPath),
		logger.String("origin", cfg.OriginName),
		logger.String("destination", cfg.DestinationName),
	)

	code := 0
	analyses := []struct {
		name string
		run  func(context.Context) error
	}{
		{app.AnalysisDuration, svc.MinimumFlightTime},
		{app.AnalysisPrice, svc.PriceDifference},
	}
	for _, a := range analyses {
		if err := a.run(ctx); err != nil {
			log.Error(ctx, "analysis failed",
				logger.String("analysis", a.name),
				logger.Error(err),
				logger.String("trace", fmt.Sprintf("%+v", err)),
			)
			code = 1
		}
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error(ctx, "failed to write metrics textfile", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
			code = 1
		}
	}

	return code
}
