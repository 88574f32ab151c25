package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/config"
	"jersey-quiz-service/internal/logging"
	transport "jersey-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	b, err := openBackends(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening backends: %w", err)
	}
	defer b.Close()

	service := app.NewService(b.catalog, b.scores,
		app.WithTopLimit(cfg.Scores.TopLimit),
		app.WithLogger(logger),
	)
	router := transport.NewRouter(service, logger, transport.RouterConfig{
		CORSOrigins: cfg.Server.CORSOrigins,
		Checks:      b.checks,
	})
	srv := transport.NewServer(":"+finalPort, router, logger,
		config.TTLDuration(cfg.Server.ReadTimeout, 15*time.Second),
		config.TTLDuration(cfg.Server.WriteTimeout, 15*time.Second),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting jersey quiz service", "addr", ":"+finalPort)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
