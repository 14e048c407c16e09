package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/uprating-calculator/internal/calculator"
	"github.com/iwvelando/uprating-calculator/internal/config"
	"github.com/iwvelando/uprating-calculator/internal/server"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator web form and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer a.sync()

			serverConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverConf.Address = address
			}
			if maxRequestSize != "" {
				size, err := server.ParseSize(maxRequestSize)
				if err != nil {
					return err
				}
				serverConf.SetRequestSizeBytes(size)
			}

			logger := a.logger
			if serverConf.Logging != (config.LoggingConfig{}) {
				if logger, err = initializeLogger(a.logLevel, a.conf.Logging, serverConf.Logging); err != nil {
					return fmt.Errorf("failed to initialize server logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
			}

			if err := a.conf.Limits.Validate(); err != nil {
				return fmt.Errorf("invalid limits: %w", err)
			}
			tree, err := a.loadParameters()
			if err != nil {
				return fmt.Errorf("failed to load parameters: %w", err)
			}
			calc := calculator.New(logger, tree, a.conf.Limits, a.conf.Parameters.Options)

			handler := server.NewHandler(logger, server.Options{
				Calculator:     calc,
				Defaults:       calculator.InputFromConfig(a.conf.Calculation),
				MaxRequestSize: serverConf.RequestSizeBytes(),
				AllowedOrigins: serverConf.AllowedOrigins,
				Version:        version,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return listenAndServe(ctx, logger, serverConf.Address, handler)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flags.StringVar(&address, "address", "", "listen address override, e.g. :8080")
	flags.StringVar(&maxRequestSize, "max-request-size", "", "request body limit override, e.g. 64K")

	return cmd
}

// listenAndServe runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully.
func listenAndServe(ctx context.Context, logger *zap.Logger, address string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.serve"),
			zap.String("address", address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "main.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
