package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promoops/campaigner/internal/server"
	"github.com/promoops/campaigner/internal/telemetry"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the campaigner HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	ctx := context.Background()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, rt.cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	addr := ":3000"
	if rt.cfg.Server != nil && rt.cfg.Server.Port != 0 {
		addr = fmt.Sprintf("%s:%d", rt.cfg.Server.Host, rt.cfg.Server.Port)
	}
	srv := server.New(addr, rt.importer, rt.store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		color.Yellow("\nReceived %s, shutting down...", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		_ = shutdownTelemetry(shutdownCtx)
		rt.close(shutdownCtx)
		color.Green("Server stopped gracefully")
		return nil
	}
}
