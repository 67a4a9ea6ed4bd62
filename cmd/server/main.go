package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alanyang/employee-mcp/internal/config"
	"github.com/alanyang/employee-mcp/internal/lib/logger/sl"
	"github.com/alanyang/employee-mcp/internal/wire"
)

func main() {
	cfg := config.MustLoad()

	// stdout carries the stdio protocol, so logs always go to stderr.
	logger := slog.New(sl.NewContextHandler(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	})))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := wire.Build(cfg)

	if cfg.Transport == config.TransportStdio {
		slog.Info("MCP server serving on stdio")
		if err := app.MCPServer.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("stdio server error", sl.Err(err))
			os.Exit(1)
		}
		slog.Info("employee-mcp server stopped")
		return
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP + MCP server listening", "addr", app.Server.Addr)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server error", sl.Err(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", sl.Err(err))
	}

	slog.Info("employee-mcp server stopped")
}
