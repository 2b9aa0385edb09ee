package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/orthology"
	httpadapter "github.com/aretw0/orthology/pkg/adapters/http"
	"github.com/aretw0/orthology/pkg/adapters/mcp"
	"github.com/aretw0/orthology/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const ShutdownTimeout = 5 * time.Second

// RunServe starts the HTTP API on opts.Addr and blocks until ctx is
// cancelled, then shuts the server down gracefully.
func RunServe(ctx context.Context, opts Options, streams Streams) error {
	logger, err := createLogger(opts.LogLevel, streams.Err)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}

	manager, closeCache, err := setupCache(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	handlerOpts := []httpadapter.Option{
		httpadapter.WithLogger(logger),
		httpadapter.WithLifecycleHooks(metrics.Hooks()),
		httpadapter.WithMetrics(metrics.Handler()),
	}
	if manager != nil {
		handlerOpts = append(handlerOpts, httpadapter.WithCache(manager))
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           httpadapter.NewHandler(handlerOpts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Server Listening", "addr", srv.Addr, "version", strings.TrimSpace(orthology.Version))
		if !opts.Quiet {
			printSystemMessage(streams.Out, "Orthology API listening on %s", srv.Addr)
		}
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful Shutdown Incomplete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		if !opts.Quiet {
			printSystemMessage(streams.Out, "Server stopped gracefully")
		}
		return nil
	}
}

// RunMCP serves the MCP tools over stdio or SSE.
func RunMCP(ctx context.Context, opts Options, streams Streams) error {
	logger, err := createLogger(opts.LogLevel, streams.Err)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(mcp.WithLogger(logger))

	switch opts.Transport {
	case "", "stdio":
		logger.Info("Starting MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, opts.Addr)
	}
	return fmt.Errorf("unknown transport %q (supported: stdio, sse)", opts.Transport)
}
