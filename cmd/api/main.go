package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/soheilhy/cmux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/nyashahama/tagline-studio-backend/internal/ai"
	"github.com/nyashahama/tagline-studio-backend/internal/api"
	"github.com/nyashahama/tagline-studio-backend/internal/config"
	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

func main() {
	// ── Config ────────────────────────────────────────────────────────────────
	// Loaded before the logger so LOG_LEVEL applies from the first line.
	cfg, err := config.Load()

	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err != nil {
		logger.Error("fatal", "error", fmt.Errorf("config: %w", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	production := false
	if cfg != nil {
		production = cfg.IsProduction()
		_ = level.UnmarshalText([]byte(cfg.LogLevel))
	}

	opts := &slog.HandlerOptions{Level: level}
	if production {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port, "generator", cfg.Generator)

	// ── Generator ─────────────────────────────────────────────────────────────
	generator := newGenerator(cfg, logger)

	// ── HTTP handler ──────────────────────────────────────────────────────────
	handler := api.NewServer(generator, api.Config{
		Env:        cfg.Env,
		CORSOrigin: cfg.CORSOrigin,
		Backend:    cfg.Generator,
	}, logger)

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // the provider call has no timeout of its own
		IdleTimeout:  120 * time.Second,
	}

	// ── gRPC health ───────────────────────────────────────────────────────────
	// Served on the same port as HTTP so orchestrators can use either probe.
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// ── Listener ──────────────────────────────────────────────────────────────
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	mux := cmux.New(lis)
	grpcL := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 3)
	go func() {
		if err := grpcServer.Serve(grpcL); err != nil && !errors.Is(err, grpc.ErrServerStopped) && !isClosedConn(err) {
			serverErr <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		if err := srv.Serve(httpL); err != nil && !errors.Is(err, http.ErrServerClosed) && !isClosedConn(err) {
			serverErr <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		logger.Info("server listening", "addr", lis.Addr().String())
		if err := mux.Serve(); err != nil && !isClosedConn(err) {
			serverErr <- fmt.Errorf("cmux: %w", err)
		}
	}()

	// Block until either a signal arrives or a server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	grpcServer.GracefulStop()
	mux.Close()

	logger.Info("shutdown complete")
	return nil
}

// newGenerator picks the backend named by GENERATOR. A missing OpenAI key is
// not fatal: the adapter is wired without a completer and every request gets
// the configuration-error response until the key is set.
func newGenerator(cfg *config.Config, logger *slog.Logger) tagline.Generator {
	if cfg.Generator == config.BackendTemplate {
		logger.Info("generator: deterministic templates")
		return tagline.Engine{}
	}

	chain := ai.DefaultChain(cfg.OpenAIModel, cfg.OpenAIFallbackModel)

	completer, err := ai.NewOpenAICompleter(ai.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Temperature: cfg.OpenAITemperature,
	})
	if err != nil {
		logger.Warn("generator: OpenAI not configured, requests will fail until OPENAI_API_KEY is set", "error", err)
		return ai.NewAdapter(nil, chain, logger)
	}

	logger.Info("generator: OpenAI",
		"model", cfg.OpenAIModel,
		"fallback_model", cfg.OpenAIFallbackModel,
	)
	return ai.NewAdapter(completer, chain, logger)
}

func isClosedConn(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, cmux.ErrListenerClosed) ||
		strings.Contains(err.Error(), "use of closed network connection")
}
