package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/app/background"
	"github.com/LavaJover/shvark-expressstores-service/internal/app/setup"
	"github.com/LavaJover/shvark-expressstores-service/internal/config"
	"github.com/LavaJover/shvark-expressstores-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat, cfg.LogConfig.LogOutput)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			slog.Error("failed to release dependencies", "error", err)
		}
	}()

	uc, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v\n", err)
	}

	// Creating gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.CallContextInterceptor()))
	marketplaceHandler, err := grpcapi.NewMarketplaceHandler(uc.Marketplace)
	if err != nil {
		log.Fatalf("failed to init marketplace handler: %v\n", err)
	}
	grpcapi.RegisterMarketplaceServer(grpcServer, marketplaceHandler)

	// Metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(uc.Marketplace, uc.SuggestionUsecase, deps.Metrics, uc.Clock)
	tasks.StartAll(ctx)

	go func() {
		slog.Info("metrics server started", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", cfg.GRPCAddress())
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", "error", err)
		}
		grpcServer.GracefulStop()
	}()

	slog.Info("gRPC server started", "address", cfg.GRPCAddress(), "storage", cfg.Storage.Driver)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
