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
	"syscall"
	"time"

	"partyline/contract"
	"partyline/domain/event"
	"partyline/domain/panel"
	"partyline/domain/persona"
	"partyline/infrastructure/grpc/callapi"
	"partyline/infrastructure/grpc/client"
	"partyline/infrastructure/grpc/server"
	"partyline/infrastructure/llm"
	"partyline/infrastructure/scraper"
	"partyline/infrastructure/simulated"
	"partyline/infrastructure/storage"
	"partyline/infrastructure/web"
	"partyline/internal"
	"partyline/observability"
	"partyline/runtime"
	"partyline/runtime/workers"
	"partyline/services"
	"partyline/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Party line terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the servers lifecycle and
// centralizes error reporting, so that every defer runs before exiting.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	policy, err := panel.ParseTogglePolicy(config.InCallToggle)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := persona.Default()
	metrics := observability.NewMetrics()
	errChan := make(chan error, 3)

	// 2. Event pipeline & Supervision
	bus := runtime.NewEventBus(logger, config.EventBufferSize).
		WithDropHook(func(event.DomainEvent) { metrics.DroppedEvents.Inc() })
	sup := workers.NewSupervisor(logger, config.RestartInterval).
		WithRestartHook(metrics.WorkerRestarted)

	// 3. Call backend
	var (
		backend     contract.CallBackend
		callService services.ICallService
		fetcher     contract.PageFetcher
		grpcServer  *grpc.Server
	)
	switch config.BackendMode {
	case internal.BackendLocal:
		db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
			database.StartDebugServer(db, config.DebugPort, "/inspect", storage.InspectMapper)
		}

		fetcher = scraper.NewFetcher(scraper.Config{
			Timeout:         config.FetchTimeout,
			MaxContentBytes: config.MaxContentBytes,
		}, logger)
		callService = services.NewCallService(logger, catalog,
			storage.NewCallRepository(db, logger), fetcher, buildSummarizer(config, logger), bus)
		backend = services.NewLocalBackend(callService)

		if config.GRPCPort > 0 {
			grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
			callapi.RegisterCallServiceServer(grpcServer, server.NewCallServer(logger, callService))
		}

	case internal.BackendGRPC:
		conn, err := grpc.NewClient(config.BackendAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return exitConfig, fmt.Errorf("backend address %q: %w", config.BackendAddr, err)
		}
		defer func() { _ = conn.Close() }()
		backend = client.NewCallClient(conn, config.BackendTimeout)

	case internal.BackendSimulated:
		backend = simulated.NewBackend(logger, config.SimulatedCreateDelay, config.SimulatedMemberDelay)
	}
	logger.Info("Call backend ready", "mode", config.BackendMode)

	// 4. Panel & Workers
	panelService := services.NewPanelService(logger, catalog,
		observability.NewInstrumentedBackend(backend, metrics), policy, config.AnnouncementTTL).
		WithBackendTimeout(config.BackendTimeout)
	panelService.Subscribe(changeCounter{metrics: metrics})

	sup.Add(
		workers.NewEventFanout(logger, bus.Events(), config.SinkTimeout,
			sink.NewLogSink(logger), sink.NewMetricsSink(metrics)),
		workers.NewAnnouncementJanitor(logger, panelService, config.JanitorInterval),
	)
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	// 5. gRPC Server
	if grpcServer != nil {
		address := fmt.Sprintf("0.0.0.0:%d", config.GRPCPort)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
		}
		go func() {
			logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
			for serviceName := range grpcServer.GetServiceInfo() {
				logger.Debug("📡 gRPC exposed services", "name", serviceName)
			}
			if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	// 6. HTTP Server
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.HTTPHost, config.HTTPPort),
		Handler:           web.NewServer(logger, catalog, panelService, callService, fetcher, metrics).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		stop()
		<-supDone
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	<-supDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// buildSummarizer falls back to plain excerpts when no API key is configured.
func buildSummarizer(config internal.Config, logger *slog.Logger) contract.Summarizer {
	if !config.SummarizerEnabled() {
		logger.Warn("OPENROUTER_API_KEY not set, summaries are page excerpts")
		return llm.NewExcerptSummarizer(config.ExcerptWords)
	}
	return llm.NewOpenRouterSummarizer(llm.OpenRouterConfig{
		APIKey:      config.OpenRouterAPIKey,
		BaseURL:     config.OpenRouterBaseURL,
		Model:       config.SummaryModel,
		MaxTokens:   config.SummaryMaxTokens,
		Temperature: config.SummaryTemperature,
		Referer:     config.SummaryReferer,
		Timeout:     config.FetchTimeout,
	}, logger)
}

type changeCounter struct {
	metrics *observability.Metrics
}

func (c changeCounter) Render(changes []panel.Change) {
	c.metrics.PanelChanges.Add(float64(len(changes)))
}
