package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexivanou/weather-mcp/internal/config"
	"github.com/alexivanou/weather-mcp/internal/mcpserver"
	"github.com/alexivanou/weather-mcp/internal/openmeteo"
	"github.com/alexivanou/weather-mcp/internal/service"
	"github.com/alexivanou/weather-mcp/internal/stats"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := openmeteo.NewClient(cfg.Provider)
	svc := service.NewService(client, cfg.Provider.GeocodingLanguage)
	statsCollector := stats.NewCollector()
	handler := mcpserver.NewHandler(svc, statsCollector, logger)
	mcpServer := mcpserver.NewServer(handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Server.Transport {
	case config.TransportHTTP:
		serveHTTP(ctx, cfg, mcpServer, statsCollector, logger)
	default:
		serveStdio(ctx, mcpServer, logger)
	}
}

// newLogger builds a production logger writing to stderr.
// stdout stays reserved for the stdio transport.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

func serveStdio(ctx context.Context, mcpServer *server.MCPServer, logger *zap.Logger) {
	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(logger))

	logger.Info("Starting server", zap.String("transport", string(config.TransportStdio)))
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); !cleanExit(err) {
		logger.Fatal("Server failed", zap.Error(err))
	}
	logger.Info("Server exited")
}

// cleanExit reports whether a transport stopped because of shutdown
func cleanExit(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed)
}

func serveHTTP(ctx context.Context, cfg *config.Config, mcpServer *server.MCPServer, statsCollector *stats.Collector, logger *zap.Logger) {
	router := mcpserver.NewRouter(mcpServer, statsCollector, logger)

	srv := newHTTPServer(cfg.Server.Port, router)

	go func() {
		logger.Info("Starting server",
			zap.String("transport", string(config.TransportHTTP)),
			zap.String("port", cfg.Server.Port),
		)
		if err := srv.ListenAndServe(); !cleanExit(err) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newHTTPServer has no WriteTimeout: GET /mcp is a long-lived event stream.
// Tool calls are bounded by the per-request provider timeouts instead.
func newHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:        ":" + port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}
