package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/asakaida/prodattr/api/prodattr/v1"
	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/handlers"
	"github.com/asakaida/prodattr/internal/handlers/rest"
	"github.com/asakaida/prodattr/internal/infrastructure/cachesync"
	"github.com/asakaida/prodattr/internal/infrastructure/config"
	"github.com/asakaida/prodattr/internal/infrastructure/database"
	"github.com/asakaida/prodattr/internal/infrastructure/logger"
	"github.com/asakaida/prodattr/internal/infrastructure/metrics"
	"github.com/asakaida/prodattr/internal/repositories"
	"github.com/asakaida/prodattr/internal/repositories/memory"
	"github.com/asakaida/prodattr/internal/repositories/postgres"
	"github.com/asakaida/prodattr/internal/services"
	"github.com/asakaida/prodattr/pkg/cache"
	"github.com/asakaida/prodattr/pkg/cache/memorycache"
	"github.com/asakaida/prodattr/pkg/cache/rediscache"
)

const (
	defaultEnv             = "dev"
	shutdownTimeout        = 30 * time.Second
	metricsUpdateInterval  = 15 * time.Second
	redisCacheKeyPrefix    = "prodattr:"
	listEntrySizeOverhead  = 64
	attrSimpleSizeOverhead = 48
)

func main() {
	// Get environment from ENV variable or use default
	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	// Initialize configuration
	if err := config.InitConfig(env); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server terminated", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	// Initialize repositories
	attrRepo, valueRepo, healthCheck, closeStore, err := openStore(cfg, zapLogger)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize service
	service := services.NewProductAttrService(attrRepo, valueRepo, zapLogger)
	collector := metrics.NewCollector()

	if cfg.Cache.Enabled {
		listCache := newListCache(cfg)
		defer listCache.Close()

		service.SetCache(listCache, cfg.Cache.TTL())
		collector.SetCache(listCache)
		zapLogger.Info("Enabled attribute list cache",
			zap.String("driver", cfg.Cache.Driver),
			zap.Duration("ttl", cfg.Cache.TTL()))

		// a local cache must hear about writes made by other instances
		if cfg.Cache.SyncChanges && cfg.Cache.Driver == config.CacheDriverMemory && cfg.Store.Driver == config.StoreDriverPostgres {
			listener := cachesync.NewChangeListener(cfg.Database.ConnectionString(), service.InvalidateCache, zapLogger)
			if err := listener.Start(); err != nil {
				return err
			}
			defer listener.Stop()
		}
	}

	exporter := metrics.NewPrometheusExporter(collector)

	// Create gRPC server
	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(zapLogger),
			metrics.UnaryServerInterceptor(collector, exporter),
		),
	)
	pb.RegisterProductAttrServiceServer(grpcServer, handlers.NewProductAttrHandler(service))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ProductAttrService_ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Start listening
	grpcAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	restServer := rest.NewServer(service,
		rest.WithPort(cfg.Server.HTTPPort),
		rest.WithLogger(zapLogger),
		rest.WithHealthCheck(healthCheck),
	)
	metricsServer := exporter.NewHTTPServer(fmt.Sprintf(":%d", cfg.Server.MetricsPort))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go exporter.RunUpdater(ctx, metricsUpdateInterval)

	// Start servers in goroutines
	serverErrors := make(chan error, 3)
	go func() {
		zapLogger.Info("gRPC server listening", zap.String("addr", grpcAddr))
		if err := grpcServer.Serve(listener); err != nil {
			serverErrors <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()
	go func() {
		if err := restServer.Start(); err != nil {
			serverErrors <- err
		}
	}()
	go func() {
		zapLogger.Info("Metrics server listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	var serveErr error
	select {
	case serveErr = <-serverErrors:
		zapLogger.Error("Server error", zap.Error(serveErr))
	case sig := <-sigChan:
		zapLogger.Info("Received signal", zap.String("signal", sig.String()))
	}

	zapLogger.Info("Initiating graceful shutdown...")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Warn("Error shutting down HTTP server", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Warn("Error shutting down metrics server", zap.Error(err))
	}

	// Channel to notify when graceful stop completes
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	// Wait for graceful stop or timeout
	select {
	case <-stopped:
		zapLogger.Info("gRPC server stopped gracefully")
	case <-shutdownCtx.Done():
		zapLogger.Warn("Shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	}

	zapLogger.Info("Shutdown complete")
	return serveErr
}

// openStore builds the repositories selected by STORE_DRIVER.
func openStore(cfg *config.Config, zapLogger *zap.Logger) (
	repositories.ProductAttrRepository,
	repositories.ProductAttrValueRepository,
	rest.HealthChecker,
	func(),
	error,
) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		zapLogger.Warn("Using in-memory store, data is lost on restart")
		noop := func(context.Context) error { return nil }
		return memory.NewProductAttrRepository(), memory.NewProductAttrValueRepository(), noop, func() {}, nil
	}

	// Connect to database
	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	zapLogger.Info("Connected to database",
		zap.String("user", cfg.Database.User),
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Database))

	projectRoot, err := config.ProjectRoot()
	if err != nil {
		pg.Close()
		return nil, nil, nil, nil, err
	}
	if err := pg.RunMigrations(filepath.Join(projectRoot, database.MigrationsPathSuffix)); err != nil {
		pg.Close()
		return nil, nil, nil, nil, err
	}

	closeStore := func() {
		if err := pg.Close(); err != nil {
			zapLogger.Warn("Error closing database connection", zap.Error(err))
		}
	}
	return postgres.NewPostgresProductAttrRepository(pg.DB),
		postgres.NewPostgresProductAttrValueRepository(pg.DB),
		pg.HealthCheck,
		closeStore,
		nil
}

// newListCache builds the enabled attribute list cache selected by CACHE_DRIVER.
func newListCache(cfg *config.Config) cache.Cache[[]*entities.ProductAttrSimple] {
	if cfg.Cache.Driver == config.CacheDriverRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return rediscache.New[[]*entities.ProductAttrSimple](client, redisCacheKeyPrefix)
	}

	return memorycache.New(&memorycache.Config[[]*entities.ProductAttrSimple]{
		MaxSizeBytes:  cfg.Cache.MaxMemoryBytes,
		SizeOf:        listSize,
		EnableMetrics: cfg.Cache.Metrics,
	})
}

// listSize estimates the footprint of an assembled attribute list.
func listSize(key string, list []*entities.ProductAttrSimple) int64 {
	size := int64(listEntrySizeOverhead + len(key))
	for _, attr := range list {
		size += int64(attrSimpleSizeOverhead + len(attr.Name))
		for _, value := range attr.Values {
			size += int64(attrSimpleSizeOverhead + len(value.Name))
		}
	}
	return size
}
