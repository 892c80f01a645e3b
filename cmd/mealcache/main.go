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
	"strconv"
	"syscall"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/na2na-p/mealcache/internal/config"
	"github.com/na2na-p/mealcache/internal/handler"
	"github.com/na2na-p/mealcache/internal/handler/middleware"
	"github.com/na2na-p/mealcache/internal/infrastructure/disk"
	"github.com/na2na-p/mealcache/internal/infrastructure/httpfetch"
	"github.com/na2na-p/mealcache/internal/infrastructure/imaging"
	"github.com/na2na-p/mealcache/internal/infrastructure/logging"
	"github.com/na2na-p/mealcache/internal/infrastructure/memory"
	"github.com/na2na-p/mealcache/internal/infrastructure/metrics"
	"github.com/na2na-p/mealcache/internal/infrastructure/minio"
	"github.com/na2na-p/mealcache/internal/infrastructure/redis"
	"github.com/na2na-p/mealcache/internal/infrastructure/s3"
	"github.com/na2na-p/mealcache/internal/infrastructure/signedurl"
	"github.com/na2na-p/mealcache/internal/infrastructure/storageapi"
	"github.com/na2na-p/mealcache/internal/usecase"
)

func main() {
	slog.SetDefault(logging.NewLogger(os.Stdout, slog.LevelInfo))

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.NewLogger(os.Stdout, logging.ParseLevel(cfg.Log.Level)))

	ctx := context.Background()
	var checkers []usecase.HealthChecker

	store, storeChecker, err := newRemoteObjectStore(cfg)
	if err != nil {
		return err
	}
	checkers = append(checkers, storeChecker)
	slog.Info("remote object store initialized", "backend", cfg.Storage.Backend)

	var signedURLs usecase.SignedURLCache
	switch cfg.Cache.SignedURLBackend {
	case config.SignedURLBackendRedis:
		redisConn, err := redis.NewRedisConnection(ctx, redis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return err
		}
		defer func() { _ = redisConn.Close() }()
		redisClient := redis.NewRedisClient(redisConn)
		signedURLs = redis.NewSignedURLCache(redisClient, cfg.Cache.SignedURLMaxEntries, cfg.Cache.SignedURLOverflowMargin)
		checkers = append(checkers, redis.NewRedisHealthChecker(redisClient))
		slog.Info("Redis connection established", "redis", cfg.Redis.String())
	default:
		signedURLs = signedurl.NewMemoryStore(cfg.Cache.SignedURLMaxEntries, cfg.Cache.SignedURLOverflowMargin)
	}

	diskCache, err := disk.Open(cfg.Cache.DiskDir, cfg.Cache.DiskMaxBytes)
	if err != nil {
		return err
	}
	checkers = append(checkers, disk.NewHealthChecker(diskCache))
	slog.Info("disk cache opened",
		"dir", cfg.Cache.DiskDir,
		"entries", diskCache.Len(),
		"bytes", diskCache.CurrentUsageBytes(),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var preloadLimiter *rate.Limiter
	if cfg.Fetch.PreloadRate > 0 {
		preloadLimiter = rate.NewLimiter(rate.Limit(cfg.Fetch.PreloadRate), max(cfg.Fetch.PreloadBurst, 1))
	}

	imageUC := usecase.NewImageFetchUseCase(
		memory.NewImageCache(cfg.Cache.MemoryMaxBytes),
		signedURLs,
		diskCache,
		store,
		httpfetch.NewFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.MaxBodyBytes),
		imaging.NewDecoder(),
		metrics.NewProm(registry),
		usecase.ImageFetchConfig{
			SignTimeout:    cfg.Fetch.SignTimeout,
			FetchTimeout:   cfg.Fetch.Timeout,
			PreloadTimeout: cfg.Fetch.PreloadTimeout,
			PreloadLimiter: preloadLimiter,
		},
	)
	defer imageUC.Close()
	registry.MustRegister(metrics.NewCacheInfoCollector(imageUC))

	maintenanceCtx, stopMaintenance := context.WithCancel(ctx)
	defer stopMaintenance()
	maintenance := usecase.NewCacheMaintenance(imageUC, cfg.Cache.SignedURLSweepInterval, cfg.Cache.DiskSweepInterval)
	go maintenance.Run(maintenanceCtx)

	readinessUC := usecase.NewReadinessUseCase(checkers...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", middleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	imageHandler := handler.NewImageHandler(imageUC, cfg.Storage.DefaultBucket)
	e.GET("/images/*", imageHandler.HandleGet)
	e.HEAD("/images/*", imageHandler.HandleGet)
	e.GET("/buckets/:bucket/images/*", imageHandler.HandleGet)
	e.HEAD("/buckets/:bucket/images/*", imageHandler.HandleGet)
	e.POST("/preload", imageHandler.HandlePreload)

	cacheHandler := handler.NewCacheHandler(imageUC)
	cacheGroup := e.Group("/cache")
	cacheGroup.GET("/info", cacheHandler.HandleInfo)
	cacheGroup.DELETE("", cacheHandler.HandleClearAll)
	cacheGroup.DELETE("/expired", cacheHandler.HandleClearExpired)

	port := strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	stopMaintenance()
	imageUC.Close()

	slog.Info("server stopped gracefully")
	return nil
}

// newRemoteObjectStore は設定されたバックエンドの署名付きURL発行クライアントとヘルスチェッカーを返す
func newRemoteObjectStore(cfg *config.Config) (usecase.RemoteObjectStore, usecase.HealthChecker, error) {
	bucket := cfg.Storage.DefaultBucket

	switch cfg.Storage.Backend {
	case config.BackendS3:
		conn, err := s3.NewS3Connection(s3.S3Config{
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
			Region:          cfg.Storage.S3.Region,
			Bucket:          bucket,
			UsePathStyle:    cfg.Storage.S3.UsePathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		client := s3.NewS3Client(conn, bucket)
		return client, s3.NewS3HealthChecker(client), nil

	case config.BackendMinIO:
		conn, err := minio.NewConnection(minio.Config{
			Endpoint:        cfg.Storage.MinIO.Endpoint,
			AccessKeyID:     cfg.Storage.MinIO.AccessKeyID,
			SecretAccessKey: cfg.Storage.MinIO.SecretAccessKey,
			UseSSL:          cfg.Storage.MinIO.UseSSL,
			Region:          cfg.Storage.MinIO.Region,
			Bucket:          bucket,
		})
		if err != nil {
			return nil, nil, err
		}
		client := minio.NewClient(conn, bucket)
		return client, minio.NewHealthChecker(client), nil

	case config.BackendStorageAPI:
		client, err := storageapi.NewClient(storageapi.Config{
			BaseURL:      cfg.Storage.StorageAPI.BaseURL,
			ServiceToken: cfg.Storage.StorageAPI.ServiceToken,
			JWTSecret:    cfg.Storage.StorageAPI.JWTSecret,
			Bucket:       bucket,
		}, &http.Client{Timeout: cfg.Fetch.SignTimeout})
		if err != nil {
			return nil, nil, err
		}
		return client, storageapi.NewHealthChecker(client), nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// 信頼するプロキシのCIDRが指定されている場合、そのCIDRからのX-Forwarded-Forヘッダーのみを信頼する。
// 指定されていない場合、IPスプーフィング防止のため接続元IPを直接使用する。
func buildIPExtractor(trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if len(trustedProxyCIDRs) == 0 {
		slog.Info("trusted proxy CIDRs not configured, using direct IP extraction")
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
