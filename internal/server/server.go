package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-bff/internal/auth"
	"storefront-bff/internal/config"
	"storefront-bff/internal/distributed"
	"storefront-bff/internal/jobs"
	"storefront-bff/internal/mailer"
	"storefront-bff/internal/metrics"
	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/storefront"
	"storefront-bff/internal/version"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

const discoveryTTL = time.Hour

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	election    *distributed.Election
	jobManager  *jobs.JobManager
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	discovery := auth.NewDiscoveryCache(cfg.CustomerAuth.IssuerURL, discoveryTTL)
	authProvider := auth.NewProvider(cfg.CustomerAuth, discovery)

	catalogService, err := setupCatalogService(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	var mailProvider middlewares.MailProvider
	if cfg.Mail != nil {
		mailProvider = mailer.New(*cfg.Mail, logger)
	}

	var election *distributed.Election
	if cfg.Distributed != nil && cfg.Distributed.Enabled {
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.LeaderIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.LeaderIndex,
				MinIdleConns: 2,
			})
		}

		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "election", client)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis election collector: already registered", "error", err)
			}
		}

		hostname := os.Getenv("HOSTNAME")
		if hostname == "" {
			hostname = uuid.New().String()
		}

		election = &distributed.Election{
			Redis:      client,
			InstanceID: hostname,
			TTL:        cfg.Distributed.TTL,
			Logger:     logger,
		}
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, authProvider, catalogService, mailProvider)

	jobManager := jobs.NewJobManager(election, logger)
	jobManager.Register(jobs.NewDiscoveryRefreshJob(discovery, discoveryTTL, logger))
	jobManager.Register(jobs.NewCatalogPrefetchJob(catalogService, cfg.Catalog.PrefetchInterval, cfg.Cache.Type == "redis", logger))

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		election:    election,
		jobManager:  jobManager,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	s.logger.Info("Starting", "version", version.GetFullVersion())

	if s.election != nil {
		go s.election.Start(s.appCtx)
	}

	s.jobManager.Start(s.appCtx)

	go func() {
		if s.election != nil {
			s.logger.Info("Server started", "port", s.cfg.Server.Port, "instance", s.election.InstanceID)
		} else {
			s.logger.Info("Server started", "port", s.cfg.Server.Port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting down server")

	s.jobManager.Shutdown(shutdownCtx)
	s.cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server exited")
	return nil
}

func setupCatalogService(cfg *config.Config, logger *slog.Logger) (*storefront.Service, error) {
	client := storefront.NewClient(cfg.Storefront)

	var cache storefront.CacheProvider
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := storefront.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis catalog cache: %w", err)
		}
		cache = redisCache
	default:
		cache = storefront.NewMemCache(cfg.Catalog.TTL)
	}

	return storefront.NewService(client, cache, cfg.Catalog, logger), nil
}
