package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/discussion-backend/internal/adapter/cache"
	"github.com/heartmarshall/discussion-backend/internal/adapter/postgres"
	discussionrepo "github.com/heartmarshall/discussion-backend/internal/adapter/postgres/discussion"
	"github.com/heartmarshall/discussion-backend/internal/adapter/postgres/searchindex"
	voterepo "github.com/heartmarshall/discussion-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/discussion-backend/internal/adapter/schema"
	"github.com/heartmarshall/discussion-backend/internal/auth"
	"github.com/heartmarshall/discussion-backend/internal/config"
	"github.com/heartmarshall/discussion-backend/internal/projection"
	"github.com/heartmarshall/discussion-backend/internal/service/discussion"
	"github.com/heartmarshall/discussion-backend/internal/transport/middleware"
	"github.com/heartmarshall/discussion-backend/internal/transport/rest"
	"github.com/heartmarshall/discussion-backend/migrations"
)

const rateLimitCleanup = time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the discussion service and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := prometheus.Register(postgres.NewPoolCollector(pool)); err != nil {
		return fmt.Errorf("register pool metrics: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	docs, err := cache.NewDocumentCache(cfg.Cache.DocumentCapacity)
	if err != nil {
		return fmt.Errorf("document cache: %w", err)
	}

	validator, err := schema.New()
	if err != nil {
		return fmt.Errorf("load schemas: %w", err)
	}

	searchRepo := searchindex.New(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	dispatcher := projection.NewDispatcher(logger, cfg.Projection)

	svc := discussion.NewService(logger, discussion.Config{
		IndexName:       cfg.Discussion.IndexName,
		StoreTimeout:    cfg.Discussion.StoreTimeout,
		MaxVoteAttempts: cfg.Discussion.MaxVoteAttempts,
	}, discussion.Deps{
		Store:     discussionrepo.New(pool),
		Votes:     voterepo.New(pool),
		Index:     searchRepo,
		Docs:      docs,
		Searches:  cache.NewSearchCache(cfg.Cache.SearchCapacity, cfg.Cache.SearchTTL),
		Validator: validator,
		Signer:    auth.NewSearchKeySigner(cfg.Auth.SearchKeySecret),
		Projector: dispatcher,
		Tx:        postgres.NewTxManager(pool),
	})

	var (
		limiter *middleware.RateLimiter
		limit   middleware.Middleware
	)
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst, rateLimitCleanup)
		limit = limiter.Limit()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Discussions: rest.NewDiscussionHandler(svc, logger),
		Health: rest.NewHealthHandler(Version, map[string]rest.Pinger{
			"database":     pool,
			"search_index": searchRepo,
		}),
		Middleware: []middleware.Middleware{
			middleware.CORS(cfg.CORS),
			limit,
			middleware.Auth(jwtManager, logger),
			middleware.Logger(logger),
		},
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return shutdown(logger, cfg.Server, srv, dispatcher, limiter)
	})

	return g.Wait()
}

// shutdown stops accepting requests, then drains pending projections.
// The pool is closed by Run once every user of it is gone.
func shutdown(logger *slog.Logger, cfg config.ServerConfig, srv *http.Server, dispatcher *projection.Dispatcher, limiter *middleware.RateLimiter) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("projection drain: %w", err))
	}
	if limiter != nil {
		limiter.Stop()
	}

	if len(errs) == 0 {
		logger.Info("shutdown complete")
	}
	return errors.Join(errs...)
}
