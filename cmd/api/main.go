// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Canon HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent, seed included).
//  6. Build the object archive.
//  7. Wire domain services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/taibuivan/canon/internal/api"
	"github.com/taibuivan/canon/internal/core/assistant"
	"github.com/taibuivan/canon/internal/core/bible"
	"github.com/taibuivan/canon/internal/core/curation"
	"github.com/taibuivan/canon/internal/core/highlight"
	"github.com/taibuivan/canon/internal/core/lexicon"
	"github.com/taibuivan/canon/internal/core/manuscript"
	"github.com/taibuivan/canon/internal/core/note"
	"github.com/taibuivan/canon/internal/core/sermon"
	"github.com/taibuivan/canon/internal/core/session"
	"github.com/taibuivan/canon/internal/platform/config"
	"github.com/taibuivan/canon/internal/platform/constants"
	"github.com/taibuivan/canon/internal/platform/migration"
	"github.com/taibuivan/canon/internal/platform/objectstore"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
	redisstore "github.com/taibuivan/canon/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("archive_enabled", cfg.ArchiveEnabled()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object archive ─────────────────────────────────────────────────
	archive, err := objectstore.New(startupCtx, objectstore.Options{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	}, log)
	must(log, err, "build object archive")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	bibleService := bible.NewService(bible.NewPostgresRepository(pool), log)
	sessionService := session.NewService(session.NewPostgresRepository(pool), log)
	noteService := note.NewService(note.NewPostgresRepository(pool), sessionService, log)
	highlightService := highlight.NewService(highlight.NewPostgresRepository(pool), sessionService, log)
	lexiconService := lexicon.NewService(lexicon.NewPostgresRepository(pool), archive, log)
	manuscriptService := manuscript.NewService(manuscript.NewPostgresRepository(pool), log)
	sermonService := sermon.NewService(
		sermon.NewPostgresRepository(pool),
		sessionService,
		sermon.NewRedisLinkStore(rdb),
		archive,
		cfg.ExportTTL,
		log,
	)
	curationService := curation.NewService(curation.NewPostgresRepository(pool), curation.NewHTTPFetcher(30*time.Second), log)
	assistantService := assistant.NewService(noteService, highlightService, lexiconService, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Bible:      bible.NewHandler(bibleService),
		Session:    session.NewHandler(sessionService),
		Note:       note.NewHandler(noteService),
		Highlight:  highlight.NewHandler(highlightService),
		Lexicon:    lexicon.NewHandler(lexiconService, cfg.MaxUploadBytes),
		Manuscript: manuscript.NewHandler(manuscriptService),
		Sermon:     sermon.NewHandler(sermonService),
		Curation:   curation.NewHandler(curationService),
		Assistant:  assistant.NewHandler(assistantService),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	// The rate limiter's janitor lives as long as this context.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
