package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/issuetrack/reporting-system/internal/api"
	"github.com/issuetrack/reporting-system/internal/core/ports"
	"github.com/issuetrack/reporting-system/internal/core/service"
	"github.com/issuetrack/reporting-system/internal/infrastructure/config"
	memstore "github.com/issuetrack/reporting-system/internal/infrastructure/db/memory"
	mongostore "github.com/issuetrack/reporting-system/internal/infrastructure/db/mongo"
	redisstore "github.com/issuetrack/reporting-system/internal/infrastructure/db/redis"
	b2store "github.com/issuetrack/reporting-system/internal/infrastructure/storage/b2"
	"github.com/issuetrack/reporting-system/internal/session"
	"github.com/issuetrack/reporting-system/pkg/logger"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	redisdriver "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, !cfg.Production())
	ctx := context.Background()

	// --- Document store: external when configured, in-memory otherwise ---
	var (
		userRepo   ports.UserRepository
		reportRepo ports.ReportRepository
		db         *mongodriver.Database
	)
	if cfg.StoreFallback() {
		log.Warn().Msg("MONGO_URI not set, using in-memory store (development only, data is lost on restart)")
		userRepo = memstore.NewUserRepository()
		reportRepo = memstore.NewReportRepository()
	} else {
		client, database, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(ctx) }()
		db = database

		users := mongostore.NewUserRepository(database, cfg.Mongo.UsersCollection)
		reports := mongostore.NewReportRepository(database, cfg.Mongo.ReportsCollection)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create user indexes")
		}
		if err := reports.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create report indexes")
		}
		userRepo, reportRepo = users, reports
	}

	// --- Blob store: B2 when configured, in-memory otherwise ---
	var blobs ports.BlobStore
	if cfg.BlobFallback() {
		log.Warn().Msg("B2 credentials not set, using in-memory blob store (development only)")
		blobs = memstore.NewBlobStore()
	} else {
		store, err := b2store.Connect(ctx, cfg.Blob.AccountID, cfg.Blob.AppKey, cfg.Blob.Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to b2")
		}
		blobs = store
	}

	// --- Optional session revocation ---
	var (
		revoker session.Revoker
		rdb     *redisdriver.Client
	)
	if cfg.Redis.Addr != "" {
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = client.Close() }()
		rdb = client
		revoker = redisstore.NewRevoker(client)
	} else {
		log.Info().Msg("REDIS_ADDR not set, session revocation disabled")
	}

	// --- Services ---
	codec := session.NewCodec(cfg.SessionSecret, session.TTL)
	authService := service.NewAuthService(userRepo, service.AdminConfig{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Passcode: cfg.Admin.Passcode,
	}, log)
	reportService := service.NewReportService(reportRepo, blobs, log)
	suggester := service.NewKeywordSuggester(log)

	e := api.NewRouter(api.Dependencies{
		AuthService:   authService,
		ReportService: reportService,
		Suggester:     suggester,
		Codec:         codec,
		Revoker:       revoker,
		SecureCookies: cfg.Production(),
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})

	// --- Start server with graceful shutdown ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
