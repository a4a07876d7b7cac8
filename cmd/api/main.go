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
	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/physio-clinic/internal/db"
	"github.com/BruksfildServices01/physio-clinic/internal/handlers"
	"github.com/BruksfildServices01/physio-clinic/internal/infra/ratelimit"
	infraRepo "github.com/BruksfildServices01/physio-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/physio-clinic/internal/infra/repository/memory"
	"github.com/BruksfildServices01/physio-clinic/internal/media"
	"github.com/BruksfildServices01/physio-clinic/internal/middleware"
	"github.com/BruksfildServices01/physio-clinic/internal/notify"
	"github.com/BruksfildServices01/physio-clinic/internal/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := routes.Deps{
		Config: cfg,
		Logger: logger,
		Hasher: auth.NewBcryptHasher(),
		Tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
	}

	// ======================================================
	// STORAGE
	// ======================================================
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		deps.Users = store.Users
		deps.Therapies = store.Therapies
		deps.Physiotherapists = store.Physiotherapists
		deps.Bookings = store.Bookings
		deps.Contacts = store.Contacts
		deps.AuditLogs = store.AuditLogs

	default:
		db, err := dbpkg.Connect(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := dbpkg.Close(db); cerr != nil {
				logger.Error("failed to close database", "error", cerr)
			}
		}()

		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Therapies = infraRepo.NewTherapyGormRepository(db)
		deps.Physiotherapists = infraRepo.NewPhysiotherapistGormRepository(db)
		deps.Bookings = infraRepo.NewBookingGormRepository(db)
		deps.Contacts = infraRepo.NewContactGormRepository(db)
		deps.AuditLogs = infraRepo.NewAuditLogGormRepository(db)
		deps.Ping = handlers.Pinger(dbpkg.Pinger(db))
	}

	// ======================================================
	// BACKGROUND WORKERS
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(deps.AuditLogs), logger)
	defer auditDispatcher.Close()
	deps.Audit = auditDispatcher

	if cfg.SMTP.Enabled() {
		clinic := notify.NewClinic(notify.NewSMTPSender(cfg.SMTP), cfg.SMTP.ClinicInbox, logger)
		defer clinic.Close()
		deps.Notifier = clinic
	} else {
		logger.Info("smtp not configured; notifications disabled")
		deps.Notifier = notify.Nop{}
	}

	// ======================================================
	// OPTIONAL INTEGRATIONS
	// ======================================================
	if cfg.Redis.Enabled() {
		client := ratelimit.NewRedisClient(cfg.Redis)
		defer client.Close()
		if err := ratelimit.Ping(ctx, client); err != nil {
			logger.Warn("redis unreachable; rate limiting fails open until it recovers", "error", err)
		}
		deps.Limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute)
	}

	if cfg.S3.Enabled() {
		deps.Portraits = media.NewPortraits(media.NewS3Store(cfg.S3))
	}

	deps.Metrics = middleware.NewMetrics()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("physio clinic API listening", "addr", server.Addr, "storage", cfg.StorageDriver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-shutdownDone
	logger.Info("server stopped")
	return nil
}
