package routes

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/config"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/contact"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
	"github.com/BruksfildServices01/physio-clinic/internal/handlers"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/middleware"
	"github.com/BruksfildServices01/physio-clinic/internal/notify"
	ucAuth "github.com/BruksfildServices01/physio-clinic/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/physio-clinic/internal/usecase/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/validators"
)

// Deps is everything the HTTP layer needs. Optional collaborators
// (Portraits, Limiter, Metrics, Ping) may be nil.
type Deps struct {
	Config *config.Config
	Logger *slog.Logger

	Users            domainUser.Repository
	Therapies        catalog.TherapyRepository
	Physiotherapists catalog.PhysiotherapistRepository
	Bookings         domainBooking.Repository
	Contacts         contact.Repository
	AuditLogs        auditlog.Repository

	Hasher   auth.PasswordHasher
	Tokens   *auth.TokenIssuer
	Audit    audit.Recorder
	Notifier notify.Notifier

	Portraits handlers.PortraitStore
	Limiter   middleware.Limiter
	Metrics   *middleware.Metrics
	Ping      handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config
	httperr.ConfigureValidator()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// USE CASES — AUTH
	// ======================================================
	registerUC := ucAuth.NewRegister(d.Users, d.Hasher, d.Tokens, d.Audit)
	if cfg.VerifyEmailDomain {
		registerUC.EmailDomainOK = validators.NewDomainChecker().Valid
	}

	loginUC, err := ucAuth.NewLogin(d.Users, d.Hasher, d.Tokens, d.Audit)
	if err != nil {
		return fmt.Errorf("build login: %w", err)
	}

	profileUC := ucAuth.NewGetProfile(d.Users)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(d.Bookings, d.Therapies, d.Audit, d.Notifier)
	updateBookingUC := ucBooking.NewUpdateBooking(d.Bookings, d.Therapies, d.Audit)
	deleteBookingUC := ucBooking.NewDeleteBooking(d.Bookings)
	listBookingsUC := ucBooking.NewListBookings(d.Bookings)
	getBookingUC := ucBooking.NewGetBooking(d.Bookings)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		profileUC,
		handlers.CookieSettings{
			Name:   cfg.AuthCookieName,
			Secure: cfg.CookieSecure,
			TTL:    d.Tokens.TTL(),
		},
		d.Logger,
	)

	therapyHandler := handlers.NewTherapyHandler(d.Therapies, d.Logger)
	physioHandler := handlers.NewPhysiotherapistHandler(d.Physiotherapists, d.Portraits, d.Logger)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
		getBookingUC,
		d.Logger,
	)

	contactHandler := handlers.NewContactHandler(d.Contacts, d.Notifier, d.Logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, cfg.ClinicTimezone, d.Logger)
	healthHandler := handlers.NewHealthHandler(d.Ping)

	// ======================================================
	// GATES
	// ======================================================
	authenticated := middleware.Authenticate(d.Tokens, cfg.AuthCookieName)
	optionalAuth := middleware.OptionalAuth(d.Tokens, cfg.AuthCookieName)
	adminOnly := middleware.RequireAdmin()
	limited := middleware.RateLimit(d.Limiter, d.Logger)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", healthHandler.Health)
	if d.Metrics != nil {
		r.GET("/metrics", d.Metrics.Handler())
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", limited, authHandler.Register)
		api.POST("/auth/login", limited, authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authenticated, authHandler.Me)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/therapies", optionalAuth, therapyHandler.List)
		api.GET("/therapies/:id", therapyHandler.Get)
		api.POST("/therapies", authenticated, adminOnly, therapyHandler.Create)
		api.PUT("/therapies/:id", authenticated, adminOnly, therapyHandler.Update)

		api.GET("/physiotherapists", optionalAuth, physioHandler.List)
		api.GET("/physiotherapists/:id", physioHandler.Get)
		api.POST("/physiotherapists", authenticated, adminOnly, physioHandler.Create)
		api.PUT("/physiotherapists/:id", authenticated, adminOnly, physioHandler.Update)
		api.DELETE("/physiotherapists/:id", authenticated, adminOnly, physioHandler.Delete)
		api.POST("/physiotherapists/:id/image", authenticated, adminOnly, physioHandler.UploadImage)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", limited, optionalAuth, bookingHandler.Create)
		api.GET("/bookings", authenticated, bookingHandler.List)
		api.GET("/bookings/:id", authenticated, bookingHandler.Get)
		api.PUT("/bookings/:id", authenticated, bookingHandler.Update)
		api.DELETE("/bookings/:id", authenticated, bookingHandler.Delete)

		// ------------------------------
		// CONTACTS
		// ------------------------------
		api.POST("/contacts", limited, contactHandler.Create)
		api.GET("/contacts", authenticated, adminOnly, contactHandler.List)
		api.GET("/contacts/:id", authenticated, adminOnly, contactHandler.Get)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.GET("/audit-logs", authenticated, adminOnly, auditLogsHandler.List)
	}

	return nil
}
