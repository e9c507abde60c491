package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/horsepowerelectrical/horsepower-api/internal/config"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/database"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/http/handlers"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/http/middleware"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/mail"
	applog "github.com/horsepowerelectrical/horsepower-api/internal/log"
	"github.com/horsepowerelectrical/horsepower-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := applog.New(cfg.Environment)

	db, err := database.NewDBConnection(cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	adminRepo := database.NewAdminRepository(db)
	codeRepo := database.NewVerificationCodeRepository(db)

	// Collaborators
	mailSender := mail.NewEmailSender(cfg.Mail, "templates", logger)
	if !cfg.Mail.Configured() {
		logger.Warn().Msg("SMTP not configured, emails will only be logged")
	}

	// UseCases
	requestChangeUC := usecase.NewRequestProfileChangeUseCase(adminRepo, codeRepo, mailSender, logger)
	verifyChangeUC := usecase.NewVerifyProfileChangeUseCase(adminRepo, codeRepo, mailSender, logger)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.Mail.Configured())
	serviceHandler := handlers.NewServiceHandler()
	contactHandler := handlers.NewContactHandler(leadRepo, logger)
	leadHandler := handlers.NewLeadHandler(leadRepo, logger)
	adminHandler := handlers.NewAdminHandler(
		adminRepo, requestChangeUC, verifyChangeUC,
		cfg.Security.JWTSecret, cfg.Security.JWTTTL, logger,
	)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendURL},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/api/health", healthHandler.Handle)
	r.Get("/api/services", serviceHandler.HandleList)
	r.Post("/api/contact", contactHandler.HandleSubmit)

	r.Post("/api/admin/verify-password", adminHandler.HandleVerifyPassword)
	r.Post("/api/admin/request-verification", adminHandler.HandleRequestVerification)
	r.Post("/api/admin/verify-code", adminHandler.HandleVerifyCode)

	// Admin panel routes, session token required.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.Security.JWTSecret))
		r.Get("/api/leads", leadHandler.HandleList)
		r.Put("/api/leads/{id}", leadHandler.HandleUpdate)
	})

	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logger.Info().Str("addr", addr).Msg("Horsepower Electrical API listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
