package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/hashonecareers/backend/docs"
	"github.com/hashonecareers/backend/internal/auth"
	"github.com/hashonecareers/backend/internal/config"
	"github.com/hashonecareers/backend/internal/handlers"
	"github.com/hashonecareers/backend/internal/logger"
	"github.com/hashonecareers/backend/internal/mailer"
	"github.com/hashonecareers/backend/internal/middleware"
	"github.com/hashonecareers/backend/internal/models"
	"github.com/hashonecareers/backend/internal/repositories"
	"github.com/hashonecareers/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// @title HashOne Careers API
// @version 1.0
// @description API for job postings, site content, team roster and contact enquiries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email careers@hashone.example

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting HashOne Careers Backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db, logger.Logger)
	jobRepo := repositories.NewJobRepository(db, logger.Logger)
	contentRepo := repositories.NewSiteContentRepository(db, logger.Logger)
	memberRepo := repositories.NewTeamMemberRepository(db, logger.Logger)

	// Seed the admin account when the store is empty
	if err := ensureAdminExists(adminRepo, cfg.DefaultAdminPassword); err != nil {
		logger.Logger.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Initialize services
	adminService := services.NewAdminService(adminRepo, tokenGenerator, logger.Logger)
	jobService := services.NewJobService(jobRepo, logger.Logger)
	contentService := services.NewSiteContentService(contentRepo, logger.Logger)
	memberService := services.NewTeamMemberService(memberRepo, logger.Logger)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	enquiryService := services.NewEnquiryService(smtpMailer, cfg.SMTP.EnquiryTo, logger.Logger)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(adminService, logger.Logger)
	jobHandler := handlers.NewJobHandler(jobService, logger.Logger)
	contentHandler := handlers.NewSiteContentHandler(contentService, logger.Logger)
	memberHandler := handlers.NewTeamMemberHandler(memberService, logger.Logger)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Health check
	healthHandler.RegisterRoutes(r)

	// Scope API routes to /api
	r.Route("/api", func(r chi.Router) {
		adminHandler.RegisterRoutes(r, authMiddleware)
		jobHandler.RegisterRoutes(r, authMiddleware)
		contentHandler.RegisterRoutes(r, authMiddleware)
		memberHandler.RegisterRoutes(r, authMiddleware)
		enquiryHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "careers_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// ensureAdminExists seeds the admin account from DEFAULT_ADMIN_PASSWORD
// when no admin is stored yet. An empty password skips the seed and
// leaves /api/admin/setup as the bootstrap path.
func ensureAdminExists(adminRepo services.AdminRepository, password string) error {
	if password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &models.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	logger.Logger.Info("Seeded default admin account", zap.String("username", admin.Username))
	return nil
}
