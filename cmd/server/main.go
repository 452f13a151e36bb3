package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tinyquest/internal/audio"
	"tinyquest/internal/config"
	"tinyquest/internal/database"
	"tinyquest/internal/handlers"
	"tinyquest/internal/repository"
	"tinyquest/internal/security"
	"tinyquest/internal/service"
	"tinyquest/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	handlers.SetCurrentStep("Database connection")
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	handlers.CompleteStep("Database connection")

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	handlers.SetCurrentStep("Running migrations")
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	handlers.CompleteStep("Running migrations")

	log.Println("Migrations completed successfully")

	// Seed the profile name filter
	handlers.SetCurrentStep("Seeding name filter")
	if err := db.SeedBlockedWords(); err != nil {
		log.Printf("Warning: Failed to seed name filter: %v", err)
	}
	handlers.CompleteStep("Seeding name filter")

	// Initialize repositories and services
	handlers.SetCurrentStep("Initializing services")
	profileRepo := repository.NewProfileRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	progressService := service.NewProgressService(progressRepo)
	profileService := service.NewProfileService(profileRepo, progressService, db)
	parentService := service.NewParentService(progressService, gateTokenSecret(cfg), cfg.GateTokenTTL)
	ttsService := audio.NewTTSService(cfg.AudioCachePath)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.EmailFrom, "TinyQuest")
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reportService := service.NewReportService(profileRepo, progressRepo, settingsRepo, emailService)

	// Initialize handlers
	rateLimiter := security.NewRateLimiter(10, time.Minute)
	pinAttempts := utils.NewPINAttemptStore(5, 15*time.Minute)

	middleware := handlers.NewMiddleware(profileService, parentService, rateLimiter)
	profileHandler := handlers.NewProfileHandler(profileService)
	levelsHandler := handlers.NewLevelsHandler(progressService, ttsService)
	progressHandler := handlers.NewProgressHandler(progressService)
	parentHandler := handlers.NewParentHandler(parentService, progressService, settingsRepo, pinAttempts)
	accountLinkHandler := handlers.NewAccountLinkHandler(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL, settingsRepo)
	handlers.CompleteStep("Initializing services")

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)

	// Profiles
	mux.HandleFunc("GET /api/profiles", profileHandler.ListProfiles)
	mux.HandleFunc("POST /api/profiles", middleware.RateLimit(profileHandler.CreateProfile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireProfile(profileHandler.UpdateProfile))
	mux.HandleFunc("DELETE /api/profile", middleware.RequireParentGate(profileHandler.DeleteProfile))

	// Adventure map and levels
	mux.HandleFunc("GET /api/map", middleware.RequireProfile(levelsHandler.GetMap))
	mux.HandleFunc("GET /api/levels/{num}", middleware.RequireProfile(levelsHandler.GetLevel))
	mux.HandleFunc("POST /api/levels/{num}/audio", middleware.RequireProfile(levelsHandler.WarmLevelAudio))

	// Progression
	mux.HandleFunc("GET /api/progress", middleware.RequireProfile(progressHandler.GetProgress))
	mux.HandleFunc("POST /api/levels/{num}/complete", middleware.RequireProfile(progressHandler.CompleteLevel))
	mux.HandleFunc("POST /api/usage", middleware.RequireProfile(progressHandler.RecordUsage))

	// Parent gate
	mux.HandleFunc("GET /api/parent/gate", middleware.RequireProfile(parentHandler.GateStatus))
	mux.HandleFunc("POST /api/parent/gate/pin", middleware.RequireProfile(parentHandler.SetPIN))
	mux.HandleFunc("POST /api/parent/gate/unlock", middleware.RateLimit(middleware.RequireProfile(parentHandler.Unlock)))

	// Gated parent settings
	mux.HandleFunc("PUT /api/parent/gate/pin", middleware.RequireParentGate(parentHandler.ChangePIN))
	mux.HandleFunc("POST /api/parent/focus", middleware.RequireParentGate(parentHandler.ToggleFocus))
	mux.HandleFunc("PUT /api/parent/daily-limit", middleware.RequireParentGate(parentHandler.SetDailyLimit))
	mux.HandleFunc("POST /api/parent/reset-progress", middleware.RequireParentGate(parentHandler.ResetProgress))
	mux.HandleFunc("GET /api/parent/report", middleware.RequireParentGate(parentHandler.GetReportSettings))
	mux.HandleFunc("PUT /api/parent/report", middleware.RequireParentGate(parentHandler.SetReportSettings))

	// Account linking for weekly reports
	mux.HandleFunc("GET /auth/google/start", middleware.RateLimit(accountLinkHandler.Start))
	mux.HandleFunc("GET /auth/google/callback", accountLinkHandler.Callback)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Send the weekly report in the background
	go weeklyReportLoop(reportService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	handlers.MarkReady()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	// Write out any progression documents still waiting on the debounce
	progressService.Flush()
}

// gateTokenSecret returns the configured signing secret, or a random
// one when none is set. A random secret invalidates outstanding gate
// tokens on restart, which only forces a re-entry of the PIN.
func gateTokenSecret(cfg *config.Config) string {
	if cfg.GateTokenSecret != "" {
		return cfg.GateTokenSecret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate gate token secret: %v", err)
	}
	log.Println("GATE_TOKEN_SECRET not set, using a random secret for this run")
	return hex.EncodeToString(buf)
}

// weeklyReportLoop sends the progress report once every Sunday
func weeklyReportLoop(reportService *service.ReportService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	var lastSent string
	for now := range ticker.C {
		if now.Weekday() != time.Sunday {
			continue
		}
		day := now.Format("2006-01-02")
		if day == lastSent {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := reportService.SendWeeklyReport(ctx)
		cancel()
		if err != nil {
			log.Printf("Error sending weekly report: %v", err)
			continue
		}
		lastSent = day
	}
}
