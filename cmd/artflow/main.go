package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/artflow/artflow/internal/api"
	"github.com/artflow/artflow/internal/config"
	"github.com/artflow/artflow/internal/llm"
	"github.com/artflow/artflow/internal/repository/postgres"
	"github.com/artflow/artflow/internal/service"
	"github.com/artflow/artflow/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	l.Info("Starting ArtFlow...")

	// Database
	db, err := config.NewDatabase(cfg.DatabaseURL, l)
	if err != nil {
		l.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate("migrations"); err != nil {
		l.Fatalf("Failed to run migrations: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	// Language model backend for the creative advisor
	var ai llm.TextGenerator
	switch {
	case cfg.GeminiAPIKey != "":
		ai, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			l.Fatalf("Failed to create Gemini client: %v", err)
		}
		l.Info("Creative advisor backed by Gemini")
	case cfg.AIProxyURL != "":
		ai = llm.NewProxyClient(cfg.AIProxyURL)
		l.Infof("Creative advisor backed by proxy at %s", cfg.AIProxyURL)
	default:
		ai = llm.NewDisabledClient()
		l.Warn("No GEMINI_API_KEY or AI_PROXY_URL set, advisor will serve fallback text")
	}
	if c, ok := ai.(llm.Closer); ok {
		defer c.Close()
	}

	// Repositories
	projectRepo := postgres.NewProjectRepository(db.DB)
	templateRepo := postgres.NewTemplateRepository(db.DB)
	taskRepo := postgres.NewTaskRepository(db.DB)
	eventRepo := postgres.NewEventRepository(db.DB)
	exceptionRepo := postgres.NewExceptionRepository(db.DB)
	labelRepo := postgres.NewLabelRepository(db.DB)
	dayNoteRepo := postgres.NewDayNoteRepository(db.DB)
	dailyTaskRepo := postgres.NewDailyTaskRepository(db.DB)
	habitRepo := postgres.NewHabitRepository(db.DB)
	goalRepo := postgres.NewGoalRepository(db.DB)
	brainDumpRepo := postgres.NewBrainDumpRepository(db.DB)
	paymentRepo := postgres.NewPaymentRepository(db.DB)
	missionRepo := postgres.NewMissionRepository(db.DB)
	summaryRepo := postgres.NewSummaryRepository(db.DB)

	// Service layer
	svc := service.New(db.DB, l, ai,
		projectRepo, templateRepo, taskRepo,
		eventRepo, exceptionRepo, labelRepo,
		dayNoteRepo, dailyTaskRepo, habitRepo,
		goalRepo, brainDumpRepo, paymentRepo,
		missionRepo, summaryRepo,
	)

	// Nightly planner rollover
	if _, err := svc.StartRolloverScheduler(ctx, cfg.RolloverSchedule); err != nil {
		l.Fatalf("Failed to start rollover scheduler: %v", err)
	}

	// HTTP server
	apiServer := api.NewServer(svc, l)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: apiServer.Handler(),
	}

	go func() {
		l.Infof("HTTP server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
		}
	}()

	l.Info("ArtFlow started successfully")

	<-ctx.Done()

	l.Info("Shutting down HTTP server...")
	httpServer.Close()

	l.Info("ArtFlow stopped")
}
