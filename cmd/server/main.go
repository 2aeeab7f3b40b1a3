package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/backup"
	"github.com/pomeroybees/beeyard/internal/config"
	"github.com/pomeroybees/beeyard/internal/repository/mongodb"
	"github.com/pomeroybees/beeyard/internal/repository/sheets"
	"github.com/pomeroybees/beeyard/internal/scheduler"
	"github.com/pomeroybees/beeyard/internal/server/handlers"
	"github.com/pomeroybees/beeyard/internal/server/router"
	assistantsvc "github.com/pomeroybees/beeyard/internal/service/assistant"
	reportingsvc "github.com/pomeroybees/beeyard/internal/service/reporting"
	sketchsvc "github.com/pomeroybees/beeyard/internal/service/sketch"
	"github.com/pomeroybees/beeyard/internal/store"
	"github.com/pomeroybees/beeyard/pkg/clients/anthropic"
	"github.com/pomeroybees/beeyard/pkg/clients/sketchgen"
	"github.com/pomeroybees/beeyard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// The whole application state lives here and is passed down explicitly.
	state := store.NewState(store.DefaultSeed())

	// Initialize AI clients; each one is optional.
	var aiClient anthropic.Client
	if cfg.AI.AnthropicKey != "" {
		aiClient = anthropic.NewClient(cfg.AI.AnthropicKey)
		baseLogger.Info("anthropic note assistant enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, field note parsing disabled")
	}

	var sketchGen sketchgen.Generator
	if cfg.AI.OpenAIKey != "" {
		sketchGen = sketchgen.NewGenerator(cfg.AI.OpenAIKey)
		baseLogger.Info("botanical sketch generator enabled")
	} else {
		baseLogger.Warn("openai api key missing, sketch generation disabled")
	}

	var sheetsRepo sheets.Repository
	if cfg.SheetsEnabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
	} else {
		baseLogger.Info("sheets export not configured")
	}

	var snapshotRepo mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		snapshotRepo = mongoRepo
	} else {
		baseLogger.Info("offsite snapshots not configured")
	}

	assistantSvc := assistantsvc.NewService(aiClient, baseLogger.Named("svc.assistant"))
	sketchCache := sketchsvc.NewCache(cfg.Sketch.CachePath, baseLogger.Named("svc.sketch.cache"))
	sketchService := sketchsvc.NewService(sketchGen, sketchCache, baseLogger.Named("svc.sketch"))
	reportingSvc := reportingsvc.NewService(state, sheetsRepo, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Journal:   handlers.NewJournalHandler(state, baseLogger.Named("handlers.journal")),
		Colonies:  handlers.NewColonyHandler(state, baseLogger.Named("handlers.colonies")),
		Inventory: handlers.NewInventoryHandler(state, baseLogger.Named("handlers.inventory")),
		Budget:    handlers.NewBudgetHandler(state, baseLogger.Named("handlers.budget")),
		Crew:      handlers.NewCrewHandler(state, baseLogger.Named("handlers.crew")),
		Archive:   handlers.NewArchiveHandler(state, baseLogger.Named("handlers.archive")),
		Assistant: handlers.NewAssistantHandler(assistantSvc, sketchService, baseLogger.Named("handlers.assistant")),
	}, baseLogger.Named("router"))

	// Initialize Scheduler
	snapshotWriter := backup.NewWriter(cfg.Backup.SnapshotDir, baseLogger.Named("backup"))
	sched := scheduler.NewScheduler(cfg.Backup, state, snapshotWriter, snapshotRepo, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
