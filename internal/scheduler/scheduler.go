package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/backup"
	"github.com/pomeroybees/beeyard/internal/config"
	"github.com/pomeroybees/beeyard/internal/repository/mongodb"
	"github.com/pomeroybees/beeyard/internal/service/reporting"
	"github.com/pomeroybees/beeyard/internal/store"
)

// Scheduler runs the recurring jobs: nightly backup snapshots and the weekly
// ledger export to the community spreadsheet.
type Scheduler struct {
	cron         *cron.Cron
	cfg          config.BackupConfig
	state        *store.State
	writer       *backup.Writer
	snapshots    mongodb.Repository
	reportingSvc *reporting.Service
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The snapshot repository may
// be nil when MongoDB is not configured.
func NewScheduler(cfg config.BackupConfig, state *store.State, writer *backup.Writer, snapshots mongodb.Repository, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		cfg:          cfg,
		state:        state,
		writer:       writer,
		snapshots:    snapshots,
		reportingSvc: reportingSvc,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.SnapshotCron, s.runSnapshot); err != nil {
		s.logger.Error("failed to schedule backup snapshot", zap.Error(err))
	}
	if _, err := s.cron.AddFunc(s.cfg.ExportCron, s.runExport); err != nil {
		s.logger.Error("failed to schedule ledger export", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	doc := backup.Build(s.state, time.Now())

	if _, err := s.writer.Write(doc); err != nil {
		s.logger.Error("backup snapshot failed", zap.Error(err))
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, doc); err != nil {
			// Off-site snapshots are best-effort; the local file already exists.
			s.logger.Warn("offsite snapshot failed", zap.Error(err))
		}
	}
}

func (s *Scheduler) runExport() {
	s.logger.Info("running weekly ledger export")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.ExportLedger(ctx); err != nil {
		s.logger.Error("ledger export failed", zap.Error(err))
	}
}
