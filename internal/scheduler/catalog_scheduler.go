package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/trendybazarr/trendybazarr-backend/internal/storefront"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
)

const refreshTimeout = 2 * time.Minute

// CatalogScheduler refreshes the storefront catalog snapshot on a cron
// schedule.
type CatalogScheduler struct {
	cron     *cron.Cron
	snapshot *storefront.Snapshot
	schedule string
}

func NewCatalogScheduler(snapshot *storefront.Snapshot, schedule string) *CatalogScheduler {
	return &CatalogScheduler{
		cron:     cron.New(),
		snapshot: snapshot,
		schedule: schedule,
	}
}

func (s *CatalogScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled catalog refresh", nil)

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := s.snapshot.Refresh(ctx); err != nil {
			logger.Error("Scheduled catalog refresh failed", err)
			return
		}

		logger.Info("Scheduled catalog refresh finished", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped", nil)
}
