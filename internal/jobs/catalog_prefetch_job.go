package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-bff/internal/storefront"
)

// CatalogPrefetchJob periodically warms the product cache so storefront
// pages stay fast across cache expiry. With a shared cache only the leader
// runs it, so a fleet does not hammer the upstream API. With a per-process
// cache every replica warms its own.
type CatalogPrefetchJob struct {
	service     *storefront.Service
	interval    time.Duration
	sharedCache bool
	logger      *slog.Logger
}

func NewCatalogPrefetchJob(service *storefront.Service, interval time.Duration, sharedCache bool, logger *slog.Logger) *CatalogPrefetchJob {
	return &CatalogPrefetchJob{
		service:     service,
		interval:    interval,
		sharedCache: sharedCache,
		logger:      logger,
	}
}

func (j *CatalogPrefetchJob) Name() string {
	return "catalog_prefetch"
}

func (j *CatalogPrefetchJob) RequiresLeadership() bool {
	return j.sharedCache
}

func (j *CatalogPrefetchJob) Interval() time.Duration {
	return j.interval
}

func (j *CatalogPrefetchJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("Starting catalog prefetching", "interval", j.interval)

	if err := j.service.Prefetch(ctx); err != nil {
		j.logger.Error("initial catalog prefetch failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Catalog prefetching canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := j.service.Prefetch(ctx); err != nil {
				j.logger.Error(fmt.Sprintf("Catalog prefetch failed, trying again in %s", j.interval.String()), "error", err)
			}
		}
	}
}
