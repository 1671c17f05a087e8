package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-bff/internal/auth"
)

// DiscoveryRefreshJob keeps the OpenID discovery document warm so request
// paths never pay the fetch latency after the first boot. It runs on every
// replica since the cache is process-local.
type DiscoveryRefreshJob struct {
	discovery *auth.DiscoveryCache
	interval  time.Duration
	logger    *slog.Logger
}

func NewDiscoveryRefreshJob(discovery *auth.DiscoveryCache, interval time.Duration, logger *slog.Logger) *DiscoveryRefreshJob {
	return &DiscoveryRefreshJob{
		discovery: discovery,
		interval:  interval,
		logger:    logger,
	}
}

func (j *DiscoveryRefreshJob) Name() string {
	return "discovery_refresh"
}

func (j *DiscoveryRefreshJob) RequiresLeadership() bool {
	return false
}

func (j *DiscoveryRefreshJob) Interval() time.Duration {
	return j.interval
}

func (j *DiscoveryRefreshJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	if err := j.discovery.Refresh(ctx); err != nil {
		j.logger.Error("initial discovery refresh failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Discovery refresh canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := j.discovery.Refresh(ctx); err != nil {
				j.logger.Error(fmt.Sprintf("Discovery refresh failed, trying again in %s", j.interval.String()), "error", err)
			}
		}
	}
}
