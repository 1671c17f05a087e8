package distributed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// Election keeps one replica elected as leader via a redis key with a
// TTL. The leader runs the singleton background jobs.
type Election struct {
	Redis      *redis.Client
	InstanceID string
	TTL        time.Duration
	Logger     *slog.Logger

	mu       sync.RWMutex
	isLeader bool
}

func (e *Election) IsLeader() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isLeader
}

func (e *Election) Start(ctx context.Context) {
	interval := e.TTL / 3
	if interval <= 0 {
		interval = config.DefaultDistributedConfig.TTL / 3
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.campaign(ctx)

	for {
		select {
		case <-ctx.Done():
			e.resign(context.WithoutCancel(ctx))
			return
		case <-ticker.C:
			e.campaign(ctx)
		}
	}
}

func (e *Election) campaign(ctx context.Context) {
	ok, err := e.Redis.SetNX(ctx, leaderKey, e.InstanceID, e.TTL).Result()
	if err != nil {
		e.Logger.Error("failed to campaign for leadership", "error", err, "instance", e.InstanceID)
		return
	}

	e.mu.Lock()
	wasLeader := e.isLeader

	if ok {
		e.isLeader = true
	} else {
		currentLeader, err := e.Redis.Get(ctx, leaderKey).Result()
		if err == nil && currentLeader == e.InstanceID {
			e.isLeader = true
			e.Redis.Expire(ctx, leaderKey, e.TTL)
		} else {
			e.isLeader = false
		}
	}

	isLeader := e.isLeader
	e.mu.Unlock()

	if isLeader && !wasLeader {
		e.Logger.Info("became leader", "instance", e.InstanceID)
		metrics.IsLeader.Set(1)
		metrics.LeadershipChanges.Inc()
	} else if !isLeader && wasLeader {
		e.Logger.Info("lost leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
		metrics.LeadershipChanges.Inc()
	}
}

func (e *Election) resign(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isLeader {
		return
	}

	// delete the key only if this instance still holds it
	script := `
        if redis.call("get", KEYS[1]) == ARGV[1] then
            return redis.call("del", KEYS[1])
        end
        return 0
    `

	_, err := redis.NewScript(script).Run(ctx, e.Redis, []string{leaderKey}, e.InstanceID).Result()
	if err != nil {
		e.Logger.Error("failed to resign leadership", "error", err, "instance", e.InstanceID)
	} else {
		e.Logger.Info("resigned leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
	}

	e.isLeader = false
}
