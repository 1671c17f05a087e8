package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront-bff/internal/metrics"

	"github.com/coreos/go-oidc/v3/oidc"
)

const discoveryCacheName = "discovery"

// DiscoveryCache fetches the issuer's openid configuration and caches
// it for a TTL. A stale document keeps being served when a refresh
// fails, so transient issuer outages do not break logins.
type DiscoveryCache struct {
	issuerURL string
	ttl       time.Duration

	mu         sync.RWMutex
	provider   *oidc.Provider
	endSession string
	fetchedAt  time.Time
}

func NewDiscoveryCache(issuerURL string, ttl time.Duration) *DiscoveryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &DiscoveryCache{
		issuerURL: issuerURL,
		ttl:       ttl,
	}
}

// Provider returns the cached oidc provider, fetching the discovery
// document when the cache is empty or expired.
func (d *DiscoveryCache) Provider(ctx context.Context) (*oidc.Provider, error) {
	d.mu.RLock()
	provider := d.provider
	fresh := provider != nil && time.Since(d.fetchedAt) < d.ttl
	d.mu.RUnlock()

	if fresh {
		metrics.CacheHits.WithLabelValues(discoveryCacheName).Inc()
		return provider, nil
	}

	metrics.CacheMisses.WithLabelValues(discoveryCacheName).Inc()

	if err := d.Refresh(ctx); err != nil {
		// serve stale rather than failing the login
		if provider != nil {
			return provider, nil
		}
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.provider, nil
}

// EndSessionEndpoint returns the provider logout URL advertised in the
// discovery document, or an error when the issuer does not publish one.
func (d *DiscoveryCache) EndSessionEndpoint(ctx context.Context) (string, error) {
	if _, err := d.Provider(ctx); err != nil {
		return "", err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.endSession == "" {
		return "", fmt.Errorf("issuer does not advertise an end_session_endpoint")
	}

	return d.endSession, nil
}

// Refresh forces a fetch of the discovery document.
func (d *DiscoveryCache) Refresh(ctx context.Context) error {
	provider, err := oidc.NewProvider(ctx, d.issuerURL)
	if err != nil {
		return fmt.Errorf("fetch openid configuration: %w", err)
	}

	var claims struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := provider.Claims(&claims); err != nil {
		return fmt.Errorf("parse openid configuration: %w", err)
	}

	d.mu.Lock()
	d.provider = provider
	d.endSession = claims.EndSessionEndpoint
	d.fetchedAt = time.Now()
	d.mu.Unlock()

	return nil
}
