package config

import (
	"strings"
	"testing"
	"time"
)

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Log:    LogConfig{Level: "info", Format: "text"},
		Sessions: SessionConfig{
			Store:    "memory",
			Name:     "shopify_auth_session",
			Secret:   strings.Repeat("s", 32),
			Lifetime: 30 * 24 * time.Hour,
		},
		Storefront: StorefrontConfig{
			Domain:      "example-store.myshopify.com",
			AccessToken: "storefront-token",
			APIVersion:  "2024-04",
		},
		CustomerAuth: CustomerAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			CallbackURL:  "https://shop.example.com/api/auth/callback",
			AppURL:       "https://shop.example.com",
			Scopes:       []string{"openid", "email"},
		},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
		errMsg    string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:      "missing session secret",
			mutate:    func(c *Config) { c.Sessions.Secret = "" },
			wantError: true,
			errMsg:    "session secret is required",
		},
		{
			name:      "short session secret",
			mutate:    func(c *Config) { c.Sessions.Secret = "short" },
			wantError: true,
			errMsg:    "at least 32 characters",
		},
		{
			name:      "unsupported session store",
			mutate:    func(c *Config) { c.Sessions.Store = "postgres" },
			wantError: true,
			errMsg:    "unsupported session store",
		},
		{
			name:      "redis session store requires redis config",
			mutate:    func(c *Config) { c.Sessions.Store = "redis" },
			wantError: true,
			errMsg:    "redis configuration is required",
		},
		{
			name: "redis session store with address",
			mutate: func(c *Config) {
				c.Sessions.Store = "redis"
				c.Redis = &RedisConfig{Address: "localhost:6379"}
			},
		},
		{
			name:      "missing storefront domain",
			mutate:    func(c *Config) { c.Storefront.Domain = "" },
			wantError: true,
			errMsg:    "storefront domain is required",
		},
		{
			name:      "missing storefront access token",
			mutate:    func(c *Config) { c.Storefront.AccessToken = "" },
			wantError: true,
			errMsg:    "storefront access token is required",
		},
		{
			name:      "missing client id",
			mutate:    func(c *Config) { c.CustomerAuth.ClientID = "" },
			wantError: true,
			errMsg:    "client id is required",
		},
		{
			name:      "invalid callback url scheme",
			mutate:    func(c *Config) { c.CustomerAuth.CallbackURL = "ftp://shop.example.com/cb" },
			wantError: true,
			errMsg:    "http or https scheme",
		},
		{
			name:      "missing app url",
			mutate:    func(c *Config) { c.CustomerAuth.AppURL = "" },
			wantError: true,
			errMsg:    "app_url is required",
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Log.Level = "verbose" },
			wantError: true,
			errMsg:    "log level",
		},
		{
			name:      "mail config without api key",
			mutate:    func(c *Config) { c.Mail = &MailConfig{OwnerEmail: "owner@example.com"} },
			wantError: true,
			errMsg:    "mail api key is required",
		},
		{
			name: "mail config complete",
			mutate: func(c *Config) {
				c.Mail = &MailConfig{APIKey: "re_123", OwnerEmail: "owner@example.com", From: "noreply@example.com"}
			},
		},
		{
			name:      "sentinel without master name",
			mutate:    func(c *Config) { c.Cache.Type = "redis"; c.Redis = &RedisConfig{Sentinel: &RedisSentinelConfig{}} },
			wantError: true,
			errMsg:    "master name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantError {
				if err == nil {
					t.Errorf("validateConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Sessions.Name != "shopify_auth_session" {
		t.Errorf("expected default session cookie name, got %q", cfg.Sessions.Name)
	}

	if cfg.Sessions.Lifetime != 30*24*time.Hour {
		t.Errorf("expected 30 day session lifetime, got %v", cfg.Sessions.Lifetime)
	}

	if cfg.Storefront.APIVersion != "2024-04" {
		t.Errorf("expected default api version, got %q", cfg.Storefront.APIVersion)
	}

	if len(cfg.CustomerAuth.Scopes) == 0 || cfg.CustomerAuth.Scopes[0] != "openid" {
		t.Errorf("expected default scopes starting with openid, got %v", cfg.CustomerAuth.Scopes)
	}

	if cfg.Catalog.TTL != time.Hour {
		t.Errorf("expected default catalog ttl of one hour, got %v", cfg.Catalog.TTL)
	}
}
