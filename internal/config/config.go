package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAuthClientID       = "STOREFRONT_AUTH_CLIENT_ID"
	EnvAuthClientSecret   = "STOREFRONT_AUTH_CLIENT_SECRET"
	EnvAuthCallbackURL    = "STOREFRONT_AUTH_CALLBACK_URL"
	EnvAuthAppURL         = "STOREFRONT_AUTH_APP_URL"
	EnvStorefrontDomain   = "STOREFRONT_DOMAIN"
	EnvStorefrontToken    = "STOREFRONT_ACCESS_TOKEN"
	EnvSessionSecret      = "STOREFRONT_SESSION_SECRET"
	EnvRedisPassword      = "STOREFRONT_REDIS_PASSWORD"
	EnvRedisUsername      = "STOREFRONT_REDIS_USERNAME"
	EnvSentinelUsername   = "STOREFRONT_REDIS_SENTINEL_USERNAME"
	EnvSentinelPassword   = "STOREFRONT_REDIS_SENTINEL_PASSWORD"
	EnvMailAPIKey         = "STOREFRONT_MAIL_API_KEY"
	EnvMailOwnerEmail     = "STOREFRONT_MAIL_OWNER_EMAIL"
)

func applyDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = DefaultServerConfig.Port
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogConfig.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogConfig.Format
	}

	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(config.CORS.AllowedMethods) == 0 {
		config.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}

	if config.Sessions.Store == "" {
		config.Sessions.Store = DefaultSessionConfig.Store
	}
	if config.Sessions.Name == "" {
		config.Sessions.Name = DefaultSessionConfig.Name
	}
	if config.Sessions.Lifetime == 0 {
		config.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	}

	if config.Storefront.APIVersion == "" {
		config.Storefront.APIVersion = DefaultStorefrontConfig.APIVersion
	}

	if len(config.CustomerAuth.Scopes) == 0 {
		config.CustomerAuth.Scopes = DefaultCustomerAuthConfig.Scopes
	}
	if config.CustomerAuth.IssuerURL == "" && config.Storefront.Domain != "" {
		config.CustomerAuth.IssuerURL = "https://" + config.Storefront.Domain
	}

	if config.Catalog.TTL == 0 {
		config.Catalog.TTL = DefaultCatalogConfig.TTL
	}
	if config.Catalog.PrefetchInterval == 0 {
		config.Catalog.PrefetchInterval = DefaultCatalogConfig.PrefetchInterval
	}
	if config.Catalog.SearchLimit == 0 {
		config.Catalog.SearchLimit = DefaultCatalogConfig.SearchLimit
	}

	if config.Mail != nil && config.Mail.From == "" {
		config.Mail.From = DefaultMailConfig.From
	}

	if config.Distributed != nil && config.Distributed.TTL == 0 {
		config.Distributed.TTL = DefaultDistributedConfig.TTL
	}
}

func applyEnvironmentOverrides(config *Config) {
	if clientID := os.Getenv(EnvAuthClientID); clientID != "" {
		config.CustomerAuth.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvAuthClientSecret); clientSecret != "" {
		config.CustomerAuth.ClientSecret = clientSecret
	}

	if callbackURL := os.Getenv(EnvAuthCallbackURL); callbackURL != "" {
		config.CustomerAuth.CallbackURL = callbackURL
	}

	if appURL := os.Getenv(EnvAuthAppURL); appURL != "" {
		config.CustomerAuth.AppURL = appURL
	}

	if domain := os.Getenv(EnvStorefrontDomain); domain != "" {
		config.Storefront.Domain = domain
	}

	if token := os.Getenv(EnvStorefrontToken); token != "" {
		config.Storefront.AccessToken = token
	}

	if secret := os.Getenv(EnvSessionSecret); secret != "" {
		config.Sessions.Secret = secret
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}

	if apiKey := os.Getenv(EnvMailAPIKey); apiKey != "" {
		if config.Mail == nil {
			config.Mail = &MailConfig{From: DefaultMailConfig.From}
		}
		config.Mail.APIKey = apiKey
	}

	if ownerEmail := os.Getenv(EnvMailOwnerEmail); ownerEmail != "" {
		if config.Mail == nil {
			config.Mail = &MailConfig{From: DefaultMailConfig.From}
		}
		config.Mail.OwnerEmail = ownerEmail
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateStorefrontConfig()
	if err != nil {
		return err
	}

	err = config.validateCustomerAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateMailConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" || (config.Distributed != nil && config.Distributed.Enabled) {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port > 65535 {
			return fmt.Errorf("debug server port must be between 1 and 65535")
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json")
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	switch c.Sessions.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session store: %s", c.Sessions.Store)
	}

	if c.Sessions.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	if len(c.Sessions.Secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}

	if c.Sessions.Lifetime < time.Hour {
		return fmt.Errorf("session lifetime must be at least one hour")
	}

	return nil
}

func (c *Config) validateStorefrontConfig() error {
	if c.Storefront.Domain == "" {
		return fmt.Errorf("storefront domain is required")
	}

	if c.Storefront.AccessToken == "" {
		return fmt.Errorf("storefront access token is required")
	}

	return nil
}

func (c *Config) validateCustomerAuthConfig() error {
	if c.CustomerAuth.ClientID == "" {
		return fmt.Errorf("customer auth client id is required")
	}

	if c.CustomerAuth.ClientSecret == "" {
		return fmt.Errorf("customer auth client secret is required")
	}

	if c.CustomerAuth.IssuerURL != "" {
		if err := validateURL(c.CustomerAuth.IssuerURL, "issuer_url"); err != nil {
			return err
		}
	}

	if err := validateURL(c.CustomerAuth.CallbackURL, "callback_url"); err != nil {
		return err
	}

	if err := validateURL(c.CustomerAuth.AppURL, "app_url"); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateMailConfig() error {
	if c.Mail == nil {
		return nil
	}

	if c.Mail.APIKey == "" {
		return fmt.Errorf("mail api key is required when mail is configured")
	}

	if c.Mail.OwnerEmail == "" {
		return fmt.Errorf("mail owner email is required when mail is configured")
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis configuration is required")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("redis sentinel master name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("redis sentinel addresses are required")
		}
		return nil
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	return nil
}
