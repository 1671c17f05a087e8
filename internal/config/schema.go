package config

import (
	"time"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Sessions     SessionConfig      `yaml:"sessions"`
	Storefront   StorefrontConfig   `yaml:"storefront"`
	CustomerAuth CustomerAuthConfig `yaml:"customer_auth"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Cache        CacheConfig        `yaml:"cache"`
	Redis        *RedisConfig       `yaml:"redis"`
	Mail         *MailConfig        `yaml:"mail"`
	Distributed  *DistributedConfig `yaml:"distributed"`
}

type ServerConfig struct {
	Port  int                `yaml:"port"`
	Debug *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins:   []string{"http://localhost:3000"},
	AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAgeSeconds:    300,
}

type SessionConfig struct {
	Store    string        `yaml:"store"`
	Name     string        `yaml:"name"`
	Secret   string        `yaml:"secret"`
	Secure   bool          `yaml:"secure"`
	Lifetime time.Duration `yaml:"lifetime"`
}

var DefaultSessionConfig = SessionConfig{
	Store:    "memory",
	Name:     "shopify_auth_session",
	Secure:   true,
	Lifetime: 30 * 24 * time.Hour,
}

// StorefrontConfig points at the commerce platform's storefront GraphQL API.
type StorefrontConfig struct {
	Domain      string `yaml:"domain"`
	AccessToken string `yaml:"access_token"`
	APIVersion  string `yaml:"api_version"`
}

var DefaultStorefrontConfig = StorefrontConfig{
	APIVersion: "2024-04",
}

// CustomerAuthConfig configures the PKCE flow against the platform's hosted
// customer identity service. AppURL is the public origin of this application
// and is the only origin the auth popup will post messages to.
type CustomerAuthConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	CallbackURL  string   `yaml:"callback_url"`
	AppURL       string   `yaml:"app_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultCustomerAuthConfig = CustomerAuthConfig{
	Scopes: []string{"openid", "email", "customer-account-api:full"},
}

type CatalogConfig struct {
	TTL              time.Duration `yaml:"ttl"`
	PrefetchInterval time.Duration `yaml:"prefetch_interval"`
	SearchLimit      int           `yaml:"search_limit"`
}

var DefaultCatalogConfig = CatalogConfig{
	TTL:              time.Hour,
	PrefetchInterval: time.Hour,
	SearchLimit:      5,
}

type CacheConfig struct {
	Type string `yaml:"type"` //  "memory" or "redis"
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
	LeaderIndex  int                  `yaml:"leader_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
	LeaderIndex:  2,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

// MailConfig configures the transactional email relay used by the contact
// and appointment forms. When absent, those endpoints respond 500.
type MailConfig struct {
	APIKey     string `yaml:"api_key"`
	From       string `yaml:"from"`
	OwnerEmail string `yaml:"owner_email"`
}

var DefaultMailConfig = MailConfig{
	From: "onboarding@resend.dev",
}

type DistributedConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

var DefaultDistributedConfig = DistributedConfig{
	Enabled: false,
	TTL:     30 * time.Second,
}
