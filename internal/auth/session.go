package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/models"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager
	cipher   *TokenCipher
	lifetime time.Duration
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis session store requires redis configuration")
		}

		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelUsername: cfg.Redis.Sentinel.SentinelUsername,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Username:         cfg.Redis.Username,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Username:     cfg.Redis.Username,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	cipher, err := NewTokenCipher(cfg.Sessions.Secret)
	if err != nil {
		return nil, fmt.Errorf("session token cipher: %w", err)
	}

	sessionManager.Lifetime = cfg.Sessions.Lifetime

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{
		SessionManager: sessionManager,
		cipher:         cipher,
		lifetime:       cfg.Sessions.Lifetime,
	}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *SessionManager) Lifetime() time.Duration {
	return s.lifetime
}

func (s *SessionManager) SetTokens(ctx context.Context, tokens models.TokenSet) error {
	accessToken, err := s.cipher.Encrypt(tokens.AccessToken)
	if err != nil {
		return fmt.Errorf("encrypt access token: %w", err)
	}

	s.Put(ctx, string(SessionKeyAccessToken), accessToken)

	if tokens.RefreshToken != "" {
		refreshToken, err := s.cipher.Encrypt(tokens.RefreshToken)
		if err != nil {
			return fmt.Errorf("encrypt refresh token: %w", err)
		}
		s.Put(ctx, string(SessionKeyRefreshToken), refreshToken)
	} else {
		s.Remove(ctx, string(SessionKeyRefreshToken))
	}

	if tokens.IDToken != "" {
		idToken, err := s.cipher.Encrypt(tokens.IDToken)
		if err != nil {
			return fmt.Errorf("encrypt id token: %w", err)
		}
		s.Put(ctx, string(SessionKeyIDToken), idToken)
	} else {
		s.Remove(ctx, string(SessionKeyIDToken))
	}

	s.Put(ctx, string(SessionKeyExpiresAt), tokens.ExpiresAt.UnixMilli())

	s.ClearLoginArtifacts(ctx)

	return nil
}

func (s *SessionManager) GetTokens(ctx context.Context) (models.TokenSet, bool) {
	encrypted := s.GetString(ctx, string(SessionKeyAccessToken))
	if encrypted == "" {
		return models.TokenSet{}, false
	}

	accessToken, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		return models.TokenSet{}, false
	}

	tokens := models.TokenSet{AccessToken: accessToken}

	if encrypted := s.GetString(ctx, string(SessionKeyRefreshToken)); encrypted != "" {
		refreshToken, err := s.cipher.Decrypt(encrypted)
		if err != nil {
			return models.TokenSet{}, false
		}
		tokens.RefreshToken = refreshToken
	}

	if encrypted := s.GetString(ctx, string(SessionKeyIDToken)); encrypted != "" {
		idToken, err := s.cipher.Decrypt(encrypted)
		if err != nil {
			return models.TokenSet{}, false
		}
		tokens.IDToken = idToken
	}

	if millis := s.GetInt64(ctx, string(SessionKeyExpiresAt)); millis != 0 {
		tokens.ExpiresAt = time.UnixMilli(millis)
	}

	return tokens, true
}

func (s *SessionManager) SetCustomerID(ctx context.Context, customerID string) {
	s.Put(ctx, string(SessionKeyCustomerID), customerID)
}

func (s *SessionManager) GetCustomerID(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyCustomerID))
}

func (s *SessionManager) SetOauthState(ctx context.Context, state string) {
	s.Put(ctx, string(SessionKeyOauthState), state)
}

func (s *SessionManager) GetOauthState(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) SetOauthNonce(ctx context.Context, nonce string) {
	s.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (s *SessionManager) GetOauthNonce(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) SetOauthCodeVerifier(ctx context.Context, verifier string) {
	s.Put(ctx, string(SessionKeyOauthCodeVerifier), verifier)
}

func (s *SessionManager) GetOauthCodeVerifier(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *SessionManager) ClearLoginArtifacts(ctx context.Context) {
	s.Remove(ctx, string(SessionKeyOauthState))
	s.Remove(ctx, string(SessionKeyOauthNonce))
	s.Remove(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *SessionManager) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.GetTokens(ctx)
	return ok
}

func (s *SessionManager) Destroy(ctx context.Context) error {
	return s.SessionManager.Destroy(ctx)
}
