package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/metrics"
	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Provider runs the authorization code flow with PKCE against the
// customer account issuer.
type Provider struct {
	cfg       config.CustomerAuthConfig
	discovery *DiscoveryCache
	client    *http.Client
}

func NewProvider(cfg config.CustomerAuthConfig, discovery *DiscoveryCache) *Provider {
	return &Provider{
		cfg:       cfg,
		discovery: discovery,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Provider) oauth2Config(ctx context.Context) (*oauth2.Config, error) {
	provider, err := p.discovery.Provider(ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       p.cfg.Scopes,
		RedirectURL:  p.cfg.CallbackURL,
	}, nil
}

func (p *Provider) BeginLogin(ctx *middlewares.AppContext) (string, error) {
	oauth2Config, err := p.oauth2Config(ctx)
	if err != nil {
		return "", err
	}

	state := GenerateState()
	nonce := GenerateNonce()
	codeVerifier := GenerateCodeVerifier()

	ctx.SessionManager.SetOauthState(ctx, state)
	ctx.SessionManager.SetOauthNonce(ctx, nonce)
	ctx.SessionManager.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", GenerateCodeChallenge(codeVerifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

func (p *Provider) CompleteLogin(ctx *middlewares.AppContext) (string, error) {
	query := ctx.Request.URL.Query()

	if errorParam := query.Get("error"); errorParam != "" {
		description := query.Get("error_description")
		return "", newLoginError(errorParam, fmt.Errorf("provider returned error: %s", description))
	}

	code := query.Get("code")
	receivedState := query.Get("state")
	if code == "" || receivedState == "" {
		return "", newLoginError(ReasonMissingParameters, nil)
	}

	storedState := ctx.SessionManager.GetOauthState(ctx)
	if storedState == "" || receivedState != storedState {
		return "", newLoginError(ReasonStateMismatch, nil)
	}

	codeVerifier := ctx.SessionManager.GetOauthCodeVerifier(ctx)
	if codeVerifier == "" {
		return "", newLoginError(ReasonMissingVerifier, nil)
	}

	oauth2Config, err := p.oauth2Config(ctx)
	if err != nil {
		return "", newLoginError(ReasonTokenExchangeFailed, err)
	}

	token, err := oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", newLoginError(ReasonTokenExchangeFailed, err)
	}

	rawIDToken, _ := token.Extra("id_token").(string)

	// The id token is decoded without signature verification. The
	// token came over TLS directly from the token endpoint, and the
	// only claim consumed is the subject.
	customerID, err := extractSubject(rawIDToken)
	if err != nil {
		return "", newLoginError(ReasonTokenExchangeFailed, err)
	}

	tokens := models.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		IDToken:      rawIDToken,
		ExpiresAt:    token.Expiry,
	}

	if err := ctx.SessionManager.SetTokens(ctx, tokens); err != nil {
		return "", newLoginError(ReasonTokenExchangeFailed, err)
	}

	ctx.SessionManager.SetCustomerID(ctx, customerID)

	return customerID, nil
}

func (p *Provider) Refresh(ctx context.Context, refreshToken string) (models.TokenSet, error) {
	oauth2Config, err := p.oauth2Config(ctx)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failure").Inc()
		return models.TokenSet{}, err
	}

	source := oauth2Config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failure").Inc()
		return models.TokenSet{}, fmt.Errorf("refresh token grant failed: %w", err)
	}

	metrics.TokenRefreshes.WithLabelValues("success").Inc()

	tokens := models.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}

	// the issuer may not rotate the refresh token
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok {
		tokens.IDToken = rawIDToken
	}

	return tokens, nil
}

func (p *Provider) Revoke(ctx context.Context, idToken string) error {
	endpoint, err := p.discovery.EndSessionEndpoint(ctx)
	if err != nil {
		return err
	}

	logoutURL := fmt.Sprintf("%s?id_token_hint=%s", endpoint, url.QueryEscape(idToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoutURL, nil)
	if err != nil {
		return fmt.Errorf("build revocation request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("revocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("revocation request returned %d", resp.StatusCode)
	}

	return nil
}

func (p *Provider) EndSessionEndpoint(ctx context.Context) (string, error) {
	return p.discovery.EndSessionEndpoint(ctx)
}

func extractSubject(rawIDToken string) (string, error) {
	if rawIDToken == "" {
		return "", fmt.Errorf("no id_token in token response")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return "", fmt.Errorf("decode id_token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("id_token has no subject")
	}

	return sub, nil
}
