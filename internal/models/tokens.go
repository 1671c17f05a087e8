package models

import "time"

// TokenSet holds the bearer credentials issued by the identity provider for
// one customer session.
type TokenSet struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	IDToken      string    `json:"id_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ExpiresWithin reports whether the access token expires at or before
// now+buffer. The boundary is inclusive: a token expiring exactly buffer from
// now is already considered expiring.
func (t TokenSet) ExpiresWithin(now time.Time, buffer time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(t.ExpiresAt.Add(-buffer))
}
