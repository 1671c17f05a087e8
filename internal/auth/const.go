package auth

type SessionKey string

var (
	SessionKeyAccessToken       SessionKey = "access_token"
	SessionKeyRefreshToken      SessionKey = "refresh_token"
	SessionKeyIDToken           SessionKey = "id_token"
	SessionKeyCustomerID        SessionKey = "customer_id"
	SessionKeyExpiresAt         SessionKey = "expires_at"
	SessionKeyOauthState        SessionKey = "oauth_state"
	SessionKeyOauthNonce        SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier SessionKey = "oauth_code_verifier"
)
