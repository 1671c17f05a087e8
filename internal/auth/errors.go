package auth

// Login failure reasons reported back to the popup.
const (
	ReasonMissingParameters   = "missing parameters"
	ReasonStateMismatch       = "state mismatch"
	ReasonMissingVerifier     = "missing verifier"
	ReasonTokenExchangeFailed = "token exchange failed"
)

// LoginError carries the reason shown to the popup alongside the
// underlying cause, which is only logged.
type LoginError struct {
	Reason string
	Err    error
}

func (e *LoginError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func newLoginError(reason string, err error) *LoginError {
	return &LoginError{Reason: reason, Err: err}
}
