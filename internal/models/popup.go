package models

// PopupMessageType enumerates the messages a popup window may post back to
// its opener. The contract is closed: openers ignore anything else.
type PopupMessageType string

const (
	PopupAuthSuccess   PopupMessageType = "AUTH_SUCCESS"
	PopupAuthError     PopupMessageType = "AUTH_ERROR"
	PopupLogoutSuccess PopupMessageType = "LOGOUT_SUCCESS"
)

// PopupMessage is posted from the auth/logout popup to window.opener at the
// configured application origin.
type PopupMessage struct {
	Type       PopupMessageType `json:"type"`
	CustomerID string           `json:"customerId,omitempty"`
	Error      string           `json:"error,omitempty"`
}
