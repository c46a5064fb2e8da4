package domain

// Session is a time-bounded authorization grant identified by an opaque
// bearer token. Sessions are immutable once minted: the expiry is fixed at
// creation and never extended, and there is no token refresh.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
