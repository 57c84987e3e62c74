package models

// UserSummary is the denormalized slice of the backend profile that the
// client caches next to its credential for quick rendering. Not
// authoritative; the backend profile is re-fetched whenever full data is
// needed.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// SignInResponse mirrors the game backend's /signin payload, relayed
// unchanged through the signin proxy route.
type SignInResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}
