package models

// Session is the stored shape of one session entry in the Redis backend.
// The in-memory registry keeps only the token-to-user mapping.
type Session struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
	CreatedAt    string `json:"created_at"`
}
