package models

// User is the full persisted record for one account. The whole record is
// loaded and overwritten on every mutation; there are no partial updates.
type User struct {
	Name     string            `json:"name"`
	UserID   string            `json:"userId"`
	Password string            `json:"password"`
	Gmail    string            `json:"gmail"`
	Tasks    map[string][]Task `json:"tasks"`
}
