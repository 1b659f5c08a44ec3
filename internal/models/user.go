package models

// Identity is the authenticated-user record carried by a session. It is never
// persisted to the ticket collection.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
