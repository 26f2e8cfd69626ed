package models

// User is the authenticated identity supplied by the identity
// provider. This service only reads it, it never manages sessions.
type User struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"emailVerified"`
}
