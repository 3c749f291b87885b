package domain

import "time"

// APIToken models a stored opaque bearer token. Only the SHA-256 fingerprint
// of the token value is kept; the value itself is returned to the client once
// at issuance.
type APIToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
