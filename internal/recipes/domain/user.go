package domain

import "time"

// User is an account in the system. Email is the identity key and is stored
// normalized (domain part lower-cased, local part preserved).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id encoded, never serialized out
	IsActive     bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
