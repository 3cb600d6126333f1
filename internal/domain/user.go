package domain

import "time"

// Auth providers stored on the user row. Only local registration is
// implemented; google rows come from out-of-band imports.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the domain entity for an account. Email is stored lowercase.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Provider     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
