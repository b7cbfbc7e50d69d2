package domain

import "time"

// ResetToken is a stored password reset grant. Only the SHA-256 fingerprint
// of the token handed to the user is persisted.
type ResetToken struct {
	ID         string
	TokenHash  string
	OwnerID    string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

func (t ResetToken) Consumed() bool { return t.ConsumedAt != nil }
