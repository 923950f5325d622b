package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// Session identifies the caller of an operation. The zero value is anonymous.
type Session struct {
	userID uuid.UUID
	ok     bool
}

func NewSession(userID uuid.UUID) Session {
	return Session{userID: userID, ok: userID != uuid.Nil}
}

func AnonymousSession() Session {
	return Session{}
}

// UserID returns the authenticated user id, or false for anonymous callers.
func (s Session) UserID() (uuid.UUID, bool) {
	return s.userID, s.ok
}
