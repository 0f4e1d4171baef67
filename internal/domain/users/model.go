package users

import "time"

type User struct {
	ID           string
	Email        string // lower-case, único
	DisplayName  string
	PasswordHash string

	CreatedAt time.Time
}

// Session es un token opaco emitido en login.
type Session struct {
	Token  string
	UserID string

	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
