package shares

import "time"

type Scope string

const (
	ScopeReportRead   Scope = "report:read"
	ScopeCalendarRead Scope = "calendar:read"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Share es un link público de solo lectura sobre una mascota.
// Token es lo que viaja en la URL; ID es lo que usa el dueño para administrarlo.
type Share struct {
	ID    string
	PetID string

	OwnerUserID string
	Token       string

	Scopes []Scope
	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt *time.Time // nil = no vence
	RevokedAt *time.Time
}

// Usable indica si el share está activo y no vencido en now.
func (s Share) Usable(now time.Time) bool {
	if s.Status != StatusActive {
		return false
	}
	if s.ExpiresAt != nil && !now.Before(*s.ExpiresAt) {
		return false
	}
	return true
}
