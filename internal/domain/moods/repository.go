package moods

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert reemplaza la entrada del mismo (PetID, Date) si existe.
	Upsert(ctx context.Context, e Entry) error
	Delete(ctx context.Context, petID string, date time.Time) error
	// ListByPet devuelve entradas ordenadas por Date asc. from/to inclusivos y opcionales.
	ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]Entry, error)
	DeleteByPet(ctx context.Context, petID string) error
}

// InRange ayuda a los adapters sin motor de queries.
func InRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
