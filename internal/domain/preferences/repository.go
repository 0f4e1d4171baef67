package preferences

import "context"

type Repository interface {
	// Get devuelve ErrNotFound si el usuario nunca guardó preferencias.
	Get(ctx context.Context, userID string) (Preferences, error)
	Put(ctx context.Context, p Preferences) error
	// ClearActivePet limpia ActivePetID en todas las preferencias que apunten a petID.
	ClearActivePet(ctx context.Context, petID string) error
}
