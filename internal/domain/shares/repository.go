package shares

import "context"

type Repository interface {
	Create(ctx context.Context, s Share) error
	Update(ctx context.Context, s Share) error
	GetByID(ctx context.Context, id string) (Share, error)
	GetByToken(ctx context.Context, token string) (Share, error)
	// ListByPet ordena por CreatedAt asc.
	ListByPet(ctx context.Context, petID string) ([]Share, error)
}
