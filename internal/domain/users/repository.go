package users

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// SessionPurger es opcional: repos que pueden borrar sesiones vencidas en bloque.
type SessionPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
