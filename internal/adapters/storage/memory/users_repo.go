package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"pet-exercise-tracker/internal/domain/users"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

type sessionRepo struct {
	mu      sync.RWMutex
	byToken map[string]users.Session
}

func NewSessionRepo() users.SessionRepository {
	return &sessionRepo{
		byToken: make(map[string]users.Session),
	}
}

func (r *sessionRepo) CreateSession(ctx context.Context, s users.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Token == "" {
		return errors.New("session token required")
	}
	r.byToken[s.Token] = s
	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context, token string) (users.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byToken[token]
	if !ok {
		return users.Session{}, users.ErrNotFound
	}
	return s, nil
}

func (r *sessionRepo) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return users.ErrNotFound
	}
	delete(r.byToken, token)
	return nil
}

func (r *sessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for token, s := range r.byToken {
		if s.Expired(now) {
			delete(r.byToken, token)
			n++
		}
	}
	return n, nil
}
