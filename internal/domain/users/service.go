package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	MinPasswordLen = 8
	// bcrypt ignora lo que pase de 72 bytes; lo rechazamos explícito.
	MaxPasswordLen = 72

	DefaultSessionTTL = 7 * 24 * time.Hour
)

type Service struct {
	users    Repository
	sessions SessionRepository
	now      func() time.Time
	ttl      time.Duration
	cost     int
}

func NewService(users Repository, sessions SessionRepository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		users:    users,
		sessions: sessions,
		now:      time.Now,
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return User{}, fmt.Errorf("%w: valid email required", ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLen || len(in.Password) > MaxPasswordLen {
		return User{}, fmt.Errorf("%w: password must be %d-%d chars", ErrInvalidInput, MinPasswordLen, MaxPasswordLen)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  name,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y emite una sesión nueva.
// No distingue email desconocido de password incorrecto.
func (s *Service) Login(ctx context.Context, email, password string) (Session, User, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, User{}, ErrInvalidCredentials
		}
		return Session{}, User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, User{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return Session{}, User{}, err
	}
	return sess, u, nil
}

// Logout borra la sesión. Idempotente.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	err := s.sessions.DeleteSession(ctx, token)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Verify implementa auth.AuthVerifier para tokens de sesión locales.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthenticated
	}

	sess, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("session lookup: %w", err)
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.DeleteSession(ctx, token)
		return auth.Claims{}, ErrSessionExpired
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("session user: %w", err)
	}

	return auth.Claims{
		UserID:   u.ID,
		Email:    u.Email,
		Provider: "session",
	}, nil
}

// PurgeExpiredSessions borra sesiones vencidas si el repo lo soporta.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	p, ok := s.sessions.(SessionPurger)
	if !ok {
		return 0, nil
	}
	return p.PurgeExpired(ctx, s.now())
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.users.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.users.GetByEmail(ctx, normalizeEmail(email))
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
