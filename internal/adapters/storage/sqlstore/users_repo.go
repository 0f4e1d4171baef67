package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-exercise-tracker/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, u.ID, u.Email, u.DisplayName, u.PasswordHash, formatTS(u.CreatedAt))
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, display_name, password_hash, created_at
		FROM users `+where, arg)

	var u users.User
	var created string
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	var err error
	if u.CreatedAt, err = parseTS(created); err != nil {
		return users.User{}, err
	}
	return u, nil
}

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) CreateSession(ctx context.Context, s users.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1,$2,$3,$4)
	`, s.Token, s.UserID, formatTS(s.CreatedAt), formatTS(s.ExpiresAt))
	return err
}

func (r *SessionsRepo) GetSession(ctx context.Context, token string) (users.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`, token)

	var s users.Session
	var created, expires string
	if err := row.Scan(&s.Token, &s.UserID, &created, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Session{}, users.ErrNotFound
		}
		return users.Session{}, err
	}

	var err error
	if s.CreatedAt, err = parseTS(created); err != nil {
		return users.Session{}, err
	}
	if s.ExpiresAt, err = parseTS(expires); err != nil {
		return users.Session{}, err
	}
	return s, nil
}

func (r *SessionsRepo) DeleteSession(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

// PurgeExpired borra sesiones vencidas. Lo llama el comando serve periódicamente.
func (r *SessionsRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, formatTS(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
