package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-exercise-tracker/internal/domain/shares"
)

type SharesRepo struct {
	db *sql.DB
}

func NewSharesRepo(db *sql.DB) *SharesRepo {
	return &SharesRepo{db: db}
}

const shareColumns = `
	id, pet_id, owner_user_id, token,
	scopes, status,
	created_at, updated_at, expires_at, revoked_at`

func (r *SharesRepo) Create(ctx context.Context, s shares.Share) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shares (`+shareColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		s.ID,
		s.PetID,
		s.OwnerUserID,
		s.Token,
		scopesToText(s.Scopes),
		string(s.Status),
		formatTS(s.CreatedAt),
		formatTS(s.UpdatedAt),
		toNullTS(s.ExpiresAt),
		toNullTS(s.RevokedAt),
	)
	return err
}

func (r *SharesRepo) Update(ctx context.Context, s shares.Share) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shares
		SET
			scopes = $2,
			status = $3,
			updated_at = $4,
			expires_at = $5,
			revoked_at = $6
		WHERE id = $1
	`,
		s.ID,
		scopesToText(s.Scopes),
		string(s.Status),
		formatTS(s.UpdatedAt),
		toNullTS(s.ExpiresAt),
		toNullTS(s.RevokedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return shares.ErrNotFound
	}
	return nil
}

func (r *SharesRepo) GetByID(ctx context.Context, id string) (shares.Share, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *SharesRepo) GetByToken(ctx context.Context, token string) (shares.Share, error) {
	return r.getOne(ctx, `WHERE token = $1`, token)
}

func (r *SharesRepo) getOne(ctx context.Context, where, arg string) (shares.Share, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shareColumns+` FROM shares `+where, arg)
	s, err := scanShare(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shares.Share{}, shares.ErrNotFound
		}
		return shares.Share{}, err
	}
	return s, nil
}

func (r *SharesRepo) ListByPet(ctx context.Context, petID string) ([]shares.Share, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+shareColumns+`
		FROM shares
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shares.Share, 0)
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanShare(sc scanner) (shares.Share, error) {
	var s shares.Share
	var scopes, status, created, updated string
	var expires, revoked sql.NullString
	if err := sc.Scan(
		&s.ID,
		&s.PetID,
		&s.OwnerUserID,
		&s.Token,
		&scopes,
		&status,
		&created,
		&updated,
		&expires,
		&revoked,
	); err != nil {
		return shares.Share{}, err
	}
	s.Scopes = textToScopes(scopes)
	s.Status = shares.Status(status)

	var err error
	if s.CreatedAt, err = parseTS(created); err != nil {
		return shares.Share{}, err
	}
	if s.UpdatedAt, err = parseTS(updated); err != nil {
		return shares.Share{}, err
	}
	if s.ExpiresAt, err = fromNullTS(expires); err != nil {
		return shares.Share{}, err
	}
	if s.RevokedAt, err = fromNullTS(revoked); err != nil {
		return shares.Share{}, err
	}
	return s, nil
}

// Scopes como CSV: TEXT[] no existe en SQLite.
func scopesToText(in []shares.Scope) string {
	parts := make([]string, 0, len(in))
	for _, s := range in {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

func textToScopes(s string) []shares.Scope {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]shares.Scope, 0, len(parts))
	for _, p := range parts {
		out = append(out, shares.Scope(p))
	}
	return out
}
