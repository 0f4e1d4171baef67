package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"pet-exercise-tracker/internal/domain/preferences"
)

type PreferencesRepo struct {
	db *sql.DB
}

func NewPreferencesRepo(db *sql.DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

func (r *PreferencesRepo) Get(ctx context.Context, userID string) (preferences.Preferences, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, active_pet_id, dark_mode, updated_at
		FROM preferences
		WHERE user_id = $1
	`, userID)

	var p preferences.Preferences
	var updated string
	if err := row.Scan(&p.UserID, &p.ActivePetID, &p.DarkMode, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return preferences.Preferences{}, preferences.ErrNotFound
		}
		return preferences.Preferences{}, err
	}

	var err error
	if p.UpdatedAt, err = parseTS(updated); err != nil {
		return preferences.Preferences{}, err
	}
	return p, nil
}

func (r *PreferencesRepo) Put(ctx context.Context, p preferences.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (user_id, active_pet_id, dark_mode, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id) DO UPDATE
		SET active_pet_id = excluded.active_pet_id,
			dark_mode = excluded.dark_mode,
			updated_at = excluded.updated_at
	`, p.UserID, p.ActivePetID, p.DarkMode, formatTS(p.UpdatedAt))
	return err
}

func (r *PreferencesRepo) ClearActivePet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE preferences SET active_pet_id = '' WHERE active_pet_id = $1`, petID)
	return err
}
