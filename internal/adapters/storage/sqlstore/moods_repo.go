package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"
)

type MoodsRepo struct {
	db *sql.DB
}

func NewMoodsRepo(db *sql.DB) *MoodsRepo {
	return &MoodsRepo{db: db}
}

func (r *MoodsRepo) Upsert(ctx context.Context, e moods.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mood_entries (pet_id, entry_date, mood, note, recorded_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (pet_id, entry_date) DO UPDATE
		SET mood = excluded.mood, note = excluded.note, recorded_at = excluded.recorded_at
	`,
		e.PetID,
		civil.Format(e.Date),
		string(e.Mood),
		e.Note,
		formatTS(e.RecordedAt),
	)
	return err
}

func (r *MoodsRepo) Delete(ctx context.Context, petID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM mood_entries WHERE pet_id = $1 AND entry_date = $2`,
		petID, civil.Format(date))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return moods.ErrNotFound
	}
	return nil
}

func (r *MoodsRepo) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error) {
	where := []string{"pet_id = $1"}
	args := []any{petID}
	if from != nil {
		args = append(args, civil.Format(*from))
		where = append(where, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, civil.Format(*to))
		where = append(where, fmt.Sprintf("entry_date <= $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, entry_date, mood, note, recorded_at
		FROM mood_entries
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY entry_date ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]moods.Entry, 0)
	for rows.Next() {
		var e moods.Entry
		var date, mood, recorded string
		if err := rows.Scan(&e.PetID, &date, &mood, &e.Note, &recorded); err != nil {
			return nil, err
		}
		e.Mood = moods.Mood(mood)
		if e.Date, err = civil.ParseDate(date); err != nil {
			return nil, err
		}
		if e.RecordedAt, err = parseTS(recorded); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *MoodsRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE pet_id = $1`, petID)
	return err
}
