package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/platform/civil"
)

type ExercisesRepo struct {
	db *sql.DB
}

func NewExercisesRepo(db *sql.DB) *ExercisesRepo {
	return &ExercisesRepo{db: db}
}

const exerciseColumns = `
	id, pet_id, entry_date,
	duration_minutes, calories,
	exercise_type, intensity,
	notes, location,
	created_at, updated_at`

func (r *ExercisesRepo) Create(ctx context.Context, e exercises.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exercise_entries (`+exerciseColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID,
		e.PetID,
		civil.Format(e.Date),
		e.DurationMinutes,
		e.Calories,
		string(e.Type),
		string(e.Intensity),
		e.Notes,
		e.Location,
		formatTS(e.CreatedAt),
		formatTS(e.UpdatedAt),
	)
	return err
}

func (r *ExercisesRepo) Update(ctx context.Context, e exercises.Entry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE exercise_entries
		SET
			entry_date = $2,
			duration_minutes = $3,
			calories = $4,
			exercise_type = $5,
			intensity = $6,
			notes = $7,
			location = $8,
			updated_at = $9
		WHERE id = $1
	`,
		e.ID,
		civil.Format(e.Date),
		e.DurationMinutes,
		e.Calories,
		string(e.Type),
		string(e.Intensity),
		e.Notes,
		e.Location,
		formatTS(e.UpdatedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return exercises.ErrNotFound
	}
	return nil
}

func (r *ExercisesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercise_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return exercises.ErrNotFound
	}
	return nil
}

func (r *ExercisesRepo) GetByID(ctx context.Context, id string) (exercises.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercise_entries WHERE id = $1`, id)
	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return exercises.Entry{}, exercises.ErrNotFound
		}
		return exercises.Entry{}, err
	}
	return e, nil
}

func (r *ExercisesRepo) ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error) {
	var (
		where = []string{"pet_id = $1"}
		args  = []any{petID}
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Types) > 0 {
		ph := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			ph = append(ph, arg(string(t)))
		}
		where = append(where, "exercise_type IN ("+strings.Join(ph, ",")+")")
	}
	if filter.From != nil {
		where = append(where, "entry_date >= "+arg(civil.Format(*filter.From)))
	}
	if filter.To != nil {
		where = append(where, "entry_date <= "+arg(civil.Format(*filter.To)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, `LOWER(notes || ' ' || location) LIKE `+arg(likePattern(q))+` ESCAPE '\'`)
	}

	query := `SELECT ` + exerciseColumns + ` FROM exercise_entries WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY entry_date ASC, created_at ASC`
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exercises.Entry, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExercisesRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exercise_entries WHERE pet_id = $1`, petID)
	return err
}

func scanExercise(s scanner) (exercises.Entry, error) {
	var e exercises.Entry
	var date, typ, intensity, created, updated string
	if err := s.Scan(
		&e.ID,
		&e.PetID,
		&date,
		&e.DurationMinutes,
		&e.Calories,
		&typ,
		&intensity,
		&e.Notes,
		&e.Location,
		&created,
		&updated,
	); err != nil {
		return exercises.Entry{}, err
	}
	e.Type = exercises.Type(typ)
	e.Intensity = exercises.Intensity(intensity)

	var err error
	if e.Date, err = civil.ParseDate(date); err != nil {
		return exercises.Entry{}, err
	}
	if e.CreatedAt, err = parseTS(created); err != nil {
		return exercises.Entry{}, err
	}
	if e.UpdatedAt, err = parseTS(updated); err != nil {
		return exercises.Entry{}, err
	}
	return e, nil
}
