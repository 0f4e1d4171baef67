// Package storage arma los repositorios según storage.driver.
package storage

import (
	"context"
	"fmt"

	"pet-exercise-tracker/internal/adapters/storage/local"
	mem "pet-exercise-tracker/internal/adapters/storage/memory"
	"pet-exercise-tracker/internal/adapters/storage/sqlstore"
	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/preferences"
	"pet-exercise-tracker/internal/domain/shares"
	"pet-exercise-tracker/internal/domain/users"
	"pet-exercise-tracker/internal/platform/config"
	"pet-exercise-tracker/internal/platform/logger"
)

type Repos struct {
	Pets        pets.Repository
	Exercises   exercises.Repository
	Moods       moods.Repository
	Users       users.Repository
	Sessions    users.SessionRepository
	Preferences preferences.Repository
	Shares      shares.Repository

	// Close libera la conexión o el archivo. Nunca es nil.
	Close func() error
}

// Memory devuelve repos in-memory (dev/tests).
func Memory() Repos {
	return Repos{
		Pets:        mem.NewPetRepo(),
		Exercises:   mem.NewExerciseRepo(),
		Moods:       mem.NewMoodRepo(),
		Users:       mem.NewUserRepo(),
		Sessions:    mem.NewSessionRepo(),
		Preferences: mem.NewPreferencesRepo(),
		Shares:      mem.NewShareRepo(),
		Close:       func() error { return nil },
	}
}

func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (Repos, error) {
	switch cfg.Driver {
	case "", config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart", nil)
		return Memory(), nil

	case config.DriverPostgres:
		db, err := sqlstore.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return Repos{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := sqlstore.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return Repos{}, err
		}
		log.Info("storage ready", map[string]any{"driver": cfg.Driver})
		return fromSQL(sqlstore.NewRepos(db), db.Close), nil

	case config.DriverSQLite:
		db, err := sqlstore.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return Repos{}, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlstore.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return Repos{}, err
		}
		log.Info("storage ready", map[string]any{"driver": cfg.Driver, "path": cfg.Path})
		return fromSQL(sqlstore.NewRepos(db), db.Close), nil

	case config.DriverLocal:
		s, err := local.Open(cfg.Path)
		if err != nil {
			return Repos{}, fmt.Errorf("open local store: %w", err)
		}
		lr := local.NewRepos(s)
		log.Info("storage ready", map[string]any{"driver": cfg.Driver, "path": cfg.Path})
		return Repos{
			Pets:        lr.Pets,
			Exercises:   lr.Exercises,
			Moods:       lr.Moods,
			Users:       lr.Users,
			Sessions:    lr.Sessions,
			Preferences: lr.Preferences,
			Shares:      lr.Shares,
			Close:       s.Close,
		}, nil
	}
	return Repos{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func fromSQL(r sqlstore.Repos, closeFn func() error) Repos {
	return Repos{
		Pets:        r.Pets,
		Exercises:   r.Exercises,
		Moods:       r.Moods,
		Users:       r.Users,
		Sessions:    r.Sessions,
		Preferences: r.Preferences,
		Shares:      r.Shares,
		Close:       closeFn,
	}
}
