package router

import (
	"time"

	"pet-exercise-tracker/internal/adapters/storage"
	"pet-exercise-tracker/internal/domain/backup"
	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/preferences"
	"pet-exercise-tracker/internal/domain/reports"
	"pet-exercise-tracker/internal/domain/shares"
	"pet-exercise-tracker/internal/domain/users"
)

// Services por módulo. Lo comparten el router y los comandos del CLI.
type Services struct {
	Users       *users.Service
	Pets        *pets.Service
	Exercises   *exercises.Service
	Moods       *moods.Service
	Preferences *preferences.Service
	Shares      *shares.Service
	Insights    *insights.Service
	Reports     *reports.Service
	Backup      *backup.Service
}

// NewServices arma los services y registra la cascada de borrado de mascotas.
func NewServices(repos storage.Repos, sessionTTL time.Duration) *Services {
	petsSvc := pets.NewService(repos.Pets)
	exercisesSvc := exercises.NewService(repos.Exercises)
	moodsSvc := moods.NewService(repos.Moods)
	sharesSvc := shares.NewService(repos.Shares)
	prefsSvc := preferences.NewService(repos.Preferences, petsSvc)

	petsSvc.OnDelete(
		exercisesSvc.DeleteByPet,
		moodsSvc.DeleteByPet,
		sharesSvc.RevokeByPet,
		prefsSvc.ClearActivePet,
	)

	return &Services{
		Users:       users.NewService(repos.Users, repos.Sessions, sessionTTL),
		Pets:        petsSvc,
		Exercises:   exercisesSvc,
		Moods:       moodsSvc,
		Preferences: prefsSvc,
		Shares:      sharesSvc,
		Insights:    insights.NewService(exercisesSvc, moodsSvc),
		Reports:     reports.NewService(petsSvc, exercisesSvc, moodsSvc),
		Backup:      backup.NewService(petsSvc, exercisesSvc, moodsSvc),
	}
}
