package local

// Repos agrupa los repositorios sobre un mismo archivo.
type Repos struct {
	Pets        *PetsRepo
	Exercises   *ExercisesRepo
	Moods       *MoodsRepo
	Users       *UsersRepo
	Sessions    *SessionsRepo
	Preferences *PreferencesRepo
	Shares      *SharesRepo
}

func NewRepos(s *Store) Repos {
	return Repos{
		Pets:        NewPetsRepo(s),
		Exercises:   NewExercisesRepo(s),
		Moods:       NewMoodsRepo(s),
		Users:       NewUsersRepo(s),
		Sessions:    NewSessionsRepo(s),
		Preferences: NewPreferencesRepo(s),
		Shares:      NewSharesRepo(s),
	}
}
