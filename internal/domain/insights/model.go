package insights

import (
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
)

type Group string

const (
	GroupDay   Group = "day"
	GroupWeek  Group = "week"
	GroupMonth Group = "month"
)

func (g Group) Valid() bool {
	switch g {
	case GroupDay, GroupWeek, GroupMonth:
		return true
	}
	return false
}

const (
	// MaxDayRange es el máximo de días con agrupación diaria.
	MaxDayRange = 366
	// MaxRange acota week/month (~10 años).
	MaxRange = 3660
)

// CalendarDay es una celda del calendario mensual.
type CalendarDay struct {
	Date time.Time

	Exercises int
	Minutes   int
	Calories  float64
	Types     []exercises.Type // distintos, en orden de AllTypes

	Mood moods.Mood // vacío si no hay registro ese día
}

type Calendar struct {
	PetID string
	Month time.Time // primer día del mes

	Days   []CalendarDay
	Totals Totals
}

type Totals struct {
	Exercises  int
	Minutes    int
	Calories   float64
	ActiveDays int // días con al menos un ejercicio
}

// Bucket agrega ejercicios de un día, semana (lunes) o mes.
type Bucket struct {
	Start time.Time
	Label string

	Exercises int
	Minutes   int
	Calories  float64
}

type TypeBreakdown struct {
	Type      exercises.Type
	Exercises int
	Minutes   int
	Calories  float64
}

type MoodCount struct {
	Mood  moods.Mood
	Count int
}

type Stats struct {
	PetID string
	From  time.Time
	To    time.Time
	Group Group

	Buckets []Bucket
	Totals  Totals

	ByType []TypeBreakdown // solo tipos con actividad
	Moods  []MoodCount     // solo ánimos registrados, en orden de AllMoods

	CurrentStreak int // días seguidos con ejercicio que terminan en To
	LongestStreak int

	AvgMinutesPerActiveDay float64
}
