package moods

import "time"

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodAnxious   Mood = "anxious"
	MoodTired     Mood = "tired"
	MoodSad       Mood = "sad"
)

var AllMoods = []Mood{MoodHappy, MoodCalm, MoodEnergetic, MoodAnxious, MoodTired, MoodSad}

func (m Mood) Valid() bool {
	for _, v := range AllMoods {
		if v == m {
			return true
		}
	}
	return false
}

const MaxNoteLen = 500

// Entry es la observación de ánimo de un día. (PetID, Date) es la clave.
type Entry struct {
	PetID string
	Date  time.Time

	Mood Mood
	Note string

	RecordedAt time.Time
}
