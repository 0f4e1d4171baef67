package preferences

import "time"

// Preferences del usuario. ActivePetID vacío = sin mascota activa.
type Preferences struct {
	UserID      string
	ActivePetID string
	DarkMode    bool

	UpdatedAt time.Time
}

// Defaults para un usuario sin preferencias guardadas.
func Defaults(userID string) Preferences {
	return Preferences{UserID: userID}
}
