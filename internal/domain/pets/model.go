package pets

import "time"

// HealthStatus es el estado de salud general que el dueño asigna al perfil.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor:
		return true
	}
	return false
}

const (
	MaxNameLen            = 80
	MaxCharacteristicsLen = 2000
	MaxImageBytes         = 2 << 20

	MaxAgeYears = 40
	MaxWeightKg = 200
)

// Pet representa el perfil de una mascota.
// Los registros de ejercicio y ánimo viven en sus propios módulos y se
// referencian por PetID, nunca por posición.
type Pet struct {
	ID          string
	OwnerUserID string

	Name            string
	Image           string // data URI (data:image/...;base64,...) o URL http(s)
	Characteristics string

	Age    float64 // años
	Weight float64 // kg

	HealthStatus HealthStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
