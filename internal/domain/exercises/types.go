package exercises

type Type string

const (
	TypeWalk     Type = "walk"
	TypeRun      Type = "run"
	TypePlay     Type = "play"
	TypeFetch    Type = "fetch"
	TypeSwim     Type = "swim"
	TypeHike     Type = "hike"
	TypeTraining Type = "training"
	TypeOther    Type = "other"
)

// AllTypes en el orden en que se muestran en reportes.
var AllTypes = []Type{TypeWalk, TypeRun, TypePlay, TypeFetch, TypeSwim, TypeHike, TypeTraining, TypeOther}

func (t Type) Valid() bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	}
	return false
}

// caloriesPerMinute: estimación gruesa cuando el usuario no carga calorías.
var caloriesPerMinute = map[Intensity]float64{
	IntensityLow:      3,
	IntensityModerate: 5,
	IntensityHigh:     8,
}

// EstimateCalories devuelve minutos * factor de intensidad.
func EstimateCalories(minutes int, intensity Intensity) float64 {
	f, ok := caloriesPerMinute[intensity]
	if !ok {
		f = caloriesPerMinute[IntensityModerate]
	}
	return float64(minutes) * f
}
