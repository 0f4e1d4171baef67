package backup

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LegacyKeys son las claves bajo las que versiones anteriores guardaban la lista de mascotas.
var LegacyKeys = []string{"pets", "petProfiles", "petData"}

// Record es una mascota en el formato anidado de respaldo.
type Record struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Image           string     `json:"image,omitempty" yaml:"image,omitempty"`
	Characteristics string     `json:"characteristics" yaml:"characteristics"`
	Age             float64    `json:"age" yaml:"age"`
	Weight          float64    `json:"weight" yaml:"weight"`
	HealthStatus    string     `json:"healthStatus" yaml:"healthStatus"`
	Exercises       []Exercise `json:"exercises" yaml:"exercises"`
	Moods           []Mood     `json:"moods" yaml:"moods"`
}

type Exercise struct {
	Date      string  `json:"date" yaml:"date"`
	Duration  int     `json:"duration" yaml:"duration"`
	Calories  float64 `json:"calories" yaml:"calories"`
	Type      string  `json:"type" yaml:"type"`
	Intensity string  `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Notes     string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Location  string  `json:"location,omitempty" yaml:"location,omitempty"`
}

type Mood struct {
	Date string `json:"date" yaml:"date"`
	Mood string `json:"mood" yaml:"mood"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Los tipos raw* son la versión tolerante para importar: números como
// string, ids numéricos y entradas inválidas que se saltean de a una.

type rawRecord struct {
	Name            string            `json:"name"`
	Image           string            `json:"image"`
	Characteristics string            `json:"characteristics"`
	Age             *number           `json:"age"`
	Weight          *number           `json:"weight"`
	HealthStatus    string            `json:"healthStatus"`
	Exercises       []json.RawMessage `json:"exercises"`
	Moods           []json.RawMessage `json:"moods"`
}

type rawExercise struct {
	Date      string  `json:"date"`
	Duration  *number `json:"duration"`
	Calories  *number `json:"calories"`
	Type      string  `json:"type"`
	Intensity string  `json:"intensity"`
	Notes     string  `json:"notes"`
	Location  string  `json:"location"`
}

type rawMood struct {
	Date string `json:"date"`
	Mood code   `json:"mood"`
	Note string `json:"note"`
}

// code acepta el ánimo como texto o como número (posición 1-based en moods.AllMoods).
type code string

func (c *code) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*c = code(str)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("mood must be text or number: %s", b)
	}
	*c = code(strconv.Itoa(n))
	return nil
}

// number acepta 12, 12.5, "12" o "12.5". NaN e Inf no se aceptan.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = number(f)
	return nil
}

func (n *number) value() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}
