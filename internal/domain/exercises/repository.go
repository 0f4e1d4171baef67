package exercises

import (
	"context"
	"sort"
	"strings"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error)
	DeleteByPet(ctx context.Context, petID string) error
}

// ListFilter: From/To inclusivos (días). Limit <= 0 = sin límite.
// Orden: Date asc, CreatedAt asc.
type ListFilter struct {
	Types []Type
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
}

// Match aplica el filtro a una entrada (salvo Limit). Lo usan los adapters
// que no tienen motor de queries (memory, local).
func (f ListFilter) Match(e Entry) bool {
	if len(f.Types) > 0 {
		ok := false
		for _, t := range f.Types {
			if e.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		hay := strings.ToLower(e.Notes + " " + e.Location)
		if !strings.Contains(hay, strings.ToLower(q)) {
			return false
		}
	}
	return true
}

// SortEntries deja el orden canónico.
func SortEntries(items []Entry) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
