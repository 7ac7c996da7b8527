// Package roster holds the ordered collection of engineers and the
// aggregations computed over it. Every function here is pure: it reads the
// roster and returns fresh result values.
package roster

import (
	"github.com/alem-hub/engineer-roster/internal/domain/engineer"
	"github.com/alem-hub/engineer-roster/internal/domain/shared"
)

// Roster is an ordered, read-only after build, sequence of engineers.
type Roster struct {
	engineers []engineer.Engineer
	ids       map[string]struct{}
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{
		engineers: make([]engineer.Engineer, 0),
		ids:       make(map[string]struct{}),
	}
}

// FromEngineers builds a roster keeping the given order.
func FromEngineers(engineers ...engineer.Engineer) (*Roster, error) {
	r := New()
	for _, e := range engineers {
		if err := r.Add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends an engineer to the end of the roster. Nil interfaces and nil
// variant pointers are rejected, as are IDs already in the roster.
func (r *Roster) Add(e engineer.Engineer) error {
	if engineer.IsNil(e) {
		return shared.ErrNilEngineer
	}
	if _, exists := r.ids[e.ID()]; exists {
		return shared.ErrDuplicateID
	}

	r.engineers = append(r.engineers, e)
	r.ids[e.ID()] = struct{}{}
	return nil
}

// Len returns the number of engineers.
func (r *Roster) Len() int {
	return len(r.engineers)
}

// All returns a copy of the engineers in roster order.
func (r *Roster) All() []engineer.Engineer {
	out := make([]engineer.Engineer, len(r.engineers))
	copy(out, r.engineers)
	return out
}
