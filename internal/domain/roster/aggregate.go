package roster

import (
	"fmt"

	"github.com/alem-hub/engineer-roster/internal/domain/engineer"
)

// SeniorityThreshold is the number of years an engineer must exceed to be
// included in expertise groups.
const SeniorityThreshold = 5

// ══════════════════════════════════════════════════════════════════════════════
// GROUPING BY EXPERTISE
// ══════════════════════════════════════════════════════════════════════════════

// ExpertiseGroups maps an expertise tag to the engineers holding it.
// Keys keep the order in which they were first seen.
type ExpertiseGroups struct {
	keys   []string
	groups map[string][]engineer.Engineer
}

// GroupByExpertise fans out every engineer with more than SeniorityThreshold
// years into one list per expertise tag. Roster order is kept inside a list.
func GroupByExpertise(engineers []engineer.Engineer) *ExpertiseGroups {
	g := &ExpertiseGroups{
		keys:   make([]string, 0),
		groups: make(map[string][]engineer.Engineer),
	}

	for _, e := range engineers {
		if e.YearsExperience() <= SeniorityThreshold {
			continue
		}
		for _, tag := range e.Expertise().Tags() {
			if _, ok := g.groups[tag]; !ok {
				g.keys = append(g.keys, tag)
			}
			g.groups[tag] = append(g.groups[tag], e)
		}
	}

	return g
}

// Keys returns the tags in first-seen order.
func (g *ExpertiseGroups) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the engineers of a tag, nil when the tag has no group.
func (g *ExpertiseGroups) Get(tag string) []engineer.Engineer {
	return g.groups[tag]
}

// Len returns the number of groups.
func (g *ExpertiseGroups) Len() int {
	return len(g.keys)
}

// Map returns a copy of the groups as a plain map.
func (g *ExpertiseGroups) Map() map[string][]engineer.Engineer {
	out := make(map[string][]engineer.Engineer, len(g.groups))
	for tag, list := range g.groups {
		out[tag] = append([]engineer.Engineer(nil), list...)
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// MOST EXPERIENCED PER KIND
// ══════════════════════════════════════════════════════════════════════════════

// Champions holds the most experienced engineer of every present kind.
type Champions struct {
	byKind map[engineer.Kind]engineer.Engineer
}

// MostExperiencedByKind picks, per kind, the engineer with the most years.
// On a tie the earliest engineer in roster order wins. Kinds without
// engineers are absent from the result.
func MostExperiencedByKind(engineers []engineer.Engineer) *Champions {
	c := &Champions{byKind: make(map[engineer.Kind]engineer.Engineer)}

	for _, e := range engineers {
		kind := kindOf(e)
		current, ok := c.byKind[kind]
		if !ok || e.YearsExperience() > current.YearsExperience() {
			c.byKind[kind] = e
		}
	}

	return c
}

// Get returns the champion of a kind.
func (c *Champions) Get(kind engineer.Kind) (engineer.Engineer, bool) {
	e, ok := c.byKind[kind]
	return e, ok
}

// Len returns the number of kinds present.
func (c *Champions) Len() int {
	return len(c.byKind)
}

// Ordered returns the present kinds in report order.
func (c *Champions) Ordered() []engineer.Kind {
	out := make([]engineer.Kind, 0, len(c.byKind))
	for _, kind := range engineer.Kinds() {
		if _, ok := c.byKind[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

// ByLabel returns the champions keyed by variant label,
// e.g. "Software Engineer".
func (c *Champions) ByLabel() map[string]engineer.Engineer {
	out := make(map[string]engineer.Engineer, len(c.byKind))
	for kind, e := range c.byKind {
		out[kind.Label()] = e
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// TOTALS
// ══════════════════════════════════════════════════════════════════════════════

// Totals sums the per-variant counts over a roster.
type Totals struct {
	Projects     int
	Certificates int
}

// Total returns projects plus certificates.
func (t Totals) Total() int {
	return t.Projects + t.Certificates
}

// ComputeTotals sums projects of software engineers and certificates of
// electrical engineers. The seniority threshold does not apply here.
func ComputeTotals(engineers []engineer.Engineer) Totals {
	var t Totals
	for _, e := range engineers {
		switch v := e.(type) {
		case *engineer.SoftwareEngineer:
			t.Projects += v.ProjectCount()
		case *engineer.ElectricalEngineer:
			t.Certificates += v.CertificateCount()
		default:
			panic(fmt.Sprintf("roster: unhandled engineer variant %T", e))
		}
	}
	return t
}

// kindOf resolves the kind from the concrete type so that a new variant
// fails loudly here instead of being silently grouped.
func kindOf(e engineer.Engineer) engineer.Kind {
	switch e.(type) {
	case *engineer.SoftwareEngineer:
		return engineer.KindSoftware
	case *engineer.ElectricalEngineer:
		return engineer.KindElectrical
	default:
		panic(fmt.Sprintf("roster: unhandled engineer variant %T", e))
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER SHORTCUTS
// ══════════════════════════════════════════════════════════════════════════════

// GroupByExpertise groups the roster, see GroupByExpertise.
func (r *Roster) GroupByExpertise() *ExpertiseGroups {
	return GroupByExpertise(r.engineers)
}

// MostExperiencedByKind picks champions over the roster.
func (r *Roster) MostExperiencedByKind() *Champions {
	return MostExperiencedByKind(r.engineers)
}

// Totals sums the roster counts.
func (r *Roster) Totals() Totals {
	return ComputeTotals(r.engineers)
}
