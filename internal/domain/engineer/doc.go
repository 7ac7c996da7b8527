// Package engineer contains the domain model of an engineer on the roster.
//
// The package defines:
//
//   - The Engineer interface, closed to the two variants declared here
//   - Variants: SoftwareEngineer and ElectricalEngineer
//   - Value objects: Expertise, Kind
//
// # Construction
//
// Every engineer is created through a validating constructor. A violated
// invariant returns a *shared.ValidationError naming the field:
//
//	eng, err := NewSoftwareEngineer(NewSoftwareEngineerParams{
//	    ID:              uuid.New().String(),
//	    FirstName:       "Amina",
//	    LastName:        "Hodžić",
//	    YearsExperience: 8,
//	    Expertise:       []string{"Kotlin", "Android", "Java"},
//	    ProjectCount:    15,
//	})
//
// Records are immutable once built: fields are unexported and exposed
// through getters only.
//
// # Variants
//
// Consumers dispatch on the concrete type with a type switch. The set of
// variants is closed by an unexported method on Engineer, so a new variant
// can only be added in this package, together with its Kind.
package engineer
