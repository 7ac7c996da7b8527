// Package seed provides the fixed sample roster the report runs on.
package seed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alem-hub/engineer-roster/internal/domain/engineer"
	"github.com/alem-hub/engineer-roster/internal/domain/roster"
	"github.com/alem-hub/engineer-roster/internal/domain/shared"
	"github.com/alem-hub/engineer-roster/pkg/logger"
)

// Record is the raw input for one engineer. Count is projects for a
// software engineer and certificates for an electrical one.
type Record struct {
	Kind      engineer.Kind
	FirstName string
	LastName  string
	Years     int
	Expertise []string
	Count     int
}

// IDFunc produces record IDs. Tests pass a deterministic one.
type IDFunc func() string

// Sample lists the sample engineers in roster order.
var Sample = []Record{
	{engineer.KindSoftware, "Amina", "Hodžić", 8, []string{"Kotlin", "Android", "Java"}, 15},
	{engineer.KindSoftware, "Emir", "Selimović", 4, []string{"Python", "Django", "React"}, 8},
	{engineer.KindSoftware, "Lejla", "Karić", 12, []string{"Java", "Spring", "Kotlin"}, 25},
	{engineer.KindSoftware, "Faruk", "Ibrahimović", 6, []string{"JavaScript", "Node.js", "React"}, 12},
	{engineer.KindElectrical, "Tarik", "Mujić", 10, []string{"Electronics", "Microcontrollers"}, 8},
	{engineer.KindElectrical, "Selma", "Begić", 3, []string{"Power Engineering", "Renewable Energy"}, 2},
	{engineer.KindElectrical, "Nermin", "Softić", 15, []string{"Telecommunications", "5G", "IoT"}, 12},
	{engineer.KindElectrical, "Dženana", "Omerović", 7, []string{"Automation", "PLC", "SCADA"}, 5},
}

// SampleRoster builds the sample roster with random UUIDs.
func SampleRoster(log *logger.Logger) (*roster.Roster, error) {
	return BuildRoster(Sample, uuid.NewString, log)
}

// BuildRoster constructs every record in order and stops at the first
// invalid one. Errors name the 1-based record position.
func BuildRoster(records []Record, newID IDFunc, log *logger.Logger) (*roster.Roster, error) {
	if log == nil {
		log = logger.Default()
	}
	log = log.With(logger.Component("seed"))

	r := roster.New()
	for i, rec := range records {
		e, err := newEngineer(rec, newID())
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		if err := r.Add(e); err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		log.Debug("engineer added",
			logger.EngineerID(e.ID()),
			logger.EngineerKind(string(e.Kind())),
		)
	}

	log.Debug("roster built", logger.EngineerCount(r.Len()))
	return r, nil
}

func newEngineer(rec Record, id string) (engineer.Engineer, error) {
	switch rec.Kind {
	case engineer.KindSoftware:
		return engineer.NewSoftwareEngineer(engineer.NewSoftwareEngineerParams{
			ID:              id,
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			YearsExperience: rec.Years,
			Expertise:       rec.Expertise,
			ProjectCount:    rec.Count,
		})
	case engineer.KindElectrical:
		return engineer.NewElectricalEngineer(engineer.NewElectricalEngineerParams{
			ID:               id,
			FirstName:        rec.FirstName,
			LastName:         rec.LastName,
			YearsExperience:  rec.Years,
			Expertise:        rec.Expertise,
			CertificateCount: rec.Count,
		})
	default:
		return nil, shared.NewValidationError("seed_record", "kind", shared.ErrValueOutOfRange,
			fmt.Sprintf("unknown engineer kind %q", rec.Kind))
	}
}
