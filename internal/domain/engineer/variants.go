package engineer

import (
	"fmt"

	"github.com/alem-hub/engineer-roster/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SOFTWARE ENGINEER
// ══════════════════════════════════════════════════════════════════════════════

// SoftwareEngineer is an engineer measured by delivered projects.
type SoftwareEngineer struct {
	base
	projectCount int
}

// NewSoftwareEngineerParams holds the parameters for a new software engineer.
type NewSoftwareEngineerParams struct {
	ID              string
	FirstName       string
	LastName        string
	YearsExperience int
	Expertise       []string
	ProjectCount    int
}

// NewSoftwareEngineer creates a software engineer with validation of all fields.
func NewSoftwareEngineer(params NewSoftwareEngineerParams) (*SoftwareEngineer, error) {
	b, err := newBase(baseParams{
		ID:              params.ID,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Title:           TitleSoftware,
		YearsExperience: params.YearsExperience,
		Expertise:       params.Expertise,
	})
	if err != nil {
		return nil, err
	}

	if params.ProjectCount < 0 {
		return nil, shared.NewValidationError("software_engineer", "project_count", shared.ErrNegativeValue, "project count must be >= 0")
	}

	return &SoftwareEngineer{base: b, projectCount: params.ProjectCount}, nil
}

// ProjectCount returns the number of delivered projects.
func (e *SoftwareEngineer) ProjectCount() int { return e.projectCount }

// Kind returns KindSoftware.
func (e *SoftwareEngineer) Kind() Kind { return KindSoftware }

func (e *SoftwareEngineer) isNil() bool { return e == nil }

// SuccessRate returns projects per year of experience.
func (e *SoftwareEngineer) SuccessRate() float64 {
	return e.rate(e.projectCount)
}

// Summary appends the project clause to the shared summary.
func (e *SoftwareEngineer) Summary() string {
	return fmt.Sprintf("%s - Projects: %d (Rate: %.2f projects/year)",
		e.summary(), e.projectCount, e.SuccessRate())
}

// ══════════════════════════════════════════════════════════════════════════════
// ELECTRICAL ENGINEER
// ══════════════════════════════════════════════════════════════════════════════

// ElectricalEngineer is an engineer measured by earned certificates.
type ElectricalEngineer struct {
	base
	certificateCount int
}

// NewElectricalEngineerParams holds the parameters for a new electrical engineer.
type NewElectricalEngineerParams struct {
	ID               string
	FirstName        string
	LastName         string
	YearsExperience  int
	Expertise        []string
	CertificateCount int
}

// NewElectricalEngineer creates an electrical engineer with validation of all fields.
func NewElectricalEngineer(params NewElectricalEngineerParams) (*ElectricalEngineer, error) {
	b, err := newBase(baseParams{
		ID:              params.ID,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Title:           TitleElectrical,
		YearsExperience: params.YearsExperience,
		Expertise:       params.Expertise,
	})
	if err != nil {
		return nil, err
	}

	if params.CertificateCount < 0 {
		return nil, shared.NewValidationError("electrical_engineer", "certificate_count", shared.ErrNegativeValue, "certificate count must be >= 0")
	}

	return &ElectricalEngineer{base: b, certificateCount: params.CertificateCount}, nil
}

// CertificateCount returns the number of earned certificates.
func (e *ElectricalEngineer) CertificateCount() int { return e.certificateCount }

// Kind returns KindElectrical.
func (e *ElectricalEngineer) Kind() Kind { return KindElectrical }

func (e *ElectricalEngineer) isNil() bool { return e == nil }

// SuccessRate returns certificates per year of experience.
func (e *ElectricalEngineer) SuccessRate() float64 {
	return e.rate(e.certificateCount)
}

// Summary appends the certificate clause to the shared summary.
func (e *ElectricalEngineer) Summary() string {
	return fmt.Sprintf("%s - Certificates: %d (Rate: %.2f certificates/year)",
		e.summary(), e.certificateCount, e.SuccessRate())
}

// Compile-time interface checks.
var (
	_ Engineer = (*SoftwareEngineer)(nil)
	_ Engineer = (*ElectricalEngineer)(nil)
)
