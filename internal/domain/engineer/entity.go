package engineer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/engineer-roster/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Kind identifies the concrete engineer variant.
type Kind string

const (
	// KindSoftware - software engineer.
	KindSoftware Kind = "software"
	// KindElectrical - electrical engineer.
	KindElectrical Kind = "electrical"
)

const (
	// TitleSoftware is the fixed title of every software engineer.
	TitleSoftware = "Software Engineer"
	// TitleElectrical is the fixed title of every electrical engineer.
	TitleElectrical = "Electrical Engineer"
)

// Kinds returns all variants in report order.
func Kinds() []Kind {
	return []Kind{KindSoftware, KindElectrical}
}

// Label returns the human-readable variant label used in reports.
func (k Kind) Label() string {
	switch k {
	case KindSoftware:
		return TitleSoftware
	case KindElectrical:
		return TitleElectrical
	default:
		return string(k)
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Expertise is a non-empty set of expertise tags in insertion order.
type Expertise struct {
	tags []string
}

// NewExpertise builds an expertise set. Tags are trimmed, duplicates are
// dropped keeping the first occurrence, blank tags are rejected.
func NewExpertise(tags ...string) (Expertise, error) {
	if len(tags) == 0 {
		return Expertise{}, shared.NewValidationError("engineer", "expertise", shared.ErrEmptyValue, "at least one expertise is required")
	}

	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return Expertise{}, shared.NewValidationError("engineer", "expertise", shared.ErrEmptyValue, "expertise tag cannot be blank")
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}

	return Expertise{tags: unique}, nil
}

// Tags returns a copy of the tags in insertion order.
func (e Expertise) Tags() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}

// Len returns the number of tags.
func (e Expertise) Len() int {
	return len(e.tags)
}

// String joins the tags with ", ".
func (e Expertise) String() string {
	return strings.Join(e.tags, ", ")
}

// ══════════════════════════════════════════════════════════════════════════════
// ENGINEER
// ══════════════════════════════════════════════════════════════════════════════

// Engineer is the capability set shared by every roster record.
// Implementations: *SoftwareEngineer, *ElectricalEngineer.
type Engineer interface {
	// ID returns the UUID of the record.
	ID() string

	// Identity returns "FirstName LastName".
	Identity() string

	// Title returns the professional title.
	Title() string

	// YearsExperience returns years of experience (>= 0).
	YearsExperience() int

	// Expertise returns the expertise set.
	Expertise() Expertise

	// Kind returns the concrete variant.
	Kind() Kind

	// SuccessRate returns count per year of experience, 0 for zero years.
	SuccessRate() float64

	// Summary returns the one-line description used in the roster report.
	Summary() string

	// isNil seals the interface and reports a typed nil pointer.
	isNil() bool
}

// IsNil reports whether e is nil or holds a nil variant pointer.
func IsNil(e Engineer) bool {
	return e == nil || e.isNil()
}

// base holds the fields every variant shares.
type base struct {
	id              string
	firstName       string
	lastName        string
	title           string
	yearsExperience int
	expertise       Expertise
}

// baseParams holds the parameters shared by all variants.
type baseParams struct {
	ID              string
	FirstName       string
	LastName        string
	Title           string
	YearsExperience int
	Expertise       []string
}

// newBase validates the shared fields in declaration order.
func newBase(p baseParams) (base, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return base{}, shared.NewValidationError("engineer", "id", shared.ErrEmptyValue, "id is required")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return base{}, shared.NewValidationError("engineer", "id", shared.ErrInvalidID, fmt.Sprintf("%q is not a UUID", id))
	}

	firstName := strings.TrimSpace(p.FirstName)
	if firstName == "" {
		return base{}, shared.NewValidationError("engineer", "first_name", shared.ErrEmptyValue, "first name cannot be blank")
	}

	lastName := strings.TrimSpace(p.LastName)
	if lastName == "" {
		return base{}, shared.NewValidationError("engineer", "last_name", shared.ErrEmptyValue, "last name cannot be blank")
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return base{}, shared.NewValidationError("engineer", "title", shared.ErrEmptyValue, "title cannot be blank")
	}

	if p.YearsExperience < 0 {
		return base{}, shared.NewValidationError("engineer", "years_experience", shared.ErrNegativeValue, "years of experience must be >= 0")
	}

	expertise, err := NewExpertise(p.Expertise...)
	if err != nil {
		return base{}, err
	}

	return base{
		id:              parsed.String(),
		firstName:       firstName,
		lastName:        lastName,
		title:           title,
		yearsExperience: p.YearsExperience,
		expertise:       expertise,
	}, nil
}

func (b *base) ID() string { return b.id }

// Identity returns "FirstName LastName".
func (b *base) Identity() string {
	return b.firstName + " " + b.lastName
}

func (b *base) Title() string { return b.title }

func (b *base) YearsExperience() int { return b.yearsExperience }

func (b *base) Expertise() Expertise { return b.expertise }

// summary formats the part of Summary shared by all variants.
func (b *base) summary() string {
	return fmt.Sprintf("%s - %s - %d years - Expertise: %s",
		b.Identity(), b.title, b.yearsExperience, b.expertise)
}

// rate divides count by years of experience, 0 when there is no experience.
func (b *base) rate(count int) float64 {
	if b.yearsExperience > 0 {
		return float64(count) / float64(b.yearsExperience)
	}
	return 0.0
}
