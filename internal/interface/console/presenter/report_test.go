package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alem-hub/engineer-roster/internal/application/query"
)

func TestFormatRoster(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatRoster([]query.EngineerDTO{
		{Summary: "first"},
		{Summary: "second"},
	})

	assert.Equal(t, "\n=== ALL ENGINEERS ===\n\n1. first\n2. second\n", out)
}

func TestFormatExpertiseGroups(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatExpertiseGroups([]query.ExpertiseGroupDTO{
		{Tag: "Java", Engineers: []query.EngineerDTO{
			{Identity: "Amina Hodžić", YearsExperience: 8},
			{Identity: "Lejla Karić", YearsExperience: 12},
		}},
		{Tag: "PLC", Engineers: []query.EngineerDTO{
			{Identity: "Dženana Omerović", YearsExperience: 7},
		}},
	})

	expected := strings.Join([]string{
		"",
		"=== GROUPED BY EXPERTISE (>5 years of experience) ===",
		"",
		"Expertise: Java (2 engineers)",
		"  - Amina Hodžić (8 years)",
		"  - Lejla Karić (12 years)",
		"",
		"Expertise: PLC (1 engineer)",
		"  - Dženana Omerović (7 years)",
		"",
		"",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestFormatMostExperienced(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatMostExperienced([]query.ChampionDTO{
		{Label: "Software Engineer", Engineer: query.EngineerDTO{Identity: "Lejla Karić", YearsExperience: 12}},
	})

	assert.Equal(t, "\n=== MOST EXPERIENCED BY TYPE ===\n\nSoftware Engineer: Lejla Karić - 12 years of experience\n", out)
}

func TestFormatTotals(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatTotals(query.TotalsDTO{Projects: 60, Certificates: 27, Total: 87})

	assert.Equal(t, strings.Join([]string{
		"",
		"=== TOTALS ===",
		"",
		"Total projects and certificates: 87",
		"  - Projects (software): 60",
		"  - Certificates (electrical): 27",
		"",
	}, "\n"), out)
}

func TestFormatReport_EmptyRoster(t *testing.T) {
	p := NewReportPresenter()

	out := p.FormatReport(&query.RosterReportResult{})

	assert.Contains(t, out, "=== ALL ENGINEERS ===")
	assert.Contains(t, out, "=== GROUPED BY EXPERTISE (>5 years of experience) ===")
	assert.Contains(t, out, "=== MOST EXPERIENCED BY TYPE ===")
	assert.Contains(t, out, "Total projects and certificates: 0\n")
	assert.NotContains(t, out, "1. ")
}
