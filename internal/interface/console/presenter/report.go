// Package presenter formats roster report data as console text.
// Presenters only build strings; writing them anywhere is the caller's job.
package presenter

import (
	"fmt"
	"strings"

	"github.com/alem-hub/engineer-roster/internal/application/query"
)

// Section headers.
const (
	HeaderRoster          = "ALL ENGINEERS"
	HeaderGroups          = "GROUPED BY EXPERTISE (>5 years of experience)"
	HeaderMostExperienced = "MOST EXPERIENCED BY TYPE"
	HeaderTotals          = "TOTALS"
)

// ReportPresenter formats the sections of the roster report.
type ReportPresenter struct{}

// NewReportPresenter creates a new report presenter.
func NewReportPresenter() *ReportPresenter {
	return &ReportPresenter{}
}

// FormatReport concatenates all four sections in report order.
func (p *ReportPresenter) FormatReport(result *query.RosterReportResult) string {
	var sb strings.Builder
	sb.WriteString(p.FormatRoster(result.Engineers))
	sb.WriteString(p.FormatExpertiseGroups(result.Groups))
	sb.WriteString(p.FormatMostExperienced(result.Champions))
	sb.WriteString(p.FormatTotals(result.Totals))
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// SECTIONS
// ─────────────────────────────────────────────────────────────────────────────

// FormatRoster lists every engineer with a 1-based position.
func (p *ReportPresenter) FormatRoster(engineers []query.EngineerDTO) string {
	var sb strings.Builder
	sb.WriteString(p.formatHeader(HeaderRoster))

	for i, e := range engineers {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, e.Summary))
	}

	return sb.String()
}

// FormatExpertiseGroups lists each tag with its engineers, one blank line
// after every group.
func (p *ReportPresenter) FormatExpertiseGroups(groups []query.ExpertiseGroupDTO) string {
	var sb strings.Builder
	sb.WriteString(p.formatHeader(HeaderGroups))

	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("Expertise: %s (%s)\n", g.Tag, p.pluralEngineers(len(g.Engineers))))
		for _, e := range g.Engineers {
			sb.WriteString(fmt.Sprintf("  - %s (%d years)\n", e.Identity, e.YearsExperience))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMostExperienced prints one line per variant present.
func (p *ReportPresenter) FormatMostExperienced(champions []query.ChampionDTO) string {
	var sb strings.Builder
	sb.WriteString(p.formatHeader(HeaderMostExperienced))

	for _, c := range champions {
		sb.WriteString(fmt.Sprintf("%s: %s - %d years of experience\n",
			c.Label, c.Engineer.Identity, c.Engineer.YearsExperience))
	}

	return sb.String()
}

// FormatTotals prints the grand total followed by the per-variant breakdown.
func (p *ReportPresenter) FormatTotals(totals query.TotalsDTO) string {
	var sb strings.Builder
	sb.WriteString(p.formatHeader(HeaderTotals))

	sb.WriteString(fmt.Sprintf("Total projects and certificates: %d\n", totals.Total))
	sb.WriteString(fmt.Sprintf("  - Projects (software): %d\n", totals.Projects))
	sb.WriteString(fmt.Sprintf("  - Certificates (electrical): %d\n", totals.Certificates))

	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// HELPERS
// ─────────────────────────────────────────────────────────────────────────────

// formatHeader wraps a title in "===" with a blank line on both sides.
func (p *ReportPresenter) formatHeader(title string) string {
	return fmt.Sprintf("\n=== %s ===\n\n", title)
}

func (p *ReportPresenter) pluralEngineers(n int) string {
	if n == 1 {
		return "1 engineer"
	}
	return fmt.Sprintf("%d engineers", n)
}
