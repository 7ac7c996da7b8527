// Package query contains read operations over the roster.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alem-hub/engineer-roster/internal/domain/engineer"
	"github.com/alem-hub/engineer-roster/internal/domain/roster"
	"github.com/alem-hub/engineer-roster/internal/domain/shared"
	"github.com/alem-hub/engineer-roster/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER REPORT QUERY
// Runs every aggregation over a roster and returns presentation-ready DTOs.
// ══════════════════════════════════════════════════════════════════════════════

// RosterReportQuery holds the report request parameters.
type RosterReportQuery struct {
	// Roster - roster to report on, required.
	Roster *roster.Roster
}

// Validate checks the query parameters.
func (q *RosterReportQuery) Validate() error {
	if q.Roster == nil {
		return shared.ErrNilRoster
	}
	return nil
}

// EngineerDTO is the flattened view of one engineer.
type EngineerDTO struct {
	ID              string   `json:"id"`
	Identity        string   `json:"identity"`
	Title           string   `json:"title"`
	Kind            string   `json:"kind"`
	YearsExperience int      `json:"years_experience"`
	Expertise       []string `json:"expertise"`

	// Count - projects for software engineers, certificates for electrical ones.
	Count       int     `json:"count"`
	SuccessRate float64 `json:"success_rate"`

	// Summary - one-line description used in the roster listing.
	Summary string `json:"summary"`
}

// ExpertiseGroupDTO is one expertise tag with its senior engineers.
type ExpertiseGroupDTO struct {
	Tag       string        `json:"tag"`
	Engineers []EngineerDTO `json:"engineers"`
}

// ChampionDTO is the most experienced engineer of a variant.
type ChampionDTO struct {
	Label    string      `json:"label"`
	Engineer EngineerDTO `json:"engineer"`
}

// TotalsDTO carries the aggregate counts.
type TotalsDTO struct {
	Projects     int `json:"projects"`
	Certificates int `json:"certificates"`
	Total        int `json:"total"`
}

// RosterReportResult holds the assembled report.
type RosterReportResult struct {
	// ReportID - unique ID of this run.
	ReportID string `json:"report_id"`

	// Engineers - the full roster in order.
	Engineers []EngineerDTO `json:"engineers"`

	// Groups - expertise groups in first-seen tag order.
	Groups []ExpertiseGroupDTO `json:"groups"`

	// Champions - most experienced per variant, software first.
	Champions []ChampionDTO `json:"champions"`

	// Totals - project and certificate sums over the whole roster.
	Totals TotalsDTO `json:"totals"`

	// GeneratedAt - time the result was built.
	GeneratedAt time.Time `json:"generated_at"`
}

// RosterReportHandler builds roster reports.
type RosterReportHandler struct {
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewRosterReportHandler creates a new roster report handler.
func NewRosterReportHandler(log *logger.Logger) *RosterReportHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RosterReportHandler{
		log:   log.With(logger.Component("roster_report")),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Handle runs the aggregations and assembles the result.
func (h *RosterReportHandler) Handle(ctx context.Context, query RosterReportQuery) (*RosterReportResult, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "RosterReport", shared.ErrValidation, err.Error(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("roster report: %w", err)
	}

	start := time.Now()
	reportID := h.newID()
	log := h.log.WithReportID(reportID)
	log.Debug("building roster report", logger.EngineerCount(query.Roster.Len()))

	engineers := query.Roster.All()
	groups := roster.GroupByExpertise(engineers)
	champions := roster.MostExperiencedByKind(engineers)
	totals := roster.ComputeTotals(engineers)

	result := &RosterReportResult{
		ReportID:    reportID,
		Engineers:   toEngineerDTOs(engineers),
		Groups:      make([]ExpertiseGroupDTO, 0, groups.Len()),
		Champions:   make([]ChampionDTO, 0, champions.Len()),
		Totals:      TotalsDTO{Projects: totals.Projects, Certificates: totals.Certificates, Total: totals.Total()},
		GeneratedAt: h.now(),
	}

	for _, tag := range groups.Keys() {
		result.Groups = append(result.Groups, ExpertiseGroupDTO{
			Tag:       tag,
			Engineers: toEngineerDTOs(groups.Get(tag)),
		})
	}

	for _, kind := range champions.Ordered() {
		e, _ := champions.Get(kind)
		result.Champions = append(result.Champions, ChampionDTO{
			Label:    kind.Label(),
			Engineer: toEngineerDTO(e),
		})
	}

	log.Info("roster report built",
		logger.EngineerCount(len(result.Engineers)),
		logger.GroupCount(len(result.Groups)),
		logger.Int("total", result.Totals.Total),
		logger.Latency(time.Since(start)),
	)

	return result, nil
}

func toEngineerDTOs(list []engineer.Engineer) []EngineerDTO {
	out := make([]EngineerDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toEngineerDTO(e))
	}
	return out
}

func toEngineerDTO(e engineer.Engineer) EngineerDTO {
	dto := EngineerDTO{
		ID:              e.ID(),
		Identity:        e.Identity(),
		Title:           e.Title(),
		Kind:            e.Kind().String(),
		YearsExperience: e.YearsExperience(),
		Expertise:       e.Expertise().Tags(),
		SuccessRate:     e.SuccessRate(),
		Summary:         e.Summary(),
	}

	switch v := e.(type) {
	case *engineer.SoftwareEngineer:
		dto.Count = v.ProjectCount()
	case *engineer.ElectricalEngineer:
		dto.Count = v.CertificateCount()
	default:
		panic(fmt.Sprintf("query: unhandled engineer variant %T", e))
	}

	return dto
}
