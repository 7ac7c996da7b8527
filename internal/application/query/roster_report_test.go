package query

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/alem-hub/engineer-roster/internal/domain/roster"
	"github.com/alem-hub/engineer-roster/internal/domain/shared"
	"github.com/alem-hub/engineer-roster/internal/infrastructure/seed"
	"github.com/alem-hub/engineer-roster/pkg/logger"
)

// RosterReportSuite tests the roster report query against the sample roster.
type RosterReportSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	handler *RosterReportHandler
	fixedAt time.Time
}

func TestRosterReportSuite(t *testing.T) {
	suite.Run(t, new(RosterReportSuite))
}

func (s *RosterReportSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.fixedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.handler = NewRosterReportHandler(logger.New(logger.Options{Output: s.logs, Level: logger.LevelDebug}))
	s.handler.now = func() time.Time { return s.fixedAt }
	s.handler.newID = func() string { return "report-1" }
}

func (s *RosterReportSuite) sampleRoster() *roster.Roster {
	r, err := seed.SampleRoster(logger.New(logger.Options{Output: s.logs}))
	s.Require().NoError(err)
	return r
}

func (s *RosterReportSuite) TestSampleRoster() {
	result, err := s.handler.Handle(context.Background(), RosterReportQuery{Roster: s.sampleRoster()})
	s.Require().NoError(err)

	s.Equal("report-1", result.ReportID)
	s.Equal(s.fixedAt, result.GeneratedAt)
	s.Len(result.Engineers, 8)

	s.Run("groups exclude juniors and keep first-seen order", func() {
		tags := make([]string, 0, len(result.Groups))
		for _, g := range result.Groups {
			tags = append(tags, g.Tag)
			for _, e := range g.Engineers {
				s.Greater(e.YearsExperience, roster.SeniorityThreshold)
			}
		}
		s.Equal([]string{
			"Kotlin", "Android", "Java", "Spring", "JavaScript", "Node.js", "React",
			"Electronics", "Microcontrollers", "Telecommunications", "5G", "IoT",
			"Automation", "PLC", "SCADA",
		}, tags)

		s.Equal("Java", result.Groups[2].Tag)
		s.Len(result.Groups[2].Engineers, 2)
		s.Equal("Amina Hodžić", result.Groups[2].Engineers[0].Identity)
		s.Equal("Lejla Karić", result.Groups[2].Engineers[1].Identity)
	})

	s.Run("champions per variant", func() {
		s.Require().Len(result.Champions, 2)
		s.Equal("Software Engineer", result.Champions[0].Label)
		s.Equal("Lejla Karić", result.Champions[0].Engineer.Identity)
		s.Equal("Electrical Engineer", result.Champions[1].Label)
		s.Equal("Nermin Softić", result.Champions[1].Engineer.Identity)
	})

	s.Run("totals", func() {
		s.Equal(TotalsDTO{Projects: 60, Certificates: 27, Total: 87}, result.Totals)
	})

	s.Run("engineer DTO carries variant count", func() {
		s.Equal(15, result.Engineers[0].Count)
		s.Equal("software", result.Engineers[0].Kind)
		s.Equal(8, result.Engineers[4].Count)
		s.Equal("electrical", result.Engineers[4].Kind)
	})

	s.Contains(s.logs.String(), `"message":"roster report built"`)
	s.Contains(s.logs.String(), `"report_id":"report-1"`)
}

func (s *RosterReportSuite) TestEmptyRoster() {
	result, err := s.handler.Handle(context.Background(), RosterReportQuery{Roster: roster.New()})
	s.Require().NoError(err)

	s.Empty(result.Engineers)
	s.Empty(result.Groups)
	s.Empty(result.Champions)
	s.Equal(0, result.Totals.Total)
}

func (s *RosterReportSuite) TestNilRoster() {
	_, err := s.handler.Handle(context.Background(), RosterReportQuery{})
	s.Require().Error(err)
	s.ErrorIs(err, shared.ErrValidation)
	s.ErrorIs(err, shared.ErrInvalidInput)
}

func (s *RosterReportSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.handler.Handle(ctx, RosterReportQuery{Roster: s.sampleRoster()})
	s.ErrorIs(err, context.Canceled)
}
