// Package console is the output boundary of the report: it writes presenter
// text to a stream and reports write failures.
package console

import (
	"fmt"
	"io"

	"github.com/alem-hub/engineer-roster/internal/application/query"
	"github.com/alem-hub/engineer-roster/internal/interface/console/presenter"
	"github.com/alem-hub/engineer-roster/pkg/logger"
)

// Printer writes report sections to an output stream.
type Printer struct {
	out       io.Writer
	presenter *presenter.ReportPresenter
	log       *logger.Logger
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, log *logger.Logger) *Printer {
	if log == nil {
		log = logger.Default()
	}
	return &Printer{
		out:       out,
		presenter: presenter.NewReportPresenter(),
		log:       log.With(logger.Component("console_printer")),
	}
}

// PrintRoster writes the full roster listing.
func (p *Printer) PrintRoster(engineers []query.EngineerDTO) error {
	return p.write("roster", p.presenter.FormatRoster(engineers))
}

// PrintExpertiseGroups writes the expertise groups.
func (p *Printer) PrintExpertiseGroups(groups []query.ExpertiseGroupDTO) error {
	return p.write("expertise_groups", p.presenter.FormatExpertiseGroups(groups))
}

// PrintMostExperienced writes the most experienced engineer per variant.
func (p *Printer) PrintMostExperienced(champions []query.ChampionDTO) error {
	return p.write("most_experienced", p.presenter.FormatMostExperienced(champions))
}

// PrintTotals writes the aggregate totals.
func (p *Printer) PrintTotals(totals query.TotalsDTO) error {
	return p.write("totals", p.presenter.FormatTotals(totals))
}

// PrintReport writes all sections in order and stops at the first failure.
func (p *Printer) PrintReport(result *query.RosterReportResult) error {
	steps := []func() error{
		func() error { return p.PrintRoster(result.Engineers) },
		func() error { return p.PrintExpertiseGroups(result.Groups) },
		func() error { return p.PrintMostExperienced(result.Champions) },
		func() error { return p.PrintTotals(result.Totals) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) write(section, text string) error {
	if _, err := io.WriteString(p.out, text); err != nil {
		p.log.Error("failed to write report section", logger.Section(section), logger.Err(err))
		return fmt.Errorf("write %s section: %w", section, err)
	}
	p.log.Debug("report section written", logger.Section(section), logger.Int("bytes", len(text)))
	return nil
}
