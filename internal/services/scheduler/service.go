// Package scheduler runs the periodic portfolio risk sweep: every company is
// re-scored on a cron schedule and High-rated companies are escalated through
// the notifier.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// Agent identity recorded on sweep-originated escalations
const sweepAgentID = "agent-risk-sweep"

// Service schedules and runs the portfolio sweep
type Service struct {
	dataset    interfaces.DatasetAccessor
	reports    interfaces.ReportService
	escalation interfaces.EscalationService
	config     common.SweepConfig
	logger     arbor.ILogger
	cron       *cron.Cron
}

// NewService creates a new sweep scheduler
func NewService(
	dataset interfaces.DatasetAccessor,
	reports interfaces.ReportService,
	escalation interfaces.EscalationService,
	config common.SweepConfig,
	logger arbor.ILogger,
) *Service {
	return &Service{
		dataset:    dataset,
		reports:    reports,
		escalation: escalation,
		config:     config,
		logger:     logger,
		cron:       cron.New(),
	}
}

// Start registers the cron entry and starts the scheduler. No-op when the
// sweep is disabled.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Portfolio sweep disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, s.RunSweep); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.config.Schedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", s.config.Schedule).Msg("Portfolio sweep scheduled")
	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	s.cron.Stop()
}

// RunSweep scores every company and escalates the High-rated ones. Companies
// with insufficient data are skipped with a warning; a sweep never fails as a
// whole because of one company.
func (s *Service) RunSweep() {
	companies := s.dataset.AllCompanies()
	s.logger.Info().Int("companies", len(companies)).Msg("Portfolio sweep started")

	escalated := 0
	skipped := 0
	for _, company := range companies {
		assessment, err := risk.Score(
			s.dataset.FinancialsFor(company.CompanyID),
			s.dataset.ExposureFor(company.CompanyID),
			s.dataset.CovenantsFor(company.CompanyID),
			s.dataset.EventsFor(company.CompanyID),
		)
		if err != nil {
			skipped++
			s.logger.Warn().Err(err).Str("company_id", company.CompanyID).Msg("Sweep skipped company")
			continue
		}

		if assessment.Rating != models.RatingHigh {
			continue
		}

		reportURL := ""
		if result, err := s.reports.Generate(company.CompanyID); err == nil {
			if result.PDFReportURL != "" {
				reportURL = result.PDFReportURL
			} else {
				reportURL = result.WordReportURL
			}
		}

		score := assessment.Score
		result := s.escalation.Escalate(context.Background(), models.EscalationAlert{
			CompanyID:  company.CompanyID,
			AgentID:    sweepAgentID,
			RiskScore:  &score,
			RiskRating: assessment.Rating,
			ReportURL:  reportURL,
		})
		if result.Status == "escalated" {
			escalated++
		} else {
			s.logger.Warn().
				Str("company_id", company.CompanyID).
				Str("code", result.Code).
				Msg("Sweep escalation failed")
		}
	}

	s.logger.Info().
		Int("escalated", escalated).
		Int("skipped", skipped).
		Msg("Portfolio sweep complete")
}
