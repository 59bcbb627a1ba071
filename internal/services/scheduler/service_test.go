package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/dataset"
	"github.com/haleworth/riskintel/internal/models"
)

// sweepDataset holds per-company record sets keyed by company id
type sweepDataset struct {
	companies  []models.Company
	financials map[string][]models.FinancialPeriod
	exposure   map[string][]models.ExposureRecord
	covenants  map[string][]models.CovenantRecord
}

func (f *sweepDataset) Company(id string) (models.Company, error) {
	for _, c := range f.companies {
		if c.CompanyID == id {
			return c, nil
		}
	}
	return models.Company{}, dataset.ErrCompanyNotFound
}

func (f *sweepDataset) Companies(limit, offset int) []models.Company { return f.companies }
func (f *sweepDataset) AllCompanies() []models.Company               { return f.companies }

func (f *sweepDataset) FinancialsFor(companyID string) []models.FinancialPeriod {
	return f.financials[companyID]
}

func (f *sweepDataset) ExposureFor(companyID string) []models.ExposureRecord {
	return f.exposure[companyID]
}

func (f *sweepDataset) CovenantsFor(companyID string) []models.CovenantRecord {
	return f.covenants[companyID]
}

func (f *sweepDataset) EventsFor(companyID string) []models.EarlyWarningEvent {
	return nil
}

type sweepReports struct {
	generated []string
}

func (f *sweepReports) Generate(companyID string) (*models.ReportResult, error) {
	f.generated = append(f.generated, companyID)
	return &models.ReportResult{
		Status:        "report_generated",
		WordReportURL: "https://reports.example.com/" + companyID + ".md",
	}, nil
}

type sweepEscalation struct {
	alerts []models.EscalationAlert
}

func (f *sweepEscalation) Enabled() bool { return true }

func (f *sweepEscalation) Escalate(ctx context.Context, alert models.EscalationAlert) models.EscalationResult {
	f.alerts = append(f.alerts, alert)
	return models.EscalationResult{Status: "escalated", Code: "200"}
}

func TestRunSweep(t *testing.T) {
	healthyCovenants := []models.CovenantRecord{{DSCR: 1.5, InterestCoverage: 2.0, CurrentRatio: 1.5, EBITDAMinRequirement: 100}}

	ds := &sweepDataset{
		companies: []models.Company{
			{CompanyID: "C100", CompanyName: "Low Risk Co"},
			{CompanyID: "C200", CompanyName: "High Risk Co"},
			{CompanyID: "C300", CompanyName: "No Data Co"},
		},
		financials: map[string][]models.FinancialPeriod{
			// ebitda at requirement, barely utilized: score well below 0.3
			"C100": {{Year: 2023, EBITDA: 100}},
			// deeply breached ebitda and fully drawn: score far above 0.6
			"C200": {{Year: 2023, EBITDA: -100}},
		},
		exposure: map[string][]models.ExposureRecord{
			"C100": {{SanctionedLimit: 100, UtilizedAmount: 10}},
			"C200": {{SanctionedLimit: 100, UtilizedAmount: 100}},
		},
		covenants: map[string][]models.CovenantRecord{
			"C100": healthyCovenants,
			"C200": healthyCovenants,
		},
	}

	reports := &sweepReports{}
	escalation := &sweepEscalation{}
	service := NewService(ds, reports, escalation, common.SweepConfig{Enabled: true}, arbor.NewLogger())

	service.RunSweep()

	// Only the High-rated company gets a report and an alert; the company
	// without data is skipped without failing the sweep.
	assert.Equal(t, []string{"C200"}, reports.generated)
	require.Len(t, escalation.alerts, 1)

	alert := escalation.alerts[0]
	assert.Equal(t, "C200", alert.CompanyID)
	assert.Equal(t, "agent-risk-sweep", alert.AgentID)
	assert.Equal(t, models.RatingHigh, alert.RiskRating)
	require.NotNil(t, alert.RiskScore)
	assert.Greater(t, *alert.RiskScore, 0.6)
	assert.Equal(t, "https://reports.example.com/C200.md", alert.ReportURL)
}

func TestStart_Disabled(t *testing.T) {
	service := NewService(&sweepDataset{}, &sweepReports{}, &sweepEscalation{}, common.SweepConfig{Enabled: false}, arbor.NewLogger())
	assert.NoError(t, service.Start())
	service.Stop()
}

func TestStart_InvalidSchedule(t *testing.T) {
	service := NewService(&sweepDataset{}, &sweepReports{}, &sweepEscalation{}, common.SweepConfig{
		Enabled:  true,
		Schedule: "not a cron expression",
	}, arbor.NewLogger())
	assert.Error(t, service.Start())
}
