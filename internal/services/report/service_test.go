package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/dataset"
	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// fakeDataset serves a single in-memory company
type fakeDataset struct {
	company    models.Company
	financials []models.FinancialPeriod
	exposure   []models.ExposureRecord
	covenants  []models.CovenantRecord
	events     []models.EarlyWarningEvent
}

func (f *fakeDataset) Company(id string) (models.Company, error) {
	if id != f.company.CompanyID {
		return models.Company{}, dataset.ErrCompanyNotFound
	}
	return f.company, nil
}

func (f *fakeDataset) Companies(limit, offset int) []models.Company {
	return []models.Company{f.company}
}

func (f *fakeDataset) AllCompanies() []models.Company {
	return []models.Company{f.company}
}

func (f *fakeDataset) FinancialsFor(companyID string) []models.FinancialPeriod {
	return f.financials
}

func (f *fakeDataset) ExposureFor(companyID string) []models.ExposureRecord {
	return f.exposure
}

func (f *fakeDataset) CovenantsFor(companyID string) []models.CovenantRecord {
	return f.covenants
}

func (f *fakeDataset) EventsFor(companyID string) []models.EarlyWarningEvent {
	return f.events
}

// fakePDF returns canned bytes or a canned error
type fakePDF struct {
	data []byte
	err  error
}

func (f *fakePDF) ConvertMarkdownToPDF(markdown, title string) ([]byte, error) {
	return f.data, f.err
}

func newFakeDataset() *fakeDataset {
	return &fakeDataset{
		company: models.Company{CompanyID: "C100", CompanyName: "Acme Industries", Sector: "Manufacturing"},
		financials: []models.FinancialPeriod{
			{CompanyID: "C100", Year: 2023, Revenue: 500, EBITDA: 80, NetIncome: 20},
		},
		exposure: []models.ExposureRecord{
			{CompanyID: "C100", SanctionedLimit: 100, UtilizedAmount: 90, OverdueAmount: 5},
		},
		covenants: []models.CovenantRecord{
			{CompanyID: "C100", DSCR: 1.2, InterestCoverage: 2.0, CurrentRatio: 1.1, EBITDAMinRequirement: 100},
		},
		events: []models.EarlyWarningEvent{
			{CompanyID: "C100", EventDate: "2024-01-01", Event: "Missed payment", Severity: models.SeverityHigh},
		},
	}
}

func newTestService(t *testing.T, ds *fakeDataset, pdf *fakePDF, config common.ReportsConfig) *Service {
	t.Helper()
	if config.Dir == "" {
		config.Dir = t.TempDir()
	}
	service := NewService(ds, pdf, config, arbor.NewLogger())
	service.now = func() time.Time {
		return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return service
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	service := newTestService(t, newFakeDataset(), &fakePDF{data: []byte("%PDF-fake")}, common.ReportsConfig{
		Dir:        dir,
		PDFEnabled: true,
	})

	result, err := service.Generate("C100")
	require.NoError(t, err)

	assert.Equal(t, "report_generated", result.Status)
	assert.Equal(t, "Acme Industries", result.Company)
	assert.InDelta(t, 0.45, result.RiskScore, 1e-9)
	assert.Equal(t, models.RatingMedium, result.RiskRating)
	assert.Equal(t, []string{
		"EBITDA is below covenant minimum requirement.",
		"Loan utilization exceeds 80% of sanctioned limit.",
		"High severity alert: Missed payment on 2024-01-01.",
	}, result.RAGHighlights)

	// Artifact name derives from company name and date, spaces as underscores
	assert.Equal(t, filepath.Join(dir, "Acme_Industries_Risk_Report_2025-06-15.md"), result.WordReport)
	assert.Equal(t, filepath.Join(dir, "Acme_Industries_Risk_Report_2025-06-15.pdf"), result.PDFReport)

	content, err := os.ReadFile(result.WordReport)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Acme Industries - Quarterly Risk Review")
	assert.Contains(t, string(content), "Risk Score: 0.45")
	assert.Contains(t, string(content), "Risk Rating: Medium")

	pdfContent, err := os.ReadFile(result.PDFReport)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfContent)
}

func TestGenerate_ByteIdenticalAcrossRuns(t *testing.T) {
	service := newTestService(t, newFakeDataset(), &fakePDF{data: []byte("%PDF-fake")}, common.ReportsConfig{})

	first, err := service.Generate("C100")
	require.NoError(t, err)
	firstContent, err := os.ReadFile(first.WordReport)
	require.NoError(t, err)

	// Same company, same day: the second run overwrites the first artifact
	second, err := service.Generate("C100")
	require.NoError(t, err)
	assert.Equal(t, first.WordReport, second.WordReport)

	secondContent, err := os.ReadFile(second.WordReport)
	require.NoError(t, err)
	assert.Equal(t, firstContent, secondContent)
}

func TestGenerate_PDFFailureDegradesToMarkdownOnly(t *testing.T) {
	service := newTestService(t, newFakeDataset(), &fakePDF{err: errors.New("render failed")}, common.ReportsConfig{
		PDFEnabled: true,
	})

	result, err := service.Generate("C100")
	require.NoError(t, err)

	assert.Equal(t, "report_generated", result.Status)
	assert.NotEmpty(t, result.WordReport)
	assert.Empty(t, result.PDFReport)
	assert.Empty(t, result.PDFReportURL)
}

func TestGenerate_PDFDisabled(t *testing.T) {
	pdf := &fakePDF{data: []byte("%PDF-fake")}
	service := newTestService(t, newFakeDataset(), pdf, common.ReportsConfig{
		PDFEnabled: false,
	})

	result, err := service.Generate("C100")
	require.NoError(t, err)
	assert.Empty(t, result.PDFReport)
}

func TestGenerate_PublicURLs(t *testing.T) {
	t.Run("configured base URL", func(t *testing.T) {
		service := newTestService(t, newFakeDataset(), &fakePDF{data: []byte("%PDF-fake")}, common.ReportsConfig{
			Dir:           t.TempDir(),
			PublicBaseURL: "https://reports.example.com/",
			PDFEnabled:    true,
		})

		result, err := service.Generate("C100")
		require.NoError(t, err)

		expected := "https://reports.example.com/" + filepath.ToSlash(result.WordReport)
		assert.Equal(t, expected, result.WordReportURL)
		assert.NotEmpty(t, result.PDFReportURL)
	})

	t.Run("no base URL configured", func(t *testing.T) {
		service := newTestService(t, newFakeDataset(), &fakePDF{data: []byte("%PDF-fake")}, common.ReportsConfig{})

		result, err := service.Generate("C100")
		require.NoError(t, err)
		assert.Empty(t, result.WordReportURL)
	})
}

func TestGenerate_UnknownCompany(t *testing.T) {
	service := newTestService(t, newFakeDataset(), &fakePDF{}, common.ReportsConfig{})

	_, err := service.Generate("C999")
	assert.ErrorIs(t, err, dataset.ErrCompanyNotFound)
}

func TestGenerate_InsufficientData(t *testing.T) {
	ds := newFakeDataset()
	ds.financials = nil
	service := newTestService(t, ds, &fakePDF{}, common.ReportsConfig{})

	_, err := service.Generate("C100")
	require.Error(t, err)
	assert.True(t, risk.IsInsufficientData(err))
}

func TestRenderMarkdown_SectionOrder(t *testing.T) {
	ds := newFakeDataset()
	assessment, err := risk.Score(ds.financials, ds.exposure, ds.covenants, ds.events)
	require.NoError(t, err)
	highlights, err := risk.Highlights(ds.financials, ds.covenants, ds.exposure, ds.events)
	require.NoError(t, err)

	markdown := renderMarkdown(ds.company, ds.financials, ds.exposure, ds.covenants, ds.events, assessment, highlights)

	sections := []string{
		"# Acme Industries - Quarterly Risk Review",
		"## Financial Summary",
		"## Loan Exposure",
		"## Covenant Compliance",
		"## Early Warning Signals",
		"## Risk Summary",
		"## Key Highlights",
	}
	lastIndex := -1
	for _, section := range sections {
		index := strings.Index(markdown, section)
		require.GreaterOrEqual(t, index, 0, "missing section %q", section)
		assert.Greater(t, index, lastIndex, "section %q out of order", section)
		lastIndex = index
	}

	assert.Contains(t, markdown, "2024-01-01: Missed payment")
	assert.Contains(t, markdown, "- EBITDA is below covenant minimum requirement.")
}
