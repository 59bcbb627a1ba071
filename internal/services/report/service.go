// Package report assembles the company risk report: it runs the scorer and
// highlight extractor over the company's record subsets, renders the document
// and writes the artifacts.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// Service implements interfaces.ReportService
type Service struct {
	dataset interfaces.DatasetAccessor
	pdf     interfaces.PDFService
	config  common.ReportsConfig
	logger  arbor.ILogger

	// now is replaceable in tests; artifact names embed the current date
	now func() time.Time
}

// Compile-time assertion
var _ interfaces.ReportService = (*Service)(nil)

// NewService creates a new report service
func NewService(dataset interfaces.DatasetAccessor, pdfService interfaces.PDFService, config common.ReportsConfig, logger arbor.ILogger) *Service {
	return &Service{
		dataset: dataset,
		pdf:     pdfService,
		config:  config,
		logger:  logger,
		now:     time.Now,
	}
}

// Generate computes the risk assessment for the company and writes the report
// artifacts. The markdown document is the primary artifact; the PDF copy is
// best-effort and its failure degrades the result to markdown-only.
//
// Artifact names derive from the company name and the current date only, so a
// second run for the same company on the same day overwrites the first. That
// no-versioning behavior is deliberate.
func (s *Service) Generate(companyID string) (*models.ReportResult, error) {
	company, err := s.dataset.Company(companyID)
	if err != nil {
		return nil, err
	}

	financials := s.dataset.FinancialsFor(companyID)
	exposure := s.dataset.ExposureFor(companyID)
	covenants := s.dataset.CovenantsFor(companyID)
	events := s.dataset.EventsFor(companyID)

	assessment, err := risk.Score(financials, exposure, covenants, events)
	if err != nil {
		return nil, err
	}

	highlights, err := risk.Highlights(financials, covenants, exposure, events)
	if err != nil {
		return nil, err
	}

	markdown := renderMarkdown(company, financials, exposure, covenants, events, assessment, highlights)

	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	baseName := fmt.Sprintf("%s_Risk_Report_%s",
		strings.ReplaceAll(company.CompanyName, " ", "_"),
		s.now().Format("2006-01-02"))

	mdPath := filepath.Join(s.config.Dir, baseName+".md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	result := &models.ReportResult{
		Status:        "report_generated",
		Company:       company.CompanyName,
		RiskScore:     assessment.Score,
		RiskRating:    assessment.Rating,
		WordReport:    mdPath,
		WordReportURL: s.publicURL(mdPath),
		RAGHighlights: highlights,
	}

	if s.config.PDFEnabled {
		if pdfPath, err := s.writePDF(markdown, company.CompanyName, baseName); err != nil {
			s.logger.Warn().Err(err).Str("company", company.CompanyName).Msg("PDF render failed, report degraded to markdown only")
		} else {
			result.PDFReport = pdfPath
			result.PDFReportURL = s.publicURL(pdfPath)
		}
	}

	s.logger.Info().
		Str("company", company.CompanyName).
		Float64("risk_score", assessment.Score).
		Str("risk_rating", string(assessment.Rating)).
		Str("report", mdPath).
		Msg("Risk report generated")

	return result, nil
}

func (s *Service) writePDF(markdown, companyName, baseName string) (string, error) {
	data, err := s.pdf.ConvertMarkdownToPDF(markdown, companyName+" - Quarterly Risk Review")
	if err != nil {
		return "", err
	}
	pdfPath := filepath.Join(s.config.Dir, baseName+".pdf")
	if err := os.WriteFile(pdfPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return pdfPath, nil
}

// publicURL joins the configured base URL with the artifact path. Pure string
// join; returns empty when no base URL is configured.
func (s *Service) publicURL(artifactPath string) string {
	if s.config.PublicBaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/" + filepath.ToSlash(artifactPath)
}
