package interfaces

import "github.com/haleworth/riskintel/internal/models"

// ReportService generates the full risk report for a company: scoring,
// highlight extraction, document assembly and artifact writes.
type ReportService interface {
	// Generate produces the report for the given company id. Returns
	// dataset.ErrCompanyNotFound for unknown companies and
	// risk.InsufficientDataError when a required subset is empty.
	Generate(companyID string) (*models.ReportResult, error)
}
