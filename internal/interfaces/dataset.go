package interfaces

import "github.com/haleworth/riskintel/internal/models"

// DatasetAccessor serves the read-only per-company record subsets. The four
// subset accessors return empty slices (never errors) when no rows match, and
// all subsets handed to the scoring pipeline must come from the same company
// id.
type DatasetAccessor interface {
	Company(id string) (models.Company, error)
	Companies(limit, offset int) []models.Company
	AllCompanies() []models.Company
	FinancialsFor(companyID string) []models.FinancialPeriod
	ExposureFor(companyID string) []models.ExposureRecord
	CovenantsFor(companyID string) []models.CovenantRecord
	EventsFor(companyID string) []models.EarlyWarningEvent
}
