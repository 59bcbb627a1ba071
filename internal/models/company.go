package models

// Company is a borrower loaded from companies.csv. The dataset is read-only
// for the process lifetime.
type Company struct {
	CompanyID   string `csv:"company_id" json:"company_id"`
	CompanyName string `csv:"company_name" json:"company_name"`
	Sector      string `csv:"sector" json:"sector,omitempty"`
}

// FinancialPeriod is one reporting period for a company. Year orders the
// periods; the latest period is the one with the highest year, falling back to
// input order on ties.
type FinancialPeriod struct {
	CompanyID string  `csv:"company_id" json:"company_id"`
	Year      int     `csv:"year" json:"year"`
	Revenue   float64 `csv:"revenue" json:"revenue"`
	EBITDA    float64 `csv:"ebitda" json:"ebitda"`
	NetIncome float64 `csv:"net_income" json:"net_income"`
}

// ExposureRecord is the bank's credit exposure to a company. Scoring reads the
// first record only; additional rows are tolerated for listing.
type ExposureRecord struct {
	CompanyID       string  `csv:"company_id" json:"company_id"`
	SanctionedLimit float64 `csv:"sanctioned_limit" json:"sanctioned_limit"`
	UtilizedAmount  float64 `csv:"utilized_amount" json:"utilized_amount"`
	OverdueAmount   float64 `csv:"overdue_amount" json:"overdue_amount"`
	CollateralValue float64 `csv:"collateral_value" json:"collateral_value"`
	DaysPastDue     int     `csv:"days_past_due" json:"days_past_due"`
}

// CovenantRecord holds the contractual thresholds a company must maintain.
// Same first-record convention as ExposureRecord.
type CovenantRecord struct {
	CompanyID            string  `csv:"company_id" json:"company_id"`
	DSCR                 float64 `csv:"dscr" json:"dscr"`
	InterestCoverage     float64 `csv:"interest_coverage" json:"interest_coverage"`
	CurrentRatio         float64 `csv:"current_ratio" json:"current_ratio"`
	EBITDAMinRequirement float64 `csv:"ebitda_min_requirement" json:"ebitda_min_requirement"`
}

// Severity classifies an early warning event
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// EarlyWarningEvent is a flagged event indicating emerging credit risk.
// Events are kept in input order; no re-sorting by date.
type EarlyWarningEvent struct {
	CompanyID string   `csv:"company_id" json:"company_id"`
	EventDate string   `csv:"event_date" json:"event_date"`
	Event     string   `csv:"event" json:"event"`
	Severity  Severity `csv:"severity" json:"severity"`
}
