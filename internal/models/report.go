package models

// RiskRating is the three-level categorical output of the risk scorer
type RiskRating string

const (
	RatingLow    RiskRating = "Low"
	RatingMedium RiskRating = "Medium"
	RatingHigh   RiskRating = "High"
)

// ReportResult describes a generated risk report and its artifact locations.
// PDF fields are empty when the secondary render was unavailable or failed.
type ReportResult struct {
	Status        string     `json:"status"`
	Company       string     `json:"company"`
	RiskScore     float64    `json:"risk_score"`
	RiskRating    RiskRating `json:"risk_rating"`
	WordReport    string     `json:"word_report"`
	WordReportURL string     `json:"word_report_url,omitempty"`
	PDFReport     string     `json:"pdf_report,omitempty"`
	PDFReportURL  string     `json:"pdf_report_url,omitempty"`
	RAGHighlights []string   `json:"rag_highlights"`
}

// EscalationResult is the structured outcome of a webhook delivery attempt.
// Status is "escalated" on a 2xx response and "failed" otherwise; the notifier
// never retries.
type EscalationResult struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EscalationAlert is the payload handed to the escalation notifier
type EscalationAlert struct {
	CompanyID  string     `json:"company_id"`
	AgentID    string     `json:"agent_id"`
	RiskScore  *float64   `json:"risk_score,omitempty"`
	RiskRating RiskRating `json:"risk_rating,omitempty"`
	ReportURL  string     `json:"report_url,omitempty"`
}
