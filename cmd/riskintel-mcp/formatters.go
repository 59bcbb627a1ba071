package main

import (
	"fmt"
	"strings"

	"github.com/haleworth/riskintel/internal/models"
)

// formatCompanies formats the company listing as markdown
func formatCompanies(companies []models.Company, limit, offset int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Portfolio Companies (%d shown, offset %d)\n\n", len(companies), offset))

	if len(companies) == 0 {
		sb.WriteString("No companies found.\n")
		return sb.String()
	}

	for _, c := range companies {
		sb.WriteString(fmt.Sprintf("- **%s** %s", c.CompanyID, c.CompanyName))
		if c.Sector != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", c.Sector))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatFinancials formats financial periods as markdown
func formatFinancials(companyID string, rows []models.FinancialPeriod) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Financials for %s (%d periods)\n\n", companyID, len(rows)))

	if len(rows) == 0 {
		sb.WriteString("No financial records found.\n")
		return sb.String()
	}

	for _, f := range rows {
		sb.WriteString(fmt.Sprintf("### %d\n", f.Year))
		sb.WriteString(fmt.Sprintf("- Revenue: %.2f\n", f.Revenue))
		sb.WriteString(fmt.Sprintf("- EBITDA: %.2f\n", f.EBITDA))
		sb.WriteString(fmt.Sprintf("- Net Income: %.2f\n\n", f.NetIncome))
	}

	return sb.String()
}

// formatExposure formats exposure records as markdown
func formatExposure(companyID string, rows []models.ExposureRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Exposure for %s (%d records)\n\n", companyID, len(rows)))

	if len(rows) == 0 {
		sb.WriteString("No exposure records found.\n")
		return sb.String()
	}

	for i, e := range rows {
		sb.WriteString(fmt.Sprintf("### Record %d\n", i+1))
		sb.WriteString(fmt.Sprintf("- Sanctioned Limit: %.2f\n", e.SanctionedLimit))
		sb.WriteString(fmt.Sprintf("- Utilized Amount: %.2f\n", e.UtilizedAmount))
		sb.WriteString(fmt.Sprintf("- Overdue Amount: %.2f\n\n", e.OverdueAmount))
	}

	return sb.String()
}

// formatCovenants formats covenant records as markdown
func formatCovenants(companyID string, rows []models.CovenantRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Covenants for %s (%d records)\n\n", companyID, len(rows)))

	if len(rows) == 0 {
		sb.WriteString("No covenant records found.\n")
		return sb.String()
	}

	for i, c := range rows {
		sb.WriteString(fmt.Sprintf("### Record %d\n", i+1))
		sb.WriteString(fmt.Sprintf("- DSCR: %.2f\n", c.DSCR))
		sb.WriteString(fmt.Sprintf("- Interest Coverage: %.2f\n", c.InterestCoverage))
		sb.WriteString(fmt.Sprintf("- Current Ratio: %.2f\n", c.CurrentRatio))
		sb.WriteString(fmt.Sprintf("- EBITDA Minimum Requirement: %.2f\n\n", c.EBITDAMinRequirement))
	}

	return sb.String()
}

// formatEvents formats early warning events as markdown
func formatEvents(companyID string, events []models.EarlyWarningEvent) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Early Warning Signals for %s (%d events)\n\n", companyID, len(events)))

	if len(events) == 0 {
		sb.WriteString("No early warning events found.\n")
		return sb.String()
	}

	for _, e := range events {
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s\n", e.Severity, e.EventDate, e.Event))
	}

	return sb.String()
}

// formatReportResult formats a generated report summary as markdown
func formatReportResult(result *models.ReportResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Risk Report: %s\n\n", result.Company))
	sb.WriteString(fmt.Sprintf("**Risk Score:** %.2f\n", result.RiskScore))
	sb.WriteString(fmt.Sprintf("**Risk Rating:** %s\n\n", result.RiskRating))

	sb.WriteString(fmt.Sprintf("**Report File:** %s\n", result.WordReport))
	if result.WordReportURL != "" {
		sb.WriteString(fmt.Sprintf("**Report URL:** %s\n", result.WordReportURL))
	}
	if result.PDFReport != "" {
		sb.WriteString(fmt.Sprintf("**PDF File:** %s\n", result.PDFReport))
	}
	if result.PDFReportURL != "" {
		sb.WriteString(fmt.Sprintf("**PDF URL:** %s\n", result.PDFReportURL))
	}
	sb.WriteString("\n")

	if len(result.RAGHighlights) > 0 {
		sb.WriteString("### Key Highlights\n\n")
		for _, h := range result.RAGHighlights {
			sb.WriteString(fmt.Sprintf("- %s\n", h))
		}
	}

	return sb.String()
}

// formatEscalationResult formats the escalation outcome as markdown
func formatEscalationResult(companyID string, result models.EscalationResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Escalation for %s\n\n", companyID))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", result.Status))
	sb.WriteString(fmt.Sprintf("**Code:** %s\n", result.Code))
	sb.WriteString(fmt.Sprintf("**Message:** %s\n", result.Message))
	return sb.String()
}
