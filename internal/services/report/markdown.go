package report

import (
	"fmt"
	"strings"

	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// renderMarkdown builds the report document. Section order is fixed: title,
// financial summary, loan exposure, covenant compliance, early warning
// signals (input order, never re-sorted), risk summary, key highlights.
// Identical inputs produce byte-identical output.
func renderMarkdown(
	company models.Company,
	financials []models.FinancialPeriod,
	exposure []models.ExposureRecord,
	covenants []models.CovenantRecord,
	events []models.EarlyWarningEvent,
	assessment risk.Assessment,
	highlights []string,
) string {
	latest := risk.LatestFinancial(financials)
	exp := exposure[0]
	cov := covenants[0]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s - Quarterly Risk Review\n\n", company.CompanyName))
	if company.Sector != "" {
		sb.WriteString(fmt.Sprintf("Sector: %s\n\n", company.Sector))
	}

	sb.WriteString("## Financial Summary\n\n")
	sb.WriteString(fmt.Sprintf("Revenue: %s\n\n", formatAmount(latest.Revenue)))
	sb.WriteString(fmt.Sprintf("EBITDA: %s\n\n", formatAmount(latest.EBITDA)))
	sb.WriteString(fmt.Sprintf("Net Income: %s\n\n", formatAmount(latest.NetIncome)))

	sb.WriteString("## Loan Exposure\n\n")
	sb.WriteString(fmt.Sprintf("Sanctioned Limit: %s\n\n", formatAmount(exp.SanctionedLimit)))
	sb.WriteString(fmt.Sprintf("Utilized Amount: %s\n\n", formatAmount(exp.UtilizedAmount)))
	sb.WriteString(fmt.Sprintf("Overdue Amount: %s\n\n", formatAmount(exp.OverdueAmount)))

	sb.WriteString("## Covenant Compliance\n\n")
	sb.WriteString(fmt.Sprintf("DSCR: %s\n\n", formatRatio(cov.DSCR)))
	sb.WriteString(fmt.Sprintf("Interest Coverage: %s\n\n", formatRatio(cov.InterestCoverage)))
	sb.WriteString(fmt.Sprintf("Current Ratio: %s\n\n", formatRatio(cov.CurrentRatio)))

	sb.WriteString("## Early Warning Signals\n\n")
	for _, event := range events {
		sb.WriteString(fmt.Sprintf("%s: %s\n\n", event.EventDate, event.Event))
	}

	sb.WriteString("## Risk Summary\n\n")
	sb.WriteString(fmt.Sprintf("Risk Score: %.2f\n\n", assessment.Score))
	sb.WriteString(fmt.Sprintf("Risk Rating: %s\n\n", assessment.Rating))

	sb.WriteString("## Key Highlights\n\n")
	for _, highlight := range highlights {
		sb.WriteString(fmt.Sprintf("- %s\n", highlight))
	}

	return sb.String()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
