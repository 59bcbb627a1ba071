package risk

import (
	"fmt"

	"github.com/haleworth/riskintel/internal/models"
)

// Utilization above this fraction of the sanctioned limit is flagged
const utilizationAlertThreshold = 0.8

// Highlights derives the ordered list of human-readable risk flags for one
// company. Rules are evaluated independently and appended in fixed order:
// EBITDA below covenant minimum, utilization above 80%, then every
// high-severity event in input order.
//
// Selection rules match Score: latest financial period, first covenant record,
// first exposure record. Empty required subsets return an
// InsufficientDataError; missing data must not read as "no risk".
func Highlights(
	financials []models.FinancialPeriod,
	covenants []models.CovenantRecord,
	exposure []models.ExposureRecord,
	events []models.EarlyWarningEvent,
) ([]string, error) {
	if err := validateInputs(financials, exposure, covenants); err != nil {
		return nil, err
	}

	latest := LatestFinancial(financials)
	cov := covenants[0]
	exp := exposure[0]

	highlights := []string{}

	if latest.EBITDA < cov.EBITDAMinRequirement {
		highlights = append(highlights, "EBITDA is below covenant minimum requirement.")
	}

	if exp.UtilizedAmount/exp.SanctionedLimit > utilizationAlertThreshold {
		highlights = append(highlights, "Loan utilization exceeds 80% of sanctioned limit.")
	}

	for _, event := range events {
		if event.Severity == models.SeverityHigh {
			highlights = append(highlights, fmt.Sprintf("High severity alert: %s on %s.", event.Event, event.EventDate))
		}
	}

	return highlights, nil
}
