package risk

import (
	"github.com/haleworth/riskintel/internal/models"
)

// Scoring formula weights
const (
	WeightEBITDA      = 0.4
	WeightUtilization = 0.3
	WeightCovenant    = 0.2
	WeightEWS         = 0.1
)

// Rating thresholds
const (
	ThresholdMedium = 0.3
	ThresholdHigh   = 0.6
)

// Interest coverage must reach 1.5x for a covenant compliance point; DSCR and
// current ratio need 1.0x.
const interestCoverageFloor = 1.5

// severityWeights maps EWS severity to its scoring weight. Severities outside
// the enumeration contribute zero.
var severityWeights = map[models.Severity]float64{
	models.SeverityLow:    0.3,
	models.SeverityMedium: 0.6,
	models.SeverityHigh:   1.0,
}

// Score computes the risk score and rating for one company.
//
// risk_score = 0.4*(1 - ebitdaRatio) + 0.3*utilization + 0.2*(1 - compliance) + 0.1*ewsSeverity
//
// The score is not clamped: an EBITDA ratio above 1 can push it negative and a
// deeply negative EBITDA can push it above 1. Ratings: < 0.3 Low, < 0.6
// Medium, otherwise High.
//
// The latest financial period, the first covenant record and the first
// exposure record are authoritative. Empty subsets and zero divisors return an
// InsufficientDataError rather than an arithmetic fault.
func Score(
	financials []models.FinancialPeriod,
	exposure []models.ExposureRecord,
	covenants []models.CovenantRecord,
	events []models.EarlyWarningEvent,
) (Assessment, error) {
	if err := validateInputs(financials, exposure, covenants); err != nil {
		return Assessment{}, err
	}

	latest := LatestFinancial(financials)
	cov := covenants[0]
	exp := exposure[0]

	components := Components{
		EBITDARatio:        latest.EBITDA / cov.EBITDAMinRequirement,
		UtilizationRatio:   exp.UtilizedAmount / exp.SanctionedLimit,
		CovenantCompliance: covenantCompliance(cov),
		EWSSeverity:        maxSeverityWeight(events),
	}

	score := WeightEBITDA*(1-components.EBITDARatio) +
		WeightUtilization*components.UtilizationRatio +
		WeightCovenant*(1-components.CovenantCompliance) +
		WeightEWS*components.EWSSeverity

	return Assessment{
		Score:      score,
		Rating:     determineRating(score),
		Components: components,
	}, nil
}

// LatestFinancial selects the period with the highest year. Ties and missing
// year markers resolve to the later row in input order.
func LatestFinancial(financials []models.FinancialPeriod) models.FinancialPeriod {
	latest := financials[0]
	for _, period := range financials[1:] {
		if period.Year >= latest.Year {
			latest = period
		}
	}
	return latest
}

// covenantCompliance counts passing covenant checks out of three. Each check
// is a full pass/fail point; no partial credit.
func covenantCompliance(cov models.CovenantRecord) float64 {
	passed := 0
	if cov.DSCR >= 1 {
		passed++
	}
	if cov.InterestCoverage >= interestCoverageFloor {
		passed++
	}
	if cov.CurrentRatio >= 1 {
		passed++
	}
	return float64(passed) / 3
}

// maxSeverityWeight returns the highest severity weight across all events, or
// zero when there are none.
func maxSeverityWeight(events []models.EarlyWarningEvent) float64 {
	max := 0.0
	for _, event := range events {
		if weight := severityWeights[event.Severity]; weight > max {
			max = weight
		}
	}
	return max
}

func determineRating(score float64) models.RiskRating {
	if score < ThresholdMedium {
		return models.RatingLow
	}
	if score < ThresholdHigh {
		return models.RatingMedium
	}
	return models.RatingHigh
}

// validateInputs rejects the inputs the naive formula would crash on
func validateInputs(
	financials []models.FinancialPeriod,
	exposure []models.ExposureRecord,
	covenants []models.CovenantRecord,
) error {
	if len(financials) == 0 {
		return &InsufficientDataError{Subset: "financials", Reason: "no financial periods"}
	}
	if len(covenants) == 0 {
		return &InsufficientDataError{Subset: "covenants", Reason: "no covenant records"}
	}
	if covenants[0].EBITDAMinRequirement == 0 {
		return &InsufficientDataError{Subset: "covenants", Reason: "ebitda_min_requirement is zero"}
	}
	if len(exposure) == 0 {
		return &InsufficientDataError{Subset: "exposure", Reason: "no exposure records"}
	}
	if exposure[0].SanctionedLimit == 0 {
		return &InsufficientDataError{Subset: "exposure", Reason: "sanctioned_limit is zero"}
	}
	return nil
}
