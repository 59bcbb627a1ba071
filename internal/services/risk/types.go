// Package risk provides pure calculation functions for company credit risk
// scoring. All functions are stateless and perform no I/O.
package risk

import (
	"errors"
	"fmt"

	"github.com/haleworth/riskintel/internal/models"
)

// Components holds the scoring term inputs
type Components struct {
	EBITDARatio        float64 `json:"ebitda_ratio"`
	UtilizationRatio   float64 `json:"utilization_ratio"`
	CovenantCompliance float64 `json:"covenant_compliance"`
	EWSSeverity        float64 `json:"ews_severity"`
}

// Assessment is the output of Score. Created fresh on every invocation and
// never mutated.
type Assessment struct {
	Score      float64           `json:"score"` // Weighted sum, deliberately unclamped
	Rating     models.RiskRating `json:"rating"`
	Components Components        `json:"components"`
}

// InsufficientDataError reports a required subset that is empty or holds a
// zero value where a divisor is needed. It is surfaced instead of letting the
// scoring formula hit a division by zero or an index out of range.
type InsufficientDataError struct {
	Subset string // "financials", "exposure" or "covenants"
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data in %s: %s", e.Subset, e.Reason)
}

// IsInsufficientData reports whether err is an InsufficientDataError
func IsInsufficientData(err error) bool {
	var target *InsufficientDataError
	return errors.As(err, &target)
}
