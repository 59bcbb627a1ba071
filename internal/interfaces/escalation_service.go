package interfaces

import (
	"context"

	"github.com/haleworth/riskintel/internal/models"
)

// EscalationService delivers high-risk alerts to the configured chat webhook.
// Delivery failures are reported in the result, not returned as errors, so the
// caller decides how to surface them.
type EscalationService interface {
	// Enabled reports whether a webhook endpoint is configured
	Enabled() bool

	// Escalate builds the alert payload and performs one delivery attempt
	// with a bounded timeout. No retries.
	Escalate(ctx context.Context, alert models.EscalationAlert) models.EscalationResult
}
