// Package escalate delivers high-risk alerts to a Teams-style incoming
// webhook. One delivery attempt per alert, bounded timeout, no retries;
// failures come back as structured results so the caller decides how to
// surface them.
package escalate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
)

const defaultTimeout = 10 * time.Second

// Service implements interfaces.EscalationService
type Service struct {
	webhookURL string
	client     *http.Client
	limiter    *rate.Limiter
	logger     arbor.ILogger
	now        func() time.Time
}

// Compile-time assertion
var _ interfaces.EscalationService = (*Service)(nil)

// NewService creates a new escalation service from configuration
func NewService(config common.EscalationConfig, logger arbor.ILogger) *Service {
	timeout := defaultTimeout
	if d, err := time.ParseDuration(config.Timeout); err == nil && d > 0 {
		timeout = d
	}

	interval := time.Second
	if d, err := time.ParseDuration(config.RateLimit); err == nil && d > 0 {
		interval = d
	}

	return &Service{
		webhookURL: config.WebhookURL,
		client:     &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger,
		now:        time.Now,
	}
}

// Enabled reports whether a webhook endpoint is configured
func (s *Service) Enabled() bool {
	return s.webhookURL != ""
}

// messageCard is the Teams incoming webhook payload shape
type messageCard struct {
	Type            string            `json:"@type"`
	Context         string            `json:"@context"`
	ThemeColor      string            `json:"themeColor"`
	Summary         string            `json:"summary"`
	Sections        []cardSection     `json:"sections"`
	PotentialAction []cardOpenURI     `json:"potentialAction,omitempty"`
}

type cardSection struct {
	ActivityTitle string     `json:"activityTitle"`
	Facts         []cardFact `json:"facts"`
	Markdown      bool       `json:"markdown"`
}

type cardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type cardOpenURI struct {
	Type    string       `json:"@type"`
	Name    string       `json:"name"`
	Targets []cardTarget `json:"targets"`
}

type cardTarget struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// Escalate builds the alert card and performs one delivery attempt. A non-2xx
// response or transport failure yields status "failed" with the response code
// or error text; nothing is retried and nothing panics past this boundary.
func (s *Service) Escalate(ctx context.Context, alert models.EscalationAlert) models.EscalationResult {
	if !s.Enabled() {
		return models.EscalationResult{
			Status:  "failed",
			Code:    "not_configured",
			Message: "escalation webhook URL is not configured",
		}
	}

	payload, err := json.Marshal(s.buildCard(alert))
	if err != nil {
		return models.EscalationResult{Status: "failed", Code: "encode_error", Message: err.Error()}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return models.EscalationResult{Status: "failed", Code: "cancelled", Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return models.EscalationResult{Status: "failed", Code: "request_error", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn().Err(err).Str("company_id", alert.CompanyID).Msg("Escalation delivery failed")
		return models.EscalationResult{Status: "failed", Code: "network_error", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn().
			Int("status", resp.StatusCode).
			Str("company_id", alert.CompanyID).
			Msg("Escalation rejected by webhook")
		return models.EscalationResult{
			Status:  "failed",
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Message: string(body),
		}
	}

	s.logger.Info().Str("company_id", alert.CompanyID).Msg("Alert escalated")
	return models.EscalationResult{
		Status:  "escalated",
		Code:    fmt.Sprintf("%d", resp.StatusCode),
		Message: "alert delivered to escalation channel",
	}
}

func (s *Service) buildCard(alert models.EscalationAlert) messageCard {
	facts := []cardFact{
		{Name: "Alert ID", Value: uuid.NewString()},
		{Name: "Company", Value: alert.CompanyID},
		{Name: "Agent", Value: alert.AgentID},
	}
	if alert.RiskScore != nil {
		facts = append(facts, cardFact{Name: "Risk Score", Value: fmt.Sprintf("%.2f", *alert.RiskScore)})
	}
	if alert.RiskRating != "" {
		facts = append(facts, cardFact{Name: "Risk Rating", Value: string(alert.RiskRating)})
	}
	facts = append(facts, cardFact{Name: "Timestamp", Value: s.now().UTC().Format(time.RFC3339)})

	card := messageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: "D70000",
		Summary:    fmt.Sprintf("High risk alert for company %s", alert.CompanyID),
		Sections: []cardSection{{
			ActivityTitle: fmt.Sprintf("Credit risk escalation: %s", alert.CompanyID),
			Facts:         facts,
			Markdown:      true,
		}},
	}

	if alert.ReportURL != "" {
		card.PotentialAction = []cardOpenURI{{
			Type: "OpenUri",
			Name: "View Risk Report",
			Targets: []cardTarget{{
				OS:  "default",
				URI: alert.ReportURL,
			}},
		}}
	}

	return card
}
