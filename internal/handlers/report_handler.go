package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/dataset"
	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/auth"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// ReportHandler serves the report generation and escalation tool endpoints
type ReportHandler struct {
	reports    interfaces.ReportService
	escalation interfaces.EscalationService
	auth       *auth.Service
	logger     arbor.ILogger
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reports interfaces.ReportService,
	escalation interfaces.EscalationService,
	authService *auth.Service,
	logger arbor.ILogger,
) *ReportHandler {
	return &ReportHandler{
		reports:    reports,
		escalation: escalation,
		auth:       authService,
		logger:     logger,
	}
}

// GenerateReportHandler serves POST /api/tools/generate-report/{company_id}.
// Client faults map to 4xx: unknown company 404, insufficient data 400.
func (h *ReportHandler) GenerateReportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	if _, ok := RequireAgentKey(w, r, h.auth); !ok {
		return
	}

	companyID := PathSuffix(r, "/api/tools/generate-report")
	if companyID == "" {
		WriteError(w, http.StatusBadRequest, "company id is required")
		return
	}

	result, err := h.reports.Generate(companyID)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrCompanyNotFound):
			WriteError(w, http.StatusNotFound, "Company not found")
		case risk.IsInsufficientData(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Str("company_id", companyID).Msg("Report generation failed")
			WriteError(w, http.StatusInternalServerError, "Report generation failed")
		}
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// escalateRequest is the optional POST body for escalation
type escalateRequest struct {
	RiskScore  *float64 `json:"risk_score,omitempty"`
	RiskRating string   `json:"risk_rating,omitempty"`
	ReportURL  string   `json:"report_url,omitempty"`
}

// EscalateHandler serves POST /api/tools/escalate-alert/{company_id}. A
// missing webhook configuration is a server configuration fault; a delivery
// failure is reported in the result body with status 200.
func (h *ReportHandler) EscalateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	agentID, ok := RequireAgentKey(w, r, h.auth)
	if !ok {
		return
	}

	companyID := PathSuffix(r, "/api/tools/escalate-alert")
	if companyID == "" {
		WriteError(w, http.StatusBadRequest, "company id is required")
		return
	}

	if !h.escalation.Enabled() {
		WriteError(w, http.StatusInternalServerError, "Escalation webhook is not configured")
		return
	}

	var body escalateRequest
	if r.Body != nil {
		// Body is optional; ignore decode errors from empty bodies
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	alert := models.EscalationAlert{
		CompanyID:  companyID,
		AgentID:    agentID,
		RiskScore:  body.RiskScore,
		RiskRating: models.RiskRating(body.RiskRating),
		ReportURL:  body.ReportURL,
	}

	result := h.escalation.Escalate(r.Context(), alert)
	WriteJSON(w, http.StatusOK, result)
}
