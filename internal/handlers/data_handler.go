package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/services/auth"
)

// List paging bounds for company listing
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// DataHandler serves the read-only dataset resources. Subset endpoints return
// empty lists (not 404s) for companies without matching rows.
type DataHandler struct {
	dataset interfaces.DatasetAccessor
	auth    *auth.Service
	logger  arbor.ILogger
}

// NewDataHandler creates a new data handler
func NewDataHandler(dataset interfaces.DatasetAccessor, authService *auth.Service, logger arbor.ILogger) *DataHandler {
	return &DataHandler{
		dataset: dataset,
		auth:    authService,
		logger:  logger,
	}
}

// CompaniesHandler serves GET /api/resources/companies
func (h *DataHandler) CompaniesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	if _, ok := RequireAgentKey(w, r, h.auth); !ok {
		return
	}

	limit, offset := GetListParams(r, DefaultListLimit, MaxListLimit)
	WriteJSON(w, http.StatusOK, h.dataset.Companies(limit, offset))
}

// FinancialsHandler serves GET /api/resources/financials/{company_id}
func (h *DataHandler) FinancialsHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.companyID(w, r, "/api/resources/financials")
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, h.dataset.FinancialsFor(companyID))
}

// ExposureHandler serves GET /api/resources/exposure/{company_id}
func (h *DataHandler) ExposureHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.companyID(w, r, "/api/resources/exposure")
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, h.dataset.ExposureFor(companyID))
}

// CovenantsHandler serves GET /api/resources/covenants/{company_id}
func (h *DataHandler) CovenantsHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.companyID(w, r, "/api/resources/covenants")
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, h.dataset.CovenantsFor(companyID))
}

// EWSHandler serves GET /api/resources/ews/{company_id}
func (h *DataHandler) EWSHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.companyID(w, r, "/api/resources/ews")
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, h.dataset.EventsFor(companyID))
}

func (h *DataHandler) companyID(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if !RequireMethod(w, r, "GET") {
		return "", false
	}
	if _, ok := RequireAgentKey(w, r, h.auth); !ok {
		return "", false
	}

	companyID := PathSuffix(r, prefix)
	if companyID == "" {
		WriteError(w, http.StatusBadRequest, "company id is required")
		return "", false
	}
	return companyID, true
}
