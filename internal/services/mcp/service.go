// Package mcp exposes the credit dataset and the risk tools over the MCP
// JSON-RPC surface consumed by conversational agents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
)

// Default and maximum page sizes for company listing
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ToolService executes MCP tool and resource calls against the dataset and
// the risk pipeline.
type ToolService struct {
	dataset    interfaces.DatasetAccessor
	reports    interfaces.ReportService
	escalation interfaces.EscalationService
	logger     arbor.ILogger
}

// NewToolService creates a new MCP tool service
func NewToolService(
	dataset interfaces.DatasetAccessor,
	reports interfaces.ReportService,
	escalation interfaces.EscalationService,
	logger arbor.ILogger,
) *ToolService {
	return &ToolService{
		dataset:    dataset,
		reports:    reports,
		escalation: escalation,
		logger:     logger,
	}
}

// ListTools returns the tool catalog
func (s *ToolService) ListTools(ctx context.Context) (*ToolList, error) {
	companyIDSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"company_id": map[string]interface{}{
				"type":        "string",
				"description": "Company identifier, e.g. C001",
			},
		},
		"required": []string{"company_id"},
	}

	return &ToolList{Tools: []Tool{
		{
			Name:        "ping",
			Description: "Health check; returns ok with a server timestamp",
			InputSchema: map[string]interface{}{"type": "object", "properties": map[string]interface{}{}},
		},
		{
			Name:        "list_companies",
			Description: "List companies in the credit portfolio",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"limit":  map[string]interface{}{"type": "number", "description": "Max results (default 50, max 200)"},
					"offset": map[string]interface{}{"type": "number", "description": "Rows to skip"},
				},
			},
		},
		{Name: "get_financials", Description: "Financial periods for a company", InputSchema: companyIDSchema},
		{Name: "get_exposure", Description: "Credit exposure records for a company", InputSchema: companyIDSchema},
		{Name: "get_covenants", Description: "Covenant records for a company", InputSchema: companyIDSchema},
		{Name: "get_ews", Description: "Early warning events for a company", InputSchema: companyIDSchema},
		{Name: "generate_report", Description: "Compute the risk score and generate the risk report document", InputSchema: companyIDSchema},
		{
			Name:        "escalate_alert",
			Description: "Escalate a high-risk company to the configured alert channel",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"company_id":  map[string]interface{}{"type": "string"},
					"risk_score":  map[string]interface{}{"type": "number"},
					"risk_rating": map[string]interface{}{"type": "string"},
					"report_url":  map[string]interface{}{"type": "string"},
				},
				"required": []string{"company_id"},
			},
		},
	}}, nil
}

// CallTool executes a named tool. agentID identifies the calling agent; the
// caller has already validated it.
func (s *ToolService) CallTool(ctx context.Context, name string, args map[string]interface{}, agentID string) (*ToolResult, error) {
	s.logger.Debug().Str("tool", name).Str("agent", agentID).Msg("MCP tool call")

	switch name {
	case "ping":
		return jsonResult(map[string]interface{}{"ok": true})
	case "list_companies":
		limit := intArg(args, "limit", DefaultListLimit)
		offset := intArg(args, "offset", 0)
		return jsonResult(s.dataset.Companies(limit, offset))
	case "get_financials":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(s.dataset.FinancialsFor(companyID))
	case "get_exposure":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(s.dataset.ExposureFor(companyID))
	case "get_covenants":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(s.dataset.CovenantsFor(companyID))
	case "get_ews":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(s.dataset.EventsFor(companyID))
	case "generate_report":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		result, err := s.reports.Generate(companyID)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(result)
	case "escalate_alert":
		companyID, err := stringArg(args, "company_id")
		if err != nil {
			return errorResult(err), nil
		}
		alert := models.EscalationAlert{
			CompanyID: companyID,
			AgentID:   agentID,
			ReportURL: optionalString(args, "report_url"),
		}
		if score, ok := floatArg(args, "risk_score"); ok {
			alert.RiskScore = &score
		}
		if rating := optionalString(args, "risk_rating"); rating != "" {
			alert.RiskRating = models.RiskRating(rating)
		}
		result := s.escalation.Escalate(ctx, alert)
		return jsonResult(result)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// ListResources returns the resource catalog mirroring the dataset tables
func (s *ToolService) ListResources(ctx context.Context) (*ResourceList, error) {
	return &ResourceList{Resources: []Resource{
		{URI: "risk://companies", Name: "companies", Description: "All companies in the portfolio", MimeType: "application/json"},
		{URI: "risk://financials/{company_id}", Name: "financials", Description: "Financial periods by company", MimeType: "application/json"},
		{URI: "risk://exposure/{company_id}", Name: "exposure", Description: "Credit exposure by company", MimeType: "application/json"},
		{URI: "risk://covenants/{company_id}", Name: "covenants", Description: "Covenant records by company", MimeType: "application/json"},
		{URI: "risk://ews/{company_id}", Name: "ews", Description: "Early warning events by company", MimeType: "application/json"},
	}}, nil
}

// ReadResource resolves a resource URI to its JSON content
func (s *ToolService) ReadResource(ctx context.Context, uri string) (*ResourceContent, error) {
	trimmed := strings.TrimPrefix(uri, "risk://")
	if trimmed == uri {
		return nil, fmt.Errorf("unsupported resource scheme: %s", uri)
	}

	if trimmed == "companies" {
		return resourceContent(uri, s.dataset.Companies(MaxListLimit, 0))
	}

	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("resource URI requires a company id: %s", uri)
	}

	table, companyID := parts[0], parts[1]
	switch table {
	case "financials":
		return resourceContent(uri, s.dataset.FinancialsFor(companyID))
	case "exposure":
		return resourceContent(uri, s.dataset.ExposureFor(companyID))
	case "covenants":
		return resourceContent(uri, s.dataset.CovenantsFor(companyID))
	case "ews":
		return resourceContent(uri, s.dataset.EventsFor(companyID))
	default:
		return nil, fmt.Errorf("unknown resource: %s", uri)
	}
}

func resourceContent(uri string, data interface{}) (*ResourceContent, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	return &ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(encoded),
	}, nil
}

func jsonResult(data interface{}) (*ToolResult, error) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(encoded)}},
	}, nil
}

func errorResult(err error) *ToolResult {
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: err.Error()}},
		IsError: true,
	}
}

func stringArg(args map[string]interface{}, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func optionalString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func intArg(args map[string]interface{}, key string, fallback int) int {
	if value, ok := args[key].(float64); ok {
		return int(value)
	}
	return fallback
}

func floatArg(args map[string]interface{}, key string) (float64, bool) {
	value, ok := args[key].(float64)
	return value, ok
}
