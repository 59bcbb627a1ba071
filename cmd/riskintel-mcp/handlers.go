package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/interfaces"
	"github.com/haleworth/riskintel/internal/models"
	"github.com/haleworth/riskintel/internal/services/risk"
)

// stdioAgentID identifies this process in escalation payloads
const stdioAgentID = "agent-mcp-stdio"

// handlePing implements the ping tool
func handlePing() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(fmt.Sprintf("ok - %s", time.Now().UTC().Format(time.RFC3339))),
			},
		}, nil
	}
}

// handleListCompanies implements the list_companies tool
func handleListCompanies(ds interfaces.DatasetAccessor, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse limit (default: 50, max: 200)
		limit := request.GetInt("limit", 50)
		if limit > 200 {
			limit = 200
		}
		offset := request.GetInt("offset", 0)

		companies := ds.Companies(limit, offset)

		markdown := formatCompanies(companies, limit, offset)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetFinancials implements the get_financials tool
func handleGetFinancials(ds interfaces.DatasetAccessor, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		rows := ds.FinancialsFor(companyID)

		markdown := formatFinancials(companyID, rows)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetExposure implements the get_exposure tool
func handleGetExposure(ds interfaces.DatasetAccessor, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		rows := ds.ExposureFor(companyID)

		markdown := formatExposure(companyID, rows)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetCovenants implements the get_covenants tool
func handleGetCovenants(ds interfaces.DatasetAccessor, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		rows := ds.CovenantsFor(companyID)

		markdown := formatCovenants(companyID, rows)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetEWS implements the get_ews tool
func handleGetEWS(ds interfaces.DatasetAccessor, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		events := ds.EventsFor(companyID)

		markdown := formatEvents(companyID, events)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGenerateReport implements the generate_report tool
func handleGenerateReport(reports interfaces.ReportService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		result, err := reports.Generate(companyID)
		if err != nil {
			if risk.IsInsufficientData(err) {
				return &mcp.CallToolResult{
					Content: []mcp.Content{
						mcp.NewTextContent(fmt.Sprintf("Cannot score %s: %v", companyID, err)),
					},
				}, nil
			}
			logger.Error().Err(err).Str("company_id", companyID).Msg("Report generation failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Report error: %v", err)),
				},
			}, nil
		}

		markdown := formatReportResult(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleEscalateAlert implements the escalate_alert tool
func handleEscalateAlert(escalation interfaces.EscalationService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companyID, err := request.RequireString("company_id")
		if err != nil || companyID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: company_id parameter is required"),
				},
			}, nil
		}

		alert := models.EscalationAlert{
			CompanyID:  companyID,
			AgentID:    stdioAgentID,
			RiskRating: models.RiskRating(request.GetString("risk_rating", "")),
			ReportURL:  request.GetString("report_url", ""),
		}
		if score := request.GetFloat("risk_score", -1); score >= 0 {
			alert.RiskScore = &score
		}

		result := escalation.Escalate(ctx, alert)

		markdown := formatEscalationResult(companyID, result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
