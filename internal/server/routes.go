package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - dataset resources (agent key required)
	mux.HandleFunc("/api/resources/companies", s.app.DataHandler.CompaniesHandler)
	mux.HandleFunc("/api/resources/financials/", s.app.DataHandler.FinancialsHandler)
	mux.HandleFunc("/api/resources/exposure/", s.app.DataHandler.ExposureHandler)
	mux.HandleFunc("/api/resources/covenants/", s.app.DataHandler.CovenantsHandler)
	mux.HandleFunc("/api/resources/ews/", s.app.DataHandler.EWSHandler)

	// API routes - tools (agent key required)
	mux.HandleFunc("/api/tools/generate-report/", s.app.ReportHandler.GenerateReportHandler)
	mux.HandleFunc("/api/tools/escalate-alert/", s.app.ReportHandler.EscalateHandler)

	// MCP (Model Context Protocol) endpoints
	mux.HandleFunc("/mcp", s.app.MCPHandler.HandleRPC)
	mux.HandleFunc("/mcp/info", s.app.MCPHandler.InfoHandler)

	// API routes - system
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch-all for unknown routes
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
