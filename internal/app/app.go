// Package app wires the application: dataset, services and handlers. The
// dataset is loaded once here and injected into every consumer; nothing else
// holds global state.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/dataset"
	"github.com/haleworth/riskintel/internal/handlers"
	"github.com/haleworth/riskintel/internal/services/auth"
	"github.com/haleworth/riskintel/internal/services/escalate"
	"github.com/haleworth/riskintel/internal/services/mcp"
	"github.com/haleworth/riskintel/internal/services/pdf"
	"github.com/haleworth/riskintel/internal/services/report"
	"github.com/haleworth/riskintel/internal/services/scheduler"
)

// App holds the wired application components
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Dataset *dataset.Dataset

	AuthService       *auth.Service
	PDFService        *pdf.Service
	ReportService     *report.Service
	EscalationService *escalate.Service
	MCPService        *mcp.ToolService
	Scheduler         *scheduler.Service

	APIHandler    *handlers.APIHandler
	DataHandler   *handlers.DataHandler
	ReportHandler *handlers.ReportHandler
	MCPHandler    *handlers.MCPHandler
}

// New initializes the application from configuration
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	ds, err := dataset.Load(config.Dataset.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	authService := auth.NewService(config.Auth)
	pdfService := pdf.NewService(logger)
	reportService := report.NewService(ds, pdfService, config.Reports, logger)
	escalationService := escalate.NewService(config.Escalation, logger)
	mcpService := mcp.NewToolService(ds, reportService, escalationService, logger)
	sweepService := scheduler.NewService(ds, reportService, escalationService, config.Sweep, logger)

	if err := sweepService.Start(); err != nil {
		return nil, fmt.Errorf("failed to start sweep scheduler: %w", err)
	}

	return &App{
		Config:            config,
		Logger:            logger,
		Dataset:           ds,
		AuthService:       authService,
		PDFService:        pdfService,
		ReportService:     reportService,
		EscalationService: escalationService,
		MCPService:        mcpService,
		Scheduler:         sweepService,
		APIHandler:        handlers.NewAPIHandler(),
		DataHandler:       handlers.NewDataHandler(ds, authService, logger),
		ReportHandler:     handlers.NewReportHandler(reportService, escalationService, authService, logger),
		MCPHandler:        handlers.NewMCPHandler(mcpService, authService, logger),
	}, nil
}

// Close releases application resources
func (a *App) Close() {
	a.Scheduler.Stop()
}
