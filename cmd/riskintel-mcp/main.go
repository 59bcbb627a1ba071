package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/dataset"
	"github.com/haleworth/riskintel/internal/services/escalate"
	"github.com/haleworth/riskintel/internal/services/pdf"
	"github.com/haleworth/riskintel/internal/services/report"
)

func main() {
	configPath := os.Getenv("RISKINTEL_CONFIG")
	if configPath == "" {
		// Optional when launched by an agent platform; env overrides still apply
		if _, err := os.Stat("riskintel.toml"); err == nil {
			configPath = "riskintel.toml"
		}
	}

	config, err := common.LoadFromFiles(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	ds, err := dataset.Load(config.Dataset.Dir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load dataset")
	}

	pdfService := pdf.NewService(logger)
	reportService := report.NewService(ds, pdfService, config.Reports, logger)
	escalationService := escalate.NewService(config.Escalation, logger)

	mcpServer := server.NewMCPServer(
		"riskintel",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register dataset tools
	mcpServer.AddTool(createPingTool(), handlePing())
	mcpServer.AddTool(createListCompaniesTool(), handleListCompanies(ds, logger))
	mcpServer.AddTool(createGetFinancialsTool(), handleGetFinancials(ds, logger))
	mcpServer.AddTool(createGetExposureTool(), handleGetExposure(ds, logger))
	mcpServer.AddTool(createGetCovenantsTool(), handleGetCovenants(ds, logger))
	mcpServer.AddTool(createGetEWSTool(), handleGetEWS(ds, logger))

	// Register risk tools
	mcpServer.AddTool(createGenerateReportTool(), handleGenerateReport(reportService, logger))
	mcpServer.AddTool(createEscalateAlertTool(), handleEscalateAlert(escalationService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
