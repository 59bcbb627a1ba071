package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createPingTool returns the ping tool definition
func createPingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check; returns ok with a server timestamp"),
	)
}

// createListCompaniesTool returns the list_companies tool definition
func createListCompaniesTool() mcp.Tool {
	return mcp.NewTool("list_companies",
		mcp.WithDescription("List companies in the credit portfolio"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 50, max: 200)"),
		),
		mcp.WithNumber("offset",
			mcp.Description("Rows to skip for pagination"),
		),
	)
}

// createGetFinancialsTool returns the get_financials tool definition
func createGetFinancialsTool() mcp.Tool {
	return mcp.NewTool("get_financials",
		mcp.WithDescription("Financial periods (revenue, EBITDA, net income) for a company"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
	)
}

// createGetExposureTool returns the get_exposure tool definition
func createGetExposureTool() mcp.Tool {
	return mcp.NewTool("get_exposure",
		mcp.WithDescription("Credit exposure records (limits, utilization, overdues) for a company"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
	)
}

// createGetCovenantsTool returns the get_covenants tool definition
func createGetCovenantsTool() mcp.Tool {
	return mcp.NewTool("get_covenants",
		mcp.WithDescription("Covenant thresholds (DSCR, interest coverage, current ratio) for a company"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
	)
}

// createGetEWSTool returns the get_ews tool definition
func createGetEWSTool() mcp.Tool {
	return mcp.NewTool("get_ews",
		mcp.WithDescription("Early warning events for a company, in recorded order"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
	)
}

// createGenerateReportTool returns the generate_report tool definition
func createGenerateReportTool() mcp.Tool {
	return mcp.NewTool("generate_report",
		mcp.WithDescription("Compute the company risk score and generate the risk report document"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
	)
}

// createEscalateAlertTool returns the escalate_alert tool definition
func createEscalateAlertTool() mcp.Tool {
	return mcp.NewTool("escalate_alert",
		mcp.WithDescription("Escalate a high-risk company to the configured alert channel"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("Company identifier, e.g. C001"),
		),
		mcp.WithNumber("risk_score",
			mcp.Description("Risk score to include in the alert"),
		),
		mcp.WithString("risk_rating",
			mcp.Description("Risk rating to include in the alert (Low, Medium, High)"),
		),
		mcp.WithString("report_url",
			mcp.Description("Link to the generated risk report"),
		),
	)
}
