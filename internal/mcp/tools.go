package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/config"
	"github.com/bobmcallan/vire-reports/internal/handlers"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
	"github.com/bobmcallan/vire-reports/internal/models"
)

// registerTools registers all MCP tools on the server.
func registerTools(s *server.MCPServer, generator handlers.ReportGenerator, store interfaces.ReportStore, logger *common.Logger) {
	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGenerateReportTool(), handleGenerateReport(generator, logger))
	s.AddTool(createGetReportTool(), handleGetReport(store, logger))
	s.AddTool(createListReportsTool(), handleListReports(store, logger))
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the vire-reports server version and status. Use this to verify connectivity."),
	)
}

func createGenerateReportTool() mcp.Tool {
	return mcp.NewTool("generate_report",
		mcp.WithDescription("SLOW: Generate a full investment report — portfolio summary, client insights, recommendations, and compliance disclosures — from portfolio and client data. Runs four sequential generation calls."),
		mcp.WithString("portfolio_name", mcp.Required(), mcp.Description("Name of the portfolio the report covers")),
		mcp.WithString("client_name", mcp.Required(), mcp.Description("Name of the client the report is prepared for")),
		mcp.WithString("date_range", mcp.Required(), mcp.Description("Reporting period (e.g., 'Q3 2026')")),
		mcp.WithString("risk_tolerance", mcp.Description("Client risk tolerance: conservative, moderate, or aggressive (default: moderate)")),
		mcp.WithString("investment_goals", mcp.Description("Client investment goals")),
		mcp.WithString("benchmark", mcp.Description("Benchmark index (e.g., 'S&P 500')")),
		mcp.WithString("asset_allocation", mcp.Description("Asset allocation breakdown")),
		mcp.WithString("return_net", mcp.Description("Net portfolio return for the period")),
		mcp.WithString("return_benchmark", mcp.Description("Benchmark return for the period")),
		mcp.WithString("risk_metrics", mcp.Description("Risk metrics (e.g., volatility, Sharpe ratio, max drawdown)")),
		mcp.WithString("top_holdings", mcp.Description("Top-performing holdings")),
		mcp.WithString("underperforming_holdings", mcp.Description("Underperforming holdings")),
		mcp.WithString("investment_products", mcp.Description("Investment products held, for disclosure purposes")),
		mcp.WithString("market_outlook", mcp.Description("Current market outlook")),
		mcp.WithString("region", mcp.Description("Regulatory region for disclosures: US, EU, or other (default: US)")),
	)
}

func createGetReportTool() mcp.Tool {
	return mcp.NewTool("get_report",
		mcp.WithDescription("FAST: Fetch a previously generated report by its identifier."),
		mcp.WithString("report_id", mcp.Required(), mcp.Description("Content-hash identifier returned by generate_report")),
	)
}

func createListReportsTool() mcp.Tool {
	return mcp.NewTool("list_reports",
		mcp.WithDescription("FAST: List all stored reports with their identifiers, portfolios, and reporting periods."),
	)
}

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Vire Reports Server\nVersion: %s\nStatus: OK", config.GetFullVersion())
		return mcp.NewToolResultText(result), nil
	}
}

func handleGenerateReport(generator handlers.ReportGenerator, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolioName, err := request.RequireString("portfolio_name")
		if err != nil || portfolioName == "" {
			return mcp.NewToolResultError("Error: portfolio_name parameter is required"), nil
		}
		clientName, err := request.RequireString("client_name")
		if err != nil || clientName == "" {
			return mcp.NewToolResultError("Error: client_name parameter is required"), nil
		}
		dateRange, err := request.RequireString("date_range")
		if err != nil || dateRange == "" {
			return mcp.NewToolResultError("Error: date_range parameter is required"), nil
		}

		input := &models.ReportInput{
			PortfolioName: portfolioName,
			ClientProfile: models.ClientProfile{
				Name:            clientName,
				RiskTolerance:   request.GetString("risk_tolerance", models.RiskModerate),
				InvestmentGoals: request.GetString("investment_goals", ""),
			},
			Benchmark:               request.GetString("benchmark", ""),
			AssetAllocation:         request.GetString("asset_allocation", ""),
			ReturnNet:               request.GetString("return_net", ""),
			ReturnBenchmark:         request.GetString("return_benchmark", ""),
			RiskMetrics:             request.GetString("risk_metrics", ""),
			TopHoldings:             request.GetString("top_holdings", ""),
			UnderperformingHoldings: request.GetString("underperforming_holdings", ""),
			InvestmentProducts:      request.GetString("investment_products", ""),
			MarketOutlook:           request.GetString("market_outlook", ""),
			DateRange:               dateRange,
			Region:                  request.GetString("region", "US"),
		}

		rpt, err := generator.Generate(ctx, input)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", portfolioName).Msg("MCP report generation failed")
			return mcp.NewToolResultError(fmt.Sprintf("Report generation error: %v", err)), nil
		}

		return mcp.NewToolResultText(formatReport(rpt)), nil
	}
}

func handleGetReport(store interfaces.ReportStore, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reportID, err := request.RequireString("report_id")
		if err != nil || reportID == "" {
			return mcp.NewToolResultError("Error: report_id parameter is required"), nil
		}

		rpt, err := store.Get(ctx, reportID)
		if err != nil {
			logger.Warn().Err(err).Str("report_id", reportID).Msg("MCP report lookup failed")
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		return mcp.NewToolResultText(formatReport(rpt)), nil
	}
}

func handleListReports(store interfaces.ReportStore, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reports, err := store.LoadAll(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("MCP report listing failed")
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(reports) == 0 {
			return mcp.NewToolResultText("No reports stored."), nil
		}

		ids := make([]string, 0, len(reports))
		for id := range reports {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Stored reports (%d):\n", len(reports)))
		for _, id := range ids {
			rpt := reports[id]
			sb.WriteString(fmt.Sprintf("- %s — %s (%s)\n", id, rpt.InputData.PortfolioName, rpt.InputData.DateRange))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// formatReport renders a report as markdown for tool output.
func formatReport(rpt *models.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Investment Report — %s — %s\n\n", rpt.InputData.PortfolioName, rpt.InputData.DateRange))
	sb.WriteString(fmt.Sprintf("Report ID: %s\n\n", rpt.ReportID))
	sb.WriteString("## Portfolio Performance Summary\n\n")
	sb.WriteString(rpt.PortfolioSummary + "\n\n")
	sb.WriteString("## Client-Specific Insights\n\n")
	sb.WriteString(rpt.ClientInsights + "\n\n")
	sb.WriteString("## Recommendations and Outlook\n\n")
	sb.WriteString(rpt.Recommendations + "\n\n")
	sb.WriteString("## Compliance Disclosures\n\n")
	sb.WriteString(rpt.Disclosures + "\n")
	return sb.String()
}
