// Package models defines data structures for vire-reports
package models

import "fmt"

// Risk tolerance values recognized by the summary prompt. Anything else
// falls back to moderate wording.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// ClientProfile describes the client a report is generated for.
// Immutable once built for a request.
type ClientProfile struct {
	Name            string `json:"name"`
	RiskTolerance   string `json:"risk_tolerance"`
	InvestmentGoals string `json:"investment_goals"`
}

// String renders the profile as a single line for embedding into prompt text.
func (p ClientProfile) String() string {
	return fmt.Sprintf("Name: %s; Risk Tolerance: %s; Investment Goals: %s",
		p.Name, p.RiskTolerance, p.InvestmentGoals)
}

// ReportInput holds the full set of fields collected from one form
// submission. PortfolioSummary is empty until the generator fills it in
// after the first generation step.
type ReportInput struct {
	PortfolioName           string        `json:"portfolio_name"`
	ClientProfile           ClientProfile `json:"client_profile"`
	Benchmark               string        `json:"benchmark"`
	AssetAllocation         string        `json:"asset_allocation"`
	ReturnNet               string        `json:"return_net"`
	ReturnBenchmark         string        `json:"return_benchmark"`
	RiskMetrics             string        `json:"risk_metrics"`
	TopHoldings             string        `json:"top_holdings"`
	UnderperformingHoldings string        `json:"underperforming_holdings"`
	InvestmentProducts      string        `json:"investment_products"`
	MarketOutlook           string        `json:"market_outlook"`
	DateRange               string        `json:"date_range"`
	Region                  string        `json:"region"`
	PortfolioSummary        string        `json:"portfolio_summary,omitempty"`
}

// PromptFields flattens the input into the named fields prompt templates
// render against. The client profile is embedded as a single string field.
// PortfolioSummary is included once set; all four prompts share the same
// field map even where a template does not declare portfolio_summary as
// required.
func (in *ReportInput) PromptFields() map[string]string {
	return map[string]string{
		"portfolio_name":           in.PortfolioName,
		"client_profile":           in.ClientProfile.String(),
		"benchmark":                in.Benchmark,
		"asset_allocation":         in.AssetAllocation,
		"return_net":               in.ReturnNet,
		"return_benchmark":         in.ReturnBenchmark,
		"risk_metrics":             in.RiskMetrics,
		"top_holdings":             in.TopHoldings,
		"underperforming_holdings": in.UnderperformingHoldings,
		"investment_products":      in.InvestmentProducts,
		"market_outlook":           in.MarketOutlook,
		"date_range":               in.DateRange,
		"region":                   in.Region,
		"portfolio_summary":        in.PortfolioSummary,
	}
}

// Report is the persisted output of one successful generation request,
// keyed by a content-derived identifier. Never updated or deleted.
type Report struct {
	ReportID         string      `json:"report_id"`
	PortfolioSummary string      `json:"portfolio_summary"`
	ClientInsights   string      `json:"client_insights"`
	Recommendations  string      `json:"recommendations"`
	Disclosures      string      `json:"disclosures"`
	InputData        ReportInput `json:"input_data"`
}

// Candidate is a single generation candidate returned by the
// text-generation API. Only the first candidate is used.
type Candidate struct {
	Text string `json:"text"`
}
