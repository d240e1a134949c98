// Package prompt builds the parameterized prompt templates used to
// generate each section of an investment report.
package prompt

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vire-reports/internal/models"
)

// Template is a prompt body with {field} placeholders and the set of
// fields that must be present when rendering.
type Template struct {
	Required []string
	Body     string
}

// Render substitutes {field} placeholders from the given field map.
// A required field missing from the map is an error and must propagate
// to the caller; it is never silently rendered empty.
func (t Template) Render(fields map[string]string) (string, error) {
	for _, name := range t.Required {
		if _, ok := fields[name]; !ok {
			return "", fmt.Errorf("prompt render: missing required field %q", name)
		}
	}

	pairs := make([]string, 0, len(fields)*2)
	for name, value := range fields {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Body), nil
}

// Risk-tolerance sentences embedded into the portfolio summary prompt.
const (
	riskNoteConservative = "Given the client's conservative risk tolerance, the focus is on capital preservation and low-risk investments."
	riskNoteAggressive   = "Given the client's aggressive risk tolerance, the focus is on high-growth investments with higher risk."
	riskNoteModerate     = "Given the client's moderate risk tolerance, the portfolio is balanced between growth and stability."
)

// Region-specific compliance sentences embedded into the disclosures prompt.
const (
	complianceNoteUS      = "This report complies with SEC regulations, including disclosures on risk and performance."
	complianceNoteEU      = "This report complies with MiFID II regulations, including disclosures on costs, risks, and performance."
	complianceNoteGeneric = "This report includes standard risk and performance disclosures."
)

// PortfolioSummary returns the portfolio performance summary template.
// The embedded risk note varies with the client's risk tolerance;
// unrecognized values fall back to the moderate wording.
func PortfolioSummary(riskTolerance string) Template {
	var riskNote string
	switch riskTolerance {
	case models.RiskConservative:
		riskNote = riskNoteConservative
	case models.RiskAggressive:
		riskNote = riskNoteAggressive
	default:
		riskNote = riskNoteModerate
	}

	body := `Provide a detailed portfolio performance summary for {date_range}.

Portfolio Name: {portfolio_name}
Client Profile: {client_profile}
Benchmark: {benchmark}
Asset Allocation: {asset_allocation}
Net Return: {return_net} (Benchmark Return: {return_benchmark})
Risk Metrics: {risk_metrics}
Top Holdings: {top_holdings}
Underperforming Holdings: {underperforming_holdings}

` + riskNote + `

Instructions:
- Clearly state how the portfolio performed relative to the benchmark.
- Identify key risk metrics and their impact on performance.
- Summarize the top-performing and underperforming assets.
- Provide a professional financial report summary.`

	return Template{
		Required: []string{
			"portfolio_name", "client_profile", "benchmark", "asset_allocation",
			"return_net", "return_benchmark", "risk_metrics", "top_holdings",
			"underperforming_holdings", "date_range",
		},
		Body: body,
	}
}

// ClientInsights returns the client-specific insights template.
func ClientInsights() Template {
	return Template{
		Required: []string{"client_profile", "portfolio_summary", "risk_metrics", "market_outlook"},
		Body: `Client Profile: {client_profile}
Portfolio Summary: {portfolio_summary}
Risk Metrics: {risk_metrics}
Market Outlook: {market_outlook}

Instructions:
- Analyze the client's profile and portfolio performance.
- Provide insights tailored to the client's risk tolerance and investment goals.
- Highlight any significant risks or opportunities based on the market outlook.
- Avoid repeating information from the portfolio summary.`,
	}
}

// Recommendations returns the recommendations and outlook template.
func Recommendations() Template {
	return Template{
		Required: []string{"client_profile", "portfolio_summary", "risk_metrics", "market_outlook"},
		Body: `Client Profile: {client_profile}
Portfolio Summary: {portfolio_summary}
Risk Metrics: {risk_metrics}
Market Outlook: {market_outlook}

Instructions:
- Provide actionable recommendations based on the client's profile and portfolio performance.
- Suggest adjustments to the portfolio if necessary.
- Include a forward-looking outlook based on the market conditions.
- Be specific and avoid generic advice.`,
	}
}

// Disclosures returns the compliance disclosures template. The embedded
// compliance note is keyed by region ("US", "EU", anything else generic).
func Disclosures(region string) Template {
	var complianceNote string
	switch region {
	case "US":
		complianceNote = complianceNoteUS
	case "EU":
		complianceNote = complianceNoteEU
	default:
		complianceNote = complianceNoteGeneric
	}

	body := `Client Profile: {client_profile}
Investment Products: {investment_products}
Risk Metrics: {risk_metrics}

Instructions:
1. Provide standard risk disclosures. Be specific about the risks, including those related to the risk metrics.
2. ` + complianceNote + `
3. Avoid including outdated or irrelevant information.`

	return Template{
		Required: []string{"client_profile", "investment_products", "risk_metrics"},
		Body:     body,
	}
}
