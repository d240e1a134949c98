package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/models"
)

// ReportGenerator produces a report from a populated input. Satisfied by
// report.Service; tests substitute fakes.
type ReportGenerator interface {
	Generate(ctx context.Context, input *models.ReportInput) (*models.Report, error)
}

// ReportHandler serves the report form page and handles submissions.
type ReportHandler struct {
	logger    *common.Logger
	templates *template.Template
	generator ReportGenerator
}

// NewReportHandler creates a report handler that loads templates from the
// pages directory.
func NewReportHandler(logger *common.Logger, generator ReportGenerator) *ReportHandler {
	pagesDir := FindPagesDir()
	templates := template.Must(template.ParseGlob(filepath.Join(pagesDir, "*.html")))

	return &ReportHandler{
		logger:    logger,
		templates: templates,
		generator: generator,
	}
}

// reportPageData is the template payload for index.html.
type reportPageData struct {
	Page     string
	Error    string
	Report   *models.Report
	ReportID string
	Form     map[string]string
}

// ServeHTTP handles GET and POST on the root path: GET renders the empty
// form, POST generates a report and re-renders the page with the result
// or an inline error.
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, reportPageData{Page: "home", Form: map[string]string{}})
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSubmit parses the form, validates required fields, and runs the
// generation pipeline. Validation failures never reach the generator.
func (h *ReportHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, reportPageData{
			Page:  "home",
			Error: fmt.Sprintf("Error generating report: invalid form submission: %v", err),
			Form:  map[string]string{},
		})
		return
	}

	input := inputFromForm(r)

	if input.PortfolioName == "" || input.ClientProfile.Name == "" || input.DateRange == "" {
		if h.logger != nil {
			h.logger.Warn().
				Str("portfolio", input.PortfolioName).
				Msg("report submission rejected, required fields missing")
		}
		h.render(w, reportPageData{
			Page:  "home",
			Error: "Error generating report: missing required fields: portfolio_name, client_name, or date_range.",
			Form:  formValues(r),
		})
		return
	}

	rpt, err := h.generator.Generate(r.Context(), input)
	if err != nil {
		if h.logger != nil {
			h.logger.Error().Err(err).Str("portfolio", input.PortfolioName).Msg("report generation failed")
		}
		h.render(w, reportPageData{
			Page:  "home",
			Error: fmt.Sprintf("Error generating report: %v", err),
			Form:  formValues(r),
		})
		return
	}

	h.render(w, reportPageData{
		Page:     "home",
		Report:   rpt,
		ReportID: rpt.ReportID,
		Form:     formValues(r),
	})
}

// inputFromForm builds the report input from POST form fields.
// risk_tolerance defaults to "moderate" and region to "US" when absent.
func inputFromForm(r *http.Request) *models.ReportInput {
	riskTolerance := strings.TrimSpace(r.PostFormValue("risk_tolerance"))
	if riskTolerance == "" {
		riskTolerance = models.RiskModerate
	}
	region := strings.TrimSpace(r.PostFormValue("region"))
	if region == "" {
		region = "US"
	}

	return &models.ReportInput{
		PortfolioName: strings.TrimSpace(r.PostFormValue("portfolio_name")),
		ClientProfile: models.ClientProfile{
			Name:            strings.TrimSpace(r.PostFormValue("client_name")),
			RiskTolerance:   riskTolerance,
			InvestmentGoals: r.PostFormValue("investment_goals"),
		},
		Benchmark:               r.PostFormValue("benchmark"),
		AssetAllocation:         r.PostFormValue("asset_allocation"),
		ReturnNet:               r.PostFormValue("return_net"),
		ReturnBenchmark:         r.PostFormValue("return_benchmark"),
		RiskMetrics:             r.PostFormValue("risk_metrics"),
		TopHoldings:             r.PostFormValue("top_holdings"),
		UnderperformingHoldings: r.PostFormValue("underperforming_holdings"),
		InvestmentProducts:      r.PostFormValue("investment_products"),
		MarketOutlook:           r.PostFormValue("market_outlook"),
		DateRange:               strings.TrimSpace(r.PostFormValue("date_range")),
		Region:                  region,
	}
}

// formValues echoes submitted values back into the form inputs.
func formValues(r *http.Request) map[string]string {
	values := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostFormValue(key)
	}
	return values
}

func (h *ReportHandler) render(w http.ResponseWriter, data reportPageData) {
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "index.html").Str("error", err.Error()).Msg("failed to render page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
