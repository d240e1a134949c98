// Package report generates investment reports by rendering prompt
// templates, feeding them through the text-generation client, and
// persisting the assembled result.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
	"github.com/bobmcallan/vire-reports/internal/models"
	"github.com/bobmcallan/vire-reports/internal/prompt"
)

// Service orchestrates the four-section report generation pipeline.
type Service struct {
	store     interfaces.ReportStore
	generator interfaces.GenerationClient
	logger    *common.Logger
	maxTokens int
}

// NewService creates a report service with its dependencies injected.
func NewService(store interfaces.ReportStore, generator interfaces.GenerationClient, maxTokens int, logger *common.Logger) *Service {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Service{
		store:     store,
		generator: generator,
		logger:    logger,
		maxTokens: maxTokens,
	}
}

// ReportID derives the report identifier: the hex SHA-256 digest of the
// canonical report text. Deterministic and collision-resistant; not a
// secret.
func ReportID(reportText string) string {
	sum := sha256.Sum256([]byte(reportText))
	return hex.EncodeToString(sum[:])
}

// Generate runs the pipeline in strict order. Each later prompt consumes
// the extracted portfolio summary, so the four generation calls are
// sequential. Any failure aborts the whole operation; no partial report
// is persisted.
func (s *Service) Generate(ctx context.Context, input *models.ReportInput) (*models.Report, error) {
	fields := input.PromptFields()

	// 1. Portfolio summary, with the risk-tolerance-specific prompt.
	summaryText, err := s.generateSection(ctx, prompt.PortfolioSummary(input.ClientProfile.RiskTolerance), fields)
	if err != nil {
		return nil, fmt.Errorf("portfolio summary generation failed: %w", err)
	}

	// 2. Strip the echoed instruction block from the summary and thread
	// the result into the remaining prompts.
	summary := ExtractSummary(summaryText)
	input.PortfolioSummary = summary
	fields["portfolio_summary"] = summary

	// 3-4. Insights and recommendations keep the generated text verbatim.
	insights, err := s.generateSection(ctx, prompt.ClientInsights(), fields)
	if err != nil {
		return nil, fmt.Errorf("client insights generation failed: %w", err)
	}

	recommendations, err := s.generateSection(ctx, prompt.Recommendations(), fields)
	if err != nil {
		return nil, fmt.Errorf("recommendations generation failed: %w", err)
	}

	// 5. Disclosures, with the region-specific prompt.
	disclosures, err := s.generateSection(ctx, prompt.Disclosures(input.Region), fields)
	if err != nil {
		return nil, fmt.Errorf("disclosures generation failed: %w", err)
	}

	// Canonical report text: fixed order, newline separated.
	reportText := strings.Join([]string{summary, insights, recommendations, disclosures}, "\n")

	rpt := &models.Report{
		ReportID:         ReportID(reportText),
		PortfolioSummary: summary,
		ClientInsights:   insights,
		Recommendations:  recommendations,
		Disclosures:      disclosures,
		InputData:        *input,
	}

	if err := s.store.Save(ctx, rpt); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	if s.logger != nil {
		s.logger.Info().
			Str("report_id", rpt.ReportID).
			Str("portfolio", input.PortfolioName).
			Msg("report generated")
	}

	return rpt, nil
}

// generateSection renders one template and returns the first candidate's
// text. A rendering error (missing required field) propagates unchanged.
func (s *Service) generateSection(ctx context.Context, tpl prompt.Template, fields map[string]string) (string, error) {
	rendered, err := tpl.Render(fields)
	if err != nil {
		return "", err
	}

	candidates, err := s.generator.GenerateText(ctx, rendered, s.maxTokens)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("generation returned no candidates")
	}

	return candidates[0].Text, nil
}

// Store exposes the underlying report store for read-side handlers.
func (s *Service) Store() interfaces.ReportStore {
	return s.store
}
