// Package interfaces defines service contracts for vire-reports
package interfaces

import (
	"context"

	"github.com/bobmcallan/vire-reports/internal/models"
)

// GenerationClient provides access to a hosted text-generation API.
// Treated as an opaque, potentially slow, potentially failing collaborator.
type GenerationClient interface {
	// GenerateText renders one prompt through the model and returns the
	// ordered candidate outputs. maxTokens caps the generated length.
	GenerateText(ctx context.Context, prompt string, maxTokens int) ([]models.Candidate, error)
}
