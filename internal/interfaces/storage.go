package interfaces

import (
	"context"

	"github.com/bobmcallan/vire-reports/internal/models"
)

// ReportStore persists generated reports keyed by report ID.
type ReportStore interface {
	// Save inserts or overwrites the report at its ReportID.
	Save(ctx context.Context, report *models.Report) error

	// LoadAll returns every stored report. A missing or unreadable store
	// yields an empty map, not an error.
	LoadAll(ctx context.Context) (map[string]*models.Report, error)

	// Get returns the report with the given ID, or an error if absent.
	Get(ctx context.Context, reportID string) (*models.Report, error)
}
