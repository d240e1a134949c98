// Package jsonfile implements the report store as a single JSON file
// holding the whole report mapping, rewritten in full on every save.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/models"
)

// Store persists reports to one JSON file keyed by report ID.
//
// Writes are read-modify-write over the whole file: not transactional,
// and a crash mid-write can truncate the file. Concurrent processes
// racing on Save are last-writer-wins on the whole mapping. A mutex
// serializes writers within this process.
type Store struct {
	path   string
	logger *common.Logger
	mu     sync.Mutex
}

// NewStore creates a report store backed by the file at path.
func NewStore(path string, logger *common.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Save reads the existing mapping (a missing file is an empty mapping),
// inserts the report at its ID, and rewrites the whole file. Read or
// write failures are logged and returned.
func (s *Store) Save(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.readAll()
	if err != nil {
		if s.logger != nil {
			s.logger.Error().Err(err).Str("path", s.path).Msg("failed to read report store")
		}
		return fmt.Errorf("failed to read report store: %w", err)
	}

	reports[report.ReportID] = report

	data, err := json.MarshalIndent(reports, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize report store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		if s.logger != nil {
			s.logger.Error().Err(err).Str("path", s.path).Msg("failed to write report store")
		}
		return fmt.Errorf("failed to write report store: %w", err)
	}

	if s.logger != nil {
		s.logger.Info().Str("report_id", report.ReportID).Msg("report saved")
	}
	return nil
}

// LoadAll returns every stored report. A missing or unparsable file
// yields an empty mapping; parse failures are logged and swallowed.
func (s *Store) LoadAll(ctx context.Context) (map[string]*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.readAll()
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to load report store, treating as empty")
		}
		return map[string]*models.Report{}, nil
	}
	return reports, nil
}

// Get returns one report by ID.
func (s *Store) Get(ctx context.Context, reportID string) (*models.Report, error) {
	reports, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	rpt, ok := reports[reportID]
	if !ok {
		return nil, fmt.Errorf("report not found: %s", reportID)
	}
	return rpt, nil
}

// readAll deserializes the whole store file. Absent file means empty.
func (s *Store) readAll() (map[string]*models.Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.Report{}, nil
		}
		return nil, err
	}

	reports := map[string]*models.Report{}
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse report store %s: %w", s.path, err)
	}
	return reports, nil
}
