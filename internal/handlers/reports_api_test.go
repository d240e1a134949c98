package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/vire-reports/internal/models"
)

// fakeStore serves a fixed mapping of reports.
type fakeStore struct {
	reports map[string]*models.Report
	loadErr error
}

func (f *fakeStore) Save(ctx context.Context, report *models.Report) error {
	f.reports[report.ReportID] = report
	return nil
}

func (f *fakeStore) LoadAll(ctx context.Context) (map[string]*models.Report, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.reports, nil
}

func (f *fakeStore) Get(ctx context.Context, reportID string) (*models.Report, error) {
	rpt, ok := f.reports[reportID]
	if !ok {
		return nil, fmt.Errorf("report not found: %s", reportID)
	}
	return rpt, nil
}

func TestReportsAPI_List(t *testing.T) {
	store := &fakeStore{reports: map[string]*models.Report{
		"aaa": {ReportID: "aaa", PortfolioSummary: "first"},
		"bbb": {ReportID: "bbb", PortfolioSummary: "second"},
	}}
	handler := NewReportsAPIHandler(nil, store)

	req := httptest.NewRequest("GET", "/api/reports", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]*models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("expected 2 reports, got %d", len(body))
	}
	if body["aaa"].PortfolioSummary != "first" {
		t.Errorf("unexpected report payload: %+v", body["aaa"])
	}
}

func TestReportsAPI_ListEmpty(t *testing.T) {
	handler := NewReportsAPIHandler(nil, &fakeStore{reports: map[string]*models.Report{}})

	req := httptest.NewRequest("GET", "/api/reports", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "{}\n" {
		t.Errorf("expected empty JSON object, got %q", body)
	}
}

func TestReportsAPI_ListMethodNotAllowed(t *testing.T) {
	handler := NewReportsAPIHandler(nil, &fakeStore{reports: map[string]*models.Report{}})

	req := httptest.NewRequest("POST", "/api/reports", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestReportsAPI_Get(t *testing.T) {
	store := &fakeStore{reports: map[string]*models.Report{
		"abc123": {ReportID: "abc123", PortfolioSummary: "summary"},
	}}
	handler := NewReportsAPIHandler(nil, store)

	req := httptest.NewRequest("GET", "/api/reports/abc123", nil)
	w := httptest.NewRecorder()
	handler.HandleGet(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var rpt models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rpt); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if rpt.ReportID != "abc123" {
		t.Errorf("expected report abc123, got %s", rpt.ReportID)
	}
}

func TestReportsAPI_GetNotFound(t *testing.T) {
	handler := NewReportsAPIHandler(nil, &fakeStore{reports: map[string]*models.Report{}})

	req := httptest.NewRequest("GET", "/api/reports/missing", nil)
	w := httptest.NewRecorder()
	handler.HandleGet(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestReportsAPI_GetInvalidID(t *testing.T) {
	handler := NewReportsAPIHandler(nil, &fakeStore{reports: map[string]*models.Report{}})

	for _, path := range []string{"/api/reports/", "/api/reports/a/b"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		handler.HandleGet(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("path %s: expected status 400, got %d", path, w.Code)
		}
	}
}
