package storage

import (
	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/config"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
	"github.com/bobmcallan/vire-reports/internal/storage/jsonfile"
)

// NewReportStore creates the report store configured for the application.
func NewReportStore(logger *common.Logger, cfg *config.Config) (interfaces.ReportStore, error) {
	return jsonfile.NewStore(cfg.Storage.ReportsFile, logger), nil
}
