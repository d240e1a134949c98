// Package app wires application components together.
package app

import (
	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/config"
	"github.com/bobmcallan/vire-reports/internal/gemini"
	"github.com/bobmcallan/vire-reports/internal/handlers"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
	"github.com/bobmcallan/vire-reports/internal/mcp"
	"github.com/bobmcallan/vire-reports/internal/report"
	"github.com/bobmcallan/vire-reports/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Store         interfaces.ReportStore
	ReportService *report.Service

	// HTTP handlers
	ReportHandler     *handlers.ReportHandler
	ReportsAPIHandler *handlers.ReportsAPIHandler
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	MCPHandler        *mcp.Handler
}

// New initializes the application with all dependencies.
// The generation client and report store are explicit dependencies of the
// report service so tests can substitute fakes.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	store, err := storage.NewReportStore(logger, cfg)
	if err != nil {
		return nil, err
	}
	a.Store = store

	generationClient := gemini.NewClient(&cfg.Gemini, logger)
	a.ReportService = report.NewService(store, generationClient, cfg.Gemini.MaxOutputTokens, logger)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.ReportHandler = handlers.NewReportHandler(a.Logger, a.ReportService)
	a.ReportsAPIHandler = handlers.NewReportsAPIHandler(a.Logger, a.Store)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.MCPHandler = mcp.NewHandler(a.ReportService, a.Store, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
