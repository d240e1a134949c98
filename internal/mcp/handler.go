// Package mcp exposes report generation over the Model Context Protocol.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/config"
	"github.com/bobmcallan/vire-reports/internal/handlers"
	"github.com/bobmcallan/vire-reports/internal/interfaces"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler creates the MCP handler with the report tools registered.
func NewHandler(generator handlers.ReportGenerator, store interfaces.ReportStore, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"vire-reports",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	registerTools(mcpSrv, generator, store, logger)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
