package mcpserver

import (
	"net/http"

	"github.com/alexivanou/weather-mcp/internal/stats"
	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP router used by the http transport.
// The MCP endpoint is served at /mcp.
func NewRouter(mcpServer *server.MCPServer, statsCollector *stats.Collector, logger *zap.Logger) *mux.Router {
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", HealthCheck).Methods("GET")

	router.Handle("/mcp", server.NewStreamableHTTPServer(mcpServer)).Methods("GET", "POST", "DELETE")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
