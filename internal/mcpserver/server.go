package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "weather"
	ServerVersion = "1.0.0"
)

const instructions = "Server thời tiết sử dụng Open-Meteo API " +
	"Dùng geocode_city để tìm tọa độ thành phố trước, " +
	"sau đó truyền lat/lon vào get_current_weather hoặc get_forecast."

// NewServer creates the MCP server with every weather tool registered
func NewServer(handler *Handler) *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)
	s.AddTools(handler.Tools()...)
	return s
}
