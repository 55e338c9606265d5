// Command weather runs a single tool call and prints its text, without an MCP host.
//
//	weather -tool get_weather_by_city -city Hanoi
//	weather -tool get_forecast -lat 21.0285 -lon 105.8542 -days 3
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alexivanou/weather-mcp/internal/config"
	"github.com/alexivanou/weather-mcp/internal/mcpserver"
	"github.com/alexivanou/weather-mcp/internal/openmeteo"
	"github.com/alexivanou/weather-mcp/internal/service"
	"github.com/alexivanou/weather-mcp/internal/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func main() {
	tool := flag.String("tool", mcpserver.ToolWeatherByCity, "tool to invoke")
	city := flag.String("city", "", "city name")
	lat := flag.Float64("lat", 0, "latitude")
	lon := flag.Float64("lon", 0, "longitude")
	days := flag.Int("days", 7, "forecast days (1-7)")
	start := flag.String("start", "", "history start date (YYYY-MM-DD)")
	end := flag.String("end", "", "history end date (YYYY-MM-DD)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	client := openmeteo.NewClient(cfg.Provider)
	svc := service.NewService(client, cfg.Provider.GeocodingLanguage)
	handler := mcpserver.NewHandler(svc, stats.NewCollector(), logger)

	arguments := map[string]any{}
	if *city != "" {
		arguments["city_name"] = *city
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			arguments["latitude"] = *lat
		case "lon":
			arguments["longitude"] = *lon
		case "days":
			arguments["days"] = float64(*days)
		case "start":
			arguments["start_date"] = *start
		case "end":
			arguments["end_date"] = *end
		}
	})

	var selected server.ToolHandlerFunc
	for _, st := range handler.Tools() {
		if st.Tool.Name == *tool {
			selected = st.Handler
			break
		}
	}
	if selected == nil {
		logger.Fatal("Unknown tool", zap.String("tool", *tool))
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = *tool
	req.Params.Arguments = arguments

	result, err := selected(context.Background(), req)
	if err != nil {
		logger.Fatal("Tool call failed", zap.Error(err))
	}

	fmt.Println(resultText(result))
	if result.IsError {
		os.Exit(1)
	}
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
