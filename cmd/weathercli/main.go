// Command weathercli runs one weather tool against the live NWS API and prints
// the text an agent host would receive. Useful for checking the upstream
// without an MCP host.
//
// Usage:
//
//	go run ./cmd/weathercli -tool get_alerts -state CA
//	go run ./cmd/weathercli -tool get_forecast -lat 39.7456 -lon -97.0892
//	go run ./cmd/weathercli -tool plan_the_evening -text "Clear, 45°F"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/weather-mcp/internal/adapter/nws"
	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
)

func main() {
	tool := flag.String("tool", "", "tool to run: get_alerts, get_forecast, plan_the_evening")
	state := flag.String("state", "", "two-letter US state code (get_alerts)")
	lat := flag.Float64("lat", 0, "latitude (get_forecast)")
	lon := flag.Float64("lon", 0, "longitude (get_forecast)")
	text := flag.String("text", "", "forecast text (plan_the_evening)")
	baseURL := flag.String("base-url", nws.DefaultBaseURL, "NWS API base URL")
	flag.Parse()

	if *tool == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	svc := tools.NewService(nws.NewClient(nws.DefaultTimeout, metrics, logger), *baseURL, logger, metrics)

	out, err := run(context.Background(), svc, *tool, *state, *lat, *lon, *text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, out)
}

func run(ctx context.Context, svc *tools.Service, tool, state string, lat, lon float64, text string) (string, error) {
	switch tool {
	case tools.ToolGetAlerts:
		if state == "" {
			return "", fmt.Errorf("%s requires -state", tool)
		}
		return svc.GetAlerts(ctx, state)
	case tools.ToolGetForecast:
		return svc.GetForecast(ctx, lat, lon)
	case tools.ToolPlanTheEvening:
		return tools.PlanTheEvening(text), nil
	default:
		return "", fmt.Errorf("unknown tool %q (allowed: %v)", tool, tools.ToolNames)
	}
}
