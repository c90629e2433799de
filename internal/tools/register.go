package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Names published to the agent host.
const (
	ToolGetAlerts      = "get_alerts"
	ToolGetForecast    = "get_forecast"
	ToolPlanTheEvening = "plan_the_evening"

	PromptPlanTheEvening = "plan_the_evening"
)

// ToolNames lists every tool Register adds, in registration order.
var ToolNames = []string{ToolGetAlerts, ToolGetForecast, ToolPlanTheEvening}

// PromptNames lists every prompt Register adds.
var PromptNames = []string{PromptPlanTheEvening}

type AlertsInput struct {
	State string `json:"state" jsonschema:"two-letter US state code, e.g. CA"`
}

type ForecastInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude of the location in decimal degrees"`
	Longitude float64 `json:"longitude" jsonschema:"longitude of the location in decimal degrees"`
}

type PlanInput struct {
	Text string `json:"text" jsonschema:"weather forecast text to plan around"`
}

// Register adds the weather tools and the evening-planning prompt to server.
// Call it once at startup, before the server runs.
func Register(server *mcp.Server, svc *Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGetAlerts,
		Description: "Get weather alerts for a US state (two-letter code).",
	}, svc.getAlertsTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGetForecast,
		Description: "Get weather forecast for a location (latitude, longitude).",
	}, svc.getForecastTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolPlanTheEvening,
		Description: "Plan the evening based on the weather forecast.",
	}, planTheEveningTool)

	server.AddPrompt(&mcp.Prompt{
		Name:        PromptPlanTheEvening,
		Description: "Plan the evening based on the weather forecast.",
		Arguments: []*mcp.PromptArgument{
			{Name: "text", Description: "weather forecast text to plan around", Required: true},
		},
	}, planTheEveningPrompt)

	svc.ready.Store(true)
	svc.logger.Info("tools registered", "tools", ToolNames, "prompts", PromptNames)
}

// Handler errors are reported to the host as tool-execution errors
// (IsError results), not protocol failures.

func (s *Service) getAlertsTool(ctx context.Context, _ *mcp.CallToolRequest, in AlertsInput) (*mcp.CallToolResult, any, error) {
	text, err := s.GetAlerts(ctx, in.State)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (s *Service) getForecastTool(ctx context.Context, _ *mcp.CallToolRequest, in ForecastInput) (*mcp.CallToolResult, any, error) {
	text, err := s.GetForecast(ctx, in.Latitude, in.Longitude)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func planTheEveningTool(_ context.Context, _ *mcp.CallToolRequest, in PlanInput) (*mcp.CallToolResult, any, error) {
	return textResult(PlanTheEvening(in.Text)), nil, nil
}

func planTheEveningPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var text string
	if req.Params != nil {
		text = req.Params.Arguments["text"]
	}
	return &mcp.GetPromptResult{
		Description: "Plan the evening based on the weather forecast.",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: PlanTheEvening(text)}},
		},
	}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
