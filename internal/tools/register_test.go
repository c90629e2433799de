package tools

import (
	"context"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect registers svc on a fresh server and returns a client session to it.
func connect(t *testing.T, svc *Service) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "weather", Version: "test"}, nil)
	Register(server, svc)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func callText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text, res.IsError
}

func TestRegister_PublishesCatalog(t *testing.T) {
	svc := newTestService(newMockFetcher())
	session := connect(t, svc)
	ctx := context.Background()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	want := append([]string(nil), ToolNames...)
	sort.Strings(want)
	sort.Strings(names)
	assert.Equal(t, want, names)

	prompts, err := session.ListPrompts(ctx, &mcp.ListPromptsParams{})
	require.NoError(t, err)
	require.Len(t, prompts.Prompts, len(PromptNames))
	assert.Equal(t, PromptPlanTheEvening, prompts.Prompts[0].Name)
	require.Len(t, prompts.Prompts[0].Arguments, 1)
	assert.Equal(t, "text", prompts.Prompts[0].Arguments[0].Name)

	assert.NoError(t, svc.CheckReadiness(ctx))
}

func TestRegister_GetAlerts(t *testing.T) {
	f := newMockFetcher()
	f.responses[testAlertsURL] = `{"features": []}`
	session := connect(t, newTestService(f))

	text, isErr := callText(t, session, ToolGetAlerts, map[string]any{"state": "CA"})
	assert.False(t, isErr)
	assert.Equal(t, MsgNoActiveAlerts, text)
}

func TestRegister_GetForecastMatchesDirectCall(t *testing.T) {
	f := newMockFetcher()
	f.responses[testPointsURL] = pointsBody(testForecastURL)
	f.responses[testForecastURL] = periodsBody(7)
	svc := newTestService(f)
	session := connect(t, svc)

	text, isErr := callText(t, session, ToolGetForecast, map[string]any{"latitude": 39.7456, "longitude": -97.0892})
	assert.False(t, isErr)

	direct, err := svc.GetForecast(context.Background(), 39.7456, -97.0892)
	require.NoError(t, err)
	assert.Equal(t, direct, text)
}

func TestRegister_ShapeViolationIsToolError(t *testing.T) {
	f := newMockFetcher()
	f.responses[testPointsURL] = `{"properties":{}}`
	session := connect(t, newTestService(f))

	text, isErr := callText(t, session, ToolGetForecast, map[string]any{"latitude": 39.7456, "longitude": -97.0892})
	assert.True(t, isErr)
	assert.Contains(t, text, "properties.forecast")
}

func TestRegister_PlanTheEveningTool(t *testing.T) {
	session := connect(t, newTestService(newMockFetcher()))

	text, isErr := callText(t, session, ToolPlanTheEvening, map[string]any{"text": "Clear skies."})
	assert.False(t, isErr)
	assert.Equal(t, PlanTheEvening("Clear skies."), text)
}

func TestRegister_PlanTheEveningPrompt(t *testing.T) {
	session := connect(t, newTestService(newMockFetcher()))

	res, err := session.GetPrompt(context.Background(), &mcp.GetPromptParams{
		Name:      PromptPlanTheEvening,
		Arguments: map[string]string{"text": "Rain after 9pm."},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, mcp.Role("user"), res.Messages[0].Role)

	tc, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Plan the evening based on the weather forecast:\n\nRain after 9pm.", tc.Text)
}
