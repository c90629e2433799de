package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/weather-mcp/internal/adapter/nws"
	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
)

// Fixed replies for lookups that produced no usable data.
const (
	MsgAlertsUnavailable           = "Unable to fetch alerts or no alerts found."
	MsgNoActiveAlerts              = "No active alerts for this state."
	MsgForecastUnavailable         = "Unable to fetch forecast data for this location."
	MsgDetailedForecastUnavailable = "Unable to fetch detailed forecast."
)

const planTheEveningHeader = "Plan the evening based on the weather forecast:"

// Tool call outcomes recorded in metrics.
const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeNoAlerts    = "no_alerts"
	outcomeError       = "error"
)

// Service implements the weather tools. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	fetcher domain.Fetcher
	baseURL string
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// NewService creates a Service that reads from the NWS API at baseURL.
func NewService(fetcher domain.Fetcher, baseURL string, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher: fetcher,
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once the tools have been registered with a server.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("tools have not been registered yet")
	}
	return nil
}

// GetAlerts returns the active alerts for a two-letter state code, one block
// per alert in upstream order. Upstream failures become a fixed message; only
// a malformed alert produces an error.
func (s *Service) GetAlerts(ctx context.Context, state string) (string, error) {
	s.logger.Info("getting alerts", "state", state)

	doc, err := s.fetcher.Fetch(ctx, nws.AlertsURL(s.baseURL, state))
	if err != nil {
		s.upstreamFailed(ToolGetAlerts, "alerts", err)
		return MsgAlertsUnavailable, nil
	}

	features, present, err := domain.AlertFeatures(doc)
	if err != nil {
		s.record(ToolGetAlerts, outcomeError)
		return "", fmt.Errorf("alerts for %s: %w", state, err)
	}
	if !present {
		s.record(ToolGetAlerts, outcomeUnavailable)
		return MsgAlertsUnavailable, nil
	}
	if len(features) == 0 {
		s.record(ToolGetAlerts, outcomeNoAlerts)
		return MsgNoActiveAlerts, nil
	}

	blocks := make([]string, 0, len(features))
	for _, f := range features {
		blocks = append(blocks, domain.FormatAlert(f))
	}
	s.record(ToolGetAlerts, outcomeOK)
	return domain.JoinBlocks(blocks), nil
}

// GetForecast returns up to domain.MaxPeriods forecast periods for a
// coordinate. The points lookup must succeed before the forecast itself is
// requested.
func (s *Service) GetForecast(ctx context.Context, latitude, longitude float64) (string, error) {
	s.logger.Info("getting forecast", "latitude", latitude, "longitude", longitude)

	points, err := s.fetcher.Fetch(ctx, nws.PointsURL(s.baseURL, latitude, longitude))
	if err != nil {
		s.upstreamFailed(ToolGetForecast, "points", err)
		return MsgForecastUnavailable, nil
	}

	forecastURL, err := domain.ForecastURLOf(points)
	if err != nil {
		s.record(ToolGetForecast, outcomeError)
		return "", fmt.Errorf("points %v,%v: %w", latitude, longitude, err)
	}

	forecast, err := s.fetcher.Fetch(ctx, string(forecastURL))
	if err != nil {
		s.upstreamFailed(ToolGetForecast, "forecast", err)
		return MsgDetailedForecastUnavailable, nil
	}

	periods, err := domain.ForecastPeriods(forecast, domain.MaxPeriods)
	if err != nil {
		s.record(ToolGetForecast, outcomeError)
		return "", fmt.Errorf("forecast %s: %w", forecastURL, err)
	}

	blocks := make([]string, 0, len(periods))
	for _, p := range periods {
		blocks = append(blocks, domain.FormatPeriod(p))
	}
	s.record(ToolGetForecast, outcomeOK)
	return domain.JoinBlocks(blocks), nil
}

// PlanTheEvening wraps text in the evening-planning prompt.
func PlanTheEvening(text string) string {
	return planTheEveningHeader + "\n\n" + text
}

func (s *Service) upstreamFailed(tool, stage string, err error) {
	s.logger.Warn("upstream lookup failed",
		"tool", tool,
		"stage", stage,
		"reason", domain.ReasonOf(err),
		"error", err,
	)
	s.record(tool, outcomeUnavailable)
}

func (s *Service) record(tool, outcome string) {
	s.metrics.ToolCalls.WithLabelValues(tool, outcome).Inc()
}
