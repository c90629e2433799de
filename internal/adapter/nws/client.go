package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
)

const (
	// DefaultBaseURL is the public National Weather Service API.
	DefaultBaseURL = "https://api.weather.gov"

	// DefaultTimeout bounds one whole request, body included.
	DefaultTimeout = 30 * time.Second

	UserAgent     = "weather-app/1.0"
	AcceptGeoJSON = "application/geo+json"
)

// Client implements domain.Fetcher against the NWS API.
type Client struct {
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NWS client. Redirects are returned as-is rather than
// followed, and every request uses its own connection.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: newHTTPClient(timeout),
		clock:      clockwork.NewRealClock(),
		metrics:    metrics,
		logger:     logger,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// AlertsURL is the active-alerts resource for a two-letter state code.
func AlertsURL(baseURL, state string) string {
	return fmt.Sprintf("%s/alerts/active/area/%s", baseURL, url.PathEscape(state))
}

// PointsURL is the points resource for a coordinate. Values are not range
// checked; the upstream rejects bad ones.
func PointsURL(baseURL string, lat, lon float64) string {
	return fmt.Sprintf("%s/points/%s,%s", baseURL, formatCoord(lat), formatCoord(lon))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fetch GETs rawURL and decodes the body as a JSON object.
func (c *Client) Fetch(ctx context.Context, rawURL string) (domain.Document, error) {
	start := c.clock.Now()
	doc, err := c.doRequest(ctx, rawURL)
	elapsed := c.clock.Since(start)

	outcome := "success"
	if err != nil {
		outcome = string(domain.ReasonOf(err))
	}
	c.metrics.UpstreamRequests.WithLabelValues(outcome).Inc()
	c.metrics.UpstreamDuration.Observe(elapsed.Seconds())
	c.logger.Debug("upstream request", "url", rawURL, "outcome", outcome, "duration", elapsed)

	return doc, err
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.FetchError{Reason: domain.ReasonTransport, URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", AcceptGeoJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Reason: transportReason(err), URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{Reason: domain.ReasonStatus, URL: rawURL, StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var doc domain.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.FetchError{Reason: bodyReason(err), URL: rawURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return nil, &domain.FetchError{Reason: bodyReason(err), URL: rawURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(doc) == 0 {
		return nil, &domain.FetchError{Reason: domain.ReasonEmpty, URL: rawURL}
	}
	return doc, nil
}

func transportReason(err error) domain.Reason {
	if isTimeout(err) {
		return domain.ReasonTimeout
	}
	return domain.ReasonTransport
}

// bodyReason separates a deadline hit while reading the body from bad JSON.
func bodyReason(err error) domain.Reason {
	if isTimeout(err) {
		return domain.ReasonTimeout
	}
	return domain.ReasonDecode
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
