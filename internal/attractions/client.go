package attractions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/config"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/metrics"
)

// Backend endpoint path templates. The parameterized templates get a
// percent-encoded value appended by the intent dispatcher.
const (
	PathAllAttractions        = "/getAll/Attraction"
	PathNaturalAttractions    = "/NaturalAttractions"
	PathHistoricalAttractions = "/HistoricalAttractions"
	PathCulturalAttractions   = "/CulturalAttractions"
	PathArtificialAttractions = "/ArtificialAttractions"
	PathLocationByName        = "/getLocationByName/"
	PathLocationByCity        = "/getLocationByCity/"
)

// Client is a REST client for the attractions backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new attractions backend client
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
	}
}

// Fetch issues a single GET against the backend and returns the
// decoded records. The backend is inconsistent about cardinality: some
// endpoints return an array, some a single object. A single object is
// coerced to a one-element slice; a JSON null body yields an empty
// result. There are no retries.
func (c *Client) Fetch(ctx context.Context, path string) ([]RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpointLabel(path), "error").Inc()
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(endpointLabel(path), resp.Status).Inc()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %d for %s", resp.StatusCode, path)
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	switch v := body.(type) {
	case nil:
		return nil, nil
	case []any:
		items := make([]RawItem, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				items = append(items, m)
			} else {
				// Non-object element, normalized as an empty record
				items = append(items, nil)
			}
		}
		return items, nil
	case map[string]any:
		return []RawItem{v}, nil
	default:
		return nil, nil
	}
}

// Ping checks that the backend answers HTTP at all. Used by the health
// endpoint, not by the fulfillment path.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// endpointLabel bounds metric cardinality to the first path segment,
// stripping per-request parameter values.
func endpointLabel(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
