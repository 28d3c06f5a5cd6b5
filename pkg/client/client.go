// Package client provides the SWAPI HTTP client used for primary fetches
// and for following links during expansion.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
)

// Prometheus metrics for upstream requests.
var (
	swapiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swapi_requests_total",
		Help: "Total SWAPI requests by resource and status",
	}, []string{"resource", "status"})

	swapiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swapi_request_duration_seconds",
		Help:    "SWAPI request duration in seconds by resource",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"resource"})

	swapiErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swapi_errors_total",
		Help: "Total SWAPI errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of upstream failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client issues GET requests against SWAPI and decodes JSON documents.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the SWAPI root, e.g. "https://swapi.dev/api/".
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// MaxIdleConnsPerHost sizes the keep-alive pool used by link fan-out.
	MaxIdleConnsPerHost int
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:             "https://swapi.dev/api/",
		UserAgent:           "starwars-func-api/1.0.0",
		Timeout:             10 * time.Second,
		MaxIdleConnsPerHost: 32,
	}
}

// New creates a new SWAPI client.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be > 0 (got %s)", cfg.Timeout)
	}
	if cfg.MaxIdleConnsPerHost <= 0 {
		cfg.MaxIdleConnsPerHost = 32
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// BaseURL returns the configured SWAPI root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Fetch GETs rawURL with params appended and decodes the response, which
// may be a single resource or a paginated envelope.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values) (document.Document, error) {
	target, err := withParams(rawURL, params)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	return c.get(ctx, target)
}

// FetchOne GETs an absolute resource URL, typically a link found in
// another document.
func (c *Client) FetchOne(ctx context.Context, rawURL string) (document.Document, error) {
	return c.get(ctx, rawURL)
}

func (c *Client) get(ctx context.Context, target string) (document.Document, error) {
	resource := resourceLabel(target)

	startTime := time.Now()
	defer func() {
		swapiRequestDuration.WithLabelValues(resource).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	c.logger.Debug().Str("url", target).Msg("Executing SWAPI request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordError(ErrorClassNetwork)
		swapiRequestsTotal.WithLabelValues(resource, "network_error").Inc()
		c.logger.Debug().Err(err).Str("url", target).Msg("SWAPI request failed")
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	swapiRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errClass := classifyStatus(resp.StatusCode)
		c.recordError(errClass)

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Debug().
			Str("url", target).
			Int("status", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("SWAPI request error")

		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			URL:        target,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	doc, err := document.Decode(resp.Body)
	if err != nil {
		c.recordError(ErrorClassNetwork)
		return nil, &TransportError{URL: target, Err: err}
	}

	return doc, nil
}

func (c *Client) recordError(class ErrorClass) {
	swapiErrorsTotal.WithLabelValues(string(class)).Inc()
}

// classifyStatus categorizes a non-2xx status for observability.
func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}

// ResourceURL builds the SWAPI endpoint for a resource collection, or for a
// single item when id is non-nil.
func ResourceURL(baseURL, resource string, id *int) string {
	u := strings.TrimRight(baseURL, "/") + "/" + resource + "/"
	if id != nil {
		u += strconv.Itoa(*id)
	}
	return u
}

func withParams(rawURL string, params url.Values) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// resourceLabel extracts a bounded metric label from a SWAPI URL: the
// resource segment following "api", or "other".
func resourceLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "other"
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "api" && i+1 < len(segments) {
			return knownResource(segments[i+1])
		}
	}
	if len(segments) > 0 {
		return knownResource(segments[0])
	}
	return "other"
}

func knownResource(seg string) string {
	switch seg {
	case "films", "people", "planets", "species", "starships", "vehicles":
		return seg
	default:
		return "other"
	}
}
