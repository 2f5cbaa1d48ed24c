package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/2beens/wellnessbuddy/internal/telemetry/metrics"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	outcomeOK              = "ok"
	outcomeConnectionError = "connection_error"
	outcomeAPIError        = "api_error"
)

var supportedMethods = map[string]bool{
	http.MethodGet:   true,
	http.MethodPost:  true,
	http.MethodPatch: true,
}

var numericPathSegment = regexp.MustCompile(`/\d+(/|$)`)

// Client talks to the wellness backend REST API.
// Example call: GET http://localhost:3000/api/progress?limit=7
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Manager
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		metrics:    metricsManager,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request makes a single round trip to the backend. Failures are reported to
// the notifier (connection error / API error notice) and yield ok == false;
// they are never returned to the caller as errors. Success is silent.
func (c *Client) Request(
	ctx context.Context,
	notifier Notifier,
	endpoint, method string,
	payload any,
) (json.RawMessage, bool) {
	if notifier == nil {
		notifier = discardNotifier{}
	}

	raw, err := c.Do(ctx, method, endpoint, payload)
	if err != nil {
		log.Errorf("backend request [%s %s]: %s", method, endpoint, err)
		notice := NoticeFromError(err)
		if c.metrics != nil {
			c.metrics.CounterNotices.WithLabelValues(notice.Kind.String()).Inc()
		}
		notifier.Notify(notice)
		return nil, false
	}

	return raw, true
}

// Do sends the request and returns the JSON body of a HTTP 200 response.
// Errors are *ConnectionError or *APIError, except for invalid input
// (unsupported method, payload that cannot be marshaled).
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backend.request")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	span.SetAttributes(attribute.String("backend.endpoint", endpoint))
	span.SetAttributes(attribute.String("backend.method", method))

	if !supportedMethods[method] {
		return nil, fmt.Errorf("unsupported method: %s", method)
	}

	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	reqURL := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("calling backend: %s %s", method, reqURL)

	outcome := outcomeOK
	defer func(begin time.Time) {
		c.observe(endpoint, method, outcome, time.Since(begin))
	}(time.Now())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = outcomeConnectionError
		return nil, &ConnectionError{Endpoint: endpoint, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("backend.status_code", resp.StatusCode))

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = outcomeConnectionError
		return nil, &ConnectionError{Endpoint: endpoint, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		outcome = outcomeAPIError
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBytes)),
		}
	}

	if !json.Valid(respBytes) {
		outcome = outcomeAPIError
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       "invalid JSON response: " + strings.TrimSpace(string(respBytes)),
		}
	}

	return respBytes, nil
}

func (c *Client) observe(endpoint, method, outcome string, took time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterBackendRequests.WithLabelValues(endpointLabel(endpoint), method, outcome).Inc()
	c.metrics.HistogramBackendRequestDuration.WithLabelValues(method).Observe(took.Seconds())
}

// endpointLabel keeps metric label cardinality low:
// "/daily-tasks/12" -> "/daily-tasks/{id}", "/progress?limit=7" -> "/progress"
func endpointLabel(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}
	for numericPathSegment.MatchString(endpoint) {
		endpoint = numericPathSegment.ReplaceAllString(endpoint, "/{id}$1")
	}
	return endpoint
}

// unwrapURLError drops the "Get \"http://...\":" prefix of *url.Error,
// the endpoint is already part of ConnectionError
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
