package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/metrics"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// TokenSource provides the bearer token of the current session, if any.
type TokenSource interface {
	GetToken() string
}

// RequestError is returned for non-2xx responses and for envelopes with success=false.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsStatus reports whether err is a RequestError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == statusCode
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *envelope) errorMessage(statusCode int) string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("Request failed with %d", statusCode)
}

// Client talks to the TrainDiary REST API. Every call is exactly one HTTP
// request: no retries, no caching.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	metricsManager *metrics.Manager
}

// NewClient creates a client for baseURL, see ResolveBaseURL.
// tokens and metricsManager may be nil.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, metricsManager *metrics.Manager) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		tokens:         tokens,
		metricsManager: metricsManager,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveBaseURL returns <apiHost>/api, or /api on sameOrigin when no API
// host is configured.
func ResolveBaseURL(apiHost, sameOrigin string) string {
	apiHost = strings.TrimRight(strings.TrimSpace(apiHost), "/")
	if apiHost != "" {
		return apiHost + "/api"
	}
	return strings.TrimRight(strings.TrimSpace(sameOrigin), "/") + "/api"
}

// call performs a request and decodes the envelope data into out (if non-nil).
func (c *Client) call(
	ctx context.Context,
	resource, method, path string,
	query url.Values,
	body any,
	out any,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiclient."+resource)
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("api.path", path),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	defer func(begin time.Time) {
		c.observe(resource, begin, err)
	}(time.Now())

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", resource, err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.GetToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log.Debugf("calling api [%s]: %s %s", resource, method, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", resource, err)
	}

	env := &envelope{}
	if err := json.Unmarshal(respBytes, env); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", resource, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Message:    env.errorMessage(resp.StatusCode),
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", resource, err)
	}
	return nil
}

func (c *Client) observe(resource string, begin time.Time, err error) {
	if c.metricsManager == nil {
		return
	}
	outcome := "ok"
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		outcome = "request_error"
	case err != nil:
		outcome = "failure"
	}
	c.metricsManager.CounterApiCalls.WithLabelValues(resource, outcome).Inc()
	c.metricsManager.HistogramApiCallDuration.WithLabelValues(resource).Observe(time.Since(begin).Seconds())
}

// ResponseStatus picks the status a handler relays for a failed call: the
// API's own status for RequestErrors, 502 for everything else.
func ResponseStatus(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return http.StatusBadGateway
}
