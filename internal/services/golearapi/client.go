// Package golearapi is the typed client for the remote Golear REST API.
//
// The API owns every piece of business data: users, profiles, posts,
// peneiras and competitions. The client adds bearer authentication from the
// request context, a per-client rate limit, a circuit breaker that trips on
// transport failures and 5xx responses, OpenTelemetry spans and Prometheus
// metrics around every call.
package golearapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golear/golear/internal/platform/config"
	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/platform/timeouts"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "github.com/golear/golear/internal/services/golearapi"
	maxResponseSize = 8 << 20
)

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. https://golear-api.onrender.com.
	BaseURL string
	// HTTPClient defaults to a client with timeouts.APIRequest.
	HTTPClient *http.Client
	// DevToken is sent on authenticated calls whose context carries no token.
	DevToken string
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	// RateBurst defaults to 1 when RateLimit is set.
	RateBurst int
	Breaker   BreakerSettings
	// Registerer receives the client metrics; nil keeps them unregistered.
	Registerer prometheus.Registerer
	Logger     *slog.Logger
}

// Client calls the Golear REST API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	devToken string
	limiter  *limiter
	breaker  *breaker
	metrics  *Metrics
	tracer   trace.Tracer
	logger   *slog.Logger
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	baseURL, err := config.RequireURL("api base url", cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	metrics, err := NewMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		devToken: strings.TrimSpace(cfg.DevToken),
		limiter:  newLimiter(cfg.RateLimit, cfg.RateBurst),
		breaker:  newBreaker("golearapi", cfg.Breaker),
		metrics:  metrics,
		tracer:   otel.Tracer(tracerName),
		logger:   logging.OrDiscard(cfg.Logger).With("component", "golearapi"),
	}, nil
}

type tokenKey struct{}

// WithToken attaches the bearer token used by authenticated calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, strings.TrimSpace(token))
}

// TokenFromContext returns the token set by WithToken.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type requestIDKey struct{}

// WithRequestID attaches the browser request id forwarded as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, strings.TrimSpace(id))
}

// RequestIDFromContext returns the id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// call describes one remote request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	json   any
	form   *multipartBody
	auth   bool
	// direct skips the limiter and breaker; used by health probes that must
	// keep knocking while the backend cold-starts.
	direct bool
}

type response struct {
	status int
	body   []byte
}

// envelope is the status wrapper most endpoints return.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, rc call, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "golearapi."+rc.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", rc.method),
			attribute.String("url.path", rc.path),
		),
	)
	started := time.Now()
	status := 0
	defer func() {
		elapsed := time.Since(started)
		c.metrics.observe(rc.op, status, err, elapsed)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.logger.WarnContext(ctx, "api call failed", "op", rc.op, "method", rc.method, "path", rc.path, "status", status, "duration", elapsed, "error", err)
		} else {
			c.logger.DebugContext(ctx, "api call", "op", rc.op, "method", rc.method, "path", rc.path, "status", status, "duration", elapsed)
		}
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		span.End()
	}()

	body, contentType, err := rc.encode()
	if err != nil {
		return &Error{Op: rc.op, Message: "encode request", Err: err}
	}

	var resp response
	if rc.direct {
		resp, err = c.roundTrip(ctx, rc, body, contentType)
	} else {
		if werr := c.limiter.wait(ctx); werr != nil {
			return &Error{Op: rc.op, Message: "rate limit wait", Err: werr}
		}
		resp, err = c.breaker.execute(ctx, func() (response, error) {
			return c.roundTrip(ctx, rc, body, contentType)
		})
	}
	status = resp.status
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return err
		}
		return &Error{Op: rc.op, Message: "backend unavailable", Err: err}
	}

	if len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	var env envelope
	if jerr := json.Unmarshal(resp.body, &env); jerr == nil && env.Success != nil && !*env.Success {
		return &Error{Op: rc.op, Status: resp.status, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &Error{Op: rc.op, Status: resp.status, Message: "decode response", Err: err}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, rc call, body []byte, contentType string) (response, error) {
	target := c.baseURL + rc.path
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, rc.method, target, reader)
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if rc.auth {
		if token := c.tokenFor(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	res, err := c.http.Do(req)
	if err != nil {
		return response{}, err
	}
	defer res.Body.Close()
	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return response{status: res.StatusCode}, fmt.Errorf("read response: %w", err)
	}
	resp := response{status: res.StatusCode, body: data}
	if res.StatusCode >= http.StatusBadRequest {
		return resp, &Error{Op: rc.op, Status: res.StatusCode, Message: remoteMessage(data, res.StatusCode)}
	}
	return resp, nil
}

func (c *Client) tokenFor(ctx context.Context) string {
	if token := TokenFromContext(ctx); token != "" {
		return token
	}
	return c.devToken
}

func (rc call) encode() ([]byte, string, error) {
	switch {
	case rc.form != nil:
		return rc.form.encode()
	case rc.json != nil:
		data, err := json.Marshal(rc.json)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	default:
		return nil, "", nil
	}
}

func remoteMessage(body []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && strings.TrimSpace(env.Message) != "" {
		return strings.TrimSpace(env.Message)
	}
	var alt struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &alt); err == nil && strings.TrimSpace(alt.Error) != "" {
		return strings.TrimSpace(alt.Error)
	}
	return http.StatusText(status)
}

func idPath(format string, ids ...int64) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf(format, args...)
}
