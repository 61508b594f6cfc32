// Package news fetches Brazilian football headlines and caches them.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/golear/golear/internal/platform/config"
	"github.com/golear/golear/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultURL is the APITube news endpoint.
const DefaultURL = "https://api.apitube.io/v1/news"

// Item is one headline.
type Item struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Fetcher loads the current headlines.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Client calls the APITube news API.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	tracer   trace.Tracer
}

// NewClient builds a Client. An empty endpoint uses DefaultURL.
func NewClient(endpoint, token string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultURL
	}
	endpoint, err := config.RequireURL("news api url", endpoint)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.NewsRequest}
	}
	return &Client{
		endpoint: endpoint,
		token:    strings.TrimSpace(token),
		http:     httpClient,
		tracer:   otel.Tracer("github.com/golear/golear/internal/services/web/news"),
	}, nil
}

// Fetch returns up to ten soccer headlines for Brazil.
func (c *Client) Fetch(ctx context.Context) (items []Item, err error) {
	ctx, span := c.tracer.Start(ctx, "news.Fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("news.items", len(items)))
		span.End()
	}()

	query := url.Values{}
	query.Set("category", "soccer")
	query.Set("country", "BR")
	query.Set("limit", "10")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<16))
		return nil, fmt.Errorf("fetch news: status %d", res.StatusCode)
	}

	var payload struct {
		Articles []Item `json:"articles"`
	}
	if err := json.NewDecoder(io.LimitReader(res.Body, 4<<20)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	return payload.Articles, nil
}
