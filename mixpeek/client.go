// Package mixpeek implements the remote semantic classifier using the
// Mixpeek classification API.
package mixpeek

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mixpeek/iab-product-mapper/iab"
	"github.com/mixpeek/iab-product-mapper/mapper"
	"github.com/rs/zerolog/log"
)

const (
	ApiBaseUrl     = "https://api.mixpeek.com"
	apiVersion     = "v1"
	defaultTimeout = 5 * time.Second

	retryCount    = 2
	retryWaitTime = 100 * time.Millisecond
)

type ClientOpts struct {
	ApiKey    string
	Namespace string
	BaseURL   string
	Timeout   time.Duration
}

// Client is a Mixpeek API client. Retries and timeouts are handled here;
// the mapper only sees the outcome of the whole call.
type Client struct {
	httpClient *resty.Client
	namespace  string
}

// NewClient creates a Mixpeek API client.
func NewClient(opts ClientOpts) (*Client, error) {
	if opts.ApiKey == "" {
		return nil, fmt.Errorf("mixpeek: API key is required")
	}

	baseURL := ApiBaseUrl
	if opts.BaseURL != "" {
		baseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	timeout := defaultTimeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	c := Client{namespace: opts.Namespace}
	c.httpClient = resty.New().
		SetBaseURL(baseURL+"/"+apiVersion).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + opts.ApiKey,
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"User-Agent":    "Mixpeek-IAB-AdProduct-Go/1.0.0",
		})

	return &c, nil
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx)

	if c.namespace != "" {
		request.SetHeader("X-Namespace-Id", c.namespace)
	}
	if result != nil {
		request.SetResult(result)
	}

	return request
}

type classifyRequest struct {
	Content  classifyContent `json:"content"`
	Taxonomy string          `json:"taxonomy"`
	Options  classifyOptions `json:"options"`
}

type classifyContent struct {
	Text string `json:"text"`
}

type classifyOptions struct {
	MaxCategories    int     `json:"max_categories"`
	MinConfidence    float64 `json:"min_confidence"`
	IncludeHierarchy bool    `json:"include_hierarchy"`
}

// classifyResponse tolerates both the current and legacy field names the
// API has used for category attributes.
type classifyResponse struct {
	Categories []struct {
		ID           int     `json:"id"`
		CategoryID   int     `json:"category_id"`
		Name         string  `json:"name"`
		CategoryName string  `json:"category_name"`
		Confidence   float64 `json:"confidence"`
		Score        float64 `json:"score"`
		Tier         int     `json:"tier"`
		Level        int     `json:"level"`
		Parent       int     `json:"parent"`
		ParentID     int     `json:"parent_id"`
	} `json:"categories"`
}

// Classify sends the product to the Mixpeek classification endpoint and
// normalizes the response. A transport or HTTP failure yields an
// unsuccessful Classification rather than an error so callers can treat
// the remote service as best-effort.
func (c *Client) Classify(ctx context.Context, product mapper.Product) (mapper.Classification, error) {
	start := time.Now()

	var parts []string
	if product.Title != "" {
		parts = append(parts, "Product: "+product.Title)
	}
	if product.Description != "" {
		parts = append(parts, "Description: "+product.Description)
	}
	if product.Category != "" {
		parts = append(parts, "Category: "+product.Category)
	}
	if product.Brand != "" {
		parts = append(parts, "Brand: "+product.Brand)
	}

	body := classifyRequest{
		Content:  classifyContent{Text: strings.Join(parts, "\n")},
		Taxonomy: "iab_ad_product_2.0",
		Options: classifyOptions{
			MaxCategories:    3,
			MinConfidence:    0.3,
			IncludeHierarchy: true,
		},
	}

	result := &classifyResponse{}
	_, err := handleError(c.req(ctx, result).
		SetBody(body).
		Post("/classify"))
	if err != nil {
		log.Warn().Err(err).Msg("mixpeek classification failed")
		return mapper.Classification{Success: false, Error: err.Error()}, nil
	}

	log.Debug().
		Int("categories", len(result.Categories)).
		Dur("latency", time.Since(start)).
		Msg("mixpeek classify call")

	return mapper.Classification{
		Success:    true,
		Categories: normalizeCategories(result),
	}, nil
}

// normalizeCategories maps API category entries onto taxonomy matches,
// preferring current field names and falling back to legacy ones.
func normalizeCategories(resp *classifyResponse) []iab.Match {
	var out []iab.Match
	for _, c := range resp.Categories {
		m := iab.Match{
			ID:         c.ID,
			Name:       c.Name,
			Confidence: c.Confidence,
			Tier:       c.Tier,
			Parent:     c.Parent,
		}
		if m.ID == 0 {
			m.ID = c.CategoryID
		}
		if m.Name == "" {
			m.Name = c.CategoryName
		}
		if m.Confidence == 0 {
			m.Confidence = c.Score
		}
		if m.Tier == 0 {
			m.Tier = c.Level
		}
		if m.Parent == 0 {
			m.Parent = c.ParentID
		}
		out = append(out, m)
	}
	return out
}

// HealthCheck probes the API health endpoint.
func (c *Client) HealthCheck(ctx context.Context) mapper.Health {
	start := time.Now()

	_, err := handleError(c.req(ctx, nil).Get("/health"))
	if err != nil {
		return mapper.Health{Status: "unhealthy", Error: err.Error()}
	}

	return mapper.Health{
		Status:        "healthy",
		LatencyMillis: time.Since(start).Milliseconds(),
	}
}

// handleError is a generic error handler for failing responses (>399
// status code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
