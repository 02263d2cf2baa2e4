package client

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/habiliai/memoryclient/config"
	"github.com/habiliai/memoryclient/errors"
	"github.com/samber/lo"
)

// Client talks to an agent memory server over HTTP. It is configured
// entirely by a normalized config.MemoryConfig and is safe for concurrent
// use.
type Client struct {
	http   *resty.Client
	conf   *config.MemoryConfig
	logger *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client from a normalized config. Pass the result of
// config.Normalize here, not a hand-built struct.
func New(conf *config.MemoryConfig, opts ...Option) (*Client, error) {
	if conf == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "config is nil")
	}
	if conf.ServerURL == "" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "serverUrl is empty")
	}

	c := &Client{
		conf:   conf,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(strings.TrimRight(conf.ServerURL, "/")).
		SetTimeout(time.Duration(conf.Timeout) * time.Millisecond).
		SetHeader("Content-Type", "application/json")
	if conf.BearerToken != "" {
		c.http.SetAuthToken(conf.BearerToken)
	} else if conf.APIKey != "" {
		c.http.SetHeader("X-API-Key", conf.APIKey)
	}

	return c, nil
}

// Config returns the config the client was built with.
func (c *Client) Config() *config.MemoryConfig {
	return c.conf
}

// Ping checks that the memory server is reachable and healthy.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/v1/health")
	if err != nil {
		return errors.Wrapf(err, "failed to reach memory server at %s", c.conf.ServerURL)
	}
	if resp.IsError() {
		return errors.Errorf("memory server health check returned %s", resp.Status())
	}
	return nil
}

type (
	searchRequest struct {
		Query     string  `json:"query"`
		Namespace string  `json:"namespace,omitempty"`
		Limit     int     `json:"limit"`
		MinScore  float64 `json:"minScore"`
	}
	searchResponse struct {
		Memories []ScoredMemory `json:"memories"`
	}
)

// Recall fetches memories relevant to query, bounded by the configured
// recallLimit and minScore.
func (c *Client) Recall(ctx context.Context, query string) ([]ScoredMemory, error) {
	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&searchRequest{
			Query:     query,
			Namespace: c.conf.Namespace,
			Limit:     c.conf.RecallLimit,
			MinScore:  c.conf.MinScore,
		}).
		SetResult(&out).
		Post("/v1/memories/search")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search memories")
	}
	if resp.IsError() {
		c.logger.Warn("memory search failed", "status", resp.Status(), "body", resp.String())
		return nil, errors.Errorf("memory server returned %s on search", resp.Status())
	}

	// Enforce the threshold and limit here as well; not every server honors
	// them.
	memories := lo.Filter(out.Memories, func(m ScoredMemory, _ int) bool {
		return m.Score >= c.conf.MinScore
	})
	if len(memories) > c.conf.RecallLimit {
		memories = memories[:c.conf.RecallLimit]
	}

	c.logger.Debug("recalled memories", "query", query, "count", len(memories))
	return memories, nil
}

type captureRequest struct {
	Content            string `json:"content"`
	Namespace          string `json:"namespace,omitempty"`
	ExtractionStrategy string `json:"extractionStrategy,omitempty"`
	CustomPrompt       string `json:"customPrompt,omitempty"`
}

// Capture sends conversational content to the server for extraction into
// stored memories, using the configured extraction strategy.
func (c *Client) Capture(ctx context.Context, content string) (*Memory, error) {
	if content == "" {
		return nil, errors.New("nothing to capture")
	}

	req := &captureRequest{
		Content:            content,
		Namespace:          c.conf.Namespace,
		ExtractionStrategy: string(c.conf.ExtractionStrategy),
	}
	if c.conf.ExtractionStrategy == config.ExtractionCustom {
		req.CustomPrompt = c.conf.CustomPrompt
	}

	var out Memory
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/v1/memories")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to capture memory")
	}
	if resp.IsError() {
		c.logger.Warn("memory capture failed", "status", resp.Status(), "body", resp.String())
		return nil, errors.Errorf("memory server returned %s on capture", resp.Status())
	}

	c.logger.Debug("captured memory", "id", out.ID)
	return &out, nil
}
