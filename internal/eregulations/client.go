// Package eregulations provides the HTTP client for the eRegulations API.
// All fetches consult a TTL cache keyed by request signature so repeated
// tool invocations within a session avoid redundant upstream calls.
package eregulations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/unctad-ai/eregulations-mcp-server/internal/cache"
	"github.com/unctad-ai/eregulations-mcp-server/internal/metrics"
	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// Options configures timeouts and cache TTLs for the client.
type Options struct {
	// Timeout bounds each upstream HTTP request.
	Timeout time.Duration
	// CacheTTL is the default entry lifetime for detail and step records.
	CacheTTL time.Duration
	// ListCacheTTL is the entry lifetime for list and search results, which
	// change less often than they are requested.
	ListCacheTTL time.Duration
}

// Client fetches procedure records from an eRegulations instance.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Collector

	summaries *cache.Cache[[]models.ProcedureSummary]
	details   *cache.Cache[*models.ProcedureDetail]
	steps     *cache.Cache[*models.Step]

	listTTL time.Duration
}

// New creates a client for the given API base URL.
func New(baseURL string, opts Options, logger *slog.Logger, collector *metrics.Collector) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.ListCacheTTL <= 0 {
		opts.ListCacheTTL = 30 * time.Minute
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: opts.Timeout},
		logger:    logger,
		metrics:   collector,
		summaries: cache.New[[]models.ProcedureSummary](opts.ListCacheTTL),
		details:   cache.New[*models.ProcedureDetail](opts.CacheTTL),
		steps:     cache.New[*models.Step](opts.CacheTTL),
		listTTL:   opts.ListCacheTTL,
	}
}

// Procedures returns all published procedure summaries.
func (c *Client) Procedures(ctx context.Context) ([]models.ProcedureSummary, error) {
	const key = "procedures"
	if items, ok := c.summaries.Get(key); ok {
		c.metrics.RecordCacheHit()
		c.logger.Debug("cache hit", "key", key)
		return items, nil
	}
	c.metrics.RecordCacheMiss()

	var items []models.ProcedureSummary
	if err := c.get(ctx, "/Procedures", nil, &items); err != nil {
		return nil, fmt.Errorf("fetch procedures: %w", err)
	}

	c.summaries.Set(key, items)
	c.logger.Info("procedures fetched", "count", len(items))
	return items, nil
}

// ProcedureByID returns the full procedure record. Unknown IDs yield
// ErrNotFound.
func (c *Client) ProcedureByID(ctx context.Context, id int) (*models.ProcedureDetail, error) {
	key := fmt.Sprintf("procedure:%d", id)
	if detail, ok := c.details.Get(key); ok {
		c.metrics.RecordCacheHit()
		c.logger.Debug("cache hit", "key", key)
		return detail, nil
	}
	c.metrics.RecordCacheMiss()

	var detail models.ProcedureDetail
	if err := c.get(ctx, fmt.Sprintf("/Procedures/%d", id), nil, &detail); err != nil {
		return nil, fmt.Errorf("fetch procedure %d: %w", id, err)
	}

	c.details.Set(key, &detail)
	return &detail, nil
}

// Step returns one step of a procedure. Unknown IDs yield ErrNotFound.
func (c *Client) Step(ctx context.Context, procedureID, stepID int) (*models.Step, error) {
	key := fmt.Sprintf("step:%d:%d", procedureID, stepID)
	if step, ok := c.steps.Get(key); ok {
		c.metrics.RecordCacheHit()
		c.logger.Debug("cache hit", "key", key)
		return step, nil
	}
	c.metrics.RecordCacheMiss()

	var step models.Step
	path := fmt.Sprintf("/Procedures/%d/Steps/%d", procedureID, stepID)
	if err := c.get(ctx, path, nil, &step); err != nil {
		return nil, fmt.Errorf("fetch step %d of procedure %d: %w", stepID, procedureID, err)
	}

	c.steps.Set(key, &step)
	return &step, nil
}

// Search returns procedure summaries matching a keyword. Results are
// cached per keyword with the list TTL.
func (c *Client) Search(ctx context.Context, keyword string) ([]models.ProcedureSummary, error) {
	key := "search:" + strings.ToLower(keyword)
	if items, ok := c.summaries.Get(key); ok {
		c.metrics.RecordCacheHit()
		c.logger.Debug("cache hit", "key", key)
		return items, nil
	}
	c.metrics.RecordCacheMiss()

	query := url.Values{"keyword": {keyword}}
	var items []models.ProcedureSummary
	if err := c.get(ctx, "/Procedures/Search", query, &items); err != nil {
		return nil, fmt.Errorf("search procedures: %w", err)
	}

	c.summaries.SetTTL(key, items, c.listTTL)
	c.logger.Info("search completed", "keyword", keyword, "count", len(items))
	return items, nil
}

// CleanExpiredCache sweeps all caches and returns how many entries were
// removed. Meant to be called periodically by the host process.
func (c *Client) CleanExpiredCache() int {
	return c.summaries.CleanExpired() + c.details.CleanExpired() + c.steps.CleanExpired()
}

// ClearCache drops every cached record.
func (c *Client) ClearCache() {
	c.summaries.Clear()
	c.details.Clear()
	c.steps.Clear()
}

// get performs a GET request against the API and decodes the JSON body
// into out. 404 maps to ErrNotFound; other non-2xx statuses map to
// StatusError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", u, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordTiming(metrics.OpAPIFetch, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", u, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, URL: u}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", u, err)
	}
	return nil
}
