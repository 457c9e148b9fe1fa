package wds

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/roivaz/worldbank-dnr-mcp/internal/logging"
)

// DefaultBaseURL is the public Documents & Reports search endpoint.
const DefaultBaseURL = "https://search.worldbank.org/api/v3/wds"

// DefaultTimeout bounds every outbound request. No retries are performed; a
// failed fetch yields a single error response and the caller decides whether
// to try again.
const DefaultTimeout = 30 * time.Second

// Client performs GET requests against the WDS API. It is stateless and safe
// for concurrent use.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  logging.Logger
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Logger  logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "worldbank-dnr-mcp/1.0")
	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}
}

// Fetch issues one GET with the given query parameters and returns the parsed
// reply. HTTP status errors and transport failures are wrapped with
// remediation text; the error strings end up verbatim in tool output.
func (c *Client) Fetch(ctx context.Context, params map[string]string) (gjson.Result, error) {
	c.logger.Debug("fetching WDS API", "params", params)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.baseURL)
	if err != nil {
		return gjson.Result{}, fmt.Errorf(
			"network error connecting to World Bank API: %v. Check your internet connection and try again", err)
	}
	if resp.IsError() {
		return gjson.Result{}, fmt.Errorf(
			"World Bank API returned error %d: %s. This usually means invalid parameters or the API is unavailable. Try adjusting your search parameters or try again later",
			resp.StatusCode(), resp.String())
	}

	return gjson.ParseBytes(resp.Body()), nil
}
