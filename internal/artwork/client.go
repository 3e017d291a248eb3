package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rshade/artable/internal/pagination"
)

// DefaultBaseURL is the public Art Institute of Chicago API root.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// DefaultUserAgent identifies artable to the API operators.
const DefaultUserAgent = "artable (+https://github.com/rshade/artable)"

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// ClientConfig holds the client configuration.
type ClientConfig struct {
	// BaseURL is the API root; "/artworks" is appended.
	BaseURL string

	// UserAgent is sent on every request.
	UserAgent string

	// HTTPClient overrides the transport (tests). It must not set its own
	// Timeout shorter than the caller's load deadline.
	HTTPClient *http.Client

	// Logger receives debug request traces. Defaults to the global logger.
	Logger *zerolog.Logger
}

// Client fetches artwork pages.
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new artworks client.
func NewClient(cfg ClientConfig) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(strings.TrimRight(base, "/") + "/artworks")
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", base)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// Deadlines come from the caller's context.
		httpClient = &http.Client{}
	}

	logger := log.With().Str("component", "artwork-client").Logger()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "artwork-client").Logger()
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   u,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// Endpoint returns the resolved artworks URL without query parameters.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// PageURL returns the full request URL for page.
func (c *Client) PageURL(page int) string {
	u := *c.endpoint
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(DefaultPageSize))
	q.Set("fields", FieldsParam())
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage requests one page of artworks. The request is bound to ctx; when
// ctx is cancelled the returned error is the context's cancellation cause
// (ErrTimeout, ErrSuperseded, or a plain context error).
func (c *Client) FetchPage(ctx context.Context, page int) (*PageResult, error) {
	if err := pagination.ValidatePage(page); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(page), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	c.logger.Debug().Ctx(ctx).Int("page", page).Str("url", req.URL.String()).Msg("requesting artworks page")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, cancellationError(ctx)
		}
		observeFailure(ErrorClassNetwork)
		return nil, &FetchError{Class: ErrorClassNetwork, Page: page, Err: err}
	}
	defer resp.Body.Close()

	observeStatus(resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchError{
			Class:      ErrorClassStatus,
			Page:       page,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body))),
		}
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if ctx.Err() != nil {
			return nil, cancellationError(ctx)
		}
		observeFailure(ErrorClassParse)
		return nil, &FetchError{Class: ErrorClassParse, Page: page, StatusCode: resp.StatusCode, Err: err}
	}

	result := decoded.toPageResult()
	c.logger.Debug().
		Ctx(ctx).
		Int("page", page).
		Int("records", len(result.Records)).
		Int("total", result.Total).
		Dur("duration", time.Since(start)).
		Msg("artworks page received")

	return result, nil
}

// cancellationError returns the recorded cause of ctx, falling back to ctx.Err().
func cancellationError(ctx context.Context) error {
	cause := context.Cause(ctx)
	if cause == nil {
		return ctx.Err()
	}
	if errors.Is(cause, ctx.Err()) {
		return cause
	}
	return fmt.Errorf("%w: %w", cause, ctx.Err())
}
