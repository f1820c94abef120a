package flashstation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fetcher defines the interface for looking up factory image metadata.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Lookup(ctx context.Context, query Query) (LookupOptions, error)
	FetchBuilds(ctx context.Context, opts LookupOptions) (Result, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Flash Station portal and its builds API.
type Client struct {
	portalURL *url.URL
	buildsURL *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

const (
	// DefaultPortalURL is the public flash portal whose markup embeds the
	// API key and script bundle.
	DefaultPortalURL = "https://flash.android.com/"
	// DefaultBuildsURL is the metadata endpoint behind the portal. The real
	// site goes through /batch, but a single direct call is enough here.
	DefaultBuildsURL = "https://content-flashstation-pa.googleapis.com/v1/builds"
	// DefaultUserAgent advertises a modern desktop browser. With it the
	// portal serves the ES2018 bundle, whose interpolated strings are much
	// easier to match than the minified ES5 fallback.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

	defaultTimeout = 15 * time.Second
)

// Settings configure a Client. Zero values fall back to defaults.
type Settings struct {
	PortalURL string
	BuildsURL string
	UserAgent string
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewClient builds a Client from the provided settings.
func NewClient(settings Settings) (*Client, error) {
	portal, err := parseEndpoint(settings.PortalURL, DefaultPortalURL)
	if err != nil {
		return nil, fmt.Errorf("parse portal url: %w", err)
	}
	builds, err := parseEndpoint(settings.BuildsURL, DefaultBuildsURL)
	if err != nil {
		return nil, fmt.Errorf("parse builds url: %w", err)
	}

	userAgent := strings.TrimSpace(settings.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := settings.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		portalURL: portal,
		buildsURL: builds,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		log:       logger,
	}, nil
}

// FetchBuilds retrieves factory image metadata for the scraped product set.
func (c *Client) FetchBuilds(ctx context.Context, opts LookupOptions) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	if opts.APIKey == "" {
		return Result{}, fmt.Errorf("api key is empty")
	}

	products := append([]string(nil), opts.Products...)
	sort.Strings(products)

	values := url.Values{}
	values.Set("key", opts.APIKey)
	for _, p := range products {
		values.Add("product", p)
	}

	endpoint := *c.buildsURL
	endpoint.RawQuery = values.Encode()

	body, err := c.get(ctx, endpoint.String(), true)
	if err != nil {
		return Result{}, err
	}

	var payload BuildsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, &DecodeError{What: "builds response", Err: err}
	}

	c.log.Debug("fetched builds",
		zap.Int("products", len(products)),
		zap.Int("builds", len(payload.FlashstationBuild)))

	return Result{Builds: payload.FlashstationBuild, Raw: body}, nil
}

// get performs a GET and returns the body. api selects the headers the builds
// endpoint expects; portal pages only get the browser user agent.
func (c *Client) get(ctx context.Context, rawURL string, api bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if api {
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Referer", c.portalURL.String())
	}

	c.log.Debug("fetching", zap.String("url", rawURL))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

func parseEndpoint(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute url", trimmed)
	}
	return u, nil
}
