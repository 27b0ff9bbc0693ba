// Package restapi provides a catalog.Client implementation backed by the
// catalog's public REST API.
package restapi

import (
	"browse/pkg/catalog"
	"browse/pkg/domain"
	"browse/pkg/serrors"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	// DefaultCategoriesPath is the categories resource relative to the base URL.
	DefaultCategoriesPath = "/categories"
	// DefaultItemsPath is the items resource relative to the base URL.
	DefaultItemsPath = "/calculators"
)

// Options configure where the catalog API lives.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.example.com/api".
	BaseURL string
	// CategoriesPath is joined to BaseURL for the categories listing.
	CategoriesPath string
	// ItemsPath is joined to BaseURL for the items listing.
	ItemsPath string
	// UserAgent is sent with every request when set.
	UserAgent string
}

// Client talks to the catalog REST API and fulfills the catalog.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        *url.URL
	categoriesPath string
	itemsPath      string
	userAgent      string
}

// Ensure Client conforms to the catalog.Client interface at compile time.
var _ catalog.Client = (*Client)(nil)

// New constructs a Client sending requests through httpClient. Empty paths
// fall back to DefaultCategoriesPath and DefaultItemsPath.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	c := &Client{
		httpClient:     httpClient,
		baseURL:        base,
		categoriesPath: opts.CategoriesPath,
		itemsPath:      opts.ItemsPath,
		userAgent:      opts.UserAgent,
	}
	if c.categoriesPath == "" {
		c.categoriesPath = DefaultCategoriesPath
	}
	if c.itemsPath == "" {
		c.itemsPath = DefaultItemsPath
	}

	return c, nil
}

// Categories fetches every category. The response must be a JSON array.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	b, err := c.get(ctx, c.categoriesPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "get categories")
	}

	return decodeCategories(b)
}

// Items fetches the items matching filter. ActiveOnly is sent as
// is_active=true.
func (c *Client) Items(ctx context.Context, filter catalog.ItemFilter) ([]domain.Item, error) {
	q := url.Values{}
	if filter.ActiveOnly {
		q.Set("is_active", "true")
	}

	b, err := c.get(ctx, c.itemsPath, q)
	if err != nil {
		return nil, errors.Wrap(err, "get items")
	}

	return decodeItems(b)
}

// get performs a GET on the resource and returns the body of a 2xx response.
// Failures are classified with serrors kinds.
func (c *Client) get(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	u := c.baseURL.JoinPath(resource)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "could not send request")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error

	return errors.As(err, &ne) && ne.Timeout()
}
