package productdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/skulens/backend/internal/domain"
)

// Client talks to the downstream product database over its REST API
type Client struct {
	httpClient *resty.Client
	baseURL    string
}

// NewClient creates a new product database client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// SetDebug enables request/response logging on the underlying HTTP client
func (c *Client) SetDebug(debug bool) {
	c.httpClient.SetDebug(debug)
}

// lookupResponse is the wire shape of a SKU lookup hit
type lookupResponse struct {
	Success bool                 `json:"success"`
	Data    domain.StoredProduct `json:"data"`
}

// Lookup fetches the stored product for a SKU. A clean 404 returns
// ErrProductNotFound; transport failures, unexpected statuses, and
// malformed bodies return ErrDatabaseFailure so callers can tell a real
// miss from an outage.
func (c *Client) Lookup(ctx context.Context, sku string) (*domain.StoredProduct, error) {
	endpoint := fmt.Sprintf("%s/sku/%s", c.baseURL, url.PathEscape(sku))

	var lookupResp lookupResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&lookupResp).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: lookup status %d", domain.ErrDatabaseFailure, resp.StatusCode())
	}

	if !lookupResp.Success || lookupResp.Data.SKU == "" {
		return nil, fmt.Errorf("%w: lookup returned unusable body", domain.ErrDatabaseFailure)
	}

	return &lookupResp.Data, nil
}

// Upsert writes a product to the downstream store. A non-2xx response or
// transport failure returns an error carrying the raw response body when
// available, for diagnostics.
func (c *Client) Upsert(ctx context.Context, payload domain.UpsertPayload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.baseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	if resp.IsError() {
		log.Errorf("productdb: upsert of %q failed with status %d: %s", payload.SKU, resp.StatusCode(), resp.String())
		return fmt.Errorf("%w: upsert status %d: %s", domain.ErrDatabaseFailure, resp.StatusCode(), resp.String())
	}

	return nil
}
