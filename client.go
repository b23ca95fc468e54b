// Package datereg is a Go client for the DateReg account-metadata API
// (registration-date estimation and username resolution). All intelligence
// lives server-side; this package builds authenticated requests, decodes
// JSON responses and maps failure statuses to a typed error taxonomy.
package datereg

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goyguru/datereg-go/internal/api"
)

// DefaultBaseURL is the fixed origin of the hosted service.
const DefaultBaseURL = "https://api.goy.guru/api/v1"

// DefaultTimeout bounds a single round trip when no option overrides it.
const DefaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	token   string // API token, sent with every request by the transport

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given API token. Additional options can be
// provided via functional arguments. New panics on an empty token or an
// invalid option; operation inputs are validated per call and return errors.
func New(token string, opts ...Option) *Client {
	if token == "" {
		panic("token cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically attach the API token
	c.wrapTransportWithToken()

	return c
}

// wrapTransportWithToken wraps the HTTP client's transport so every outbound
// request carries the token query parameter the service authenticates with.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &tokenTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// tokenTransport wraps an http.RoundTripper to inject the token query
// parameter on every request.
type tokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	q := cloned.URL.Query()
	q.Set("token", t.token)
	cloned.URL.RawQuery = q.Encode()
	return t.base.RoundTrip(cloned)
}

// Close releases idle transport connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// --------------------------------------------------------------------
// Estimation operations - delegated to internal/api
// --------------------------------------------------------------------

// EstimateDateFast estimates the account's registration date with the
// low-cost endpoint. Fastest, least accurate.
func (c *Client) EstimateDateFast(ctx context.Context, userID int64) (*CreationDate, error) {
	return api.GetCreationDateFast(ctx, c.http, c.baseURL, userID)
}

// EstimateDateSmart estimates the account's registration date with the
// higher-cost endpoint. Same response shape as EstimateDateFast with
// typically higher accuracy.
func (c *Client) EstimateDateSmart(ctx context.Context, userID int64) (*CreationDate, error) {
	return api.GetCreationDateSmart(ctx, c.http, c.baseURL, userID)
}

// EstimateDateByUsername resolves the username server-side and runs the
// smart estimation on the resulting id. A leading "@" is stripped.
func (c *Client) EstimateDateByUsername(ctx context.Context, username string) (*CreationDateByUsername, error) {
	return api.GetCreationDateByUsername(ctx, c.http, c.baseURL, username)
}

// --------------------------------------------------------------------
// Resolution operations - delegated to internal/api
// --------------------------------------------------------------------

// ResolveUsername returns the identity record the service holds for the
// username. A leading "@" is stripped. Optional fields absent on the server
// come back as nil; Identity.Raw carries the complete response object.
func (c *Client) ResolveUsername(ctx context.Context, username string) (*Identity, error) {
	return api.ResolveUsername(ctx, c.http, c.baseURL, username)
}
